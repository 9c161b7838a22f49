package service

import "errors"

// 服务层哨兵错误，由 HTTP 层映射为对应的业务码与提示文案
var (
	ErrValidation           = errors.New("validation failed")            // 必填字段缺失或格式非法
	ErrDeliveryUnavailable  = errors.New("delivery unavailable for zip") // 邮编不在配送服务范围
	ErrStoreNotFound        = errors.New("active store not found")       // 无启用门店（服务端配置问题）
	ErrProductNotFound      = errors.New("product not found")            // 商品不存在
	ErrProductInactive      = errors.New("product inactive")             // 商品已下架
	ErrOrderNotFound        = errors.New("order not found")              // 订单不存在
	ErrSubscriptionNotFound = errors.New("subscription not found")       // 订阅不存在
	ErrStatusInvalid        = errors.New("invalid status value")         // 状态值不在枚举内
	ErrFrequencyInvalid     = errors.New("invalid frequency value")      // 配送频率不合法
	ErrPersistence          = errors.New("persistence failure")          // 数据写入失败
)
