package constants

// 订单状态常量
const (
	OrderStatusNew            = "NEW"              // 新订单
	OrderStatusConfirmed      = "CONFIRMED"        // 已确认
	OrderStatusReady          = "READY"            // 已备货
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY" // 配送中
	OrderStatusDelivered      = "DELIVERED"        // 已送达
	OrderStatusCancelled      = "CANCELLED"        // 已取消
)

// OrderStatuses 订单状态全集（状态更新仅校验成员资格，不限制流转顺序）
var OrderStatuses = []string{
	OrderStatusNew,
	OrderStatusConfirmed,
	OrderStatusReady,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 订阅状态常量
const (
	SubscriptionStatusActive    = "ACTIVE"    // 生效中
	SubscriptionStatusPaused    = "PAUSED"    // 已暂停
	SubscriptionStatusCancelled = "CANCELLED" // 已取消
)

// SubscriptionStatuses 订阅状态全集
var SubscriptionStatuses = []string{
	SubscriptionStatusActive,
	SubscriptionStatusPaused,
	SubscriptionStatusCancelled,
}

// 配送频率常量
const (
	FrequencyWeekly   = "WEEKLY"   // 每周
	FrequencyBiweekly = "BIWEEKLY" // 隔周
)

// 履约方式常量
const (
	FulfillmentPickup   = "pickup"   // 门店自提
	FulfillmentDelivery = "delivery" // 上门配送
)

// 购买计划标签常量
const (
	PlanOneTime  = "one_time" // 单次购买
	PlanWeekly   = "weekly"   // 每周配送
	PlanBiweekly = "biweekly" // 隔周配送
)

// 支付与来源常量
const (
	PaymentMethodCOD = "COD" // 货到付款，无在线支付
	OrderSourceWeb   = "web" // 网页下单
)

// TimeWindows 配送时间段
var TimeWindows = []string{
	"8-10am",
	"10am-12pm",
	"12-2pm",
	"2-4pm",
	"4-6pm",
	"6-8pm",
}

// DefaultServiceZips 默认配送服务邮编白名单（精确匹配，可通过配置覆盖）
var DefaultServiceZips = []string{
	"90804",
	"90805",
	"90806",
	"90807",
	"90808",
	"90809",
	"90810",
	"90811",
	"90812",
	"90813",
	"90814",
}

// 列表分页上限
const (
	AdminOrderListLimit = 200 // 后台订单列表单页上限
	MyOrderListLimit    = 50  // 用户订单列表上限
)
