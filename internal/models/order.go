package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                               // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`               // 订单编号
	StoreID         uint           `gorm:"index;not null" json:"store_id"`                     // 门店ID
	CustomerName    string         `gorm:"not null" json:"customer_name"`                      // 客户姓名
	Phone           string         `gorm:"type:varchar(30);not null;index" json:"phone"`       // 联系电话
	CustomerEmail   string         `gorm:"index" json:"customer_email,omitempty"`              // 客户邮箱（可选）
	CustomerUserID  string         `gorm:"type:varchar(64);index" json:"-"`                    // 用户身份（来自 Bearer 令牌，可为空）
	FulfillmentType string         `gorm:"type:varchar(20);not null" json:"fulfillment_type"`  // 履约方式（pickup/delivery）
	Address         string         `json:"address,omitempty"`                                  // 配送地址（仅 delivery）
	City            string         `gorm:"type:varchar(100)" json:"city,omitempty"`            // 城市
	State           string         `gorm:"type:varchar(20)" json:"state,omitempty"`            // 州
	Zip             string         `gorm:"type:varchar(10)" json:"zip,omitempty"`              // 邮编
	ScheduledDate   string         `gorm:"type:varchar(10);not null;index" json:"scheduled_date"` // 预约日期（YYYY-MM-DD）
	TimeWindow      string         `gorm:"type:varchar(20)" json:"time_window,omitempty"`      // 时间段（可选）
	Plan            string         `gorm:"type:varchar(20)" json:"plan,omitempty"`             // 购买计划标签（one_time/weekly/biweekly）
	PaymentMethod   string         `gorm:"type:varchar(20);not null" json:"payment_method"`    // 支付方式（固定 COD）
	Status          string         `gorm:"type:varchar(20);index;not null" json:"status"`      // 订单状态
	Total           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"` // 订单总额（服务端重算）
	Source          string         `gorm:"type:varchar(20)" json:"source,omitempty"`           // 来源标签
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
