package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription 订阅表（周期配送，无自动滚动引擎）
type Subscription struct {
	ID               uint           `gorm:"primarykey" json:"id"`                               // 主键
	SubscriptionNo   string         `gorm:"uniqueIndex;not null" json:"subscription_no"`        // 订阅编号
	StoreID          uint           `gorm:"index;not null" json:"store_id"`                     // 门店ID
	CustomerName     string         `gorm:"not null" json:"customer_name"`                      // 客户姓名
	Phone            string         `gorm:"type:varchar(30);not null;index" json:"phone"`       // 联系电话
	CustomerEmail    string         `gorm:"index" json:"customer_email,omitempty"`              // 客户邮箱（可选）
	CustomerUserID   string         `gorm:"type:varchar(64);index" json:"-"`                    // 用户身份（来自 Bearer 令牌，可为空）
	FulfillmentType  string         `gorm:"type:varchar(20);not null" json:"fulfillment_type"`  // 履约方式（pickup/delivery）
	Address          string         `json:"address,omitempty"`                                  // 配送地址（仅 delivery）
	City             string         `gorm:"type:varchar(100)" json:"city,omitempty"`            // 城市
	State            string         `gorm:"type:varchar(20)" json:"state,omitempty"`            // 州
	Zip              string         `gorm:"type:varchar(10)" json:"zip,omitempty"`              // 邮编
	Frequency        string         `gorm:"type:varchar(20);not null" json:"frequency"`         // 配送频率（WEEKLY/BIWEEKLY）
	StartDate        string         `gorm:"type:varchar(10);not null" json:"start_date"`        // 起始日期（YYYY-MM-DD）
	NextDeliveryDate string         `gorm:"type:varchar(10);not null;index" json:"next_delivery_date"` // 下次配送日期（创建时等于起始日期）
	TimeWindow       string         `gorm:"type:varchar(20)" json:"time_window,omitempty"`      // 时间段（可选）
	PaymentMethod    string         `gorm:"type:varchar(20);not null" json:"payment_method"`    // 支付方式（固定 COD）
	Status           string         `gorm:"type:varchar(20);index;not null" json:"status"`      // 订阅状态
	Total            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"` // 每期总额（服务端重算）
	Source           string         `gorm:"type:varchar(20)" json:"source,omitempty"`           // 来源标签
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt        time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	Items []SubscriptionItem `gorm:"foreignKey:SubscriptionID" json:"items,omitempty"` // 订阅项
}

// TableName 指定表名
func (Subscription) TableName() string {
	return "subscriptions"
}
