package models

import (
	"time"
)

// SubscriptionItem 订阅项表（价格为创建时快照）
type SubscriptionItem struct {
	ID             uint      `gorm:"primarykey" json:"id"`                                    // 主键
	SubscriptionID uint      `gorm:"index;not null" json:"subscription_id"`                   // 订阅ID
	ProductID      uint      `gorm:"index;not null" json:"product_id"`                        // 商品ID
	ProductName    string    `gorm:"not null" json:"product_name"`                            // 商品名称快照
	Size           string    `gorm:"type:varchar(50)" json:"size,omitempty"`                  // 规格快照
	Quantity       int       `gorm:"not null" json:"quantity"`                                // 数量
	UnitPrice      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价快照
	LineTotal      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"` // 小计
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                                 // 创建时间
}

// TableName 指定表名
func (SubscriptionItem) TableName() string {
	return "subscription_items"
}
