package models

import (
	"time"
)

// Store 门店表（仅取最早创建的启用门店作为“当前门店”）
type Store struct {
	ID        uint      `gorm:"primarykey" json:"id"`                // 主键
	Name      string    `gorm:"not null" json:"name"`                // 门店名称
	Address   string    `gorm:"not null" json:"address"`             // 门店地址
	City      string    `gorm:"type:varchar(100)" json:"city"`       // 城市
	State     string    `gorm:"type:varchar(20)" json:"state"`       // 州
	Zip       string    `gorm:"type:varchar(10)" json:"zip"`         // 邮编
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`       // 联系电话
	IsActive  bool      `gorm:"default:true;index" json:"is_active"` // 是否启用
	CreatedAt time.Time `gorm:"index" json:"created_at"`             // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                          // 更新时间
}

// TableName 指定表名
func (Store) TableName() string {
	return "stores"
}
