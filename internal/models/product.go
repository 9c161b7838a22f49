package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表（由外部管理流程维护，本服务只读）
type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                // 主键
	Category  string         `gorm:"type:varchar(50);not null;index" json:"category"`     // 商品分类（milk/yogurt/ghee 等）
	Name      string         `gorm:"not null" json:"name"`                                // 商品名称
	Size      string         `gorm:"type:varchar(50)" json:"size"`                        // 规格（如 1L、500ml）
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // 单价
	ImageURL  string         `gorm:"type:varchar(500)" json:"image_url,omitempty"`        // 商品图片
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`                 // 是否上架
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`                   // 排序权重
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                          // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
