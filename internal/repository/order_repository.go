package repository

import (
	"errors"

	"github.com/fresh-dairy/backend/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	CreateHeader(order *models.Order) error
	CreateItems(orderID uint, items []models.OrderItem) error
	DeleteHeader(id uint) error
	GetByID(id uint) (*models.Order, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	ListByUser(customerUserID string, limit int) ([]models.Order, error)
	ListByScheduledDate(date string) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateHeader 创建订单头
func (r *GormOrderRepository) CreateHeader(order *models.Order) error {
	return r.db.Create(order).Error
}

// CreateItems 批量创建订单项
func (r *GormOrderRepository) CreateItems(orderID uint, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.Create(&items).Error
}

// DeleteHeader 删除订单头（订单项写入失败后的补偿动作，物理删除）
func (r *GormOrderRepository) DeleteHeader(id uint) error {
	return r.db.Unscoped().Delete(&models.Order{}, id).Error
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListAdmin 后台订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order

	query := r.db.Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Phone != "" {
		query = query.Where("phone = ?", filter.Phone)
	}
	if filter.ScheduledDate != "" {
		query = query.Where("scheduled_date = ?", filter.ScheduledDate)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// ListByUser 用户本人订单列表（按创建时间倒序）
func (r *GormOrderRepository) ListByUser(customerUserID string, limit int) ([]models.Order, error) {
	if customerUserID == "" {
		return nil, nil
	}
	var orders []models.Order
	query := r.db.Preload("Items").
		Where("customer_user_id = ?", customerUserID).
		Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByScheduledDate 按预约日期获取订单（配送排班单）
func (r *GormOrderRepository) ListByScheduledDate(date string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").
		Where("scheduled_date = ?", date).
		Order("id asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
