package repository

import (
	"errors"

	"github.com/fresh-dairy/backend/internal/constants"
	"github.com/fresh-dairy/backend/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository 订阅数据访问接口
type SubscriptionRepository interface {
	CreateHeader(subscription *models.Subscription) error
	CreateItems(subscriptionID uint, items []models.SubscriptionItem) error
	DeleteHeader(id uint) error
	GetByID(id uint) (*models.Subscription, error)
	ListAdmin(filter SubscriptionListFilter) ([]models.Subscription, int64, error)
	ListActiveByNextDeliveryDate(date string) ([]models.Subscription, error)
	UpdateStatus(id uint, status string) error
}

// GormSubscriptionRepository GORM 实现
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository 创建订阅仓库
func NewSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// CreateHeader 创建订阅头
func (r *GormSubscriptionRepository) CreateHeader(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

// CreateItems 批量创建订阅项
func (r *GormSubscriptionRepository) CreateItems(subscriptionID uint, items []models.SubscriptionItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].SubscriptionID = subscriptionID
	}
	return r.db.Create(&items).Error
}

// DeleteHeader 删除订阅头（订阅项写入失败后的补偿动作，物理删除）
func (r *GormSubscriptionRepository) DeleteHeader(id uint) error {
	return r.db.Unscoped().Delete(&models.Subscription{}, id).Error
}

// GetByID 根据 ID 获取订阅
func (r *GormSubscriptionRepository) GetByID(id uint) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := r.db.Preload("Items").First(&subscription, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

// ListAdmin 后台订阅列表
func (r *GormSubscriptionRepository) ListAdmin(filter SubscriptionListFilter) ([]models.Subscription, int64, error) {
	var subscriptions []models.Subscription

	query := r.db.Model(&models.Subscription{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.NextDeliveryDate != "" {
		query = query.Where("next_delivery_date = ?", filter.NextDeliveryDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Order("id desc").Find(&subscriptions).Error; err != nil {
		return nil, 0, err
	}

	return subscriptions, total, nil
}

// ListActiveByNextDeliveryDate 按下次配送日期获取生效订阅（配送排班单）
func (r *GormSubscriptionRepository) ListActiveByNextDeliveryDate(date string) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := r.db.Preload("Items").
		Where("status = ? AND next_delivery_date = ?", constants.SubscriptionStatusActive, date).
		Order("id asc").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// UpdateStatus 更新订阅状态
func (r *GormSubscriptionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Subscription{}).
		Where("id = ?", id).
		Update("status", status).Error
}
