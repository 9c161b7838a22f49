package repository

import (
	"errors"

	"github.com/fresh-dairy/backend/internal/models"

	"gorm.io/gorm"
)

// StoreRepository 门店数据访问接口
type StoreRepository interface {
	GetActive() (*models.Store, error)
	Create(store *models.Store) error
}

// GormStoreRepository GORM 实现
type GormStoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository 创建门店仓库
func NewStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// GetActive 获取当前门店（最早创建的启用门店）
func (r *GormStoreRepository) GetActive() (*models.Store, error) {
	var store models.Store
	if err := r.db.Where("is_active = ?", true).
		Order("created_at asc").
		First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

// Create 创建门店（仅供初始化脚本使用）
func (r *GormStoreRepository) Create(store *models.Store) error {
	return r.db.Create(store).Error
}
