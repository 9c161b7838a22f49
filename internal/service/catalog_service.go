package service

import (
	"context"
	"time"

	"github.com/fresh-dairy/backend/internal/cache"
	"github.com/fresh-dairy/backend/internal/logger"
	"github.com/fresh-dairy/backend/internal/models"
	"github.com/fresh-dairy/backend/internal/repository"
)

const catalogCacheKey = "catalog:active_products"

// CatalogService 商品目录服务（只读）
type CatalogService struct {
	productRepo repository.ProductRepository
	cacheTTL    time.Duration
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository, cacheTTLSeconds int) *CatalogService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CatalogService{
		productRepo: productRepo,
		cacheTTL:    ttl,
	}
}

// ListActiveProducts 获取全部上架商品（按分类与排序权重），带短时缓存
func (s *CatalogService) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if ok, err := cache.GetJSON(ctx, catalogCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	products, _, err := s.productRepo.List(repository.ProductListFilter{OnlyActive: true})
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, catalogCacheKey, products, s.cacheTTL); err != nil {
		logger.Debugw("catalog_cache_set_failed", "error", err)
	}
	return products, nil
}

// InvalidateCache 商品数据变更后清除目录缓存
func (s *CatalogService) InvalidateCache(ctx context.Context) {
	if err := cache.Del(ctx, catalogCacheKey); err != nil {
		logger.Debugw("catalog_cache_delete_failed", "error", err)
	}
}
