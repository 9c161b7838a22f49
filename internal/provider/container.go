package provider

import (
	"github.com/fresh-dairy/backend/internal/cache"
	"github.com/fresh-dairy/backend/internal/config"
	"github.com/fresh-dairy/backend/internal/logger"
	"github.com/fresh-dairy/backend/internal/models"
	"github.com/fresh-dairy/backend/internal/queue"
	"github.com/fresh-dairy/backend/internal/repository"
	"github.com/fresh-dairy/backend/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	StoreRepo        repository.StoreRepository
	ProductRepo      repository.ProductRepository
	OrderRepo        repository.OrderRepository
	SubscriptionRepo repository.SubscriptionRepository

	// Services
	AccessService       *service.AccessService
	EmailService        *service.EmailService
	CatalogService      *service.CatalogService
	OrderService        *service.OrderService
	SubscriptionService *service.SubscriptionService
	DeliveryService     *service.DeliveryService
	ZipChecker          *service.ZipChecker
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.StoreRepo = repository.NewStoreRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SubscriptionRepo = repository.NewSubscriptionRepository(db)
}

func (c *Container) initServices() {
	c.ZipChecker = service.NewZipChecker(c.Config.Store.ServiceZips)
	c.AccessService = service.NewAccessService(c.Config.Admin.Key)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.Config.Catalog.CacheTTLSeconds)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.StoreRepo, c.ZipChecker, c.QueueClient, c.EmailService, c.Config.Store)
	c.SubscriptionService = service.NewSubscriptionService(c.SubscriptionRepo, c.ProductRepo, c.StoreRepo, c.ZipChecker, c.QueueClient, c.EmailService, c.Config.Store)
	c.DeliveryService = service.NewDeliveryService(c.OrderRepo, c.SubscriptionRepo)
}
