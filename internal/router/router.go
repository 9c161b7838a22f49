package router

import (
	"fmt"
	"strings"

	"github.com/fresh-dairy/backend/internal/cache"
	"github.com/fresh-dairy/backend/internal/config"
	adminhandlers "github.com/fresh-dairy/backend/internal/http/handlers/admin"
	publichandlers "github.com/fresh-dairy/backend/internal/http/handlers/public"
	"github.com/fresh-dairy/backend/internal/logger"
	"github.com/fresh-dairy/backend/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fd"
	}
	redisClient := cache.Client()
	placementRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:placement", redisPrefix),
		WindowSeconds: cfg.Security.GuestRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.GuestRateLimit.MaxAttempts,
		Message:       "too many orders, please try again later",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		apiV1.GET("/products", publicHandler.ListProducts)

		// 下单接口：登录可选，带频率限制
		placement := apiV1.Group("")
		placement.Use(OptionalUserJWTMiddleware(cfg.UserJWT.SecretKey))
		{
			placement.POST("/orders",
				RateLimitMiddleware(redisClient, placementRule, KeyByIP),
				publicHandler.CreateOrder)
			placement.POST("/subscriptions",
				RateLimitMiddleware(redisClient, placementRule, KeyByIP),
				publicHandler.CreateSubscription)
		}

		// 用户接口（需鉴权）
		apiV1.GET("/orders/my", UserJWTAuthMiddleware(cfg.UserJWT.SecretKey), publicHandler.MyOrders)

		// 管理员接口（请求头携带 X-Admin-Key）
		adminKey := AdminKeyMiddleware(c.AccessService)
		apiV1.GET("/orders", adminKey, adminHandler.AdminListOrders)
		apiV1.PATCH("/orders/:id", adminKey, adminHandler.AdminUpdateOrderStatus)
		apiV1.GET("/subscriptions", adminKey, adminHandler.AdminListSubscriptions)
		apiV1.PATCH("/subscriptions/:id", adminKey, adminHandler.AdminUpdateSubscriptionStatus)
		apiV1.GET("/deliveries", adminKey, adminHandler.AdminListDeliveries)

		// 管理员口令校验（无需鉴权，校验失败统一返回 401）
		apiV1.POST("/admin/verify", adminHandler.VerifyKey)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
