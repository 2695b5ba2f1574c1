package api

import (
	"context"
	"net/http"
	"time"

	catalogHandler "recipe-ingest/internal/api/handlers/catalog"
	"recipe-ingest/internal/api/handlers/health"
	recipeHandler "recipe-ingest/internal/api/handlers/recipe"
	"recipe-ingest/internal/api/middleware"
	"recipe-ingest/internal/core/pipeline"
	"recipe-ingest/internal/infrastructure/config"
	"recipe-ingest/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置：解析在毫秒級完成，30 秒足以涵蓋儲存 I/O
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (2MB)：純文字食譜不需要更大
	maxBodySize = 2 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, svc *pipeline.Service, pinger health.Pinger) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	// 全局中間件：設置請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	healthHandlerInstance := health.NewHandler(cfg, pinger)
	router.GET("/health", healthHandlerInstance.HealthCheck)
	router.GET("/ready", healthHandlerInstance.ReadinessCheck)
	router.GET("/live", healthHandlerInstance.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipeHandlerInstance := recipeHandler.NewHandler(svc)
		catalogHandlerInstance := catalogHandler.NewHandler(svc.Catalog())

		// 食譜攝取相關路由
		recipeGroup := api.Group("/recipe")
		{
			// 自由文字食譜攝取
			recipeGroup.POST("/ingest", recipeHandlerInstance.HandleIngest)

			// 單一食材重新解析
			recipeGroup.POST("/reparse", recipeHandlerInstance.HandleReparse)

			// 使用者修正回饋
			recipeGroup.POST("/correction", recipeHandlerInstance.HandleCorrection)
		}

		// 食材目錄路由
		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/search", catalogHandlerInstance.HandleSearch)
			catalogGroup.POST("/custom", catalogHandlerInstance.HandleAddCustom)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
