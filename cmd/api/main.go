package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-ingest/internal/api"
	"recipe-ingest/internal/api/handlers/health"
	"recipe-ingest/internal/core/catalog"
	"recipe-ingest/internal/core/learning"
	"recipe-ingest/internal/core/parse"
	"recipe-ingest/internal/core/pipeline"
	"recipe-ingest/internal/infrastructure/config"
	"recipe-ingest/internal/infrastructure/storage"
	"recipe-ingest/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.Bool("storage_enabled", cfg.Storage.Enabled),
		zap.Float64("learning_reuse_threshold", cfg.Learning.ReuseThreshold),
		zap.Int("learning_max_examples", cfg.Learning.MaxExamples),
	)

	// 初始化儲存：外部儲存關閉時退回純記憶體（訓練資料只活在進程內）
	ctx := context.Background()
	var store storage.Store
	var pinger health.Pinger
	if cfg.Storage.Enabled {
		redisStore, err := storage.NewRedisStore(&cfg.Storage)
		if err != nil {
			common.LogFatal("Failed to connect to storage", zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
		pinger = redisStore
	} else {
		store = storage.NewMemoryStore()
		common.LogInfo("外部儲存未啟用，使用記憶體儲存")
	}

	// 初始化目錄與解析管線
	var catalogStore storage.Store
	if cfg.Catalog.PersistCustom {
		catalogStore = store
	}
	cat := catalog.New(catalogStore)
	learningStore := learning.NewStore(ctx, store, cat, &cfg.Learning)
	parser := parse.NewParser(cat, learningStore)
	svc := pipeline.NewService(cat, parser, learningStore)

	// 設置路由
	router, err := api.SetupRouter(cfg, svc, pinger)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
