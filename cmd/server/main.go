package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"shortmap-platform/internal/config"
	"shortmap-platform/internal/handler"
	"shortmap-platform/internal/logsink"
	"shortmap-platform/internal/manager"
	"shortmap-platform/internal/middleware"
	"shortmap-platform/internal/store"
	"shortmap-platform/pkg/database"
	"shortmap-platform/pkg/logger"
	"shortmap-platform/pkg/redis"
	"time"

	_ "shortmap-platform/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title shortmap-platform API
// @version 1.0
// @description 短链映射服务：创建、解析、列表、删除，惰性过期清理
// @BasePath /

func main() {
	logger.InitLogger()
	defer func() {
		if err := logger.Logger.Sync(); err != nil {
			fmt.Println("日志同步失败:", err)
		}
	}()
	sugaredLogger := zap.S()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		sugaredLogger.Fatalf("配置加载失败: %v", err)
	}

	kv, cleanup, err := buildKV(cfg, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatalf("存储初始化失败: %v", err)
	}
	defer cleanup()
	sugaredLogger.Infof("✅ 存储后端就绪: %s", cfg.Storage.Backend)

	mappingStore := store.New(kv, cfg.Storage.Key)

	sink := logsink.NewClient(cfg.Sink.Endpoint, cfg.Sink.Stack, sugaredLogger)
	if sink.Enabled() {
		sugaredLogger.Info("✅ 远端日志上报已启用")
	} else {
		sugaredLogger.Info("远端日志上报未配置，已禁用")
	}

	mappingManager := manager.NewManager(mappingStore, sink, sugaredLogger, cfg.Shortener.BaseURL)
	sugaredLogger.Info("✅ 映射管理器初始化成功")

	if cfg.App.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZapRecovery(logger.Logger, true))
	router.Use(middleware.GinZapLogger(logger.Logger))
	router.Use(middleware.RateLimit(&cfg.RateLimit))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	defaultValidity := time.Duration(cfg.Shortener.DefaultValidityMinutes) * time.Minute
	mappingHandler := handler.NewMappingHandler(mappingManager, defaultValidity)

	registerRoutes(router, mappingHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	sugaredLogger.Infof("🚀 服务启动成功, 访问 http://localhost:%d", cfg.Server.Port)
	sugaredLogger.Infof("📚 Swagger 文档地址: http://localhost:%d/swagger/index.html", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugaredLogger.Fatalf("服务启动失败: %v", err)
	}
}

// buildKV 按配置选择存储后端，默认使用本地 SQLite 文件
func buildKV(cfg *config.Config, sugaredLogger *zap.SugaredLogger) (store.KV, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case "memory":
		return store.NewMemoryKV(), noop, nil

	case "redis":
		client, err := redis.NewRedisClient(&redis.Options{
			Host:     cfg.Storage.Redis.Host,
			Port:     cfg.Storage.Redis.Port,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				sugaredLogger.Errorf("关闭 Redis 连接失败: %v", err)
			}
		}
		return store.NewRedisKV(client), cleanup, nil

	case "mysql":
		db, err := database.InitMySQL(
			cfg.Storage.MySQL.Host, cfg.Storage.MySQL.Port,
			cfg.Storage.MySQL.User, cfg.Storage.MySQL.Password, cfg.Storage.MySQL.Name,
		)
		if err != nil {
			return nil, noop, err
		}
		return store.NewGormKV(db), noop, nil

	default:
		path := cfg.Storage.SQLite.Path
		if path == "" {
			path = "./data/shortmap.db"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, noop, err
		}
		db, err := database.InitSQLite(path)
		if err != nil {
			return nil, noop, err
		}
		return store.NewGormKV(db), noop, nil
	}
}

func registerRoutes(router *gin.Engine, mappingHandler *handler.MappingHandler) {
	router.GET("/health", mappingHandler.HealthCheck)
	router.GET("/:code", mappingHandler.RedirectToOriginal)

	api := router.Group("/api")
	{
		api.POST("/shorten", mappingHandler.CreateMapping)
		api.GET("/links", mappingHandler.GetAllMappings)
		api.DELETE("/links/:code", mappingHandler.DeleteMapping)
		api.GET("/stats", mappingHandler.GetStats)
	}
}
