package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NLarchive/ai-learning-roadmap/internal/config"
	"github.com/NLarchive/ai-learning-roadmap/internal/controller"
	"github.com/NLarchive/ai-learning-roadmap/internal/middleware"
	"github.com/NLarchive/ai-learning-roadmap/internal/repository"
	"github.com/NLarchive/ai-learning-roadmap/internal/service"
	"github.com/NLarchive/ai-learning-roadmap/internal/util"
	"github.com/NLarchive/ai-learning-roadmap/pkg/database"
	"github.com/NLarchive/ai-learning-roadmap/pkg/logger"
	"github.com/NLarchive/ai-learning-roadmap/pkg/monitoring"
	"github.com/NLarchive/ai-learning-roadmap/pkg/security"
	"github.com/NLarchive/ai-learning-roadmap/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	origins  *security.OriginPolicy
	tracer   *sdktrace.TracerProvider
}

type repositories struct {
	source     repository.CatalogSource
	completion *repository.CompletionRepository
}

type services struct {
	catalog    *service.CatalogService
	hydration  *service.HydrationService
	completion *service.CompletionService
}

type controllers struct {
	catalog    *controller.CatalogController
	completion *controller.CompletionController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) (*repositories, error) {
	source, err := repository.NewCatalogSource(a.Config)
	if err != nil {
		return nil, err
	}
	return &repositories{
		source:     source,
		completion: repository.NewCompletionRepository(db),
	}, nil
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}
	s.catalog = service.NewCatalogService(repos.source, cfg, rdb)
	s.hydration = service.NewHydrationService(s.catalog)
	s.completion = service.NewCompletionService(repos.completion, s.hydration)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		catalog:    controller.NewCatalogController(s.hydration),
		completion: controller.NewCompletionController(s.completion),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.origins = security.NewOriginPolicy(cfg.CORS.AllowedOrigins)

	router.Use(middleware.RequestID())
	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// OnConfigReload 配置热更新回调：按新配置重建目录源并换入取数层，
// 刷新 CORS 白名单，再丢掉全部缓存让下次请求走新源。
// 新源构建失败时保留旧源，只告警。
func (a *App) OnConfigReload(cfg *config.Config) {
	source, err := repository.NewCatalogSource(cfg)
	if err != nil {
		logger.Log.Error("config reloaded but catalog source rebuild failed, keeping old source", zap.Error(err))
	} else {
		a.services.catalog.SetSource(source)
		a.Config.Catalog = cfg.Catalog
	}

	a.origins.Update(cfg.CORS.AllowedOrigins)
	a.Config.CORS = cfg.CORS

	a.services.hydration.Invalidate()
	a.services.catalog.ClearCache(context.Background())
	logger.Log.Info("config reloaded, catalog cache invalidated")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Redis 可选：不配 host 就只用进程内缓存
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
			log.Fatalf("Failed to initialize redis: %v", err)
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos, err := app.initRepositories(db)
	if err != nil {
		logger.Log.Fatal("Failed to initialize catalog source", zap.Error(err))
		log.Fatalf("Failed to initialize catalog source: %v", err)
	}
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("roadmap-catalog", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers)

	// 目录源是本地目录时顺带静态托管，前端和数据同机部署
	if cfg.Catalog.Source == util.SourceLocal {
		router.Static("/catalog", cfg.Catalog.LocalPath)
	}

	if cfg.WarmCache {
		app.warmCatalog()
	}

	return app
}

// warmCatalog 启动时预热：后台拉一遍数据包，失败只告警不拦启动
func (a *App) warmCatalog() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := a.services.hydration.Bundle(ctx); err != nil {
			logger.Log.Warn("catalog warm-up failed", zap.Error(err))
			return
		}
		logger.Log.Info("catalog warm-up complete")
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
