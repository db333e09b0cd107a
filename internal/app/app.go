package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/controller"
	"study_tracker_backend/internal/middleware"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/seed"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/database"
	"study_tracker_backend/pkg/logger"
	"study_tracker_backend/pkg/monitoring"
	"study_tracker_backend/pkg/security"
	"study_tracker_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	aspNetCore     *repository.Repository[model.AspNetCoreTopic, *model.AspNetCoreTopic]
	designPatterns *repository.Repository[model.DesignPatternTopic, *model.DesignPatternTopic]
	systemDesign   *repository.Repository[model.SystemDesignTopic, *model.SystemDesignTopic]
	csharp         *repository.Repository[model.CSharpTopic, *model.CSharpTopic]
	efCore         *repository.Repository[model.EFCoreTopic, *model.EFCoreTopic]
	studySessions  *repository.Repository[model.StudySession, *model.StudySession]
}

type services struct {
	aspNetCore     *service.ResourceService[model.AspNetCoreTopic, *model.AspNetCoreTopic]
	designPatterns *service.ResourceService[model.DesignPatternTopic, *model.DesignPatternTopic]
	systemDesign   *service.SystemDesignService
	csharp         *service.ResourceService[model.CSharpTopic, *model.CSharpTopic]
	efCore         *service.ResourceService[model.EFCoreTopic, *model.EFCoreTopic]
	studySessions  *service.ResourceService[model.StudySession, *model.StudySession]
}

// seeder 启动时批量导入示例数据所需的最小接口
type seeder interface {
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context) (int, error)
}

type controllers struct {
	aspNetCore     *controller.ResourceController[model.AspNetCoreTopic, *model.AspNetCoreTopic]
	designPatterns *controller.ResourceController[model.DesignPatternTopic, *model.DesignPatternTopic]
	systemDesign   *controller.SystemDesignController
	csharp         *controller.ResourceController[model.CSharpTopic, *model.CSharpTopic]
	efCore         *controller.ResourceController[model.EFCoreTopic, *model.EFCoreTopic]
	studySessions  *controller.ResourceController[model.StudySession, *model.StudySession]
	health         *controller.HealthController
}

// 资源路由前缀
const (
	pathAspNetCore     = "/api/aspnetcore"
	pathDesignPatterns = "/api/designpatterns"
	pathSystemDesign   = "/api/systemdesign"
	pathCSharp         = "/api/csharp"
	pathEFCore         = "/api/efcore"
	pathStudySessions  = "/api/studysessions"
)

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		aspNetCore:     repository.NewRepository[model.AspNetCoreTopic](db, repository.Columns{}),
		designPatterns: repository.NewRepository[model.DesignPatternTopic](db, repository.Columns{}),
		systemDesign:   repository.NewRepository[model.SystemDesignTopic](db, repository.Columns{}),
		csharp:         repository.NewRepository[model.CSharpTopic](db, repository.Columns{}),
		efCore:         repository.NewRepository[model.EFCoreTopic](db, repository.Columns{}),
		studySessions:  repository.NewRepository[model.StudySession](db, service.StudySessionPolicy().Columns),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		aspNetCore:     service.NewResourceService(repos.aspNetCore, service.TopicPolicy[model.AspNetCoreTopic]("aspnetcore", seed.AspNetCoreTopics)),
		designPatterns: service.NewResourceService(repos.designPatterns, service.TopicPolicy[model.DesignPatternTopic]("designpatterns", seed.DesignPatternTopics)),
		systemDesign:   service.NewSystemDesignService(repos.systemDesign, service.SystemDesignPolicy(seed.SystemDesignTopics)),
		csharp:         service.NewResourceService(repos.csharp, service.TopicPolicy[model.CSharpTopic]("csharp", seed.CSharpTopics)),
		efCore:         service.NewResourceService(repos.efCore, service.TopicPolicy[model.EFCoreTopic]("efcore", seed.EFCoreTopics)),
		studySessions:  service.NewResourceService(repos.studySessions, service.StudySessionPolicy()),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		aspNetCore:     controller.NewResourceController(s.aspNetCore, pathAspNetCore),
		designPatterns: controller.NewResourceController(s.designPatterns, pathDesignPatterns),
		systemDesign:   controller.NewSystemDesignController(s.systemDesign, pathSystemDesign),
		csharp:         controller.NewResourceController(s.csharp, pathCSharp),
		efCore:         controller.NewResourceController(s.efCore, pathEFCore),
		studySessions:  controller.NewResourceController(s.studySessions, pathStudySessions),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// seedAll 为空表导入示例数据，已有数据的表保持不变
func (a *App) seedAll(ctx context.Context) error {
	seeders := []struct {
		name string
		s    seeder
	}{
		{"aspnetcore", a.services.aspNetCore},
		{"designpatterns", a.services.designPatterns},
		{"systemdesign", a.services.systemDesign},
		{"csharp", a.services.csharp},
		{"efcore", a.services.efCore},
	}
	for _, sd := range seeders {
		count, err := sd.s.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Log.Info("Seed skipped, table not empty", zap.String("resource", sd.name), zap.Int64("rows", count))
			continue
		}

		n, err := sd.s.Seed(ctx)
		if errors.Is(err, util.ErrTableNotEmpty) {
			continue
		}
		if err != nil {
			return err
		}
		logger.Log.Info("Seeded resource", zap.String("resource", sd.name), zap.Int("inserted", n))
	}
	return nil
}

// New 根据已建立的数据库连接组装路由，测试中直接使用
func New(cfg *config.Config, db *gorm.DB) *App {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos)
	controllers := app.initControllers(app.services, db)

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(logger.SetLevel)

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// 监控初始化
	monitoring.Init()

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp, err = tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app := New(cfg, db)
	app.tracer = tp

	if cfg.SeedOnStart && !cfg.MigrateOnly {
		if err := app.seedAll(context.Background()); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
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

	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exiting")
}
