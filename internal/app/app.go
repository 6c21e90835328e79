package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"yadtamar_backend/database"
	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/config"
	"yadtamar_backend/internal/email"
	"yadtamar_backend/internal/handlers"
	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/middleware"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/internal/routes"
	"yadtamar_backend/internal/services"
	"yadtamar_backend/internal/storage"
	"yadtamar_backend/internal/validator"
	"yadtamar_backend/internal/workers"
	"yadtamar_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Deps are the live connections the application is assembled from.
type Deps struct {
	Gorm    *gorm.DB
	Pool    *pgxpool.Pool
	SQLX    *sqlx.DB
	Redis   *redis.Client // nil when no queue is configured
	Storage storage.Storage
	Mailer  email.Dispatcher
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Fatal("Server stopped with error", "error", err)
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	gormDB, err := database.ConnectGorm(cfg)
	if err != nil {
		return err
	}
	logger.Info("Database connected")

	pool, err := database.NewPgxPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	sqlxDB, err := database.NewSQLX(ctx, cfg)
	if err != nil {
		return err
	}
	defer sqlxDB.Close()

	redisClient, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	if err := bootstrap(gormDB, cfg); err != nil {
		return err
	}

	store, err := storage.NewStorage(storage.ConfigFromApp(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	deliverer, err := newDeliverer(cfg)
	if err != nil {
		return err
	}

	deps := &Deps{Gorm: gormDB, Pool: pool, SQLX: sqlxDB, Redis: redisClient, Storage: store}

	var queue *email.RedisQueue
	var async *email.AsyncDispatcher
	switch {
	case deliverer == nil:
		deps.Mailer = email.NoopDispatcher{}
		logger.Warn("Email delivery disabled")
	case redisClient != nil:
		queue = email.NewRedisQueue(redisClient, cfg.Email.QueueKey)
		deps.Mailer = queue
		logger.Info("Email outbox on redis", "key", cfg.Email.QueueKey)
	default:
		async = email.NewAsyncDispatcher(deliverer)
		deps.Mailer = async
		logger.Info("Email delivery in-process")
	}

	router := SetupRouter(cfg, deps)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server startup error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if queue != nil {
		worker := workers.NewEmailWorker(queue, deliverer)
		g.Go(func() error { return worker.Run(gctx) })
	}

	overdue := workers.NewRequestWorker(gormDB, cfg.Workers.OverdueInterval)
	g.Go(func() error { return overdue.Run(gctx) })

	err = g.Wait()
	if async != nil {
		async.Wait()
	}
	return err
}

// bootstrap prepares the schema and the rows the application cannot run
// without.
func bootstrap(db *gorm.DB, cfg *config.Config) error {
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		logger.Info("Schema migrated")
	}
	if err := database.SeedLookups(db); err != nil {
		return err
	}

	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}
	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := database.SeedFirstAdmin(db, cfg.FirstAdminEmail, hash); err != nil {
		return fmt.Errorf("failed to seed first admin user: %w", err)
	}
	return nil
}

// newDeliverer returns nil when email is disabled outside development. In
// development a disabled mailer still renders and logs every message.
func newDeliverer(cfg *config.Config) (*email.Deliverer, error) {
	templates, err := email.NewDefaultTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	if !cfg.Email.Enabled {
		if !cfg.IsDevelopment() {
			return nil, nil
		}
		return email.NewDeliverer(&LogEmailProvider{}, templates), nil
	}

	provider := email.NewSMTPProvider(email.ConfigFromApp(cfg))
	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("invalid smtp settings: %w", err)
	}
	return email.NewDeliverer(provider, templates), nil
}

// SetupRouter assembles repositories, services and handlers on top of deps.
func SetupRouter(cfg *config.Config, deps *Deps) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL())

	serviceContainer := initializeServices(cfg, deps, tokens)
	appHandlers := initializeHandlers(serviceContainer, deps, tokens)

	ginRouter := initializeGinRouter(cfg, deps.Gorm)

	opts := routes.Options{Swagger: cfg.Swagger}
	if cfg.Storage.Type == "local" {
		opts.StaticPrefix = cfg.Storage.BaseURL
		opts.StaticDir = cfg.Storage.BasePath
	}
	routes.RegisterRoutes(ginRouter, appHandlers, opts)

	if cfg.Metrics.Enabled {
		ginRouter.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	return ginRouter
}

func initializeServices(cfg *config.Config, deps *Deps, tokens *auth.TokenManager) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	requestRepo := repositories.NewRequestRepository()
	volunteerRepo := repositories.NewVolunteerRepository()
	dashboardRepo := repositories.NewDashboardRepository(deps.Pool)
	lookupRepo := repositories.NewLookupRepository(deps.SQLX)

	mailer := deps.Mailer
	if mailer == nil {
		mailer = email.NoopDispatcher{}
	}
	notifier := email.NewNotifier(mailer)

	return &services.ServiceContainer{
		UserService:      services.NewUserService(userRepo, requestRepo, tokens, cfg.TokenTTL(), deps.Storage, cfg.Storage.MaxSize),
		ApprovalService:  services.NewApprovalService(userRepo, notifier),
		RequestService:   services.NewRequestService(requestRepo, userRepo, volunteerRepo),
		MatchingService:  services.NewMatchingService(requestRepo, volunteerRepo),
		DashboardService: services.NewDashboardService(dashboardRepo),
		LookupService:    services.NewLookupService(lookupRepo),
	}
}

func initializeHandlers(svc *services.ServiceContainer, deps *Deps, tokens *auth.TokenManager) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New(), tokens)

	checks := map[string]handlers.Pinger{
		"postgres": handlers.PingFunc(func(ctx context.Context) error {
			sqlDB, err := deps.Gorm.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}
	if deps.Pool != nil {
		checks["pgx"] = handlers.PingFunc(deps.Pool.Ping)
	}
	if deps.Redis != nil {
		checks["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return deps.Redis.Ping(ctx).Err()
		})
	}

	return &handlers.AppHandlers{
		UserHandler:      handlers.NewUserHandler(baseHandler, svc.UserService),
		ApprovalHandler:  handlers.NewApprovalHandler(baseHandler, svc.ApprovalService),
		RequestHandler:   handlers.NewRequestHandler(baseHandler, svc.RequestService),
		MatchingHandler:  handlers.NewMatchingHandler(baseHandler, svc.MatchingService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, svc.DashboardService),
		LookupHandler:    handlers.NewLookupHandler(baseHandler, svc.LookupService),
		HealthHandler:    handlers.NewHealthHandler(checks),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	if cfg.Metrics.Enabled {
		router.Use(middleware.PrometheusMiddleware())
	}
	router.Use(middleware.DBMiddleware(db))
	return router
}
