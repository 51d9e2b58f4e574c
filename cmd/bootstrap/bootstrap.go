package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pathlab/config"
	deliveryHttp "pathlab/internal/delivery/http"
	"pathlab/internal/delivery/http/handler"
	"pathlab/internal/delivery/http/middleware"
	"pathlab/internal/infrastructure/cache"
	"pathlab/internal/infrastructure/database"
	"pathlab/internal/repository"
	"pathlab/internal/service"
	"pathlab/internal/usecase"
	"pathlab/pkg/jwt"
	"pathlab/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply pending migrations
	if err := database.Migrate(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	testRepo := repository.NewTestRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	qualificationRepo := repository.NewQualificationRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	checkupRepo := repository.NewCheckupRepository(db)
	reportRepo := repository.NewReportRepository(db)
	queryRepo := repository.NewQueryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	subscribeRepo := repository.NewSubscribeRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	catalogCache := service.NewCatalogCache(redisClient, log)
	paymentGateway := service.NewStubGateway(log, cfg.Payment.AutoApprove)
	reportRenderer := service.NewPDFReportRenderer()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, redisClient, auditService)
	testUsecase := usecase.NewTestUsecase(log, testRepo, collectionRepo, orderRepo, catalogCache, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, departmentRepo, qualificationRepo, checkupRepo, auditService)
	departmentUsecase := usecase.NewDepartmentUsecase(log, departmentRepo, doctorRepo)
	qualificationUsecase := usecase.NewQualificationUsecase(log, qualificationRepo, doctorRepo)
	collectionUsecase := usecase.NewCollectionUsecase(log, collectionRepo, testRepo)
	orderUsecase := usecase.NewOrderUsecase(log, orderRepo, testRepo, reportRepo, paymentGateway, auditService)
	checkupUsecase := usecase.NewCheckupUsecase(log, checkupRepo, doctorRepo, paymentGateway, auditService)
	reportUsecase := usecase.NewReportUsecase(log, reportRepo, orderRepo, userRepo, reportRenderer, auditService)
	queryUsecase := usecase.NewQueryUsecase(log, queryRepo, auditService)
	reviewUsecase := usecase.NewReviewUsecase(log, reviewRepo, testRepo, userRepo)
	subscribeUsecase := usecase.NewSubscribeUsecase(log, subscribeRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	testHandler := handler.NewTestHandler(testUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(departmentUsecase, qualificationUsecase, collectionUsecase, customValidator)
	orderHandler := handler.NewOrderHandler(orderUsecase, customValidator)
	checkupHandler := handler.NewCheckupHandler(checkupUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)
	feedbackHandler := handler.NewFeedbackHandler(queryUsecase, reviewUsecase, subscribeUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		testHandler,
		doctorHandler,
		catalogHandler,
		orderHandler,
		checkupHandler,
		reportHandler,
		feedbackHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
