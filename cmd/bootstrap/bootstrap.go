package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urbancare-clinic-api/config"
	deliveryHttp "urbancare-clinic-api/internal/delivery/http"
	"urbancare-clinic-api/internal/delivery/http/handler"
	"urbancare-clinic-api/internal/delivery/http/middleware"
	"urbancare-clinic-api/internal/infrastructure/cache"
	"urbancare-clinic-api/internal/infrastructure/database"
	"urbancare-clinic-api/internal/infrastructure/storage"
	"urbancare-clinic-api/internal/repository"
	"urbancare-clinic-api/internal/service"
	"urbancare-clinic-api/internal/usecase"
	"urbancare-clinic-api/pkg/validator"

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
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize object storage
	s3Client, err := storage.NewS3Client(context.Background(), cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, s3Client)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Client service.S3API) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository()
	blockedDateRepo := repository.NewBlockedDateRepository()
	blogRepo := repository.NewBlogPostRepository()
	videoRepo := repository.NewVideoRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	availabilityService := service.NewAvailabilityService(db, log, appointmentRepo, blockedDateRepo)
	smsSender := service.NewLogSMSSender(log)
	otpService := service.NewOTPService(redisClient, log, smsSender, cfg.OTP)
	imageStore := service.NewImageStore(s3Client, log, cfg.Storage)
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(db, log, appointmentRepo, availabilityService, otpService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, availabilityService, auditService)
	blockedDateUsecase := usecase.NewBlockedDateUsecase(db, log, blockedDateRepo, auditService)
	blogUsecase := usecase.NewBlogUsecase(db, log, blogRepo, imageStore, auditService)
	videoUsecase := usecase.NewVideoUsecase(db, log, videoRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	blockedDateHandler := handler.NewBlockedDateHandler(blockedDateUsecase, customValidator)
	blogHandler := handler.NewBlogHandler(blogUsecase, customValidator)
	videoHandler := handler.NewVideoHandler(videoUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(bookingHandler, appointmentHandler, blockedDateHandler, blogHandler, videoHandler, auditLogHandler, corsMiddleware)
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
