package app

import (
	"context"
	"errors"
	"fmt"

	"eventora_backend/internal/auth"
	"eventora_backend/internal/config"
	"eventora_backend/internal/email"
	"eventora_backend/internal/handlers"
	"eventora_backend/internal/logger"
	"eventora_backend/internal/middleware"
	"eventora_backend/internal/models"
	"eventora_backend/internal/payment"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/routes"
	"eventora_backend/internal/services"
	"eventora_backend/internal/validator"
	"eventora_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, gormDB)

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the engine with production dependencies.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	gateway := payment.NewStripeGateway(cfg.Payment.StripeSecretKey)
	return SetupRouterWith(cfg, gormDB, gateway, buildEmailProvider(cfg))
}

// SetupRouterWith accepts the external dependencies explicitly so tests can
// substitute fakes for the payment gateway and the mail provider.
func SetupRouterWith(cfg *config.Config, gormDB *gorm.DB, gateway payment.Gateway, emailProvider email.Provider) *gin.Engine {
	serviceContainer := services.NewServiceContainer(gormDB, gateway, emailProvider)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email delivery disabled; notifications will be dropped")
		return email.NoopProvider{}
	}

	renderer, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, renderer)
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:             handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:             handlers.NewUserHandler(baseHandler, container.UserService),
		ServiceHandler:          handlers.NewServiceHandler(baseHandler, container.CatalogService),
		BookingHandler:          handlers.NewBookingHandler(baseHandler, container.BookingService, container.UserService),
		DecoratorRequestHandler: handlers.NewDecoratorRequestHandler(baseHandler, container.DecoratorRequestService),
		BlogHandler:             handlers.NewBlogHandler(baseHandler, container.BlogService),
		PaymentHandler:          handlers.NewPaymentHandler(baseHandler, container.PaymentService),
		StatsHandler:            handlers.NewStatsHandler(baseHandler, container.StatsService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func startWorkers(ctx context.Context, db *gorm.DB) {
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	workers.NewTokenCleanupWorker(tokenRepo, 0).Start(ctx)
}

// AutoMigrate keeps the schema in step with the models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Service{},
		&models.Booking{},
		&models.DecoratorRequest{},
		&models.Blog{},
		&models.PaymentTransaction{},
	)
}

// seedFirstAdmin guarantees an admin account exists on first boot.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)

		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:        adminEmail,
			Name:         "Administrator",
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
		}

		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		logger.Info("First admin created", "email", adminEmail)
		return nil
	})
}
