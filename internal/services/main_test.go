package services

import (
	"testing"

	"eventora_backend/internal/config"
	"eventora_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Service{},
		&models.Booking{},
		&models.DecoratorRequest{},
		&models.Blog{},
		&models.PaymentTransaction{},
	)
	if err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	return db
}

// setTestConfig gives the services a deterministic configuration without a
// config file on disk.
func setTestConfig(t *testing.T) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Payment.Currency = "usd"
	cfg.Payment.ClientURL = "http://localhost:5173"

	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func createTestUser(t *testing.T, db *gorm.DB, email, name string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholde",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createTestService(t *testing.T, db *gorm.DB, name, category string, cost int) *models.Service {
	t.Helper()

	service := &models.Service{
		Name:     name,
		Category: category,
		Location: "Berlin",
		Cost:     cost,
		Unit:     "per event",
	}
	if err := db.Create(service).Error; err != nil {
		t.Fatalf("create service %s: %v", name, err)
	}
	return service
}
