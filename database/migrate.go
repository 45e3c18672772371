package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vk_randomizer_backend/internal/config"
	"vk_randomizer_backend/internal/logger"
	"vk_randomizer_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из config.yaml
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	start := time.Now()
	err := db.AutoMigrate(
		&models.Raffle{},
		&models.Community{},
		&models.Notification{},
		&models.UserNotificationSettings{},
		&models.NotificationCard{},
	)
	logger.DBLog("auto_migrate", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
