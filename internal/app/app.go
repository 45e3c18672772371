package app

import (
	"fmt"
	"time"

	"vk_randomizer_backend/database"
	"vk_randomizer_backend/internal/config"
	"vk_randomizer_backend/internal/handlers"
	"vk_randomizer_backend/internal/logger"
	"vk_randomizer_backend/internal/middleware"
	"vk_randomizer_backend/internal/repositories"
	"vk_randomizer_backend/internal/routes"
	"vk_randomizer_backend/internal/services"
	"vk_randomizer_backend/internal/services/dto"
	"vk_randomizer_backend/internal/storage"
	"vk_randomizer_backend/internal/validator"
	"vk_randomizer_backend/pkg/kvstore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if cfg.Database.DemoSeed {
		if err := database.SeedDemoData(gormDB); err != nil {
			logger.Fatal("Failed to seed demo data", "error", err)
		}
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает все зависимости и возвращает готовый *gin.Engine.
// Вынесен отдельно от Run, чтобы тесты могли поднять приложение
// поверх своей базы.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)

	// Статика отдается только при локальном хранилище,
	// в R2 фотографии доступны по публичным URL бакета
	photosDir := ""
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		photosDir = local.BasePath()
	}

	routes.RegisterRoutes(ginRouter, appHandlers, photosDir)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	raffleRepo := repositories.NewRaffleRepository(gormDB)
	communityRepo := repositories.NewCommunityRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	notificationCardRepo := repositories.NewNotificationCardRepository(gormDB)

	// Модальные окна живут в памяти процесса
	modalStore := kvstore.New[dto.CommunityModal]()

	return &services.ServiceContainer{
		RaffleService:           services.NewRaffleService(raffleRepo),
		CommunityService:        services.NewCommunityService(communityRepo),
		NotificationService:     services.NewNotificationService(notificationRepo),
		NotificationCardService: services.NewNotificationCardService(notificationCardRepo),
		CommunityModalService:   services.NewCommunityModalService(modalStore),
		CardService:             services.NewCardService(raffleRepo, communityRepo),
		UploadService:           services.NewUploadService(storageInstance, cfg.Upload),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		RaffleHandler:           handlers.NewRaffleHandler(baseHandler, container.RaffleService),
		CommunityHandler:        handlers.NewCommunityHandler(baseHandler, container.CommunityService),
		NotificationHandler:     handlers.NewNotificationHandler(baseHandler, container.NotificationService),
		NotificationCardHandler: handlers.NewNotificationCardHandler(baseHandler, container.NotificationCardService),
		CommunityModalHandler:   handlers.NewCommunityModalHandler(baseHandler, container.CommunityModalService),
		CardHandler:             handlers.NewCardHandler(baseHandler, container.CardService),
		UploadHandler:           handlers.NewUploadHandler(baseHandler, container.UploadService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.VKUserMiddleware())
	router.Use(middleware.LoggingMiddleware())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-VK-User-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.Origins) == 1 && cfg.CORS.Origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.Origins
	}
	router.Use(cors.New(corsConfig))

	return router
}
