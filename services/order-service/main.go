package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/pkg/logger"
	"github.com/airship-store/backend/services/order-service/config"
	"github.com/airship-store/backend/services/order-service/controllers"
	"github.com/airship-store/backend/services/order-service/database"
	"github.com/airship-store/backend/services/order-service/kafka"
	"github.com/airship-store/backend/services/order-service/models"
	"github.com/airship-store/backend/services/order-service/repository"
	"github.com/airship-store/backend/services/order-service/routes"
	"github.com/airship-store/backend/services/order-service/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.Connect(
		cfg.PostgresHost, cfg.PostgresPort,
		cfg.PostgresUser, cfg.PostgresPassword,
		cfg.PostgresDB, cfg.PostgresSSLMode,
	)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderDetail{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	var publisher services.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.OrderEventsTopic, zapLogger)
		defer producer.Close()
		publisher = producer
	}

	repo := repository.NewGormOrderRepository(db)
	service := services.NewOrderService(repo, publisher, zapLogger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.RequestLogger(zapLogger), gin.Recovery())
	routes.RegisterOrderRoutes(r, controllers.NewOrderController(service))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
