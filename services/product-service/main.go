package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/airship-store/backend/pkg/logger"
	"github.com/airship-store/backend/services/product-service/config"
	"github.com/airship-store/backend/services/product-service/controllers"
	"github.com/airship-store/backend/services/product-service/kafka"
	"github.com/airship-store/backend/services/product-service/repository"
	"github.com/airship-store/backend/services/product-service/routes"
	"github.com/airship-store/backend/services/product-service/services"
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

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid Redis URL: %v", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}

	repo := repository.NewRedisProductRepository(client)
	service := services.NewProductService(repo, zapLogger)

	if cfg.KafkaBrokers != "" {
		consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.OrderEventsTopic, service, zapLogger)
		defer consumer.Close()
		go consumer.Run(context.Background())
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.RequestLogger(zapLogger), gin.Recovery())
	routes.RegisterProductRoutes(r, controllers.NewProductController(service))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
