package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/gateway/clients"
	"github.com/airship-store/backend/gateway/config"
	"github.com/airship-store/backend/gateway/controllers"
	"github.com/airship-store/backend/gateway/routes"
	"github.com/airship-store/backend/gateway/services"
	"github.com/airship-store/backend/gateway/validation"
	"github.com/airship-store/backend/pkg/logger"
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

	productsClient := clients.NewHTTPProductsClient(cfg.ProductServiceURL)
	ordersClient := clients.NewHTTPOrdersClient(cfg.OrderServiceURL)
	gateway := services.NewGatewayService(productsClient, ordersClient, zapLogger)
	validator := validation.New()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.RequestLogger(zapLogger), gin.Recovery())

	routes.Register(r,
		controllers.NewProductController(gateway, validator),
		controllers.NewOrderController(gateway, validator),
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
