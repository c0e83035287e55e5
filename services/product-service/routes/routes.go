package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/services/product-service/controllers"
)

func RegisterProductRoutes(r *gin.Engine, pc *controllers.ProductController) {
	r.GET("/health", controllers.Health)

	products := r.Group("/products")
	products.GET("/:id", pc.GetProduct)
	products.POST("", pc.CreateProduct)
	products.DELETE("/:id", pc.DeleteProduct)
}
