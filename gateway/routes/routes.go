package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/gateway/controllers"
)

func Register(r *gin.Engine, pc *controllers.ProductController, oc *controllers.OrderController) {
	r.GET("/health", controllers.Health)

	products := r.Group("/products")
	products.GET("/:id", pc.GetProduct)
	products.POST("", pc.CreateProduct)
	products.DELETE("/:id", pc.DeleteProduct)

	orders := r.Group("/orders")
	orders.GET("", oc.GetOrders)
	orders.GET("/:id", oc.GetOrderByID)
	orders.POST("", oc.CreateOrder)
}
