package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/services/order-service/controllers"
)

func RegisterOrderRoutes(r *gin.Engine, oc *controllers.OrderController) {
	r.GET("/health", controllers.Health)

	orders := r.Group("/orders")
	orders.GET("", oc.GetOrders)
	orders.GET("/:id", oc.GetOrderByID)
	orders.POST("", oc.CreateOrder)
}
