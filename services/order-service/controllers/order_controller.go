package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/services/order-service/models"
	"github.com/airship-store/backend/services/order-service/repository"
	"github.com/airship-store/backend/services/order-service/services"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// CreateOrder handles POST /orders. Returns the stored order including
// the database-assigned order and detail ids.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
		return
	}

	order, err := oc.service.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "UNEXPECTED_ERROR", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrderByID handles GET /orders/:id.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": "order id must be an integer"})
		return
	}

	order, svcErr := oc.service.GetOrder(c.Request.Context(), uint(id))
	if svcErr != nil {
		if errors.Is(svcErr, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "ORDER_NOT_FOUND",
				"message": fmt.Sprintf("Order with id %d not found", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "UNEXPECTED_ERROR", "message": svcErr.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrders handles GET /orders.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.service.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "UNEXPECTED_ERROR", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
