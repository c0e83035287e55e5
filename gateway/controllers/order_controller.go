package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/gateway/apierrors"
	"github.com/airship-store/backend/gateway/services"
	"github.com/airship-store/backend/gateway/validation"
)

type OrderController struct {
	gateway   *services.GatewayService
	validator *validation.Validator
}

func NewOrderController(gateway *services.GatewayService, validator *validation.Validator) *OrderController {
	return &OrderController{
		gateway:   gateway,
		validator: validator,
	}
}

// GetOrders handles GET /orders.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.gateway.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID handles GET /orders/:id.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, apierrors.BadRequest("order id must be an integer"))
		return
	}

	order, err := oc.gateway.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder handles POST /orders. The response body carries only the
// assigned order id, never the submitted details.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, apierrors.BadRequest("failed to read request body"))
		return
	}

	details, err := oc.validator.ParseCreateOrder(body)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := oc.gateway.CreateOrder(c.Request.Context(), details)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
