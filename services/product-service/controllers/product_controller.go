package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/services/product-service/models"
	"github.com/airship-store/backend/services/product-service/repository"
	"github.com/airship-store/backend/services/product-service/services"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// GetProduct handles GET /products/:id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := pc.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "PRODUCT_NOT_FOUND",
				"message": fmt.Sprintf("Product with ID %s does not exist", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "UNEXPECTED_ERROR", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
		return
	}

	if err := pc.service.CreateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "UNEXPECTED_ERROR", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// DeleteProduct handles DELETE /products/:id.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := pc.service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "PRODUCT_NOT_FOUND",
				"message": fmt.Sprintf("Product with ID %s does not exist", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "UNEXPECTED_ERROR", "message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
