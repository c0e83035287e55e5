package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/airship-store/backend/gateway/apierrors"
	"github.com/airship-store/backend/gateway/services"
	"github.com/airship-store/backend/gateway/validation"
)

type ProductController struct {
	gateway   *services.GatewayService
	validator *validation.Validator
}

func NewProductController(gateway *services.GatewayService, validator *validation.Validator) *ProductController {
	return &ProductController{
		gateway:   gateway,
		validator: validator,
	}
}

// GetProduct handles GET /products/:id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.gateway.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, apierrors.BadRequest("failed to read request body"))
		return
	}

	product, err := pc.validator.ParseCreateProduct(body)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := pc.gateway.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteProduct handles DELETE /products/:id.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.gateway.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	status, envelope := apierrors.Translate(err)
	c.JSON(status, envelope)
}
