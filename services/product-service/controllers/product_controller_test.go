package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/airship-store/backend/services/product-service/controllers"
	"github.com/airship-store/backend/services/product-service/models"
	"github.com/airship-store/backend/services/product-service/repository"
	"github.com/airship-store/backend/services/product-service/routes"
	"github.com/airship-store/backend/services/product-service/services"
)

type fakeProductRepo struct {
	products map[string]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*models.Product{}}
}

func (f *fakeProductRepo) Get(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) DecrementStock(_ context.Context, id string, amount int) error {
	p, ok := f.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.InStock -= amount
	return nil
}

func newRouter(repo *fakeProductRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := services.NewProductService(repo, zap.NewNop())
	r := gin.New()
	routes.RegisterProductRoutes(r, controllers.NewProductController(service))
	return r
}

func TestGetProduct(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["the_odyssey"] = &models.Product{
		ID: "the_odyssey", Title: "The Odyssey", PassengerCapacity: 101, MaximumSpeed: 5, InStock: 10,
	}
	r := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/products/the_odyssey", nil)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var product models.Product
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &product))
	assert.Equal(t, "The Odyssey", product.Title)
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newRouter(newFakeProductRepo())

	req := httptest.NewRequest(http.MethodGet, "/products/foo", nil)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "PRODUCT_NOT_FOUND", payload["error"])
	assert.Equal(t, "Product with ID foo does not exist", payload["message"])
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	r := newRouter(repo)

	body := `{"id":"the_odyssey","title":"The Odyssey","passenger_capacity":101,"maximum_speed":5,"in_stock":10}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, repo.products, "the_odyssey")
}

func TestCreateProduct_MissingTitle(t *testing.T) {
	r := newRouter(newFakeProductRepo())

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"id":"the_odyssey"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["the_odyssey"] = &models.Product{ID: "the_odyssey", Title: "The Odyssey"}
	r := newRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/products/the_odyssey", nil)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.NotContains(t, repo.products, "the_odyssey")
}

func TestDeleteProduct_NotFound(t *testing.T) {
	r := newRouter(newFakeProductRepo())

	req := httptest.NewRequest(http.MethodDelete, "/products/foo", nil)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
