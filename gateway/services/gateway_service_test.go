package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/airship-store/backend/gateway/apierrors"
	"github.com/airship-store/backend/gateway/clients"
	"github.com/airship-store/backend/gateway/models"
	"github.com/airship-store/backend/gateway/services"
)

// ---- fake products client ----

type fakeProductsClient struct {
	products map[string]*models.Product
	getCalls []string
	getErr   error
	deleted  []string
}

func newFakeProductsClient(products ...*models.Product) *fakeProductsClient {
	f := &fakeProductsClient{products: map[string]*models.Product{}}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductsClient) Get(_ context.Context, id string) (*models.Product, error) {
	f.getCalls = append(f.getCalls, id)
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, &clients.NotFoundError{Message: fmt.Sprintf("Product with ID %s does not exist", id)}
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductsClient) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProductsClient) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return &clients.NotFoundError{Message: fmt.Sprintf("Product with ID %s does not exist", id)}
	}
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// ---- fake orders client ----

type fakeOrdersClient struct {
	orders         map[int]*models.Order
	listResult     []models.Order
	getErr         error
	createdID      int
	createdDetails []models.NewOrderDetail
	listCalls      int
}

func (f *fakeOrdersClient) GetOrder(_ context.Context, id int) (*models.Order, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, &clients.NotFoundError{Message: fmt.Sprintf("Order with id %d not found", id)}
	}
	copied := *o
	copied.OrderDetails = append([]models.OrderDetail(nil), o.OrderDetails...)
	return &copied, nil
}

func (f *fakeOrdersClient) ListOrders(_ context.Context) ([]models.Order, error) {
	f.listCalls++
	return f.listResult, nil
}

func (f *fakeOrdersClient) CreateOrder(_ context.Context, details []models.NewOrderDetail) (*models.Order, error) {
	f.createdDetails = details
	return &models.Order{ID: f.createdID}, nil
}

// ---- helpers ----

func theOdyssey() *models.Product {
	return &models.Product{
		ID:                "the_odyssey",
		Title:             "The Odyssey",
		PassengerCapacity: 101,
		MaximumSpeed:      5,
		InStock:           10,
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func newService(products clients.ProductsClient, orders clients.OrdersClient) *services.GatewayService {
	return services.NewGatewayService(products, orders, zap.NewNop())
}

// ---- tests ----

func TestGetProduct_Found(t *testing.T) {
	products := newFakeProductsClient(theOdyssey())
	svc := newService(products, &fakeOrdersClient{})

	product, err := svc.GetProduct(context.Background(), "the_odyssey")
	assert.NoError(t, err)
	assert.Equal(t, "The Odyssey", product.Title)
}

func TestGetProduct_NotFoundIsDirectLookup(t *testing.T) {
	products := newFakeProductsClient()
	svc := newService(products, &fakeOrdersClient{})

	_, err := svc.GetProduct(context.Background(), "foo")
	var apiErr *apierrors.Error
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, apierrors.CodeProductNotFound, apiErr.Code)
		assert.Equal(t, "Product with ID foo does not exist", apiErr.Message)
	}
}

func TestDeleteProduct_NotFoundIsDirectLookup(t *testing.T) {
	svc := newService(newFakeProductsClient(), &fakeOrdersClient{})

	err := svc.DeleteProduct(context.Background(), "foo")
	var apiErr *apierrors.Error
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, apierrors.CodeProductNotFound, apiErr.Code)
	}
}

func TestGetOrder_EnrichesEveryDetailInOrder(t *testing.T) {
	products := newFakeProductsClient(theOdyssey())
	orders := &fakeOrdersClient{orders: map[int]*models.Order{
		8197: {
			ID: 8197,
			OrderDetails: []models.OrderDetail{
				{ID: 8197, ProductID: "the_odyssey", Quantity: 1, Price: mustDecimal(t, "100000.99")},
				{ID: 8198, ProductID: "the_odyssey", Quantity: 2, Price: mustDecimal(t, "200.00")},
			},
		},
	}}
	svc := newService(products, orders)

	order, err := svc.GetOrder(context.Background(), 8197)
	assert.NoError(t, err)
	assert.Equal(t, []string{"the_odyssey", "the_odyssey"}, products.getCalls)
	for _, detail := range order.OrderDetails {
		assert.NotNil(t, detail.Product)
		assert.Equal(t, "The Odyssey", detail.Product.Title)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	orders := &fakeOrdersClient{getErr: &clients.NotFoundError{Message: "missing"}}
	svc := newService(newFakeProductsClient(), orders)

	_, err := svc.GetOrder(context.Background(), 1)
	var apiErr *apierrors.Error
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, apierrors.CodeOrderNotFound, apiErr.Code)
		assert.Equal(t, "missing", apiErr.Message)
	}
}

func TestGetOrder_EnrichmentFailureIsNotTranslated(t *testing.T) {
	products := newFakeProductsClient()
	orders := &fakeOrdersClient{orders: map[int]*models.Order{
		1: {ID: 1, OrderDetails: []models.OrderDetail{
			{ID: 1, ProductID: "unknown", Quantity: 1, Price: mustDecimal(t, "41.00")},
		}},
	}}
	svc := newService(products, orders)

	_, err := svc.GetOrder(context.Background(), 1)
	assert.Error(t, err)

	var apiErr *apierrors.Error
	assert.False(t, errors.As(err, &apiErr))

	status, envelope := apierrors.Translate(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, apierrors.CodeUnexpectedError, envelope.Error)
}

func TestListOrders_EmptyMakesNoEnrichmentCalls(t *testing.T) {
	products := newFakeProductsClient(theOdyssey())
	orders := &fakeOrdersClient{listResult: []models.Order{}}
	svc := newService(products, orders)

	result, err := svc.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.Equal(t, 1, orders.listCalls)
	assert.Empty(t, products.getCalls)
}

func TestListOrders_EnrichesEveryOrder(t *testing.T) {
	products := newFakeProductsClient(theOdyssey())
	orders := &fakeOrdersClient{listResult: []models.Order{
		{ID: 1, OrderDetails: []models.OrderDetail{
			{ID: 1, ProductID: "the_odyssey", Quantity: 2, Price: mustDecimal(t, "200.00")},
		}},
		{ID: 2, OrderDetails: []models.OrderDetail{
			{ID: 3, ProductID: "the_odyssey", Quantity: 3, Price: mustDecimal(t, "300.00")},
		}},
	}}
	svc := newService(products, orders)

	result, err := svc.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, []string{"the_odyssey", "the_odyssey"}, products.getCalls)
	for _, order := range result {
		assert.NotNil(t, order.OrderDetails[0].Product)
	}
}

func TestCreateOrder_ChecksExistenceThenSubmits(t *testing.T) {
	products := newFakeProductsClient(theOdyssey())
	orders := &fakeOrdersClient{createdID: 11}
	svc := newService(products, orders)

	details := []models.NewOrderDetail{
		{ProductID: "the_odyssey", Quantity: 3, Price: mustDecimal(t, "41.00")},
	}
	id, err := svc.CreateOrder(context.Background(), details)
	assert.NoError(t, err)
	assert.Equal(t, 11, id)
	assert.Equal(t, []string{"the_odyssey"}, products.getCalls)
	assert.Equal(t, details, orders.createdDetails)
	assert.Equal(t, "41.00", orders.createdDetails[0].Price.String())
}

func TestCreateOrder_UnknownProductPropagatesUntranslated(t *testing.T) {
	products := newFakeProductsClient()
	orders := &fakeOrdersClient{createdID: 11}
	svc := newService(products, orders)

	_, err := svc.CreateOrder(context.Background(), []models.NewOrderDetail{
		{ProductID: "unknown", Quantity: 1, Price: mustDecimal(t, "41")},
	})
	assert.Error(t, err)
	assert.Nil(t, orders.createdDetails)

	status, envelope := apierrors.Translate(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, apierrors.CodeUnexpectedError, envelope.Error)
}

func TestCreateProduct_ReturnsAssignedID(t *testing.T) {
	products := newFakeProductsClient()
	svc := newService(products, &fakeOrdersClient{})

	id, err := svc.CreateProduct(context.Background(), theOdyssey())
	assert.NoError(t, err)
	assert.Equal(t, "the_odyssey", id)
}
