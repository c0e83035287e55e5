package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/airship-store/backend/gateway/models"
)

// HTTPOrdersClient talks to the order service over HTTP/JSON.
type HTTPOrdersClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPOrdersClient(baseURL string) *HTTPOrdersClient {
	return &HTTPOrdersClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

func (c *HTTPOrdersClient) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	endpoint := fmt.Sprintf("%s/orders/%d", c.baseURL, id)
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPOrdersClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	endpoint := c.baseURL + "/orders"
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPOrdersClient) CreateOrder(ctx context.Context, details []models.NewOrderDetail) (*models.Order, error) {
	payload := struct {
		OrderDetails []models.NewOrderDetail `json:"order_details"`
	}{OrderDetails: details}

	var order models.Order
	endpoint := c.baseURL + "/orders"
	if err := doJSON(ctx, c.client, http.MethodPost, endpoint, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
