package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/airship-store/backend/gateway/models"
)

// HTTPProductsClient talks to the product service over HTTP/JSON.
type HTTPProductsClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProductsClient(baseURL string) *HTTPProductsClient {
	return &HTTPProductsClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

func (c *HTTPProductsClient) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	endpoint := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(id))
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPProductsClient) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	var created models.Product
	endpoint := c.baseURL + "/products"
	if err := doJSON(ctx, c.client, http.MethodPost, endpoint, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPProductsClient) Delete(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(id))
	return doJSON(ctx, c.client, http.MethodDelete, endpoint, nil, nil)
}
