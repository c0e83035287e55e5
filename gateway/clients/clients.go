package clients

import (
	"context"
	"errors"

	"github.com/airship-store/backend/gateway/models"
)

// NotFoundError is raised when a backend reports that the requested
// entity does not exist. The message carries the backend's own text.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a backend absence signal.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ProductsClient is the typed proxy for the product catalog service.
type ProductsClient interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// OrdersClient is the typed proxy for the order processing service.
type OrdersClient interface {
	GetOrder(ctx context.Context, id int) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, details []models.NewOrderDetail) (*models.Order, error)
}
