package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/airship-store/backend/gateway/apierrors"
	"github.com/airship-store/backend/gateway/clients"
	"github.com/airship-store/backend/gateway/models"
)

// GatewayService composes the product and order backends into the public
// API surface. It owns the partial-failure semantics: absence signals are
// reclassified to the 404 taxonomy only at direct lookup sites; absence
// surfaced while enriching or existence-checking propagates untranslated
// and reaches clients as UNEXPECTED_ERROR.
type GatewayService struct {
	products clients.ProductsClient
	orders   clients.OrdersClient
	logger   *zap.Logger
}

func NewGatewayService(products clients.ProductsClient, orders clients.OrdersClient, logger *zap.Logger) *GatewayService {
	return &GatewayService{
		products: products,
		orders:   orders,
		logger:   logger,
	}
}

// GetProduct fetches one product. A direct lookup, so backend absence
// maps to PRODUCT_NOT_FOUND.
func (s *GatewayService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		var nf *clients.NotFoundError
		if errors.As(err, &nf) {
			return nil, apierrors.ProductNotFound(nf.Message)
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct submits a validated product to the catalog and returns
// the assigned id.
func (s *GatewayService) CreateProduct(ctx context.Context, product *models.Product) (string, error) {
	created, err := s.products.Create(ctx, product)
	if err != nil {
		return "", err
	}
	s.logger.Info("product created", zap.String("product_id", created.ID))
	return created.ID, nil
}

// DeleteProduct passes the delete through with no pre-existence check.
// A direct lookup, so backend absence maps to PRODUCT_NOT_FOUND.
func (s *GatewayService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		var nf *clients.NotFoundError
		if errors.As(err, &nf) {
			return apierrors.ProductNotFound(nf.Message)
		}
		return err
	}
	return nil
}

// GetOrder fetches an order and enriches every detail with its product.
// Only the primary order lookup is direct; enrichment failures of any
// kind, absence included, abort the composition and propagate as-is.
func (s *GatewayService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		var nf *clients.NotFoundError
		if errors.As(err, &nf) {
			return nil, apierrors.OrderNotFound(nf.Message)
		}
		return nil, err
	}

	if err := s.enrichOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders fetches all orders and enriches each detail. An empty
// backend list composes to an empty list with no enrichment calls.
func (s *GatewayService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if err := s.enrichOrder(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// CreateOrder checks that every referenced product exists, then submits
// the detail sequence to the order service. The existence check is a full
// fetch whose result is discarded; its failure is deliberately not
// reclassified, so an unknown product_id surfaces as UNEXPECTED_ERROR.
func (s *GatewayService) CreateOrder(ctx context.Context, details []models.NewOrderDetail) (int, error) {
	for _, detail := range details {
		if _, err := s.products.Get(ctx, detail.ProductID); err != nil {
			return 0, err
		}
	}

	order, err := s.orders.CreateOrder(ctx, details)
	if err != nil {
		return 0, err
	}
	s.logger.Info("order created", zap.Int("order_id", order.ID))
	return order.ID, nil
}

// enrichOrder attaches the full product to each detail, sequentially and
// in detail order. The first failure aborts the whole composition.
func (s *GatewayService) enrichOrder(ctx context.Context, order *models.Order) error {
	for i := range order.OrderDetails {
		product, err := s.products.Get(ctx, order.OrderDetails[i].ProductID)
		if err != nil {
			return err
		}
		order.OrderDetails[i].Product = product
	}
	return nil
}
