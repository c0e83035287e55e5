package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/airship-store/backend/services/order-service/models"
	"github.com/airship-store/backend/services/order-service/repository"
)

// EventPublisher publishes order lifecycle events. Nil-safe via the
// noop implementation used when Kafka is not configured.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
}

// OrderService owns order business logic over the repository.
type OrderService struct {
	repo      repository.OrderRepository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, publisher EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrder persists the order with its details and publishes an
// order_created event. Publishing is best-effort; the order stands even
// if the event cannot be delivered.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	order := &models.Order{}
	for _, d := range req.OrderDetails {
		order.OrderDetails = append(order.OrderDetails, models.OrderDetail{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			Price:     d.Price,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Int("details", len(order.OrderDetails)),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			s.logger.Error("failed to publish order_created event",
				zap.Uint("order_id", order.ID),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
