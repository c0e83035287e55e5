package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/airship-store/backend/services/product-service/models"
	"github.com/airship-store/backend/services/product-service/repository"
)

// ProductService owns catalog business logic over the repository.
type ProductService struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

func NewProductService(repo repository.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	s.logger.Info("product created",
		zap.String("product_id", product.ID),
		zap.Int("in_stock", product.InStock),
	)
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

// DecrementStock lowers in_stock after an order is placed. Called from
// the order_created event consumer, never from the HTTP surface.
func (s *ProductService) DecrementStock(ctx context.Context, id string, amount int) error {
	if err := s.repo.DecrementStock(ctx, id, amount); err != nil {
		return err
	}
	s.logger.Info("stock decremented",
		zap.String("product_id", id),
		zap.Int("amount", amount),
	)
	return nil
}
