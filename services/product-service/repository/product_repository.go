package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/airship-store/backend/services/product-service/models"
)

// ErrProductNotFound is returned when no product exists for the given id.
var ErrProductNotFound = errors.New("product not found")

const keyPrefix = "products:"

// ProductRepository defines data-access operations for the catalog.
type ProductRepository interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, amount int) error
}

// RedisProductRepository stores each product as a Redis hash under
// products:<id>.
type RedisProductRepository struct {
	client *redis.Client
}

func NewRedisProductRepository(client *redis.Client) ProductRepository {
	return &RedisProductRepository{client: client}
}

func (r *RedisProductRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	fields, err := r.client.HGetAll(ctx, keyPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrProductNotFound
	}

	capacity, err := strconv.Atoi(fields["passenger_capacity"])
	if err != nil {
		return nil, err
	}
	speed, err := strconv.Atoi(fields["maximum_speed"])
	if err != nil {
		return nil, err
	}
	inStock, err := strconv.Atoi(fields["in_stock"])
	if err != nil {
		return nil, err
	}

	return &models.Product{
		ID:                fields["id"],
		Title:             fields["title"],
		PassengerCapacity: capacity,
		MaximumSpeed:      speed,
		InStock:           inStock,
	}, nil
}

func (r *RedisProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.client.HSet(ctx, keyPrefix+product.ID, map[string]interface{}{
		"id":                 product.ID,
		"title":              product.Title,
		"passenger_capacity": product.PassengerCapacity,
		"maximum_speed":      product.MaximumSpeed,
		"in_stock":           product.InStock,
	}).Err()
}

func (r *RedisProductRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.client.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *RedisProductRepository) DecrementStock(ctx context.Context, id string, amount int) error {
	exists, err := r.client.Exists(ctx, keyPrefix+id).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrProductNotFound
	}
	return r.client.HIncrBy(ctx, keyPrefix+id, "in_stock", -int64(amount)).Err()
}
