package kafka

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/airship-store/backend/services/product-service/services"
)

// OrderCreatedEvent mirrors the payload the order service publishes.
type OrderCreatedEvent struct {
	ID           int `json:"id"`
	OrderDetails []struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"order_details"`
}

// Consumer decrements catalog stock when orders are created.
type Consumer struct {
	reader  *kafka.Reader
	service *services.ProductService
	logger  *zap.Logger
}

func NewConsumer(brokers, topic string, service *services.ProductService, logger *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(brokers, ","),
		GroupID: "product-service",
		Topic:   topic,
	})
	return &Consumer{
		reader:  reader,
		service: service,
		logger:  logger,
	}
}

// Run consumes order_created events until the context is canceled.
func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Error("failed to read order event", zap.Error(err))
			continue
		}

		var event OrderCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error("failed to decode order event", zap.Error(err))
			continue
		}

		for _, detail := range event.OrderDetails {
			if err := c.service.DecrementStock(ctx, detail.ProductID, detail.Quantity); err != nil {
				c.logger.Error("failed to decrement stock",
					zap.Int("order_id", event.ID),
					zap.String("product_id", detail.ProductID),
					zap.Error(err),
				)
			}
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
