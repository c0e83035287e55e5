package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/airship-store/backend/services/order-service/models"
)

type orderCreatedEvent struct {
	ID           int                `json:"id"`
	OrderDetails []orderEventDetail `json:"order_details"`
}

type orderEventDetail struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Producer publishes order lifecycle events to Kafka.
type Producer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewProducer(brokers, topic string, logger *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer, logger: logger}
}

func (p *Producer) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	event := orderCreatedEvent{ID: int(order.ID)}
	for _, d := range order.OrderDetails {
		event.OrderDetails = append(event.OrderDetails, orderEventDetail{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(order.ID), 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	p.logger.Info("order_created event published", zap.Uint("order_id", order.ID))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
