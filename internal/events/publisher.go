// Package events publishes order lifecycle events. Publishing follows the
// same policy as remote mirroring: best-effort, callers log failures and
// move on.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/salad-karo/storefront/internal/config"
	"github.com/salad-karo/storefront/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

type Publisher interface {
	OrderCreated(ctx context.Context, order *models.Order) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

type noopPublisher struct{}

func (noopPublisher) OrderCreated(context.Context, *models.Order) error { return nil }

func NewPublisher(lc fx.Lifecycle, conf *config.Config) Publisher {
	if !conf.Kafka.Enabled {
		log.Warnf(context.Background(), "Kafka publisher is disabled in configuration")
		return noopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(conf.Kafka.Brokers...),
		Topic:    conf.Kafka.Topic,
		Balancer: &kafka.LeastBytes{},
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return writer.Close()
		},
	})

	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) OrderCreated(ctx context.Context, order *models.Order) error {
	event := models.OrderEvent{
		Pattern: models.PatternOrderCreated,
		Data:    order,
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID.Hex()),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}
