// Package kafka publishes order-changed events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"myfood/internal/core/ports"

	"github.com/IBM/sarama"
)

// OrderProducer implements ports.OrderEventPublisher on a sarama SyncProducer.
// Events are keyed by order id so that all changes of one order land on the
// same partition, in order.
type OrderProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderProducer connects to the brokers and waits for all in-sync replicas
// on every send.
func NewOrderProducer(brokers []string, topic string, logger *slog.Logger) (*OrderProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	logger.Info("connected to kafka", "component", "order_producer", "brokers", brokers, "topic", topic)
	return NewOrderProducerWithSyncProducer(producer, topic, logger), nil
}

// NewOrderProducerWithSyncProducer wraps an existing producer.
func NewOrderProducerWithSyncProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *OrderProducer {
	return &OrderProducer{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "order_producer"),
	}
}

// Publish sends the event as JSON. Failures are logged and returned.
func (p *OrderProducer) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish order event",
			"type", event.Type, "order_id", event.OrderID, "error", err)
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.DebugContext(ctx, "order event published",
		"type", event.Type, "order_id", event.OrderID, "partition", partition, "offset", offset)
	return nil
}

func (p *OrderProducer) Close() error {
	return p.producer.Close()
}

// NopPublisher is used when no broker is configured. It only logs.
type NopPublisher struct {
	logger *slog.Logger
}

func NewNopPublisher(logger *slog.Logger) NopPublisher {
	return NopPublisher{logger: logger.With("component", "order_producer")}
}

func (p NopPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	p.logger.DebugContext(ctx, "kafka disabled, order event dropped", "type", event.Type, "order_id", event.OrderID)
	return nil
}
