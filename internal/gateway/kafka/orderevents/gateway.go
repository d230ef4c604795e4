package orderevents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"afyalinks/internal/entities"
)

// Gateway publishes order lifecycle events for the assignment worker.
// Messages are keyed by order id so per-order ordering is preserved.
type Gateway struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) PublishOrderEvent(_ context.Context, event entities.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway orderevents, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err = g.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("gateway orderevents, send message: %w", err)
	}

	EventsPublishedTotal.WithLabelValues(event.Status.String()).Inc()
	return nil
}

func (g *Gateway) Close() error {
	return g.producer.Close()
}
