package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"coffeeshop-pos/internal/domain"

	"github.com/segmentio/kafka-go"
)

// OrderEventsTopic carries placement and status-change events; the
// sales-aggregator consumes it to keep report aggregates and the new-order
// feed current.
const OrderEventsTopic = "orders.events"

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}
