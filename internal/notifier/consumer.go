package notifier

import (
	"context"
	"encoding/json"

	"coffeeshop-pos/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// AggregateStore is the slice of the Redis store the consumer writes to.
type AggregateStore interface {
	RecordOrderPlaced(ctx context.Context, event domain.OrderEvent) error
	RecordOrderCompleted(ctx context.Context, event domain.OrderEvent) error
}

// Consumer tails the order event topic and keeps the report aggregates and
// the new-order feed current. It is the only writer of those Redis keys;
// the POS server only reads them.
type Consumer struct {
	Reader *kafka.Reader
	Store  AggregateStore
	Log    *logrus.Logger
}

func NewConsumer(reader *kafka.Reader, store AggregateStore, log *logrus.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("Starting sales aggregator consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.Log.Errorf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.Errorf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderPlaced:
		if err := c.Store.RecordOrderPlaced(ctx, event); err != nil {
			c.Log.Errorf("Error recording placed order %s: %v", event.OrderNumber, err)
			return
		}
		c.Log.Infof("Recorded placed order %s", event.OrderNumber)
	case domain.EventOrderStatusChanged:
		if event.Status != domain.StatusCompleted {
			return
		}
		if err := c.Store.RecordOrderCompleted(ctx, event); err != nil {
			c.Log.Errorf("Error recording completed order %s: %v", event.OrderNumber, err)
			return
		}
		c.Log.Infof("Recorded completed order %s", event.OrderNumber)
	}
}
