package tests

import (
	"context"
	"errors"
	"testing"

	"coffeeshop-pos/internal/domain"
	"coffeeshop-pos/internal/mocks"
	"coffeeshop-pos/internal/notifier"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_Process(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		event        domain.OrderEvent
		prepareMocks func(store *mocks.AggregateStore)
	}{
		{
			name: "order_placed_updates_aggregates",
			event: domain.OrderEvent{
				Type:        domain.EventOrderPlaced,
				OrderID:     7,
				OrderNumber: "ORD-20260831-0007",
				Status:      domain.StatusPending,
			},
			prepareMocks: func(store *mocks.AggregateStore) {
				store.On("RecordOrderPlaced", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "completed_status_change_records_gross_sales",
			event: domain.OrderEvent{
				Type:        domain.EventOrderStatusChanged,
				OrderID:     7,
				OrderNumber: "ORD-20260831-0007",
				Status:      domain.StatusCompleted,
			},
			prepareMocks: func(store *mocks.AggregateStore) {
				store.On("RecordOrderCompleted", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "intermediate_status_change_ignored",
			event: domain.OrderEvent{
				Type:   domain.EventOrderStatusChanged,
				Status: domain.StatusPreparing,
			},
			prepareMocks: func(store *mocks.AggregateStore) {},
		},
		{
			name:         "unknown_event_type_ignored",
			event:        domain.OrderEvent{Type: "order_exploded"},
			prepareMocks: func(store *mocks.AggregateStore) {},
		},
		{
			name: "store_error_is_swallowed",
			event: domain.OrderEvent{
				Type:        domain.EventOrderPlaced,
				OrderNumber: "ORD-20260831-0008",
			},
			prepareMocks: func(store *mocks.AggregateStore) {
				store.On("RecordOrderPlaced", ctx, mock.Anything).
					Return(errors.New("redis down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewAggregateStore(t)
			testCase.prepareMocks(store)

			consumer := notifier.NewConsumer(nil, store, logrus.New())
			consumer.Process(ctx, testCase.event)
		})
	}
}
