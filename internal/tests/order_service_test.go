package tests

import (
	"context"
	"testing"

	"coffeeshop-pos/internal/domain"
	"coffeeshop-pos/internal/mocks"
	"coffeeshop-pos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderServiceMocks(t *testing.T) (*mocks.OrderRepository, *mocks.MenuReader, *mocks.ActivityRecorder, *mocks.OrderPublisher, *mocks.QRGenerator, *service.OrderService) {
	repository := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuReader(t)
	activity := mocks.NewActivityRecorder(t)
	publisher := mocks.NewOrderPublisher(t)
	qrEncoder := mocks.NewQRGenerator(t)

	svc := service.NewOrderService(repository, menu, activity, publisher, qrEncoder,
		decimal.NewFromFloat(0.10), logrus.New())

	return repository, menu, activity, publisher, qrEncoder, svc
}

func TestOrderService_Place(t *testing.T) {
	repository, menu, activity, publisher, qrEncoder, svc := newOrderServiceMocks(t)

	menu.On("GetMenuItem", 1).Return(&domain.MenuItem{
		ID: 1, Name: "Flat White", Price: decimal.NewFromInt(100), IsAvailable: true,
	}, nil).Once()
	menu.On("GetMenuItem", 2).Return(&domain.MenuItem{
		ID: 2, Name: "Croissant", Price: decimal.NewFromInt(50), IsAvailable: true,
	}, nil).Once()
	repository.On("CreateOrder", mock.Anything).Run(func(args mock.Arguments) {
		order := args.Get(0).(*domain.Order)
		order.ID = 7
		order.OrderNumber = "ORD-20260831-0007"
	}).Return(nil).Once()
	activity.On("Record", "order_placed", mock.Anything, mock.Anything, mock.Anything).Return().Once()
	publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()
	qrEncoder.On("Generate", 7).Return([]byte("png"), nil).Once()
	repository.On("SaveQRCode", 7, []byte("png")).Return(nil).Once()

	order, err := svc.Place(context.Background(), nil, service.PlaceOrderInput{
		CustomerName:  "Nina",
		CustomerPhone: "555-0101",
		OrderType:     "takeout",
		Items: []service.PlaceOrderItem{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "ORD-20260831-0007", order.OrderNumber)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].TotalPrice.Equal(decimal.NewFromInt(200)))
	assert.True(t, order.TaxAmount.Equal(decimal.NewFromInt(25)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(275)))
	assert.Nil(t, order.CashierID)
}

func TestOrderService_Place_errors(t *testing.T) {
	_, menu, _, _, _, svc := newOrderServiceMocks(t)

	tests := []struct {
		name          string
		input         service.PlaceOrderInput
		prepareMocks  func()
		expectedError error
	}{
		{
			name:          "empty_order",
			input:         service.PlaceOrderInput{OrderType: "takeout"},
			prepareMocks:  func() {},
			expectedError: service.ErrEmptyOrder,
		},
		{
			name: "bad_order_type",
			input: service.PlaceOrderInput{
				OrderType: "delivery",
				Items:     []service.PlaceOrderItem{{MenuItemID: 1, Quantity: 1}},
			},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidOrderType,
		},
		{
			name: "zero_quantity",
			input: service.PlaceOrderInput{
				OrderType: "dine-in",
				Items:     []service.PlaceOrderItem{{MenuItemID: 1, Quantity: 0}},
			},
			prepareMocks:  func() {},
			expectedError: service.ErrQuantityOutOfRange,
		},
		{
			name: "unavailable_item",
			input: service.PlaceOrderInput{
				OrderType: "takeout",
				Items:     []service.PlaceOrderItem{{MenuItemID: 3, Quantity: 1}},
			},
			prepareMocks: func() {
				menu.On("GetMenuItem", 3).Return(&domain.MenuItem{
					ID: 3, Name: "Seasonal Scone", Price: decimal.NewFromInt(40), IsAvailable: false,
				}, nil).Once()
			},
			expectedError: service.ErrItemUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			order, err := svc.Place(context.Background(), nil, testCase.input)
			assert.ErrorIs(t, err, testCase.expectedError)
			assert.Nil(t, order)
		})
	}
}

func TestOrderService_ApplyAction(t *testing.T) {
	repository, _, activity, publisher, _, svc := newOrderServiceMocks(t)

	cashier := &domain.Profile{UserID: 2, FullName: "Casey", Role: domain.RoleCashier}
	admin := &domain.Profile{UserID: 1, FullName: "Ada", Role: domain.RoleAdmin}
	refundAmount := decimal.NewFromInt(50)

	orderWithStatus := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{
			ID:          1,
			OrderNumber: "ORD-20260831-0001",
			Status:      status,
			TotalAmount: decimal.NewFromInt(275),
		}
	}

	tests := []struct {
		name           string
		actor          *domain.Profile
		input          service.OrderActionInput
		prepareMocks   func()
		expectedError  error
		expectedStatus domain.OrderStatus
	}{
		{
			name:  "cancel_pending",
			actor: cashier,
			input: service.OrderActionInput{Action: domain.ActionCancel, Reason: "customer changed mind"},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(orderWithStatus(domain.StatusPending), nil, nil).Once()
				repository.On("ApplyTransition", 1, domain.StatusCancelled, true, mock.Anything).Return(nil).Once()
				activity.On("Record", "order_status_changed", mock.Anything, mock.Anything, mock.Anything).Return().Once()
				publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: domain.StatusCancelled,
		},
		{
			name:  "complete_ready_records_sale",
			actor: cashier,
			input: service.OrderActionInput{Action: domain.ActionComplete},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(orderWithStatus(domain.StatusReady), nil, nil).Once()
				repository.On("ApplyTransition", 1, domain.StatusCompleted, true, mock.Anything).Return(nil).Once()
				activity.On("RecordSale", 1, mock.Anything, mock.Anything).Return().Once()
				activity.On("Record", "order_status_changed", mock.Anything, mock.Anything, mock.Anything).Return().Once()
				publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: domain.StatusCompleted,
		},
		{
			name:  "void_requires_admin_role",
			actor: cashier,
			input: service.OrderActionInput{Action: domain.ActionVoid, Reason: "mistake"},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(orderWithStatus(domain.StatusPreparing), nil, nil).Once()
			},
			expectedError: service.ErrVoidNotAllowed,
		},
		{
			name:  "void_as_admin",
			actor: admin,
			input: service.OrderActionInput{Action: domain.ActionVoid, Reason: "wrong register"},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(orderWithStatus(domain.StatusPreparing), nil, nil).Once()
				repository.On("ApplyTransition", 1, domain.StatusVoid, true, mock.Anything).Return(nil).Once()
				activity.On("Record", "order_status_changed", mock.Anything, mock.Anything, mock.Anything).Return().Once()
				publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: domain.StatusVoid,
		},
		{
			name:  "refund_requires_amount",
			actor: admin,
			input: service.OrderActionInput{Action: domain.ActionRefund, Reason: "cold coffee"},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(orderWithStatus(domain.StatusCompleted), nil, nil).Once()
			},
			expectedError: service.ErrAmountRequired,
		},
		{
			name:  "refund_completed_keeps_status",
			actor: admin,
			input: service.OrderActionInput{Action: domain.ActionRefund, Amount: &refundAmount, Reason: "cold coffee"},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(orderWithStatus(domain.StatusCompleted), nil, nil).Once()
				repository.On("ApplyTransition", 1, domain.StatusCompleted, false, mock.Anything).Return(nil).Once()
				activity.On("Record", "order_status_changed", mock.Anything, mock.Anything, mock.Anything).Return().Once()
				publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: domain.StatusCompleted,
		},
		{
			name:  "invalid_transition",
			actor: cashier,
			input: service.OrderActionInput{Action: domain.ActionComplete},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(orderWithStatus(domain.StatusPending), nil, nil).Once()
			},
			expectedError: service.ErrInvalidTransition,
		},
		{
			name:  "terminal_order_not_editable",
			actor: cashier,
			input: service.OrderActionInput{Action: domain.ActionApprove},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(orderWithStatus(domain.StatusCancelled), nil, nil).Once()
			},
			expectedError: service.ErrOrderNotEditable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			order, err := svc.ApplyAction(context.Background(), testCase.actor, 1, testCase.input)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.Equal(t, testCase.expectedStatus, order.Status)
			}
		})
	}
}

func TestOrderService_ApplyDiscount(t *testing.T) {
	repository, _, activity, _, _, svc := newOrderServiceMocks(t)

	manager := &domain.Profile{UserID: 3, FullName: "Mo", Role: domain.RoleManager}

	freshOrder := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{
			ID:             1,
			OrderNumber:    "ORD-20260831-0001",
			Status:         status,
			TotalAmount:    decimal.NewFromInt(275),
			DiscountAmount: decimal.Zero,
		}
	}

	tests := []struct {
		name             string
		input            service.OrderActionInput
		prepareMocks     func()
		expectedError    error
		expectedTotal    decimal.Decimal
		expectedDiscount decimal.Decimal
	}{
		{
			name: "percentage",
			input: service.OrderActionInput{
				Action: domain.ActionDiscount, DiscountType: "percentage", DiscountValue: decimal.NewFromInt(10),
			},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(freshOrder(domain.StatusPending), nil, nil).Once()
				repository.On("ApplyDiscount", 1, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				activity.On("Record", "order_discounted", mock.Anything, mock.Anything, mock.Anything).Return().Once()
			},
			expectedTotal:    decimal.NewFromFloat(247.50),
			expectedDiscount: decimal.NewFromFloat(27.50),
		},
		{
			name: "fixed",
			input: service.OrderActionInput{
				Action: domain.ActionDiscount, DiscountType: "fixed", DiscountValue: decimal.NewFromInt(30),
			},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(freshOrder(domain.StatusPreparing), nil, nil).Once()
				repository.On("ApplyDiscount", 1, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				activity.On("Record", "order_discounted", mock.Anything, mock.Anything, mock.Anything).Return().Once()
			},
			expectedTotal:    decimal.NewFromInt(245),
			expectedDiscount: decimal.NewFromInt(30),
		},
		{
			name: "fixed_exceeds_total",
			input: service.OrderActionInput{
				Action: domain.ActionDiscount, DiscountType: "fixed", DiscountValue: decimal.NewFromInt(300),
			},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(freshOrder(domain.StatusPending), nil, nil).Once()
			},
			expectedError: service.ErrDiscountTooLarge,
		},
		{
			name: "unknown_type",
			input: service.OrderActionInput{
				Action: domain.ActionDiscount, DiscountType: "loyalty", DiscountValue: decimal.NewFromInt(5),
			},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(freshOrder(domain.StatusPending), nil, nil).Once()
			},
			expectedError: service.ErrUnknownDiscount,
		},
		{
			name: "non_positive_value",
			input: service.OrderActionInput{
				Action: domain.ActionDiscount, DiscountType: "percentage", DiscountValue: decimal.Zero,
			},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(freshOrder(domain.StatusPending), nil, nil).Once()
			},
			expectedError: service.ErrInvalidDiscount,
		},
		{
			name: "rejected_on_cancelled_order",
			input: service.OrderActionInput{
				Action: domain.ActionDiscount, DiscountType: "fixed", DiscountValue: decimal.NewFromInt(5),
			},
			prepareMocks: func() {
				repository.On("GetOrder", 1).Return(freshOrder(domain.StatusCancelled), nil, nil).Once()
			},
			expectedError: service.ErrInvalidTransition,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			order, err := svc.ApplyAction(context.Background(), manager, 1, testCase.input)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.True(t, order.TotalAmount.Equal(testCase.expectedTotal),
					"total %s", order.TotalAmount)
				assert.True(t, order.DiscountAmount.Equal(testCase.expectedDiscount),
					"discount %s", order.DiscountAmount)
			}
		})
	}
}

func TestOrderService_GetQRCode_regenerates(t *testing.T) {
	repository, _, _, _, qrEncoder, svc := newOrderServiceMocks(t)

	repository.On("GetQRCode", 1).Return([]byte("stored"), nil).Once()
	qr, err := svc.GetQRCode(1)
	assert.NoError(t, err)
	assert.Equal(t, []byte("stored"), qr)

	repository.On("GetQRCode", 2).Return(nil, nil).Once()
	qrEncoder.On("Generate", 2).Return([]byte("fresh"), nil).Once()
	repository.On("SaveQRCode", 2, []byte("fresh")).Return(nil).Once()

	qr, err = svc.GetQRCode(2)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh"), qr)
}
