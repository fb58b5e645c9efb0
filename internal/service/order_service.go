package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"coffeeshop-pos/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrItemUnavailable    = errors.New("menu item is not available")
	ErrInvalidTransition  = errors.New("transition not allowed from current status")
	ErrVoidNotAllowed     = errors.New("void requires an admin or owner role")
	ErrAmountRequired     = errors.New("a positive amount is required for this action")
	ErrOrderNotEditable   = errors.New("order is in a terminal status")
	ErrUnknownAction      = errors.New("unknown order action")
	ErrInvalidOrderType   = errors.New("order type must be takeout or dine-in")
	ErrUnknownDiscount    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscount    = errors.New("discount value must be positive")
	ErrDiscountTooLarge   = errors.New("discount exceeds the order total")
	ErrQuantityOutOfRange = errors.New("quantity must be at least 1")
)

type PlaceOrderItem struct {
	MenuItemID          int
	Quantity            int
	SpecialInstructions string
}

type PlaceOrderInput struct {
	CustomerName  string
	CustomerPhone string
	OrderType     string
	PickupTime    *time.Time
	CustomerNotes string
	PaymentMethod string
	Items         []PlaceOrderItem
}

type OrderActionInput struct {
	Action domain.OrderActionType
	Amount *decimal.Decimal
	Reason string
	Notes  string
	// Discount fields, used only when Action is discount.
	DiscountType  string
	DiscountValue decimal.Decimal
}

type OrderService struct {
	repo      OrderRepository
	menu      MenuReader
	activity  ActivityRecorder
	publisher OrderPublisher
	qrEncoder QRGenerator
	taxRate   decimal.Decimal
	log       *logrus.Logger
}

func NewOrderService(repo OrderRepository, menu MenuReader, activity ActivityRecorder,
	publisher OrderPublisher, qrEncoder QRGenerator, taxRate decimal.Decimal, log *logrus.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		menu:      menu,
		activity:  activity,
		publisher: publisher,
		qrEncoder: qrEncoder,
		taxRate:   taxRate,
		log:       log,
	}
}

// Place runs checkout for both the customer screen and the cashier screen.
// Unit prices are read from the menu and frozen into the lines; subtotal,
// tax and total are computed here so every flow uses the same tax rate.
// The order, its items and the initial action row commit atomically; the
// activity log, the Kafka event and the QR code are best-effort afterwards.
func (s *OrderService) Place(ctx context.Context, actor *domain.Profile, input PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if input.OrderType != "takeout" && input.OrderType != "dine-in" {
		return nil, ErrInvalidOrderType
	}

	subtotal := decimal.Zero
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, ErrQuantityOutOfRange
		}
		menuItem, err := s.menu.GetMenuItem(line.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("menu item %d: %w", line.MenuItemID, err)
		}
		if !menuItem.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, menuItem.Name)
		}
		lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, domain.OrderItem{
			MenuItemID:          line.MenuItemID,
			MenuItemName:        menuItem.Name,
			Quantity:            line.Quantity,
			UnitPrice:           menuItem.Price,
			TotalPrice:          lineTotal,
			SpecialInstructions: line.SpecialInstructions,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	tax := subtotal.Mul(s.taxRate).Round(2)
	order := &domain.Order{
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		OrderType:      input.OrderType,
		PickupTime:     input.PickupTime,
		CustomerNotes:  input.CustomerNotes,
		PaymentMethod:  input.PaymentMethod,
		TaxAmount:      tax,
		DiscountAmount: decimal.Zero,
		TotalAmount:    subtotal.Add(tax),
		Status:         domain.StatusPending,
		CashierID:      actorID(actor),
		Items:          items,
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}

	s.activity.Record("order_placed", "Placed order "+order.OrderNumber, actorID(actor),
		map[string]string{
			"order_id":     strconv.Itoa(order.ID),
			"order_number": order.OrderNumber,
		})
	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderPlaced,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Items:       order.Items,
		OccurredAt:  order.CreatedAt,
	})

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	return order, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, items, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (s *OrderService) List(filter domain.OrderFilter) ([]domain.Order, error) {
	return s.repo.ListOrders(filter)
}

func (s *OrderService) Delete(actor *domain.Profile, orderID int) (int64, error) {
	rows, err := s.repo.DeleteOrder(orderID)
	if err != nil || rows == 0 {
		return rows, err
	}
	s.activity.Record("order_deleted", "Deleted order", actorID(actor),
		map[string]string{"order_id": strconv.Itoa(orderID)})
	return rows, nil
}

// ApplyAction runs one step of the lifecycle. Legality comes from the
// transition table alone; re-applying the current status is rejected like
// any other transition missing from the table. Void is gated on the acting
// profile's role, checked here and nowhere else.
func (s *OrderService) ApplyAction(ctx context.Context, actor *domain.Profile, orderID int, input OrderActionInput) (*domain.Order, error) {
	if input.Action == domain.ActionDiscount {
		return s.applyDiscount(ctx, actor, orderID, input)
	}

	order, _, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if input.Action == domain.ActionVoid && (actor == nil || !actor.Role.CanVoid()) {
		return nil, ErrVoidNotAllowed
	}
	if input.Action == domain.ActionRefund && (input.Amount == nil || !input.Amount.IsPositive()) {
		return nil, ErrAmountRequired
	}

	next, ok := domain.NextStatus(order.Status, input.Action)
	if !ok {
		if order.Status.IsTerminal() {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotEditable, order.Status)
		}
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, input.Action)
	}

	action := domain.OrderAction{
		ActionType: input.Action,
		ActionBy:   actorName(actor),
		Amount:     input.Amount,
		Reason:     input.Reason,
		Notes:      input.Notes,
	}
	if err := s.repo.ApplyTransition(orderID, next, domain.ChangesStatus(input.Action), &action); err != nil {
		return nil, err
	}

	oldStatus := order.Status
	order.Status = next

	if input.Action == domain.ActionComplete {
		s.activity.RecordSale(orderID, order.TotalAmount, actorID(actor))
	}
	s.activity.Record("order_status_changed",
		fmt.Sprintf("Order %s: %s (%s -> %s)", order.OrderNumber, input.Action, oldStatus, next),
		actorID(actor),
		map[string]string{
			"order_id":   strconv.Itoa(orderID),
			"action":     string(input.Action),
			"old_status": string(oldStatus),
			"new_status": string(next),
		})
	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderStatusChanged,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      next,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	})

	return order, nil
}

func (s *OrderService) applyDiscount(ctx context.Context, actor *domain.Profile, orderID int, input OrderActionInput) (*domain.Order, error) {
	order, _, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if _, ok := domain.NextStatus(order.Status, domain.ActionDiscount); !ok {
		return nil, fmt.Errorf("%w: %s -> discount", ErrInvalidTransition, order.Status)
	}
	if !input.DiscountValue.IsPositive() {
		return nil, ErrInvalidDiscount
	}

	var amount decimal.Decimal
	switch input.DiscountType {
	case "percentage":
		amount = order.TotalAmount.Mul(input.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	case "fixed":
		amount = input.DiscountValue.Round(2)
	default:
		return nil, ErrUnknownDiscount
	}
	if amount.GreaterThan(order.TotalAmount) {
		return nil, ErrDiscountTooLarge
	}

	disc := domain.OrderDiscount{
		DiscountType:   input.DiscountType,
		DiscountValue:  input.DiscountValue,
		DiscountAmount: amount,
		AppliedBy:      actorName(actor),
	}
	newDiscountTotal := order.DiscountAmount.Add(amount)
	newOrderTotal := order.TotalAmount.Sub(amount)
	if err := s.repo.ApplyDiscount(orderID, &disc, newDiscountTotal, newOrderTotal); err != nil {
		return nil, err
	}

	order.DiscountAmount = newDiscountTotal
	order.TotalAmount = newOrderTotal

	s.activity.Record("order_discounted",
		fmt.Sprintf("Order %s discounted by %s", order.OrderNumber, amount.StringFixed(2)),
		actorID(actor),
		map[string]string{
			"order_id":        strconv.Itoa(orderID),
			"discount_amount": amount.StringFixed(2),
		})

	return order, nil
}

func (s *OrderService) Actions(orderID int) ([]domain.OrderAction, error) {
	return s.repo.ListOrderActions(orderID)
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

// publish is best-effort: the aggregator catching up late is acceptable,
// losing the order is not.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"order_id": event.OrderID,
			"type":     event.Type,
		}).Warnf("order event publish failed: %v", err)
	}
}

func actorName(actor *domain.Profile) string {
	if actor == nil {
		return "customer"
	}
	if actor.FullName != "" {
		return actor.FullName
	}
	return "staff:" + strconv.Itoa(actor.UserID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
