package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type MenuItem struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      *int            `json:"category_id"`
	IsAvailable     bool            `json:"is_available"`
	PreparationTime int             `json:"preparation_time"`
	Size            string          `json:"size,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type InventoryItem struct {
	ID            int             `json:"id"`
	ItemName      string          `json:"item_name"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	MaxStockLevel int             `json:"max_stock_level"`
	Unit          string          `json:"unit"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	Supplier      string          `json:"supplier"`
	LastRestocked *time.Time      `json:"last_restocked"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Order struct {
	ID             int             `json:"id"`
	OrderNumber    string          `json:"order_number"`
	CustomerName   string          `json:"customer_name"`
	CustomerPhone  string          `json:"customer_phone"`
	OrderType      string          `json:"order_type"`
	PickupTime     *time.Time      `json:"pickup_time"`
	CustomerNotes  string          `json:"customer_notes"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	PaymentMethod  string          `json:"payment_method"`
	Status         OrderStatus     `json:"status"`
	CashierID      *int            `json:"cashier_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Items          []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	ID                  int             `json:"id"`
	OrderID             int             `json:"order_id"`
	MenuItemID          int             `json:"menu_item_id"`
	MenuItemName        string          `json:"menu_item_name,omitempty"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

type OrderAction struct {
	ID         int              `json:"id"`
	OrderID    int              `json:"order_id"`
	ActionType OrderActionType  `json:"action_type"`
	ActionBy   string           `json:"action_by"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

type OrderDiscount struct {
	ID             int             `json:"id"`
	OrderID        int             `json:"order_id"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	AppliedBy      string          `json:"applied_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

type LowStockAlert struct {
	ID             int        `json:"id"`
	InventoryID    int        `json:"inventory_id"`
	ItemName       string     `json:"item_name,omitempty"`
	AlertLevel     AlertLevel `json:"alert_level"`
	IsAcknowledged bool       `json:"is_acknowledged"`
	AcknowledgedBy *int       `json:"acknowledged_by"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ActivityLog struct {
	ID          int               `json:"id"`
	Action      string            `json:"action"`
	Description string            `json:"description"`
	UserID      *int              `json:"user_id"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

type SalesLog struct {
	ID        int             `json:"id"`
	Action    string          `json:"action"`
	OrderID   int             `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	UserID    *int            `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
	RoleStaff   Role = "staff"
)

func (r Role) CanVoid() bool {
	return r == RoleAdmin || r == RoleOwner
}

func (r Role) CanManageRoles() bool {
	return r == RoleAdmin || r == RoleOwner
}

type Profile struct {
	UserID    int       `json:"user_id"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     int             `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []OrderItem     `json:"items,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderFilter narrows order listings for the management and history screens.
type OrderFilter struct {
	Status     string
	ActiveOnly bool
	OrderType  string
	From       *time.Time
	To         *time.Time
}

type DailySalesReport struct {
	Date           string          `json:"date"`
	OrderCount     int             `json:"order_count"`
	GrossSales     decimal.Decimal `json:"gross_sales"`
	TaxCollected   decimal.Decimal `json:"tax_collected"`
	DiscountsGiven decimal.Decimal `json:"discounts_given"`
}

type TopItem struct {
	MenuItemID   int    `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	QuantitySold int    `json:"quantity_sold"`
}
