package service

import (
	"context"
	"time"

	"coffeeshop-pos/internal/domain"

	"github.com/shopspring/decimal"
)

type MenuRepository interface {
	CreateCategory(cat *domain.Category) error
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(cat *domain.Category) error
	DeleteCategory(id int) (int64, error)

	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(categoryID *int, availableOnly bool) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(id int) (int64, error)
	SetMenuItemAvailability(id int, available bool) error
}

type InventoryRepository interface {
	CreateInventoryItem(item *domain.InventoryItem) error
	ListInventoryItems() ([]domain.InventoryItem, error)
	GetInventoryItem(id int) (*domain.InventoryItem, error)
	UpdateInventoryItem(item *domain.InventoryItem) error
	DeleteInventoryItem(id int) (int64, error)
	UpdateStock(id, newStock int, restocked bool) (int, error)
	UpsertActiveAlert(inventoryID int, level domain.AlertLevel) error
	ClearActiveAlert(inventoryID int) error
	ListAlerts(unacknowledgedOnly bool) ([]domain.LowStockAlert, error)
	AcknowledgeAlert(alertID, userID int) error
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, []domain.OrderItem, error)
	ListOrders(filter domain.OrderFilter) ([]domain.Order, error)
	DeleteOrder(orderID int) (int64, error)
	ApplyTransition(orderID int, newStatus domain.OrderStatus, changeStatus bool, action *domain.OrderAction) error
	ApplyDiscount(orderID int, disc *domain.OrderDiscount, newDiscountTotal, newOrderTotal decimal.Decimal) error
	ListOrderActions(orderID int) ([]domain.OrderAction, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

// MenuReader is the slice of the menu store checkout needs to freeze unit
// prices at placement time.
type MenuReader interface {
	GetMenuItem(id int) (*domain.MenuItem, error)
}

type StaffRepository interface {
	CreateProfile(profile *domain.Profile) error
	ListProfiles() ([]domain.Profile, error)
	GetProfile(userID int) (*domain.Profile, error)
	UpdateProfileName(userID int, fullName string) error
	UpdateProfileRole(userID int, role domain.Role) error
}

type AuditRepository interface {
	InsertActivityLog(entry *domain.ActivityLog) error
	ListActivityLogs(limit int) ([]domain.ActivityLog, error)
	InsertSalesLog(entry *domain.SalesLog) error
	ListSalesLogs(from, to *time.Time) ([]domain.SalesLog, error)
}

type ReportRepository interface {
	DailySalesSummary(day time.Time) (*domain.DailySalesReport, error)
	TopItems(day time.Time, limit int) ([]domain.TopItem, error)
}

type ReportCache interface {
	TopItemQuantities(ctx context.Context, day string, limit int) (map[int]int, error)
	LatestOrderNumber(ctx context.Context) (string, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// ActivityRecorder is the best-effort audit sink. Implementations must
// never propagate failures to the caller; a lost audit row is logged, not
// fatal.
type ActivityRecorder interface {
	Record(action, description string, userID *int, metadata map[string]string)
	RecordSale(orderID int, amount decimal.Decimal, userID *int)
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type MenuServiceInterface interface {
	CreateCategory(actor *domain.Profile, cat *domain.Category) error
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(actor *domain.Profile, cat *domain.Category) error
	DeleteCategory(actor *domain.Profile, id int) (int64, error)
	CreateItem(actor *domain.Profile, item *domain.MenuItem) error
	ListItems(categoryID *int, availableOnly bool) ([]domain.MenuItem, error)
	GetItem(id int) (*domain.MenuItem, error)
	UpdateItem(actor *domain.Profile, item *domain.MenuItem) error
	DeleteItem(actor *domain.Profile, id int) (int64, error)
	SetItemAvailability(actor *domain.Profile, id int, available bool) error
}

type InventoryServiceInterface interface {
	Create(actor *domain.Profile, item *domain.InventoryItem) error
	List() ([]domain.InventoryItem, error)
	Get(id int) (*domain.InventoryItem, error)
	Update(actor *domain.Profile, item *domain.InventoryItem) error
	Delete(actor *domain.Profile, id int) (int64, error)
	UpdateStock(actor *domain.Profile, id, newStock int, restocked bool) (*domain.InventoryItem, error)
	ListAlerts(unacknowledgedOnly bool) ([]domain.LowStockAlert, error)
	AcknowledgeAlert(actor *domain.Profile, alertID int) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, actor *domain.Profile, input PlaceOrderInput) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	List(filter domain.OrderFilter) ([]domain.Order, error)
	Delete(actor *domain.Profile, orderID int) (int64, error)
	ApplyAction(ctx context.Context, actor *domain.Profile, orderID int, input OrderActionInput) (*domain.Order, error)
	Actions(orderID int) ([]domain.OrderAction, error)
	GetQRCode(orderID int) ([]byte, error)
	QRLink(orderID int) string
}

type StaffServiceInterface interface {
	Create(profile *domain.Profile) error
	List() ([]domain.Profile, error)
	Get(userID int) (*domain.Profile, error)
	Rename(actor *domain.Profile, userID int, fullName string) error
	ChangeRole(actor *domain.Profile, userID int, role domain.Role) error
}

type ReportServiceInterface interface {
	DailySales(day time.Time) (*domain.DailySalesReport, error)
	TopItems(ctx context.Context, day time.Time, limit int) ([]domain.TopItem, error)
	SalesHistory(from, to *time.Time) ([]domain.SalesLog, error)
	ActivityHistory(limit int) ([]domain.ActivityLog, error)
	LatestOrderNumber(ctx context.Context) (string, error)
}
