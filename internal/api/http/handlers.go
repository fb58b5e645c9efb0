package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"coffeeshop-pos/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

type Handler struct {
	Menu      service.MenuServiceInterface
	Inventory service.InventoryServiceInterface
	Orders    service.OrderServiceInterface
	Staff     service.StaffServiceInterface
	Reports   service.ReportServiceInterface
}

func NewHandler(menuSvc service.MenuServiceInterface, inventorySvc service.InventoryServiceInterface,
	orderSvc service.OrderServiceInterface, staffSvc service.StaffServiceInterface,
	reportSvc service.ReportServiceInterface) *Handler {
	return &Handler{
		Menu:      menuSvc,
		Inventory: inventorySvc,
		Orders:    orderSvc,
		Staff:     staffSvc,
		Reports:   reportSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories/{id}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu-items/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menu-items/{id}/availability", h.setMenuItemAvailability).Methods("PATCH")

	r.HandleFunc("/api/inventory", h.createInventoryItem).Methods("POST")
	r.HandleFunc("/api/inventory", h.getInventoryItems).Methods("GET")
	r.HandleFunc("/api/inventory/alerts", h.getAlerts).Methods("GET")
	r.HandleFunc("/api/inventory/alerts/{id}/acknowledge", h.acknowledgeAlert).Methods("POST")
	r.HandleFunc("/api/inventory/{id}", h.getInventoryItem).Methods("GET")
	r.HandleFunc("/api/inventory/{id}", h.updateInventoryItem).Methods("PUT")
	r.HandleFunc("/api/inventory/{id}", h.deleteInventoryItem).Methods("DELETE")
	r.HandleFunc("/api/inventory/{id}/stock", h.updateStock).Methods("PUT")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/actions", h.applyOrderAction).Methods("POST")
	r.HandleFunc("/api/orders/{id}/actions", h.getOrderActions).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/staff", h.createProfile).Methods("POST")
	r.HandleFunc("/api/staff", h.getProfiles).Methods("GET")
	r.HandleFunc("/api/staff/{id}", h.getProfile).Methods("GET")
	r.HandleFunc("/api/staff/{id}", h.renameProfile).Methods("PUT")
	r.HandleFunc("/api/staff/{id}/role", h.changeRole).Methods("PUT")

	r.HandleFunc("/api/reports/daily", h.getDailySales).Methods("GET")
	r.HandleFunc("/api/reports/top-items", h.getTopItems).Methods("GET")
	r.HandleFunc("/api/sales-logs", h.getSalesLogs).Methods("GET")
	r.HandleFunc("/api/activity-logs", h.getActivityLogs).Methods("GET")
	r.HandleFunc("/api/notifications/latest-order", h.getLatestOrder).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-server",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps service sentinels to status codes; anything unrecognized
// is a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, service.ErrVoidNotAllowed),
		errors.Is(err, service.ErrRoleChangeForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrOrderNotEditable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrAmountRequired),
		errors.Is(err, service.ErrUnknownAction),
		errors.Is(err, service.ErrInvalidOrderType),
		errors.Is(err, service.ErrUnknownDiscount),
		errors.Is(err, service.ErrInvalidDiscount),
		errors.Is(err, service.ErrDiscountTooLarge),
		errors.Is(err, service.ErrQuantityOutOfRange),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrNegativeStock),
		errors.Is(err, service.ErrUnknownRole):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
