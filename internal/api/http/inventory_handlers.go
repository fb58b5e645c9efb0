package httpapi

import (
	"encoding/json"
	"net/http"

	"coffeeshop-pos/internal/domain"

	"github.com/shopspring/decimal"
)

type inventoryItemRequest struct {
	ItemName      string          `json:"item_name" validate:"required"`
	CurrentStock  int             `json:"current_stock" validate:"gte=0"`
	MinStockLevel int             `json:"min_stock_level" validate:"gte=0"`
	MaxStockLevel int             `json:"max_stock_level" validate:"gte=0"`
	Unit          string          `json:"unit"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	Supplier      string          `json:"supplier"`
}

type stockUpdateRequest struct {
	CurrentStock int  `json:"current_stock" validate:"gte=0"`
	Restocked    bool `json:"restocked"`
}

func (h *Handler) createInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item := domain.InventoryItem{
		ItemName:      req.ItemName,
		CurrentStock:  req.CurrentStock,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
		Unit:          req.Unit,
		CostPerUnit:   req.CostPerUnit,
		Supplier:      req.Supplier,
	}
	if err := h.Inventory.Create(staffFrom(r), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getInventoryItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	item, err := h.Inventory.Get(id)
	if err != nil {
		http.Error(w, "Inventory item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var req inventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item := domain.InventoryItem{
		ID:            id,
		ItemName:      req.ItemName,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
		Unit:          req.Unit,
		CostPerUnit:   req.CostPerUnit,
		Supplier:      req.Supplier,
	}
	if err := h.Inventory.Update(staffFrom(r), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	rows, err := h.Inventory.Delete(staffFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Inventory item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updateStock is the one write that drives alerting: the service compares
// old and new values and refreshes the item's active alert.
func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var req stockUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Inventory.UpdateStock(staffFrom(r), id, req.CurrentStock, req.Restocked)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getAlerts(w http.ResponseWriter, r *http.Request) {
	unacknowledgedOnly := r.URL.Query().Get("unacknowledged") == "true"
	alerts, err := h.Inventory.ListAlerts(unacknowledgedOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (h *Handler) acknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Inventory.AcknowledgeAlert(staffFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "acknowledged"})
}
