package httpapi

import (
	"net/http"
	"strconv"
	"time"
)

func reportDay(r *http.Request) time.Time {
	if raw := r.URL.Query().Get("date"); raw != "" {
		if day, err := time.Parse("2006-01-02", raw); err == nil {
			return day
		}
	}
	return time.Now()
}

func (h *Handler) getDailySales(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.DailySales(reportDay(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.Reports.TopItems(r.Context(), reportDay(r), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getSalesLogs(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			from = &parsed
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			to = &parsed
		}
	}
	logs, err := h.Reports.SalesHistory(from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *Handler) getActivityLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	logs, err := h.Reports.ActivityHistory(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// getLatestOrder backs the order-management screen's polling for the
// new-order banner.
func (h *Handler) getLatestOrder(w http.ResponseWriter, r *http.Request) {
	latest, err := h.Reports.LatestOrderNumber(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_number": latest})
}
