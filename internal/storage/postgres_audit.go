package storage

import (
	"encoding/json"
	"time"

	"coffeeshop-pos/internal/domain"
)

func (r *PostgresRepository) InsertActivityLog(entry *domain.ActivityLog) error {
	var metadata []byte
	if entry.Metadata != nil {
		metadata, _ = json.Marshal(entry.Metadata)
	}
	return r.DB.QueryRow(`
		INSERT INTO activity_logs (action, description, user_id, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		entry.Action, entry.Description, entry.UserID, metadata).
		Scan(&entry.ID, &entry.CreatedAt)
}

func (r *PostgresRepository) ListActivityLogs(limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.DB.Query(`
		SELECT id, action, description, user_id, metadata, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityLog
	for rows.Next() {
		var entry domain.ActivityLog
		var metadata []byte
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Description,
			&entry.UserID, &metadata, &entry.CreatedAt); err != nil {
			continue
		}
		if len(metadata) > 0 {
			_ = json.Unmarshal(metadata, &entry.Metadata)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *PostgresRepository) InsertSalesLog(entry *domain.SalesLog) error {
	return r.DB.QueryRow(`
		INSERT INTO sales_logs (action, order_id, amount, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		entry.Action, entry.OrderID, entry.Amount, entry.UserID).
		Scan(&entry.ID, &entry.CreatedAt)
}

func (r *PostgresRepository) ListSalesLogs(from, to *time.Time) ([]domain.SalesLog, error) {
	rows, err := r.DB.Query(`
		SELECT id, action, order_id, amount, user_id, created_at
		FROM sales_logs
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.SalesLog
	for rows.Next() {
		var entry domain.SalesLog
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.OrderID,
			&entry.Amount, &entry.UserID, &entry.CreatedAt); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// DailySalesSummary aggregates completed orders for one calendar day.
func (r *PostgresRepository) DailySalesSummary(day time.Time) (*domain.DailySalesReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	report := domain.DailySalesReport{Date: start.Format("2006-01-02")}
	err := r.DB.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount), 0),
		       COALESCE(SUM(tax_amount), 0),
		       COALESCE(SUM(discount_amount), 0)
		FROM orders
		WHERE status = 'completed' AND created_at >= $1 AND created_at < $2`,
		start, end).
		Scan(&report.OrderCount, &report.GrossSales, &report.TaxCollected, &report.DiscountsGiven)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *PostgresRepository) TopItems(day time.Time, limit int) ([]domain.TopItem, error) {
	if limit <= 0 {
		limit = 10
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := r.DB.Query(`
		SELECT oi.menu_item_id, m.name, SUM(oi.quantity) AS sold
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN menu_items m ON oi.menu_item_id = m.id
		WHERE o.created_at >= $1 AND o.created_at < $2 AND o.status NOT IN ('cancelled', 'void')
		GROUP BY oi.menu_item_id, m.name
		ORDER BY sold DESC
		LIMIT $3`, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.TopItem
	for rows.Next() {
		var item domain.TopItem
		if err := rows.Scan(&item.MenuItemID, &item.MenuItemName, &item.QuantitySold); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
