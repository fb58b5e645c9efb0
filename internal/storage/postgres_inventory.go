package storage

import (
	"database/sql"
	"time"

	"coffeeshop-pos/internal/domain"
)

func (r *PostgresRepository) CreateInventoryItem(item *domain.InventoryItem) error {
	return r.DB.QueryRow(`
		INSERT INTO inventory_items (item_name, current_stock, min_stock_level, max_stock_level, unit, cost_per_unit, supplier)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		item.ItemName, item.CurrentStock, item.MinStockLevel, item.MaxStockLevel,
		item.Unit, item.CostPerUnit, item.Supplier).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) ListInventoryItems() ([]domain.InventoryItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, item_name, current_stock, min_stock_level, max_stock_level,
		       COALESCE(unit, ''), cost_per_unit, COALESCE(supplier, ''),
		       last_restocked, created_at, updated_at
		FROM inventory_items
		ORDER BY item_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.CurrentStock,
			&item.MinStockLevel, &item.MaxStockLevel, &item.Unit, &item.CostPerUnit,
			&item.Supplier, &item.LastRestocked, &item.CreatedAt, &item.UpdatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetInventoryItem(id int) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.DB.QueryRow(`
		SELECT id, item_name, current_stock, min_stock_level, max_stock_level,
		       COALESCE(unit, ''), cost_per_unit, COALESCE(supplier, ''),
		       last_restocked, created_at, updated_at
		FROM inventory_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.ItemName, &item.CurrentStock,
			&item.MinStockLevel, &item.MaxStockLevel, &item.Unit, &item.CostPerUnit,
			&item.Supplier, &item.LastRestocked, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateInventoryItem(item *domain.InventoryItem) error {
	return r.DB.QueryRow(`
		UPDATE inventory_items
		SET item_name=$1, min_stock_level=$2, max_stock_level=$3, unit=$4,
		    cost_per_unit=$5, supplier=$6, updated_at=NOW()
		WHERE id=$7
		RETURNING created_at, updated_at`,
		item.ItemName, item.MinStockLevel, item.MaxStockLevel, item.Unit,
		item.CostPerUnit, item.Supplier, item.ID).
		Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) DeleteInventoryItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM inventory_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// UpdateStock sets the new stock value and returns the previous one so the
// caller can tell whether the value actually changed.
func (r *PostgresRepository) UpdateStock(id, newStock int, restocked bool) (int, error) {
	var previous int
	if err := r.DB.QueryRow("SELECT current_stock FROM inventory_items WHERE id=$1", id).
		Scan(&previous); err != nil {
		return 0, err
	}

	var lastRestocked interface{}
	if restocked {
		lastRestocked = time.Now()
	}
	var err error
	if restocked {
		_, err = r.DB.Exec(
			"UPDATE inventory_items SET current_stock=$1, last_restocked=$2, updated_at=NOW() WHERE id=$3",
			newStock, lastRestocked, id)
	} else {
		_, err = r.DB.Exec(
			"UPDATE inventory_items SET current_stock=$1, updated_at=NOW() WHERE id=$2",
			newStock, id)
	}
	return previous, err
}

// UpsertActiveAlert keeps at most one unacknowledged alert per item,
// updating the level in place. Acknowledged rows are history and are never
// touched (the partial unique index only covers unacknowledged rows).
func (r *PostgresRepository) UpsertActiveAlert(inventoryID int, level domain.AlertLevel) error {
	_, err := r.DB.Exec(`
		INSERT INTO low_stock_alerts (inventory_id, alert_level)
		VALUES ($1, $2)
		ON CONFLICT (inventory_id) WHERE NOT is_acknowledged
		DO UPDATE SET alert_level = EXCLUDED.alert_level, created_at = NOW()`,
		inventoryID, string(level))
	return err
}

func (r *PostgresRepository) ClearActiveAlert(inventoryID int) error {
	_, err := r.DB.Exec(
		"DELETE FROM low_stock_alerts WHERE inventory_id=$1 AND NOT is_acknowledged",
		inventoryID)
	return err
}

func (r *PostgresRepository) ListAlerts(unacknowledgedOnly bool) ([]domain.LowStockAlert, error) {
	rows, err := r.DB.Query(`
		SELECT a.id, a.inventory_id, i.item_name, a.alert_level,
		       a.is_acknowledged, a.acknowledged_by, a.acknowledged_at, a.created_at
		FROM low_stock_alerts a
		JOIN inventory_items i ON a.inventory_id = i.id
		WHERE ($1 = FALSE OR NOT a.is_acknowledged)
		ORDER BY a.created_at DESC`, unacknowledgedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []domain.LowStockAlert
	for rows.Next() {
		var alert domain.LowStockAlert
		if err := rows.Scan(&alert.ID, &alert.InventoryID, &alert.ItemName,
			&alert.AlertLevel, &alert.IsAcknowledged, &alert.AcknowledgedBy,
			&alert.AcknowledgedAt, &alert.CreatedAt); err != nil {
			continue
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func (r *PostgresRepository) AcknowledgeAlert(alertID, userID int) error {
	result, err := r.DB.Exec(`
		UPDATE low_stock_alerts
		SET is_acknowledged = TRUE, acknowledged_by = $1, acknowledged_at = NOW()
		WHERE id = $2 AND NOT is_acknowledged`,
		userID, alertID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
