package storage

import (
	"database/sql"
	"fmt"
	"time"

	"coffeeshop-pos/internal/domain"

	"github.com/shopspring/decimal"
)

// FormatOrderNumber renders the receipt number for the given day and
// counter slot as ORD-YYYYMMDD-NNNN.
func FormatOrderNumber(day time.Time, seq int) string {
	return fmt.Sprintf("ORD-%s-%04d", day.Format("20060102"), seq)
}

// nextOrderNumber reserves the next slot in the day-scoped counter. The
// counter lives in the same transaction as the order insert, so numbers are
// unique and never reused even when placements race.
func nextOrderNumber(tx *sql.Tx, now time.Time) (string, error) {
	var seq int
	err := tx.QueryRow(`
		INSERT INTO order_counters (day, counter)
		VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET counter = order_counters.counter + 1
		RETURNING counter`, now.Format("20060102")).Scan(&seq)
	if err != nil {
		return "", err
	}
	return FormatOrderNumber(now, seq), nil
}

// CreateOrder writes the order, its line items and the initial "place"
// action in a single transaction. Line totals are frozen at insert time and
// never recomputed.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	order.OrderNumber, err = nextOrderNumber(tx, time.Now())
	if err != nil {
		return err
	}

	if err := tx.QueryRow(`
		INSERT INTO orders (order_number, customer_name, customer_phone, order_type,
		                    pickup_time, customer_notes, total_amount, tax_amount,
		                    discount_amount, payment_method, status, cashier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.CustomerName, order.CustomerPhone, order.OrderType,
		order.PickupTime, order.CustomerNotes, order.TotalAmount, order.TaxAmount,
		order.DiscountAmount, order.PaymentMethod, string(order.Status), order.CashierID).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, total_price, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice,
			item.TotalPrice, item.SpecialInstructions).Scan(&item.ID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO order_actions (order_id, action_type, action_by)
		VALUES ($1, $2, $3)`,
		order.ID, string(domain.ActionPlace), placedBy(order)); err != nil {
		return err
	}

	return tx.Commit()
}

func placedBy(order *domain.Order) string {
	if order.CashierID != nil {
		return fmt.Sprintf("cashier:%d", *order.CashierID)
	}
	return "customer"
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, []domain.OrderItem, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, order_number, customer_name, customer_phone, order_type,
		       pickup_time, COALESCE(customer_notes, ''), total_amount, tax_amount,
		       discount_amount, COALESCE(payment_method, ''), status, cashier_id,
		       created_at, updated_at
		FROM orders WHERE id = $1`, orderID).
		Scan(&order.ID, &order.OrderNumber, &order.CustomerName, &order.CustomerPhone,
			&order.OrderType, &order.PickupTime, &order.CustomerNotes, &order.TotalAmount,
			&order.TaxAmount, &order.DiscountAmount, &order.PaymentMethod, &order.Status,
			&order.CashierID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, nil, err
	}

	rows, err := r.DB.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, m.name, oi.quantity,
		       oi.unit_price, oi.total_price, COALESCE(oi.special_instructions, '')
		FROM order_items oi
		JOIN menu_items m ON oi.menu_item_id = m.id
		WHERE oi.order_id = $1`, orderID)
	if err != nil {
		return &order, nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.MenuItemName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.SpecialInstructions); err != nil {
			continue
		}
		items = append(items, item)
	}
	return &order, items, nil
}

func (r *PostgresRepository) ListOrders(filter domain.OrderFilter) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_number, customer_name, customer_phone, order_type,
		       pickup_time, COALESCE(customer_notes, ''), total_amount, tax_amount,
		       discount_amount, COALESCE(payment_method, ''), status, cashier_id,
		       created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = FALSE OR status IN ('pending', 'approved', 'preparing', 'ready'))
		  AND ($3 = '' OR order_type = $3)
		  AND ($4::timestamptz IS NULL OR created_at >= $4)
		  AND ($5::timestamptz IS NULL OR created_at < $5)
		ORDER BY created_at DESC`,
		filter.Status, filter.ActiveOnly, filter.OrderType, filter.From, filter.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.CustomerName,
			&order.CustomerPhone, &order.OrderType, &order.PickupTime, &order.CustomerNotes,
			&order.TotalAmount, &order.TaxAmount, &order.DiscountAmount, &order.PaymentMethod,
			&order.Status, &order.CashierID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// DeleteOrder cascades to the order's items.
func (r *PostgresRepository) DeleteOrder(orderID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id=$1", orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ApplyTransition updates the status (when the action moves it) and appends
// the OrderAction row atomically, so a status change can never be left
// without its audit entry.
func (r *PostgresRepository) ApplyTransition(orderID int, newStatus domain.OrderStatus, changeStatus bool, action *domain.OrderAction) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if changeStatus {
		if _, err := tx.Exec(
			"UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2",
			string(newStatus), orderID); err != nil {
			return err
		}
	}

	action.OrderID = orderID
	if err := tx.QueryRow(`
		INSERT INTO order_actions (order_id, action_type, action_by, amount, reason, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		action.OrderID, string(action.ActionType), action.ActionBy,
		action.Amount, action.Reason, action.Notes).
		Scan(&action.ID, &action.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

// ApplyDiscount records the discount row, refreshes the order's money
// columns and appends the matching action, all in one transaction.
func (r *PostgresRepository) ApplyDiscount(orderID int, disc *domain.OrderDiscount, newDiscountTotal, newOrderTotal decimal.Decimal) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	disc.OrderID = orderID
	if err := tx.QueryRow(`
		INSERT INTO order_discounts (order_id, discount_type, discount_value, discount_amount, applied_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		disc.OrderID, disc.DiscountType, disc.DiscountValue, disc.DiscountAmount, disc.AppliedBy).
		Scan(&disc.ID, &disc.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(
		"UPDATE orders SET discount_amount=$1, total_amount=$2, updated_at=NOW() WHERE id=$3",
		newDiscountTotal, newOrderTotal, orderID); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO order_actions (order_id, action_type, action_by, amount)
		VALUES ($1, $2, $3, $4)`,
		orderID, string(domain.ActionDiscount), disc.AppliedBy, disc.DiscountAmount); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListOrderActions(orderID int) ([]domain.OrderAction, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, action_type, action_by, amount,
		       COALESCE(reason, ''), COALESCE(notes, ''), created_at
		FROM order_actions
		WHERE order_id = $1
		ORDER BY created_at`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []domain.OrderAction
	for rows.Next() {
		var action domain.OrderAction
		if err := rows.Scan(&action.ID, &action.OrderID, &action.ActionType,
			&action.ActionBy, &action.Amount, &action.Reason, &action.Notes,
			&action.CreatedAt); err != nil {
			continue
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}
