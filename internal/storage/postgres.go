package storage

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
			category_id INT REFERENCES categories(id) ON DELETE SET NULL,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			preparation_time INT NOT NULL DEFAULT 0,
			size TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_items (
			id SERIAL PRIMARY KEY,
			item_name TEXT NOT NULL,
			current_stock INT NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
			min_stock_level INT NOT NULL DEFAULT 0,
			max_stock_level INT NOT NULL DEFAULT 0,
			unit TEXT,
			cost_per_unit NUMERIC(12,2) NOT NULL DEFAULT 0,
			supplier TEXT,
			last_restocked TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS low_stock_alerts (
			id SERIAL PRIMARY KEY,
			inventory_id INT NOT NULL REFERENCES inventory_items(id) ON DELETE CASCADE,
			alert_level TEXT NOT NULL,
			is_acknowledged BOOLEAN NOT NULL DEFAULT FALSE,
			acknowledged_by INT,
			acknowledged_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS low_stock_alerts_active_idx
			ON low_stock_alerts (inventory_id) WHERE NOT is_acknowledged`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			order_type TEXT NOT NULL DEFAULT 'takeout',
			pickup_time TIMESTAMPTZ,
			customer_notes TEXT,
			total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			tax_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			discount_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			payment_method TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			cashier_id INT,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INT NOT NULL REFERENCES menu_items(id) ON DELETE RESTRICT,
			quantity INT NOT NULL CHECK (quantity >= 1),
			unit_price NUMERIC(12,2) NOT NULL,
			total_price NUMERIC(12,2) NOT NULL,
			special_instructions TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_actions (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			action_type TEXT NOT NULL,
			action_by TEXT NOT NULL,
			amount NUMERIC(12,2),
			reason TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_discounts (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			discount_type TEXT NOT NULL,
			discount_value NUMERIC(12,2) NOT NULL,
			discount_amount NUMERIC(12,2) NOT NULL,
			applied_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_counters (
			day TEXT PRIMARY KEY,
			counter INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS activity_logs (
			id SERIAL PRIMARY KEY,
			action TEXT NOT NULL,
			description TEXT NOT NULL,
			user_id INT,
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sales_logs (
			id SERIAL PRIMARY KEY,
			action TEXT NOT NULL,
			order_id INT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			user_id INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id SERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'cashier',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
