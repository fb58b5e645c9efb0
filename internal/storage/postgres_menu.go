package storage

import (
	"coffeeshop-pos/internal/domain"
)

func (r *PostgresRepository) CreateCategory(cat *domain.Category) error {
	return r.DB.QueryRow(
		"INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id, created_at",
		cat.Name, cat.Description,
	).Scan(&cat.ID, &cat.CreatedAt)
}

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), created_at
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (r *PostgresRepository) GetCategory(id int) (*domain.Category, error) {
	var cat domain.Category
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), created_at
		FROM categories
		WHERE id = $1`, id).
		Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *PostgresRepository) UpdateCategory(cat *domain.Category) error {
	return r.DB.QueryRow(
		"UPDATE categories SET name=$1, description=$2 WHERE id=$3 RETURNING id, name, COALESCE(description, ''), created_at",
		cat.Name, cat.Description, cat.ID).
		Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt)
}

// DeleteCategory nulls category_id on menu items via ON DELETE SET NULL.
func (r *PostgresRepository) DeleteCategory(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM categories WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, description, price, category_id, is_available, preparation_time, size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		item.Name, item.Description, item.Price, item.CategoryID,
		item.IsAvailable, item.PreparationTime, item.Size).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) ListMenuItems(categoryID *int, availableOnly bool) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, category_id,
		       is_available, preparation_time, COALESCE(size, ''), created_at, updated_at
		FROM menu_items
		WHERE ($1::int IS NULL OR category_id = $1)
		  AND ($2 = FALSE OR is_available)
		ORDER BY name`
	rows, err := r.DB.Query(query, categoryID, availableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.CategoryID, &item.IsAvailable, &item.PreparationTime, &item.Size,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, category_id,
		       is_available, preparation_time, COALESCE(size, ''), created_at, updated_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.CategoryID, &item.IsAvailable, &item.PreparationTime, &item.Size,
			&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, category_id=$4,
		    is_available=$5, preparation_time=$6, size=$7, updated_at=NOW()
		WHERE id=$8
		RETURNING created_at, updated_at`,
		item.Name, item.Description, item.Price, item.CategoryID,
		item.IsAvailable, item.PreparationTime, item.Size, item.ID).
		Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetMenuItemAvailability(id int, available bool) error {
	_, err := r.DB.Exec(
		"UPDATE menu_items SET is_available=$1, updated_at=NOW() WHERE id=$2",
		available, id)
	return err
}
