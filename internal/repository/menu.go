package repository

import (
	"context"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

type MenuRepository struct {
	store *Store
}

func NewMenuRepository(store *Store) *MenuRepository {
	return &MenuRepository{store}
}

const menuColumns = `id, name, price, category, is_premium, is_active, created_at, updated_at`

func (r *MenuRepository) GetActiveItems(ctx context.Context) ([]entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE is_active = TRUE ORDER BY category, id`
	return r.queryItems(ctx, query)
}

func (r *MenuRepository) GetAllItems(ctx context.Context) ([]entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items ORDER BY category, id`
	return r.queryItems(ctx, query)
}

func (r *MenuRepository) queryItems(ctx context.Context, query string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem

	err := r.store.do(ctx, func() error {
		items = items[:0]
		rows, err := r.store.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var item entity.MenuItem
			err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.IsPremium, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) GetItemByID(ctx context.Context, id int) (*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ?`
	return r.queryItem(ctx, query, id)
}

// GetItemByName matches against every row, active or not; name uniqueness
// holds across soft-deleted items too.
func (r *MenuRepository) GetItemByName(ctx context.Context, name string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE name = ?`
	return r.queryItem(ctx, query, name)
}

func (r *MenuRepository) queryItem(ctx context.Context, query string, arg interface{}) (*entity.MenuItem, error) {
	var item entity.MenuItem

	err := r.store.do(ctx, func() error {
		return r.store.db.QueryRowContext(ctx, query, arg).
			Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.IsPremium, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	query := `INSERT INTO menu_items (name, price, category, is_premium, is_active) VALUES (?, ?, ?, ?, ?)`

	err := r.store.do(ctx, func() error {
		res, err := r.store.db.ExecContext(ctx, query, item.Name, item.Price, item.Category, item.IsPremium, item.IsActive)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		item.ID = int(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	query := `UPDATE menu_items SET name = ?, price = ?, category = ?, is_premium = ?, is_active = ? WHERE id = ?`

	return r.store.do(ctx, func() error {
		_, err := r.store.db.ExecContext(ctx, query, item.Name, item.Price, item.Category, item.IsPremium, item.IsActive, item.ID)
		return err
	})
}

// DeactivateItem soft-deletes: the row stays so historical orders keep a
// readable name/price trail.
func (r *MenuRepository) DeactivateItem(ctx context.Context, id int) error {
	query := `UPDATE menu_items SET is_active = FALSE WHERE id = ?`

	return r.store.do(ctx, func() error {
		_, err := r.store.db.ExecContext(ctx, query, id)
		return err
	})
}
