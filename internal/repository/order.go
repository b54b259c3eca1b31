package repository

import (
	"context"
	"time"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store}
}

const orderColumns = `id, sandwich_name, crisps_name, snack_name, sandwich_price, crisps_price, snack_price, total_price, offer_applied, savings, created_at`

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	query := `
		INSERT INTO orders (sandwich_name, crisps_name, snack_name, sandwich_price, crisps_price, snack_price, total_price, offer_applied, savings, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	err := r.store.do(ctx, func() error {
		res, err := r.store.db.ExecContext(ctx, query,
			order.SandwichName, order.CrispsName, order.SnackName,
			order.SandwichPrice, order.CrispsPrice, order.SnackPrice,
			order.TotalPrice, order.OfferApplied, order.Savings, order.CreatedAt)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		order.ID = int(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns orders in id order (oldest first). A zero since returns
// the whole log; otherwise only orders created at or after since.
func (r *OrderRepository) ListOrders(ctx context.Context, since time.Time) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id`
	args := []interface{}{}
	if !since.IsZero() {
		query = `SELECT ` + orderColumns + ` FROM orders WHERE created_at >= ? ORDER BY id`
		args = append(args, since)
	}

	var orders []entity.Order
	err := r.store.do(ctx, func() error {
		orders = orders[:0]
		rows, err := r.store.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var o entity.Order
			err := rows.Scan(&o.ID, &o.SandwichName, &o.CrispsName, &o.SnackName,
				&o.SandwichPrice, &o.CrispsPrice, &o.SnackPrice,
				&o.TotalPrice, &o.OfferApplied, &o.Savings, &o.CreatedAt)
			if err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) CountOrders(ctx context.Context) (int, error) {
	var count int
	err := r.store.do(ctx, func() error {
		return r.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
