package migrations

import (
	"context"
	"database/sql"
	"time"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

// AutoMigrateMenuItems creates the menu_items table if it does not exist.
func AutoMigrateMenuItems(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			price DOUBLE NOT NULL,
			category VARCHAR(20) NOT NULL,
			is_premium BOOLEAN NOT NULL DEFAULT FALSE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateOrders creates the orders table if it does not exist. Orders are
// append-only and reference menu items by name/price snapshot, not by key.
func AutoMigrateOrders(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			sandwich_name VARCHAR(100) NOT NULL,
			crisps_name VARCHAR(100) NOT NULL,
			snack_name VARCHAR(100) NOT NULL,
			sandwich_price DOUBLE NOT NULL,
			crisps_price DOUBLE NOT NULL,
			snack_price DOUBLE NOT NULL,
			total_price DOUBLE NOT NULL,
			offer_applied BOOLEAN NOT NULL,
			savings DOUBLE NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`
	return execWithRetry(db, query, retries)
}

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	if err != nil {
		for i := 0; i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
			if err == nil {
				break
			}
		}
	}
	return err
}

type seedItem struct {
	name     string
	price    float64
	category string
	premium  bool
}

var stockMenu = []seedItem{
	{"Ham & Cheese", 3.50, entity.CategorySandwich, false},
	{"Tuna Mayo", 3.50, entity.CategorySandwich, false},
	{"Chicken Salad", 3.50, entity.CategorySandwich, false},
	{"BLT", 3.50, entity.CategorySandwich, false},
	{"Egg Mayo", 3.50, entity.CategorySandwich, false},
	{"Cheese & Pickle", 3.50, entity.CategorySandwich, false},
	{"Prawn Mayo", 4.50, entity.CategorySandwich, true},
	{"Steak & Onion", 4.50, entity.CategorySandwich, true},
	{"Ready Salted", 1.50, entity.CategoryCrisps, false},
	{"Salt & Vinegar", 1.50, entity.CategoryCrisps, false},
	{"Cheese & Onion", 1.50, entity.CategoryCrisps, false},
	{"Prawn Cocktail", 1.50, entity.CategoryCrisps, false},
	{"BBQ", 1.50, entity.CategoryCrisps, false},
	{"Sour Cream", 1.50, entity.CategoryCrisps, false},
	{"Paprika", 1.50, entity.CategoryCrisps, false},
	{"Spicy Chili", 1.50, entity.CategoryCrisps, false},
	{"Apple", 1.00, entity.CategorySnack, false},
	{"Banana", 1.00, entity.CategorySnack, false},
	{"Chocolate Bar", 2.00, entity.CategorySnack, false},
	{"Granola Bar", 2.00, entity.CategorySnack, false},
	{"Cookie", 1.50, entity.CategorySnack, false},
	{"Brownie", 2.00, entity.CategorySnack, false},
	{"Fruit Pot", 2.50, entity.CategorySnack, false},
	{"Yogurt", 2.00, entity.CategorySnack, false},
}

// SeedMenuItems inserts the stock menu when the table is empty. Admin edits
// afterwards are never overwritten: the seed runs once per empty database.
func SeedMenuItems(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	query := `INSERT INTO menu_items (name, price, category, is_premium) VALUES `
	var values []interface{}
	for _, item := range stockMenu {
		query += "(?, ?, ?, ?),"
		values = append(values, item.name, item.price, item.category, item.premium)
	}
	query = query[:len(query)-1]

	_, err := db.ExecContext(ctx, query, values...)
	return err
}

// EnsureSchema is the idempotent schema-and-seed pass used both at startup
// and for the one-shot lazy recovery after a failed store operation.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if err := AutoMigrateMenuItems(0, db); err != nil {
		return err
	}
	if err := AutoMigrateOrders(0, db); err != nil {
		return err
	}
	return SeedMenuItems(ctx, db)
}
