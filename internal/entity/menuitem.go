package entity

import "time"

const (
	CategorySandwich = "sandwich"
	CategoryCrisps   = "crisps"
	CategorySnack    = "snack"
)

// ValidCategory reports whether category is one of the three menu categories.
func ValidCategory(category string) bool {
	switch category {
	case CategorySandwich, CategoryCrisps, CategorySnack:
		return true
	}
	return false
}

type MenuItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	IsPremium bool      `json:"is_premium"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Catalog is a snapshot of the active menu grouped by category. Orders are
// priced against a snapshot, so a concurrent menu edit never affects an
// in-flight submission.
type Catalog struct {
	Sandwiches []MenuItem `json:"sandwiches"`
	Crisps     []MenuItem `json:"crisps"`
	Snacks     []MenuItem `json:"snacks"`
}

func (c *Catalog) Add(item MenuItem) {
	switch item.Category {
	case CategorySandwich:
		c.Sandwiches = append(c.Sandwiches, item)
	case CategoryCrisps:
		c.Crisps = append(c.Crisps, item)
	case CategorySnack:
		c.Snacks = append(c.Snacks, item)
	}
}

// Find looks up an item by name within a category of the snapshot.
func (c *Catalog) Find(category, name string) (*MenuItem, bool) {
	var items []MenuItem
	switch category {
	case CategorySandwich:
		items = c.Sandwiches
	case CategoryCrisps:
		items = c.Crisps
	case CategorySnack:
		items = c.Snacks
	}
	for i := range items {
		if items[i].Name == name {
			return &items[i], true
		}
	}
	return nil, false
}

/*
MySQL schema:

CREATE TABLE menu_items (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE,
	price DOUBLE NOT NULL,
	category VARCHAR(20) NOT NULL,
	is_premium BOOLEAN NOT NULL DEFAULT FALSE,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);
*/
