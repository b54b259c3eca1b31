package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

// In-memory stands-ins for the repositories so services run without MySQL.

type fakeMenuStore struct {
	items  []entity.MenuItem
	nextID int
}

func newFakeMenuStore(items ...entity.MenuItem) *fakeMenuStore {
	s := &fakeMenuStore{}
	for _, item := range items {
		s.nextID++
		item.ID = s.nextID
		s.items = append(s.items, item)
	}
	return s
}

func (s *fakeMenuStore) GetActiveItems(ctx context.Context) ([]entity.MenuItem, error) {
	var active []entity.MenuItem
	for _, item := range s.items {
		if item.IsActive {
			active = append(active, item)
		}
	}
	return active, nil
}

func (s *fakeMenuStore) GetAllItems(ctx context.Context) ([]entity.MenuItem, error) {
	return append([]entity.MenuItem(nil), s.items...), nil
}

func (s *fakeMenuStore) GetItemByID(ctx context.Context, id int) (*entity.MenuItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeMenuStore) GetItemByName(ctx context.Context, name string) (*entity.MenuItem, error) {
	for i := range s.items {
		if s.items[i].Name == name {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeMenuStore) CreateItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	s.nextID++
	item.ID = s.nextID
	s.items = append(s.items, *item)
	return item, nil
}

func (s *fakeMenuStore) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *fakeMenuStore) DeactivateItem(ctx context.Context, id int) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsActive = false
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeOrderStore struct {
	orders []entity.Order
	nextID int
}

func (s *fakeOrderStore) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	s.nextID++
	order.ID = s.nextID
	s.orders = append(s.orders, *order)
	return order, nil
}

func (s *fakeOrderStore) ListOrders(ctx context.Context, since time.Time) ([]entity.Order, error) {
	if since.IsZero() {
		return append([]entity.Order(nil), s.orders...), nil
	}
	var filtered []entity.Order
	for _, o := range s.orders {
		if !o.CreatedAt.Before(since) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *fakeOrderStore) CountOrders(ctx context.Context) (int, error) {
	return len(s.orders), nil
}

func testMenuItems() []entity.MenuItem {
	return []entity.MenuItem{
		{Name: "Sandwich A", Price: 3.50, Category: entity.CategorySandwich, IsActive: true},
		{Name: "Sandwich D", Price: 4.50, Category: entity.CategorySandwich, IsPremium: true, IsActive: true},
		{Name: "Crisps B", Price: 1.50, Category: entity.CategoryCrisps, IsActive: true},
		{Name: "Snack C", Price: 1.00, Category: entity.CategorySnack, IsActive: true},
	}
}

func testCatalog() entity.Catalog {
	var catalog entity.Catalog
	for i, item := range testMenuItems() {
		item.ID = i + 1
		catalog.Add(item)
	}
	return catalog
}
