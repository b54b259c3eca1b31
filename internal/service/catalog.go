package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

const (
	catalogCacheKey = "catalog:active"
	catalogCacheTTL = 1 * time.Minute
)

// MenuStore is the catalog persistence the service needs; satisfied by
// repository.MenuRepository.
type MenuStore interface {
	GetActiveItems(ctx context.Context) ([]entity.MenuItem, error)
	GetAllItems(ctx context.Context) ([]entity.MenuItem, error)
	GetItemByID(ctx context.Context, id int) (*entity.MenuItem, error)
	GetItemByName(ctx context.Context, name string) (*entity.MenuItem, error)
	CreateItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error)
	UpdateItem(ctx context.Context, item *entity.MenuItem) error
	DeactivateItem(ctx context.Context, id int) error
}

// CatalogService serves the active-catalog snapshot and the admin CRUD over
// menu items. The snapshot is cached in Redis; any mutation invalidates it.
type CatalogService struct {
	menuRepo MenuStore
	rdb      *redis.Client
}

// NewCatalogService creates a new instance of CatalogService. rdb may be nil,
// in which case every snapshot read goes to the database.
func NewCatalogService(menuRepo MenuStore, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		menuRepo: menuRepo,
		rdb:      rdb,
	}
}

// ActiveCatalog returns the snapshot of active items grouped by category.
// Cache errors other than a miss degrade to a database read with a warning;
// the database stays the source of truth.
func (s *CatalogService) ActiveCatalog(ctx context.Context) (*entity.Catalog, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, catalogCacheKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Warn().Err(err).Msg("Error reading catalog from cache")
		}
		if cached != "" {
			var catalog entity.Catalog
			if err := json.Unmarshal([]byte(cached), &catalog); err != nil {
				logger.Warn().Err(err).Msg("Error unmarshalling cached catalog")
			} else {
				return &catalog, nil
			}
		}
	}

	items, err := s.menuRepo.GetActiveItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading active menu items")
		return nil, err
	}

	catalog := &entity.Catalog{}
	for _, item := range items {
		catalog.Add(item)
	}

	if s.rdb != nil {
		data, err := json.Marshal(catalog)
		if err == nil {
			err = s.rdb.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err()
		}
		if err != nil {
			logger.Warn().Err(err).Msg("Error caching catalog")
		}
	}

	return catalog, nil
}

// ListAll returns every menu item, soft-deleted ones included; admin view.
func (s *CatalogService) ListAll(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := s.menuRepo.GetAllItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing menu items")
		return nil, err
	}
	return items, nil
}

// AddItem creates a new active menu item. The name must be unique across the
// whole table: a soft-deleted item still holds its name.
func (s *CatalogService) AddItem(ctx context.Context, name string, price float64, category string, premium bool) (*entity.MenuItem, error) {
	if err := validateItemFields(name, price, category); err != nil {
		return nil, err
	}

	existing, err := s.menuRepo.GetItemByName(ctx, name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.Error().Err(err).Msgf("Error checking menu item name %q", name)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("menu item %q: %w", name, ErrConflict)
	}

	item := &entity.MenuItem{
		Name:      name,
		Price:     price,
		Category:  category,
		IsPremium: premium,
		IsActive:  true,
	}
	created, err := s.menuRepo.CreateItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating menu item %q", name)
		return nil, err
	}

	s.invalidateCache(ctx)
	return created, nil
}

// EditItem replaces all mutable fields of an item, including reactivation.
func (s *CatalogService) EditItem(ctx context.Context, id int, name string, price float64, category string, premium, active bool) (*entity.MenuItem, error) {
	if err := validateItemFields(name, price, category); err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
		}
		logger.Error().Err(err).Msgf("Error getting menu item %d", id)
		return nil, err
	}

	if name != item.Name {
		existing, err := s.menuRepo.GetItemByName(ctx, name)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			logger.Error().Err(err).Msgf("Error checking menu item name %q", name)
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("menu item %q: %w", name, ErrConflict)
		}
	}

	item.Name = name
	item.Price = price
	item.Category = category
	item.IsPremium = premium
	item.IsActive = active

	if err := s.menuRepo.UpdateItem(ctx, item); err != nil {
		logger.Error().Err(err).Msgf("Error updating menu item %d", id)
		return nil, err
	}

	s.invalidateCache(ctx)
	return item, nil
}

// DeleteItem soft-deletes: the item leaves the active catalog and future
// order eligibility, but the row and all historical orders stay intact.
func (s *CatalogService) DeleteItem(ctx context.Context, id int) error {
	_, err := s.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("menu item %d: %w", id, ErrNotFound)
		}
		logger.Error().Err(err).Msgf("Error getting menu item %d", id)
		return err
	}

	if err := s.menuRepo.DeactivateItem(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deactivating menu item %d", id)
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, catalogCacheKey).Err(); err != nil {
		logger.Warn().Err(err).Msg("Error invalidating catalog cache")
	}
}

func validateItemFields(name string, price float64, category string) error {
	if name == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if price < 0 {
		return &ValidationError{Reason: "price must be >= 0"}
	}
	if !entity.ValidCategory(category) {
		return &ValidationError{Reason: fmt.Sprintf("invalid category: %s", category)}
	}
	return nil
}
