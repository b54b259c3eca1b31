package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/brentsteel/lunchmenu/migrations"
)

// Store holds the shared database handle for the repositories.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// do runs op and, on a store failure, performs one lazy schema-and-seed pass
// before retrying op a single time. Repeated failure surfaces the original
// operational error; sql.ErrNoRows is a domain condition and never retried.
func (s *Store) do(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if initErr := migrations.EnsureSchema(ctx, s.db); initErr != nil {
		return err
	}
	return op()
}
