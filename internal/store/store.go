// Package store is the data access layer: one parameterized query per method
// over the relational schema. Multi-entity consistency is the caller's concern.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrUnavailable is returned by writes when no database handle is configured.
// Reads degrade to empty results instead.
var ErrUnavailable = errors.New("store unavailable")

type Store struct {
	db *gorm.DB
}

// New wraps an already-opened gorm handle. A nil handle is tolerated: reads
// return empty results and writes fail with ErrUnavailable.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) available() bool {
	return s != nil && s.db != nil
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// notFoundToNil maps gorm's record-not-found to a plain nil error so lookups
// never fail for missing rows.
func notFoundToNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
