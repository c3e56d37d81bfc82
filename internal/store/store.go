// Package store persists the append-only event record set.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/campusintel/eventd/internal/config"
	"github.com/campusintel/eventd/internal/model"
)

// Store defines the persistence interface for event records. Records are
// append-only: there are no update or delete operations.
type Store interface {
	// InsertEvent appends a record, assigning its ID and creation time.
	InsertEvent(ctx context.Context, event model.Event) (*model.Event, error)
	// ListEvents returns records in insertion order. A limit <= 0 means
	// no cap.
	ListEvents(ctx context.Context, limit int) ([]model.Event, error)
	// CountEvents returns the total number of records.
	CountEvents(ctx context.Context) (int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store for the configured driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return NewSQLite(cfg.DatabaseURL)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL, &cfg.Pool)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
