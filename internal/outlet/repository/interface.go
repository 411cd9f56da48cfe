package repository

import (
	"context"

	"outlet-assistant/internal/model"
)

// Database is the outlets database backing the natural-language search.
type Database interface {
	// Populate resets the outlets table to the sample dataset.
	Populate(ctx context.Context) error

	// ExecuteSelect runs a SELECT statement and returns generic rows.
	ExecuteSelect(ctx context.Context, query string) ([]model.OutletRow, error)

	// Close releases the underlying connection.
	Close() error
}
