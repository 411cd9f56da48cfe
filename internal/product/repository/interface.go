package repository

import (
	"context"

	"outlet-assistant/internal/model"
)

// VectorRepository stores product embeddings and serves similarity search.
type VectorRepository interface {
	// EnsureCollection creates the backing collection if it does not exist.
	EnsureCollection(ctx context.Context) error

	// EmbedProducts embeds and upserts the given products.
	EmbedProducts(ctx context.Context, products []model.Product) error

	// Search returns the top-K products most similar to the query.
	Search(ctx context.Context, query string, limit int) ([]model.Product, error)
}
