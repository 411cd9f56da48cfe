package usecase

import (
	"context"
	"fmt"

	"outlet-assistant/internal/product"
)

// Ingest embeds the product catalog into the vector store.
func (uc *implUseCase) Ingest(ctx context.Context) error {
	if uc.vectorRepo == nil {
		return product.ErrUnavailable
	}

	if err := uc.vectorRepo.EnsureCollection(ctx); err != nil {
		return fmt.Errorf("failed to ensure collection: %w", err)
	}

	catalog := product.Catalog()
	if err := uc.vectorRepo.EmbedProducts(ctx, catalog); err != nil {
		return fmt.Errorf("failed to embed products: %w", err)
	}

	uc.l.Infof(ctx, "Ingest: embedded %d catalog products", len(catalog))
	return nil
}
