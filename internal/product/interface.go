package product

import "context"

// UseCase defines the business logic interface for the product domain.
type UseCase interface {
	// Query retrieves relevant products by vector search and generates a
	// grounded answer.
	Query(ctx context.Context, input QueryInput) (QueryOutput, error)

	// Ingest embeds the product catalog into the vector store.
	Ingest(ctx context.Context) error
}
