package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"outlet-assistant/internal/model"
	"outlet-assistant/internal/product"
	"outlet-assistant/internal/product/repository"
	pkgLog "outlet-assistant/pkg/log"
	pkgQdrant "outlet-assistant/pkg/qdrant"
	"outlet-assistant/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a new Qdrant product repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) repository.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}

// EnsureCollection creates the products collection if it does not exist.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     r.vectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to ensure collection: %w", err)
	}
	return nil
}

// EmbedProducts embeds and upserts the given products.
func (r *implRepository) EmbedProducts(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = product.EmbeddingText(p)
	}

	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil || len(vectors) != len(products) {
		r.l.Errorf(ctx, "qdrant repository: failed to generate embeddings: %v", err)
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	points := make([]pkgQdrant.Point, len(products))
	for i, p := range products {
		points[i] = pkgQdrant.Point{
			// Qdrant requires UUID or uint64 IDs, so derive one from the product ID.
			ID:     productIDToUUID(p.ID),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"product_id":  p.ID,
				"name":        p.Name,
				"category":    p.Category,
				"price":       p.Price,
				"material":    p.Material,
				"capacity":    p.Capacity,
				"description": p.Description,
				"features":    p.Features,
			},
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert points: %v", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: embedded %d products", len(products))
	return nil
}

// Search returns the top-K products most similar to the query.
func (r *implRepository) Search(ctx context.Context, query string, limit int) ([]model.Product, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]model.Product, 0, len(resp.Result))
	for _, scored := range resp.Result {
		p := payloadToProduct(scored.Payload)
		p.Score = scored.Score
		results = append(results, p)
	}

	r.l.Infof(ctx, "qdrant repository: found %d products for query %q", len(results), query)
	return results, nil
}

func payloadToProduct(payload map[string]interface{}) model.Product {
	p := model.Product{
		ID:          asString(payload["product_id"]),
		Name:        asString(payload["name"]),
		Category:    asString(payload["category"]),
		Price:       asString(payload["price"]),
		Material:    asString(payload["material"]),
		Capacity:    asString(payload["capacity"]),
		Description: asString(payload["description"]),
	}

	if raw, ok := payload["features"].([]interface{}); ok {
		for _, f := range raw {
			if s, ok := f.(string); ok {
				p.Features = append(p.Features, s)
			}
		}
	}

	return p
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// productIDToUUID derives a deterministic UUID so re-ingestion upserts
// instead of duplicating points.
func productIDToUUID(id string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(id)).String()
}
