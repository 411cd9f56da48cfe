package outlet

import (
	"context"

	"outlet-assistant/internal/model"
)

// UseCase defines the business logic interface for the outlet domain.
type UseCase interface {
	// List returns the whole outlet catalog.
	List(ctx context.Context) []model.Outlet

	// ListByArea returns the catalog outlets in one area.
	ListByArea(ctx context.Context, area string) ([]model.Outlet, error)

	// SearchNL answers a natural-language question by generating and
	// executing a SELECT query over the outlets database.
	SearchNL(ctx context.Context, input SearchNLInput) (SearchNLOutput, error)
}
