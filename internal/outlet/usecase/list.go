package usecase

import (
	"context"

	"outlet-assistant/internal/model"
	"outlet-assistant/internal/outlet"
)

// List returns the whole outlet catalog.
func (uc *implUseCase) List(ctx context.Context) []model.Outlet {
	return uc.catalog.All()
}

// ListByArea returns the catalog outlets in one area.
func (uc *implUseCase) ListByArea(ctx context.Context, area string) ([]model.Outlet, error) {
	outlets := uc.catalog.ByArea(area)
	if len(outlets) == 0 {
		return nil, outlet.ErrAreaNotFound
	}
	return outlets, nil
}
