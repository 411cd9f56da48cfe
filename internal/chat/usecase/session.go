package usecase

import (
	"context"

	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/model"
)

func (uc *implUseCase) History(ctx context.Context, sessionID string) ([]model.Turn, error) {
	turns := uc.store.History(ctx, sessionID)
	if turns == nil {
		turns = []model.Turn{}
	}
	return turns, nil
}

func (uc *implUseCase) Stats(ctx context.Context, sessionID string) (model.SessionStats, error) {
	stats := uc.store.Stats(ctx, sessionID)
	if stats == nil {
		return model.SessionStats{}, chat.ErrSessionNotFound
	}
	return *stats, nil
}

func (uc *implUseCase) ClearSession(ctx context.Context, sessionID string) error {
	if !uc.store.Clear(ctx, sessionID) {
		return chat.ErrSessionNotFound
	}
	return nil
}
