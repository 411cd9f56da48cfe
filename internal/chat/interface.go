package chat

import (
	"context"

	"outlet-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Chat processes one message and returns the basic response envelope.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ChatAgentic processes one message and returns planner metadata
	// alongside the response.
	ChatAgentic(ctx context.Context, input ChatInput) (AgenticOutput, error)

	// History returns the retained turns of a session, oldest first.
	History(ctx context.Context, sessionID string) ([]model.Turn, error)

	// Stats summarizes a session.
	Stats(ctx context.Context, sessionID string) (model.SessionStats, error)

	// ClearSession deletes a session.
	ClearSession(ctx context.Context, sessionID string) error
}
