package session

import (
	"context"

	"outlet-assistant/internal/model"
)

// Store keeps per-session conversation windows and context bags.
//
// Concurrent requests for the same session are not serialized: two requests
// may read the same context snapshot and each write back updates, the later
// write winning per key. Each individual mutation is atomic.
type Store interface {
	// GetOrCreate returns the given session id if it exists, otherwise a new one.
	GetOrCreate(ctx context.Context, sessionID string) string

	// AddTurn appends a turn and trims the window. Returns the turn number.
	AddTurn(ctx context.Context, sessionID, userMessage, botResponse string) int

	// GetContext returns one context value, nil if absent.
	GetContext(ctx context.Context, sessionID, key string) any

	// Context returns a snapshot copy of the whole context bag.
	Context(ctx context.Context, sessionID string) map[string]any

	// UpdateContext overwrites one context key. Keys are never removed.
	UpdateContext(ctx context.Context, sessionID, key string, value any)

	// History returns the retained turns, oldest first.
	History(ctx context.Context, sessionID string) []model.Turn

	// Stats summarizes a session. Nil for unknown sessions.
	Stats(ctx context.Context, sessionID string) *model.SessionStats

	// Clear deletes a session. Reports whether it existed.
	Clear(ctx context.Context, sessionID string) bool
}
