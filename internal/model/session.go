package model

import "time"

// Turn is one user/assistant exchange inside a session.
type Turn struct {
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
	TurnNumber  int       `json:"turn_number"`
}

// Session holds the sliding conversation window and the context bag
// carried across turns (last_outlet_mentioned, area, specific_location, ...).
type Session struct {
	ID        string
	Turns     []Turn
	Context   map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionStats is the summary surfaced on the stats endpoint.
type SessionStats struct {
	SessionID   string    `json:"session_id"`
	TotalTurns  int       `json:"total_turns"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	ContextKeys []string  `json:"context_keys"`
}
