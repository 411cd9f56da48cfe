package middleware

import (
	"outlet-assistant/config"
	"outlet-assistant/pkg/log"
)

// Middleware bundles the cross-cutting HTTP concerns: CORS headers and
// per-client rate limiting on the chat endpoints.
type Middleware struct {
	l   log.Logger
	cfg config.RateLimitConfig
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
