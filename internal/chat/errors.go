package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrMessageTooLong   = errors.New("message too long")
	ErrSessionIDTooLong = errors.New("session ID too long")
	ErrSessionNotFound  = errors.New("session not found")
)
