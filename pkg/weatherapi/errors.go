package weatherapi

import (
	"errors"
	"fmt"
)

// ErrTimeout marks a request that exceeded the client timeout.
var ErrTimeout = errors.New("weather API request timed out")

// APIError is a non-2xx reply from the weather API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather API error %d: %s", e.StatusCode, e.Message)
}
