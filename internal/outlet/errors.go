package outlet

import "errors"

// Domain-specific errors for the outlet package.
var (
	ErrEmptyQuery    = errors.New("search query is empty")
	ErrSQLGeneration = errors.New("failed to generate SQL query")
	ErrNotSelect     = errors.New("generated query is not a SELECT statement")
	ErrAreaNotFound  = errors.New("no outlets found in area")
	ErrUnavailable   = errors.New("outlet search is not configured")
)
