package product

import "errors"

// Domain-specific errors for the product package.
var (
	ErrEmptyQuery  = errors.New("product query is empty")
	ErrUnavailable = errors.New("product knowledge base unavailable")
)
