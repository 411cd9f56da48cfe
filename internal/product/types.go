package product

import "outlet-assistant/internal/model"

// QueryInput is the input for a product knowledge-base query.
type QueryInput struct {
	Query      string `json:"query"`       // Natural language query, e.g. "travel mugs for commuting"
	MaxResults int    `json:"max_results"` // Max products retrieved (default 5)
}

// QueryOutput is the result of a product knowledge-base query.
type QueryOutput struct {
	Query      string          `json:"query"`
	Answer     string          `json:"answer"`
	Products   []model.Product `json:"products"` // Top matches included in the answer
	Sources    []string        `json:"sources"`  // Names of the products backing the answer
	TotalFound int             `json:"total_found"`
}
