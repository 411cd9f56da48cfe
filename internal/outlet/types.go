package outlet

import "outlet-assistant/internal/model"

// SearchNLInput is the input for natural-language outlet search.
type SearchNLInput struct {
	Query string `json:"query"` // Natural language query, e.g. "outlets with drive-thru in KL"
}

// SearchNLOutput is the result of natural-language outlet search.
type SearchNLOutput struct {
	Query    string            `json:"query"`
	SQLQuery string            `json:"sql_query"`
	Results  []model.OutletRow `json:"results"`
	Count    int               `json:"count"`
}
