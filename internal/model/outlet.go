package model

// Outlet is a catalog entry used by the info tools and the listing endpoints.
type Outlet struct {
	Name        string `json:"name"`
	Location    string `json:"location"` // human-readable sub-location, e.g. "SS 2"
	Area        string `json:"area"`     // human-readable area, e.g. "Petaling Jaya"
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// OutletRow is one row returned by the natural-language outlet search.
// Columns depend on the generated query, so values stay generic.
type OutletRow map[string]any
