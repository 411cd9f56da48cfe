package model

// Product is a drinkware catalog entry stored in the vector knowledge base.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       string   `json:"price"`
	Material    string   `json:"material,omitempty"`
	Capacity    string   `json:"capacity,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
	Score       float64  `json:"relevance_score,omitempty"` // similarity score when returned from search
}
