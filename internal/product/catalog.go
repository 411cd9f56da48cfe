package product

import (
	"fmt"
	"strings"

	"outlet-assistant/internal/model"
)

// Catalog returns the static drinkware seed data embedded into the
// vector store at ingestion time.
func Catalog() []model.Product {
	return []model.Product{
		{
			ID:          "zus-all-day-cup",
			Name:        "ZUS All-Day Cup 500ml",
			Category:    "tumbler",
			Price:       "RM 55.00",
			Material:    "Stainless Steel",
			Capacity:    "500ml",
			Description: "Double-wall insulated tumbler that keeps drinks cold for 12 hours and hot for 6. Fits most car cup holders.",
			Features:    []string{"double-wall insulation", "leak-proof lid", "car cup holder friendly"},
		},
		{
			ID:          "zus-og-cup-2",
			Name:        "ZUS OG Cup 2.0 With Screw-On Lid 500ml",
			Category:    "tumbler",
			Price:       "RM 59.00",
			Material:    "Stainless Steel",
			Capacity:    "500ml",
			Description: "The classic ZUS cup updated with a screw-on lid for a fully sealed commute. Great travel mug for daily coffee runs.",
			Features:    []string{"screw-on lid", "spill-proof", "thermal insulation"},
		},
		{
			ID:          "zus-frozee-cold-cup",
			Name:        "ZUS Frozee Cold Cup 650ml",
			Category:    "cold cup",
			Price:       "RM 39.00",
			Material:    "BPA-free Plastic",
			Capacity:    "650ml",
			Description: "Oversized cold cup built for iced drinks and cold brew, with a reusable straw.",
			Features:    []string{"reusable straw", "condensation-free grip", "cold brew ready"},
		},
		{
			ID:          "zus-ceramic-mug",
			Name:        "ZUS Signature Ceramic Mug 350ml",
			Category:    "mug",
			Price:       "RM 29.00",
			Material:    "Ceramic",
			Capacity:    "350ml",
			Description: "Matte-finish ceramic coffee mug for desk and home use. Microwave and dishwasher safe.",
			Features:    []string{"microwave safe", "dishwasher safe", "matte finish"},
		},
		{
			ID:          "zus-espresso-cup-set",
			Name:        "ZUS Espresso Cup Set (2 x 80ml)",
			Category:    "cup",
			Price:       "RM 45.00",
			Material:    "Ceramic",
			Capacity:    "80ml",
			Description: "A pair of double-walled espresso cups that keep shots warm without burning fingers.",
			Features:    []string{"double-walled", "set of two", "saucer included"},
		},
		{
			ID:          "zus-bamboo-tumbler",
			Name:        "ZUS Eco Bamboo Tumbler 420ml",
			Category:    "tumbler",
			Price:       "RM 49.00",
			Material:    "Bamboo",
			Capacity:    "420ml",
			Description: "Eco-friendly bamboo-shell tumbler with a stainless interior. A sustainable choice for daily use.",
			Features:    []string{"eco-friendly", "bamboo shell", "stainless interior"},
		},
		{
			ID:          "zus-glass-carafe",
			Name:        "ZUS Cold Brew Glass Carafe 1L",
			Category:    "carafe",
			Price:       "RM 69.00",
			Material:    "Borosilicate Glass",
			Capacity:    "1L",
			Description: "Heat-resistant glass carafe with a built-in mesh filter for overnight cold brew batches.",
			Features:    []string{"built-in filter", "heat resistant", "1 litre capacity"},
		},
		{
			ID:          "zus-travel-bottle",
			Name:        "ZUS Travel Bottle 750ml",
			Category:    "bottle",
			Price:       "RM 65.00",
			Material:    "Stainless Steel",
			Capacity:    "750ml",
			Description: "Large insulated bottle for long commutes and hikes. Keeps drinks hot or cold all day.",
			Features:    []string{"thermal insulation", "one-hand flip cap", "powder-coated grip"},
		},
	}
}

// EmbeddingText builds the searchable text representation of a product.
func EmbeddingText(p model.Product) string {
	parts := []string{fmt.Sprintf("Product: %s", p.Name)}

	if p.Price != "" {
		parts = append(parts, fmt.Sprintf("Price: %s", p.Price))
	}
	if p.Category != "" {
		parts = append(parts, fmt.Sprintf("Category: %s", p.Category))
	}
	if p.Material != "" {
		parts = append(parts, fmt.Sprintf("Material: %s", p.Material))
	}
	if p.Capacity != "" {
		parts = append(parts, fmt.Sprintf("Capacity: %s", p.Capacity))
	}
	if p.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", p.Description))
	}
	if len(p.Features) > 0 {
		parts = append(parts, fmt.Sprintf("Features: %s", strings.Join(p.Features, ", ")))
	}

	return strings.Join(parts, " | ")
}
