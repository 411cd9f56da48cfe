package outlet

import (
	"strings"

	"outlet-assistant/internal/model"
)

// Catalog is the static in-memory outlet catalog backing the chat info
// tools and the listing endpoints. Read-only after construction.
type Catalog struct {
	byArea map[string][]model.Outlet
	order  []string
}

// NewCatalog builds the default catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		order: []string{"petaling_jaya", "kuala_lumpur"},
		byArea: map[string][]model.Outlet{
			"petaling_jaya": {
				{
					Name:        "SS 2 Outlet",
					Location:    "SS 2",
					Area:        "Petaling Jaya",
					OpeningTime: "9:00 AM",
					ClosingTime: "10:00 PM",
					Phone:       "+603-7876-5432",
					Address:     "No. 15, Jalan SS 2/24, SS 2, 47300 Petaling Jaya, Selangor",
				},
				{
					Name:        "SS 15 Outlet",
					Location:    "SS 15",
					Area:        "Petaling Jaya",
					OpeningTime: "8:30 AM",
					ClosingTime: "9:30 PM",
					Phone:       "+603-7876-1234",
					Address:     "No. 8, Jalan SS 15/3A, SS 15, 47500 Petaling Jaya, Selangor",
				},
				{
					Name:        "Damansara Utama Outlet",
					Location:    "Damansara Utama",
					Area:        "Petaling Jaya",
					OpeningTime: "10:00 AM",
					ClosingTime: "11:00 PM",
					Phone:       "+603-7726-8888",
					Address:     "G-12, Damansara Utama, 47400 Petaling Jaya, Selangor",
				},
			},
			"kuala_lumpur": {
				{
					Name:        "KLCC Outlet",
					Location:    "KLCC",
					Area:        "Kuala Lumpur",
					OpeningTime: "10:00 AM",
					ClosingTime: "10:00 PM",
					Phone:       "+603-2161-9999",
					Address:     "Level 2, Suria KLCC, 50088 Kuala Lumpur",
				},
				{
					Name:        "Bukit Bintang Outlet",
					Location:    "Bukit Bintang",
					Area:        "Kuala Lumpur",
					OpeningTime: "11:00 AM",
					ClosingTime: "11:30 PM",
					Phone:       "+603-2148-7777",
					Address:     "Lot 10 Shopping Centre, 50 Jalan Sultan Ismail, 50250 Kuala Lumpur",
				},
			},
		},
	}
}

// All returns every outlet, grouped by area order.
func (cat *Catalog) All() []model.Outlet {
	all := make([]model.Outlet, 0)
	for _, area := range cat.order {
		all = append(all, cat.byArea[area]...)
	}
	return all
}

// ByArea returns the outlets for an area key ("Petaling Jaya" and
// "petaling_jaya" both resolve).
func (cat *Catalog) ByArea(area string) []model.Outlet {
	key := strings.ReplaceAll(strings.ToLower(area), " ", "_")
	return cat.byArea[key]
}

// Filter applies the catalog filter used by the chat tools: a location
// matches on the location or area field by case-insensitive substring;
// an area matches the area field only. With neither set, every outlet
// is returned.
func (cat *Catalog) Filter(location, area string) []model.Outlet {
	if location == "" && area == "" {
		return cat.All()
	}

	// Context keys arrive snake_cased ("kuala_lumpur") and user messages
	// abbreviate areas ("pj", "kl"); catalog fields do neither.
	normalize := func(s string) string {
		s = strings.ReplaceAll(strings.ToLower(s), "_", " ")
		switch s {
		case "pj":
			return "petaling jaya"
		case "kl":
			return "kuala lumpur"
		}
		return s
	}

	filtered := make([]model.Outlet, 0)
	if location != "" {
		loc := normalize(location)
		for _, o := range cat.All() {
			if strings.Contains(strings.ToLower(o.Location), loc) ||
				strings.Contains(strings.ToLower(o.Area), loc) {
				filtered = append(filtered, o)
			}
		}
		return filtered
	}

	a := normalize(area)
	for _, o := range cat.All() {
		if strings.Contains(strings.ToLower(o.Area), a) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
