package outlet_test

import (
	"testing"

	"outlet-assistant/internal/outlet"
)

func TestCatalogAll(t *testing.T) {
	cat := outlet.NewCatalog()

	all := cat.All()
	if len(all) != 5 {
		t.Fatalf("expected 5 outlets, got %d", len(all))
	}

	// Petaling Jaya outlets come first, then Kuala Lumpur.
	if all[0].Name != "SS 2 Outlet" {
		t.Errorf("expected SS 2 Outlet first, got %q", all[0].Name)
	}
	if all[len(all)-1].Name != "Bukit Bintang Outlet" {
		t.Errorf("expected Bukit Bintang Outlet last, got %q", all[len(all)-1].Name)
	}
}

func TestCatalogByArea(t *testing.T) {
	cat := outlet.NewCatalog()

	tests := []struct {
		area string
		want int
	}{
		{"petaling_jaya", 3},
		{"Petaling Jaya", 3},
		{"kuala_lumpur", 2},
		{"Kuala Lumpur", 2},
		{"penang", 0},
	}

	for _, tt := range tests {
		if got := len(cat.ByArea(tt.area)); got != tt.want {
			t.Errorf("ByArea(%q): expected %d outlets, got %d", tt.area, tt.want, got)
		}
	}
}

func TestCatalogFilter(t *testing.T) {
	cat := outlet.NewCatalog()

	t.Run("no filter returns everything", func(t *testing.T) {
		if got := len(cat.Filter("", "")); got != 5 {
			t.Errorf("expected 5 outlets, got %d", got)
		}
	})

	t.Run("location substring", func(t *testing.T) {
		outlets := cat.Filter("ss 2", "")
		if len(outlets) != 1 || outlets[0].Name != "SS 2 Outlet" {
			t.Errorf("unexpected match for ss 2: %v", outlets)
		}
	})

	t.Run("location matches area field too", func(t *testing.T) {
		if got := len(cat.Filter("kuala_lumpur", "")); got != 2 {
			t.Errorf("expected 2 outlets, got %d", got)
		}
	})

	t.Run("area abbreviations expand", func(t *testing.T) {
		if got := len(cat.Filter("pj", "")); got != 3 {
			t.Errorf("expected 3 outlets for pj, got %d", got)
		}
		if got := len(cat.Filter("", "kl")); got != 2 {
			t.Errorf("expected 2 outlets for kl, got %d", got)
		}
	})

	t.Run("area only filters the area field", func(t *testing.T) {
		if got := len(cat.Filter("", "ss 2")); got != 0 {
			t.Errorf("expected no area match for ss 2, got %d", got)
		}
	})
}
