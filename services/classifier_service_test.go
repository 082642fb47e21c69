package services

import "testing"

func TestNormalizeDishLabel(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Grilled Salmon", "grilled_salmon"},
		{"Pizza", "pizza"},
		{"French Fries", "french_fries"},
	}
	for _, tc := range cases {
		if got := normalizeDishLabel(tc.in); got != tc.want {
			t.Fatalf("normalizeDishLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDishClassSet_CoversCatalog(t *testing.T) {
	if len(dishClasses) != 101 {
		t.Fatalf("dish class count = %d, want 101", len(dishClasses))
	}
	for _, name := range []string{"pizza", "grilled_salmon", "apple_pie", "waffles"} {
		if _, ok := dishClassSet[name]; !ok {
			t.Fatalf("%q missing from class set", name)
		}
	}
	// every reference row should be a known class
	for _, entry := range nutritionCatalog {
		if _, ok := dishClassSet[entry.FoodName]; !ok {
			t.Fatalf("reference row %q has no matching class", entry.FoodName)
		}
	}
}
