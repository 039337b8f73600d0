package domain

import "testing"

func TestCategoryWeights(t *testing.T) {
	cases := []struct {
		category VendorCategory
		want     float64
	}{
		{CategorySupplier, 1.00},
		{CategoryDistributor, 0.95},
		{CategoryDealer, 0.90},
		{CategoryManufacturer, 1.05},
		{VendorCategory("logistics"), 1.00},
		{VendorCategory(""), 1.00},
	}
	for _, tc := range cases {
		if got := tc.category.Weight(); got != tc.want {
			t.Fatalf("Weight(%q)=%v, want %v", tc.category, got, tc.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories() {
		if !category.Valid() {
			t.Fatalf("expected %q to be valid", category)
		}
	}
	if VendorCategory("logistics").Valid() {
		t.Fatalf("expected unknown category to be invalid")
	}
	if VendorCategory("").Valid() {
		t.Fatalf("expected empty category to be invalid")
	}
}
