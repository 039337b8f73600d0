package domain

// VendorCategory is the enumerated set of vendor categories.
type VendorCategory string

const (
	CategorySupplier     VendorCategory = "supplier"
	CategoryDistributor  VendorCategory = "distributor"
	CategoryDealer       VendorCategory = "dealer"
	CategoryManufacturer VendorCategory = "manufacturer"
)

// categoryWeights is kept as data so new categories can be added without
// touching the scoring algorithm.
var categoryWeights = map[VendorCategory]float64{
	CategorySupplier:     1.00,
	CategoryDistributor:  0.95,
	CategoryDealer:       0.90,
	CategoryManufacturer: 1.05,
}

func (c VendorCategory) Valid() bool {
	_, ok := categoryWeights[c]
	return ok
}

// Weight returns the score multiplier for the category. Categories outside
// the enumerated set weigh 1.0.
func (c VendorCategory) Weight() float64 {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return 1.0
}

func Categories() []VendorCategory {
	return []VendorCategory{
		CategorySupplier,
		CategoryDistributor,
		CategoryDealer,
		CategoryManufacturer,
	}
}
