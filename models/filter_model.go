package models

// FilterOptions narrows a product listing. Each non-empty set is an
// inclusion filter: AND across fields, OR within a field. Zero values
// impose no constraint. Colors and Materials are carried for the filter
// rail but are not applied by the listing engine.
type FilterOptions struct {
	Categories  []Category   `json:"category,omitempty"`
	FrameShapes []FrameShape `json:"frameShape,omitempty"`
	MinPrice    int          `json:"minPrice,omitempty"`
	MaxPrice    int          `json:"maxPrice,omitempty"`
	Brands      []string     `json:"brand,omitempty"`
	Colors      []string     `json:"color,omitempty"`
	Materials   []string     `json:"material,omitempty"`
	InStockOnly bool         `json:"inStock,omitempty"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// PriceRangeData represents the minimum and maximum price in the catalog
type PriceRangeData struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterMetadata represents all filter-rail data for the storefront
type FilterMetadata struct {
	Brands       []string         `json:"brands"`
	FrameShapes  []FrameShape     `json:"frameShapes"`
	Categories   []Category       `json:"categories"`
	PriceRange   PriceRangeData   `json:"priceRange"`
	Availability AvailabilityData `json:"availability"`
}
