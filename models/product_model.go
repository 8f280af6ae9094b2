package models

// Category classifies a product into one of the storefront's shelves.
type Category string

const (
	CategoryEyeglasses      Category = "eyeglasses"
	CategorySunglasses      Category = "sunglasses"
	CategoryComputerGlasses Category = "computer-glasses"
	CategoryKidsGlasses     Category = "kids-glasses"
	CategoryReadingGlasses  Category = "reading-glasses"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryEyeglasses, CategorySunglasses, CategoryComputerGlasses,
		CategoryKidsGlasses, CategoryReadingGlasses:
		return true
	}
	return false
}

// FrameShape is the silhouette of a frame.
type FrameShape string

const (
	FrameShapeRectangle FrameShape = "rectangle"
	FrameShapeRound     FrameShape = "round"
	FrameShapeWayfarer  FrameShape = "wayfarer"
	FrameShapeCatEye    FrameShape = "cat-eye"
	FrameShapeHexagonal FrameShape = "hexagonal"
	FrameShapeAviator   FrameShape = "aviator"
)

func (f FrameShape) Valid() bool {
	switch f {
	case FrameShapeRectangle, FrameShapeRound, FrameShapeWayfarer,
		FrameShapeCatEye, FrameShapeHexagonal, FrameShapeAviator:
		return true
	}
	return false
}

// FrameSize holds frame measurements in millimeters.
type FrameSize struct {
	Width  int `json:"width" validate:"gt=0"`
	Height int `json:"height" validate:"gt=0"`
	Bridge int `json:"bridge" validate:"gt=0"`
}

// Product is a catalog record. Products are seeded at process start and
// never mutated afterwards.
type Product struct {
	ID            string     `json:"id" validate:"required"`
	Slug          string     `json:"slug"`
	Name          string     `json:"name" validate:"required"`
	Brand         string     `json:"brand" validate:"required"`
	Price         int        `json:"price" validate:"gt=0"`
	OriginalPrice int        `json:"originalPrice,omitempty"`
	Images        []string   `json:"images" validate:"min=1"`
	Category      Category   `json:"category"`
	FrameShape    FrameShape `json:"frameShape"`
	FrameColor    string     `json:"frameColor"`
	LensColor     string     `json:"lensColor,omitempty"`
	Material      string     `json:"material"`
	Size          FrameSize  `json:"size"`
	Features      []string   `json:"features"`
	Description   string     `json:"description"`
	InStock       bool       `json:"inStock"`
	Rating        float64    `json:"rating" validate:"gte=0,lte=5"`
	ReviewsCount  int        `json:"reviewsCount" validate:"gte=0"`
	Collection    string     `json:"collection,omitempty"`
}

// SortKey selects the ordering of a filtered product listing.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	// SortNewest orders by descending id compared as strings. Products carry
	// no creation timestamp, so higher id is taken to mean newer.
	SortNewest SortKey = "newest"
)

// ParseSortKey maps a query token to a sort key, falling back to popular.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortPopular:
		return SortKey(s)
	default:
		return SortPopular
	}
}
