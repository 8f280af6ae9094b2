package services

import (
	"sort"

	"framekart-io/api/catalog"
	"framekart-io/api/models"
)

// DefaultFilterOptions is the storefront's initial filter state: full
// price band, in-stock items only, nothing else constrained.
func DefaultFilterOptions() models.FilterOptions {
	return models.FilterOptions{
		Categories:  []models.Category{},
		FrameShapes: []models.FrameShape{},
		MinPrice:    0,
		MaxPrice:    5000,
		Brands:      []string{},
		Colors:      []string{},
		Materials:   []string{},
		InStockOnly: true,
	}
}

// ClearFilters resets any filter state back to the default. Calling it on
// an already-default state is a no-op.
func ClearFilters(models.FilterOptions) models.FilterOptions {
	return DefaultFilterOptions()
}

// FilterAndSort narrows the given products by query and filter options,
// then orders the survivors by the sort key. Pure: the input slice is
// never modified. The sort is stable, so products with equal keys keep
// their catalog order.
func FilterAndSort(products []models.Product, opts models.FilterOptions, query string, sortBy models.SortKey) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(p, opts, query) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch sortBy {
		case models.SortPriceLow:
			return a.Price < b.Price
		case models.SortPriceHigh:
			return a.Price > b.Price
		case models.SortRating:
			return a.Rating > b.Rating
		case models.SortNewest:
			// Ids compared as strings: the catalog has no creation
			// timestamp, so a higher id stands in for newer.
			return a.ID > b.ID
		default: // popular
			return a.ReviewsCount > b.ReviewsCount
		}
	})

	return filtered
}

// matchesFilters applies the predicates in listing order, bailing on the
// first failure: search, category, frame shape, price range, brand,
// in-stock. Colors and materials on FilterOptions are rail-only fields
// and never constrain the listing.
func matchesFilters(p models.Product, opts models.FilterOptions, query string) bool {
	if !catalog.MatchesQuery(p, query) {
		return false
	}

	if len(opts.Categories) > 0 && !containsCategory(opts.Categories, p.Category) {
		return false
	}

	if len(opts.FrameShapes) > 0 && !containsShape(opts.FrameShapes, p.FrameShape) {
		return false
	}

	if opts.MinPrice > 0 && p.Price < opts.MinPrice {
		return false
	}

	if opts.MaxPrice > 0 && p.Price > opts.MaxPrice {
		return false
	}

	if len(opts.Brands) > 0 && !containsString(opts.Brands, p.Brand) {
		return false
	}

	if opts.InStockOnly && !p.InStock {
		return false
	}

	return true
}

func containsCategory(set []models.Category, c models.Category) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsShape(set []models.FrameShape, s models.FrameShape) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
