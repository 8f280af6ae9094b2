// Package catalog holds the static product catalog and its read-only
// lookup operations. The catalog is seeded once at construction and never
// mutated, so lookups need no locking.
package catalog

import (
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"

	"framekart-io/api/models"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Store is the read-only catalog.
type Store struct {
	products []models.Product
	byID     map[string]int
	bySlug   map[string]int
}

// NewStore builds the catalog from the compiled-in seed.
func NewStore() *Store {
	return NewStoreWith(seedProducts())
}

// NewStoreWith builds a catalog from the given records, assigning each a
// URL slug derived from its name. Source order is preserved.
func NewStoreWith(products []models.Product) *Store {
	s := &Store{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	copy(s.products, products)
	for i := range s.products {
		if s.products[i].Slug == "" {
			s.products[i].Slug = slug.Make(s.products[i].Name)
		}
		s.byID[s.products[i].ID] = i
		s.bySlug[s.products[i].Slug] = i
	}
	return s
}

// All returns every product in source order.
func (s *Store) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len reports the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}

// GetByID looks up a product by its id.
func (s *Store) GetByID(id string) (models.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, errors.Wrap(ErrNotFound, id)
	}
	return s.products[i], nil
}

// GetBySlug looks up a product by its URL slug.
func (s *Store) GetBySlug(sl string) (models.Product, error) {
	i, ok := s.bySlug[sl]
	if !ok {
		return models.Product{}, errors.Wrap(ErrNotFound, sl)
	}
	return s.products[i], nil
}

// GetByCategory returns all products of a category in source order.
func (s *Store) GetByCategory(category models.Category) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetByCollection returns all products of a named collection in source order.
func (s *Store) GetByCollection(collection string) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if p.Collection == collection {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name, brand, description or any feature
// tag contains the query, case-insensitively. An empty query matches
// everything.
func (s *Store) Search(query string) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if MatchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// MatchesQuery reports whether a product matches a free-text query. The
// match is a case-insensitive substring test over name, brand, description
// and feature tags.
func MatchesQuery(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, feature := range p.Features {
		if strings.Contains(strings.ToLower(feature), q) {
			return true
		}
	}
	return false
}

// FilterMetadata derives the filter-rail payload: distinct brands, shapes
// and categories, the catalog price bounds, and availability counts.
func (s *Store) FilterMetadata() models.FilterMetadata {
	meta := models.FilterMetadata{
		Brands:      []string{},
		FrameShapes: []models.FrameShape{},
		Categories:  []models.Category{},
	}
	seenBrand := map[string]bool{}
	seenShape := map[models.FrameShape]bool{}
	seenCategory := map[models.Category]bool{}

	for i, p := range s.products {
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			meta.Brands = append(meta.Brands, p.Brand)
		}
		if !seenShape[p.FrameShape] {
			seenShape[p.FrameShape] = true
			meta.FrameShapes = append(meta.FrameShapes, p.FrameShape)
		}
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			meta.Categories = append(meta.Categories, p.Category)
		}
		if i == 0 {
			meta.PriceRange.Min = p.Price
			meta.PriceRange.Max = p.Price
		} else {
			if p.Price < meta.PriceRange.Min {
				meta.PriceRange.Min = p.Price
			}
			if p.Price > meta.PriceRange.Max {
				meta.PriceRange.Max = p.Price
			}
		}
		if p.InStock {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}
	}

	sort.Strings(meta.Brands)
	return meta
}
