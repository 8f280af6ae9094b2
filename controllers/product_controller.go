package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"framekart-io/api/catalog"
	"framekart-io/api/helper"
	"framekart-io/api/models"
	"framekart-io/api/services"
)

// GetProducts lists the catalog narrowed by the query-string filters and
// ordered by the requested sort key. The routing layer feeds `q` and
// `category` straight from navigational state.
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		opts := filterOptionsFromQuery(c)
		sortBy := models.ParseSortKey(c.Query("sort"))

		products := services.FilterAndSort(store.All(), opts, query, sortBy)
		helper.HandleSuccess(c, http.StatusOK, "products retrieved successfully", gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

// GetProduct fetches a single product by id, falling back to its slug.
func GetProduct(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")
		product, err := store.GetByID(key)
		if errors.Is(err, catalog.ErrNotFound) {
			product, err = store.GetBySlug(key)
		}
		if err != nil {
			helper.HandleError(c, http.StatusNotFound, err, "product not found")
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "product retrieved successfully", product)
	}
}

// GetFilterMetadata serves the filter-rail data: distinct brands, shapes
// and categories plus price bounds and availability counts.
func GetFilterMetadata(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		helper.HandleSuccess(c, http.StatusOK, "filter metadata retrieved successfully", store.FilterMetadata())
	}
}

// GetCollection lists the products of a named collection in source order.
func GetCollection(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := store.GetByCollection(c.Param("name"))
		helper.HandleSuccess(c, http.StatusOK, "collection retrieved successfully", gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

// filterOptionsFromQuery builds filter options from the listing query
// string. Multi-valued fields are comma separated; absent fields impose
// no constraint.
func filterOptionsFromQuery(c *gin.Context) models.FilterOptions {
	var opts models.FilterOptions

	for _, v := range splitParam(c.Query("category")) {
		opts.Categories = append(opts.Categories, models.Category(v))
	}
	for _, v := range splitParam(c.Query("frameShape")) {
		opts.FrameShapes = append(opts.FrameShapes, models.FrameShape(v))
	}
	opts.Brands = splitParam(c.Query("brand"))

	opts.MinPrice, _ = strconv.Atoi(c.Query("minPrice"))
	opts.MaxPrice, _ = strconv.Atoi(c.Query("maxPrice"))
	opts.InStockOnly, _ = strconv.ParseBool(c.Query("inStock"))

	return opts
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
