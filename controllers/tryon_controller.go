package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"framekart-io/api/catalog"
	"framekart-io/api/helper"
	"framekart-io/api/models"
)

// TryOn serves the overlay descriptor for the browser's virtual try-on:
// the frame image and its measurements. Camera capture and compositing
// stay entirely client-side; the server only confirms the product and
// hands over what the compositor needs.
func TryOn(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.TryOnRequestBody
		if err := c.BindJSON(&body); err != nil {
			log.Printf("Error binding request body: %s\n", err.Error())
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid or missing data in request body")
			return
		}
		if err := validate.Struct(&body); err != nil {
			log.Printf("Error validating request body: %s\n", err.Error())
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid or missing data in request body")
			return
		}

		product, err := store.GetByID(body.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			helper.HandleError(c, http.StatusNotFound, err, "product not found")
			return
		}

		overlay := models.TryOnOverlay{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Images[0],
			Size:      product.Size,
			LensColor: product.LensColor,
		}
		helper.HandleSuccess(c, http.StatusOK, "try-on overlay retrieved successfully", overlay)
	}
}
