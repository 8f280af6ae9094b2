package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"framekart-io/api/catalog"
	"framekart-io/api/helper"
	"framekart-io/api/models"
	"framekart-io/api/services"
)

var validate = validator.New()

// CartTokenHeader carries the client's cart identity. The server issues
// one on the first cart request and echoes it back on every response.
const CartTokenHeader = "X-Cart-Token"

func cartToken(c *gin.Context) string {
	token := c.GetHeader(CartTokenHeader)
	if token == "" {
		token = uuid.NewString()
	}
	c.Header(CartTokenHeader, token)
	return token
}

// GetCart returns the cart for the request's cart token.
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := carts.Get(cartToken(c))
		helper.HandleSuccess(c, http.StatusOK, "cart retrieved successfully", cart)
	}
}

// AddCartItem puts a product into the cart, merging with an existing line
// for the same product.
func AddCartItem(store *catalog.Store, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.AddCartItemBody
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

		cart := carts.AddItem(cartToken(c), product, body.Quantity)
		helper.HandleSuccess(c, http.StatusOK, "product added to cart", cart)
	}
}

// UpdateCartItem sets a cart line's quantity; zero or less removes it.
func UpdateCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.UpdateCartItemBody
		if err := c.BindJSON(&body); err != nil {
			log.Printf("Error binding request body: %s\n", err.Error())
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid or missing data in request body")
			return
		}

		cart := carts.UpdateQuantity(cartToken(c), c.Param("productId"), body.Quantity)
		helper.HandleSuccess(c, http.StatusOK, "cart updated", cart)
	}
}

// RemoveCartItem deletes a cart line. Removing a product that is not in
// the cart is not an error.
func RemoveCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := carts.RemoveItem(cartToken(c), c.Param("productId"))
		helper.HandleSuccess(c, http.StatusOK, "product removed from cart", cart)
	}
}

// ClearCart empties the cart.
func ClearCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := carts.Clear(cartToken(c))
		helper.HandleSuccess(c, http.StatusOK, "cart cleared", cart)
	}
}
