package models

// CartItem pairs a product with a quantity. Quantity is the only mutable
// field; a cart holds at most one item per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the session-scoped collection of selected products. Total and
// ItemCount are derived from Items after every mutation and are never
// updated independently.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     int        `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// AddCartItemBody -> expected data for adding a product to the cart
type AddCartItemBody struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemBody -> expected data for setting a cart line quantity
type UpdateCartItemBody struct {
	Quantity int `json:"quantity"`
}
