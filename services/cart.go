package services

import (
	"sync"

	"framekart-io/api/models"
)

// CartService keeps one cart per cart token. Carts live in memory only:
// they survive across requests for the life of the process but not across
// restarts. Handlers run concurrently, so access is mutex-guarded.
type CartService struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*models.Cart)}
}

// Get returns a snapshot of the cart for a token, empty if none exists.
func (s *CartService) Get(token string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cart, ok := s.carts[token]; ok {
		return snapshot(cart)
	}
	return emptyCart()
}

// AddItem puts a product into the cart. If the product is already present
// its quantity is incremented, otherwise a new line is appended. Quantity
// is clamped to a minimum of 1.
func (s *CartService) AddItem(token string, product models.Product, quantity int) models.Cart {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(token)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == product.ID {
			cart.Items[i].Quantity += quantity
			recompute(cart)
			return snapshot(cart)
		}
	}
	cart.Items = append(cart.Items, models.CartItem{Product: product, Quantity: quantity})
	recompute(cart)
	return snapshot(cart)
}

// UpdateQuantity sets a line's quantity directly. A quantity of zero or
// less removes the line.
func (s *CartService) UpdateQuantity(token, productID string, quantity int) models.Cart {
	if quantity <= 0 {
		return s.RemoveItem(token, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(token)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity = quantity
			break
		}
	}
	recompute(cart)
	return snapshot(cart)
}

// RemoveItem deletes a line. Removing an absent product is a no-op, not
// an error.
func (s *CartService) RemoveItem(token, productID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(token)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}
	recompute(cart)
	return snapshot(cart)
}

// Clear empties the cart.
func (s *CartService) Clear(token string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(token)
	cart.Items = cart.Items[:0]
	recompute(cart)
	return snapshot(cart)
}

// IsInCart reports whether the cart holds a line for the product.
func (s *CartService) IsInCart(token, productID string) bool {
	return s.ItemQuantity(token, productID) > 0
}

// ItemQuantity returns the quantity of a product's line, 0 when absent.
func (s *CartService) ItemQuantity(token, productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[token]
	if !ok {
		return 0
	}
	for _, item := range cart.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// cart returns the live cart for a token, creating it on first use.
// Callers must hold the write lock.
func (s *CartService) cart(token string) *models.Cart {
	if cart, ok := s.carts[token]; ok {
		return cart
	}
	cart := &models.Cart{Items: []models.CartItem{}}
	s.carts[token] = cart
	return cart
}

// recompute rebuilds the derived totals from the items. This is the only
// place Total and ItemCount are written.
func recompute(cart *models.Cart) {
	total, count := 0, 0
	for _, item := range cart.Items {
		total += item.Product.Price * item.Quantity
		count += item.Quantity
	}
	cart.Total = total
	cart.ItemCount = count
}

func snapshot(cart *models.Cart) models.Cart {
	out := models.Cart{
		Items:     make([]models.CartItem, len(cart.Items)),
		Total:     cart.Total,
		ItemCount: cart.ItemCount,
	}
	copy(out.Items, cart.Items)
	return out
}

func emptyCart() models.Cart {
	return models.Cart{Items: []models.CartItem{}}
}
