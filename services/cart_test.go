package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framekart-io/api/catalog"
	"framekart-io/api/models"
)

// checkInvariants verifies the derived fields are exactly the sums over
// the items.
func checkInvariants(t *testing.T, cart models.Cart) {
	t.Helper()
	total, count := 0, 0
	for _, item := range cart.Items {
		total += item.Product.Price * item.Quantity
		count += item.Quantity
	}
	assert.Equal(t, total, cart.Total)
	assert.Equal(t, count, cart.ItemCount)
}

func TestAddItemMergesByProductID(t *testing.T) {
	store := catalog.NewStore()
	carts := NewCartService()
	p, err := store.GetByID("1")
	require.NoError(t, err)

	cart := carts.AddItem("tok", p, 2)
	checkInvariants(t, cart)

	cart = carts.AddItem("tok", p, 3)
	checkInvariants(t, cart)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5*p.Price, cart.Total)
	assert.Equal(t, 5, cart.ItemCount)
}

func TestAddItemClampsQuantityToOne(t *testing.T) {
	store := catalog.NewStore()
	carts := NewCartService()
	p, _ := store.GetByID("4")

	cart := carts.AddItem("tok", p, 0)
	checkInvariants(t, cart)
	assert.Equal(t, 1, cart.ItemCount)

	cart = carts.AddItem("tok", p, -5)
	checkInvariants(t, cart)
	assert.Equal(t, 2, cart.ItemCount)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	store := catalog.NewStore()
	carts := NewCartService()
	p, _ := store.GetByID("2")

	carts.AddItem("tok", p, 4)
	cart := carts.UpdateQuantity("tok", p.ID, 0)
	checkInvariants(t, cart)

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, carts.ItemQuantity("tok", p.ID))
	assert.False(t, carts.IsInCart("tok", p.ID))
}

func TestUpdateQuantitySetsDirectly(t *testing.T) {
	store := catalog.NewStore()
	carts := NewCartService()
	p, _ := store.GetByID("3")

	carts.AddItem("tok", p, 1)
	cart := carts.UpdateQuantity("tok", p.ID, 7)
	checkInvariants(t, cart)

	assert.Equal(t, 7, carts.ItemQuantity("tok", p.ID))
	assert.Equal(t, 7*p.Price, cart.Total)
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	store := catalog.NewStore()
	carts := NewCartService()
	p, _ := store.GetByID("5")

	carts.AddItem("tok", p, 2)
	cart := carts.RemoveItem("tok", "999")
	checkInvariants(t, cart)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.ItemCount)
}

func TestClearCart(t *testing.T) {
	store := catalog.NewStore()
	carts := NewCartService()
	p1, _ := store.GetByID("1")
	p2, _ := store.GetByID("2")

	carts.AddItem("tok", p1, 1)
	carts.AddItem("tok", p2, 2)
	cart := carts.Clear("tok")
	checkInvariants(t, cart)

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Total)
	assert.Equal(t, 0, cart.ItemCount)
}

func TestInvariantsHoldAcrossMixedSequence(t *testing.T) {
	store := catalog.NewStore()
	carts := NewCartService()
	p1, _ := store.GetByID("1")
	p2, _ := store.GetByID("2")
	p3, _ := store.GetByID("3")

	checkInvariants(t, carts.AddItem("tok", p1, 2))
	checkInvariants(t, carts.AddItem("tok", p2, 1))
	checkInvariants(t, carts.UpdateQuantity("tok", p1.ID, 5))
	checkInvariants(t, carts.AddItem("tok", p3, 3))
	checkInvariants(t, carts.RemoveItem("tok", p2.ID))
	checkInvariants(t, carts.UpdateQuantity("tok", p3.ID, -1))
	cart := carts.Get("tok")
	checkInvariants(t, cart)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, p1.ID, cart.Items[0].Product.ID)
	assert.Equal(t, 5, cart.ItemCount)
	assert.Equal(t, 5*p1.Price, cart.Total)
}

func TestCartsAreIsolatedByToken(t *testing.T) {
	store := catalog.NewStore()
	carts := NewCartService()
	p, _ := store.GetByID("7")

	carts.AddItem("alice", p, 1)
	assert.Equal(t, 0, carts.Get("bob").ItemCount)
	assert.Equal(t, 1, carts.Get("alice").ItemCount)
}

func TestGetUnknownTokenReturnsEmptyCart(t *testing.T) {
	carts := NewCartService()
	cart := carts.Get("nobody")
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	checkInvariants(t, cart)
}
