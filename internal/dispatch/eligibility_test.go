package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcart/restorank/internal/models"
)

func orderWith(productIDs ...string) *models.Order {
	order := &models.Order{ID: "order-1", Address: "somewhere"}
	for _, id := range productIDs {
		order.Items = append(order.Items, models.OrderItem{ProductID: id, Quantity: 1, Price: 10})
	}
	return order
}

func TestEligibleRestaurantsIntersection(t *testing.T) {
	index := NewMenuIndex(map[string][]string{
		"pizza": {"r1", "r2", "r3"},
		"cola":  {"r2", "r3"},
		"cake":  {"r3"},
	})

	eligible, err := EligibleRestaurants(orderWith("pizza", "cola"), index)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"r2": {}, "r3": {}}, eligible)

	eligible, err = EligibleRestaurants(orderWith("pizza", "cola", "cake"), index)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"r3": {}}, eligible)
}

func TestEligibleRestaurantsUnstockedProduct(t *testing.T) {
	index := NewMenuIndex(map[string][]string{
		"pizza": {"r1", "r2"},
	})

	eligible, err := EligibleRestaurants(orderWith("pizza", "sushi"), index)
	require.NoError(t, err)
	assert.Empty(t, eligible, "a product nobody stocks empties the intersection")
}

func TestEligibleRestaurantsEmptyOrder(t *testing.T) {
	index := NewMenuIndex(map[string][]string{"pizza": {"r1"}})

	_, err := EligibleRestaurants(orderWith(), index)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestEligibleRestaurantsDuplicateLineItems(t *testing.T) {
	index := NewMenuIndex(map[string][]string{"pizza": {"r1", "r2"}})

	// The same product twice counts once for eligibility.
	eligible, err := EligibleRestaurants(orderWith("pizza", "pizza"), index)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"r1": {}, "r2": {}}, eligible)
}

func TestEligibleRestaurantsDoesNotMutateIndex(t *testing.T) {
	index := NewMenuIndex(map[string][]string{
		"pizza": {"r1", "r2"},
		"cola":  {"r2"},
	})

	_, err := EligibleRestaurants(orderWith("pizza", "cola"), index)
	require.NoError(t, err)

	// A later order over one product must still see the full set.
	eligible, err := EligibleRestaurants(orderWith("pizza"), index)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"r1": {}, "r2": {}}, eligible)
}
