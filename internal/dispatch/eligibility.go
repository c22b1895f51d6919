// Package dispatch decides which restaurants can fulfill a pending
// order and ranks them by delivery distance to the customer.
package dispatch

import (
	"errors"

	"github.com/foodcart/restorank/internal/models"
)

// ErrEmptyOrder is returned for orders with no line items; eligibility
// over an empty product set is undefined.
var ErrEmptyOrder = errors.New("order has no line items")

// MenuIndex maps a product ID to the set of restaurants currently
// stocking it. Built fresh from an availability snapshot per ranking
// run, never maintained incrementally.
type MenuIndex map[string]map[string]struct{}

// NewMenuIndex builds an index from product -> stocking restaurant IDs,
// the shape returned by the menu repository's availability snapshot.
func NewMenuIndex(snapshot map[string][]string) MenuIndex {
	index := make(MenuIndex, len(snapshot))
	for productID, restaurantIDs := range snapshot {
		stocking := make(map[string]struct{}, len(restaurantIDs))
		for _, id := range restaurantIDs {
			stocking[id] = struct{}{}
		}
		index[productID] = stocking
	}
	return index
}

// EligibleRestaurants returns the IDs of restaurants stocking every
// product of the order. An empty result is a valid outcome, not an
// error: no restaurant can fulfill the order.
func EligibleRestaurants(order *models.Order, index MenuIndex) (map[string]struct{}, error) {
	productIDs := order.ProductIDs()
	if len(productIDs) == 0 {
		return nil, ErrEmptyOrder
	}

	candidates := make(map[string]struct{}, len(index[productIDs[0]]))
	for id := range index[productIDs[0]] {
		candidates[id] = struct{}{}
	}
	for _, productID := range productIDs[1:] {
		stocking := index[productID]
		for id := range candidates {
			if _, ok := stocking[id]; !ok {
				delete(candidates, id)
			}
		}
	}
	return candidates, nil
}
