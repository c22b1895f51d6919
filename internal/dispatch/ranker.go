package dispatch

import (
	"context"
	"fmt"
	"sort"

	"github.com/foodcart/restorank/internal/models"
)

// Resolver turns an address into a coordinate. Satisfied by
// placecache.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, address string) (models.Location, error)
}

// RankedRestaurant is one entry of a ranking: a candidate restaurant
// and its delivery distance to the order, in kilometers rounded to
// 3 decimal places.
type RankedRestaurant struct {
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	DistanceKm   float64 `json:"distance_km"`
}

// rankByDistance resolves coordinates for the order and each eligible
// restaurant and sorts candidates by ascending distance, ties broken
// by restaurant ID. Any unresolvable address aborts the ranking:
// silently dropping a restaurant would misrepresent availability.
func rankByDistance(
	ctx context.Context,
	resolver Resolver,
	order *models.Order,
	eligible map[string]struct{},
	restaurants map[string]*models.Restaurant,
) ([]RankedRestaurant, error) {
	if len(eligible) == 0 {
		return []RankedRestaurant{}, nil
	}

	orderLocation, err := resolver.Resolve(ctx, order.Address)
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedRestaurant, 0, len(eligible))
	for restaurantID := range eligible {
		restaurant, ok := restaurants[restaurantID]
		if !ok {
			return nil, fmt.Errorf("unknown restaurant %q in menu index", restaurantID)
		}

		restaurantLocation, err := resolver.Resolve(ctx, restaurant.Address)
		if err != nil {
			return nil, err
		}

		km, err := orderLocation.DistanceKm(restaurantLocation)
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, RankedRestaurant{
			RestaurantID: restaurantID,
			Name:         restaurant.Name,
			DistanceKm:   km,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].RestaurantID < ranked[j].RestaurantID
	})
	return ranked, nil
}
