package dispatch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcart/restorank/internal/models"
)

type stubResolver struct {
	locations map[string]models.Location
	failing   map[string]error
	calls     int
}

func (s *stubResolver) Resolve(ctx context.Context, address string) (models.Location, error) {
	s.calls++
	if err, ok := s.failing[address]; ok {
		return models.Location{}, err
	}
	loc, ok := s.locations[address]
	if !ok {
		return models.Location{}, fmt.Errorf("unexpected address %q", address)
	}
	return loc, nil
}

// Addresses laid out west-to-east from the customer; the longitude gap
// grows with each one, so the true distance ordering is known without
// pinning exact geodesic values.
func rankingFixture() (*stubResolver, map[string]*models.Restaurant) {
	resolver := &stubResolver{locations: map[string]models.Location{
		"customer":     {Lat: 55.7558, Lon: 37.6176},
		"near corner":  {Lat: 55.7558, Lon: 37.6300},
		"midtown":      {Lat: 55.7558, Lon: 37.7000},
		"edge of town": {Lat: 55.7558, Lon: 38.0000},
	}}
	restaurants := map[string]*models.Restaurant{
		"r-near": {ID: "r-near", Name: "Near Corner Deli", Address: "near corner"},
		"r-mid":  {ID: "r-mid", Name: "Midtown Grill", Address: "midtown"},
		"r-far":  {ID: "r-far", Name: "Edge Diner", Address: "edge of town"},
	}
	return resolver, restaurants
}

func TestRankByDistanceSortsAscending(t *testing.T) {
	resolver, restaurants := rankingFixture()
	order := &models.Order{ID: "o1", Address: "customer"}
	eligible := map[string]struct{}{"r-far": {}, "r-near": {}, "r-mid": {}}

	ranked, err := rankByDistance(context.Background(), resolver, order, eligible, restaurants)
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Equal(t, "r-near", ranked[0].RestaurantID)
	assert.Equal(t, "r-mid", ranked[1].RestaurantID)
	assert.Equal(t, "r-far", ranked[2].RestaurantID)
	assert.Less(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
	assert.Less(t, ranked[1].DistanceKm, ranked[2].DistanceKm)
	assert.Positive(t, ranked[0].DistanceKm)
}

func TestRankByDistanceTieBreaksByID(t *testing.T) {
	resolver := &stubResolver{locations: map[string]models.Location{
		"customer":       {Lat: 55.7558, Lon: 37.6176},
		"shared address": {Lat: 55.7600, Lon: 37.6400},
	}}
	restaurants := map[string]*models.Restaurant{
		"r-b": {ID: "r-b", Name: "Second", Address: "shared address"},
		"r-a": {ID: "r-a", Name: "First", Address: "shared address"},
	}
	order := &models.Order{ID: "o1", Address: "customer"}
	eligible := map[string]struct{}{"r-b": {}, "r-a": {}}

	ranked, err := rankByDistance(context.Background(), resolver, order, eligible, restaurants)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
	assert.Equal(t, "r-a", ranked[0].RestaurantID)
	assert.Equal(t, "r-b", ranked[1].RestaurantID)
}

func TestRankByDistanceZeroForSamePoint(t *testing.T) {
	resolver := &stubResolver{locations: map[string]models.Location{
		"same": {Lat: 55.7558, Lon: 37.6176},
	}}
	restaurants := map[string]*models.Restaurant{
		"r1": {ID: "r1", Name: "Here", Address: "same"},
	}
	order := &models.Order{ID: "o1", Address: "same"}

	ranked, err := rankByDistance(context.Background(), resolver, order, map[string]struct{}{"r1": {}}, restaurants)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].DistanceKm)
}

func TestRankByDistanceEmptyEligibleSkipsResolution(t *testing.T) {
	resolver := &stubResolver{}
	order := &models.Order{ID: "o1", Address: "customer"}

	ranked, err := rankByDistance(context.Background(), resolver, order, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
	assert.Zero(t, resolver.calls, "no addresses should be resolved when nothing is eligible")
}

func TestRankByDistanceFailsFastOnUnresolvableAddress(t *testing.T) {
	resolver, restaurants := rankingFixture()
	resolver.failing = map[string]error{
		"midtown": fmt.Errorf("geocoding %q: %w", "midtown", assert.AnError),
	}
	order := &models.Order{ID: "o1", Address: "customer"}
	eligible := map[string]struct{}{"r-near": {}, "r-mid": {}, "r-far": {}}

	_, err := rankByDistance(context.Background(), resolver, order, eligible, restaurants)
	assert.ErrorIs(t, err, assert.AnError, "a single unresolvable restaurant aborts the whole ranking")
}
