// Package placecache owns address-to-coordinate resolution. It is the
// single source of truth for coordinates: a durable store keyed by the
// normalized address text, filled lazily through the geocoder on miss.
package placecache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/foodcart/restorank/internal/models"
)

// GeocodingError is the umbrella failure surfaced by Resolve when the
// geocoder cannot produce a coordinate for an address. The underlying
// geocoder sentinel is reachable through errors.Is/As.
type GeocodingError struct {
	Address string
	Err     error
}

func (e *GeocodingError) Error() string {
	return fmt.Sprintf("geocoding %q: %v", e.Address, e.Err)
}

func (e *GeocodingError) Unwrap() error { return e.Err }

// Store is the durable cache storage. Get returns (nil, nil) when the
// address has no entry yet.
type Store interface {
	Get(ctx context.Context, address string) (*models.Place, error)
	// Put persists a new entry. Concurrent writers for the same
	// address must not fail: the store keeps the first write and
	// drops the rest (the address-uniqueness invariant holds either
	// way, coordinates for one address are identical).
	Put(ctx context.Context, place *models.Place) error
	Delete(ctx context.Context, address string) error
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
}

type Resolver struct {
	store    Store
	geocoder Geocoder
	group    singleflight.Group
	now      func() time.Time
}

func NewResolver(store Store, geocoder Geocoder) *Resolver {
	return &Resolver{
		store:    store,
		geocoder: geocoder,
		now:      time.Now,
	}
}

// Resolve returns the coordinate for address, consulting the store
// first and the geocoder on miss. Resolved coordinates are persisted
// and returned unchanged on every later call; entries never expire.
// Concurrent misses on one address are collapsed to a single provider
// call. On geocoder failure nothing is written and a *GeocodingError
// is returned.
func (r *Resolver) Resolve(ctx context.Context, address string) (models.Location, error) {
	place, err := r.store.Get(ctx, address)
	if err != nil {
		return models.Location{}, fmt.Errorf("reading place cache: %w", err)
	}
	if place != nil {
		return place.Location, nil
	}

	result, err, _ := r.group.Do(address, func() (interface{}, error) {
		// Re-check under the flight: another caller may have
		// filled the entry while this one waited.
		place, err := r.store.Get(ctx, address)
		if err != nil {
			return models.Location{}, fmt.Errorf("reading place cache: %w", err)
		}
		if place != nil {
			return place.Location, nil
		}

		location, err := r.geocoder.Geocode(ctx, address)
		if err != nil {
			return models.Location{}, &GeocodingError{Address: address, Err: err}
		}

		entry := &models.Place{
			Address:    address,
			Location:   location,
			ResolvedAt: r.now(),
		}
		if err := r.store.Put(ctx, entry); err != nil {
			return models.Location{}, fmt.Errorf("writing place cache: %w", err)
		}
		return location, nil
	})
	if err != nil {
		return models.Location{}, err
	}
	return result.(models.Location), nil
}

// Invalidate drops the cached entry for address so the next Resolve
// consults the geocoder again. Intended as a manual operator action;
// entries are never expired automatically.
func (r *Resolver) Invalidate(ctx context.Context, address string) error {
	if err := r.store.Delete(ctx, address); err != nil {
		return fmt.Errorf("invalidating place cache entry: %w", err)
	}
	return nil
}
