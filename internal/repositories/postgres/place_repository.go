package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodcart/restorank/internal/models"
	"github.com/foodcart/restorank/internal/placecache"
)

// PlaceRepository is the durable backing of the coordinate cache.
var _ placecache.Store = (*PlaceRepository)(nil)

type PlaceRepository struct {
	pool *pgxpool.Pool
}

func NewPlaceRepository(pool *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{pool: pool}
}

func (r *PlaceRepository) Get(ctx context.Context, address string) (*models.Place, error) {
	query := `
        SELECT address, lat, lon, resolved_at
        FROM places
        WHERE address = $1
    `
	place := &models.Place{}
	err := r.pool.QueryRow(ctx, query, address).Scan(
		&place.Address,
		&place.Location.Lat,
		&place.Location.Lon,
		&place.ResolvedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return place, nil
}

// Put inserts the entry unless the address already has one. A losing
// concurrent writer is treated as already resolved: the conflict is
// swallowed and the first write stays.
func (r *PlaceRepository) Put(ctx context.Context, place *models.Place) error {
	query := `
        INSERT INTO places (address, lat, lon, resolved_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (address) DO NOTHING
    `
	_, err := r.pool.Exec(ctx, query,
		place.Address,
		place.Location.Lat,
		place.Location.Lon,
		place.ResolvedAt,
	)
	return err
}

func (r *PlaceRepository) Delete(ctx context.Context, address string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM places WHERE address = $1", address)
	return err
}

func (r *PlaceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM places").Scan(&count)
	return count, err
}
