package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodcart/restorank/internal/models"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, items []*models.MenuItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"restaurant_menu_items"},
		[]string{"restaurant_id", "product_id", "availability"},
		pgx.CopyFromSlice(len(items), func(i int) ([]interface{}, error) {
			return []interface{}{
				items[i].RestaurantID,
				items[i].ProductID,
				items[i].Availability,
			}, nil
		}),
	)
	return err
}

func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
        INSERT INTO restaurant_menu_items (restaurant_id, product_id, availability)
        VALUES ($1, $2, $3)
    `
	_, err := r.pool.Exec(ctx, query,
		item.RestaurantID,
		item.ProductID,
		item.Availability,
	)
	return err
}

// AvailabilitySnapshot groups currently available menu entries by
// product. Products with no stocking restaurant are absent from the
// result rather than present with an empty slice.
func (r *MenuItemRepository) AvailabilitySnapshot(ctx context.Context) (map[string][]string, error) {
	query := `
        SELECT product_id, restaurant_id
        FROM restaurant_menu_items
        WHERE availability = true
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := make(map[string][]string)
	for rows.Next() {
		var productID, restaurantID string
		if err := rows.Scan(&productID, &restaurantID); err != nil {
			return nil, err
		}
		snapshot[productID] = append(snapshot[productID], restaurantID)
	}
	return snapshot, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurant_menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurant_menu_items")
	return err
}
