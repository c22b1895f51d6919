package repositories

import (
	"context"

	"github.com/foodcart/restorank/internal/models"
)

// The coordinate cache's storage contract lives with its consumer,
// placecache.Store; the postgres PlaceRepository satisfies it.

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetAll(ctx context.Context) (map[string]*models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, items []*models.MenuItem) error
	Create(ctx context.Context, item *models.MenuItem) error
	// AvailabilitySnapshot returns the stocking restaurants per
	// product over entries with availability = true, reflecting the
	// menu state at call time.
	AvailabilitySnapshot(ctx context.Context) (map[string][]string, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ProductRepository interface {
	BulkCreate(ctx context.Context, products []*models.Product) error
	Create(ctx context.Context, product *models.Product) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []*models.Order) error
	Create(ctx context.Context, order *models.Order) error
	GetUnprocessed(ctx context.Context) ([]*models.Order, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
