package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodcart/restorank/internal/models"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) BulkCreate(ctx context.Context, products []*models.Product) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"products"},
		[]string{"id", "name", "price", "description"},
		pgx.CopyFromSlice(len(products), func(i int) ([]interface{}, error) {
			return []interface{}{
				products[i].ID,
				products[i].Name,
				products[i].Price,
				products[i].Description,
			}, nil
		}),
	)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
        INSERT INTO products (id, name, price, description)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Description,
	)
	return err
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE products CASCADE")
	return err
}
