package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS places (
        address     TEXT PRIMARY KEY,
        lat         DOUBLE PRECISION NOT NULL,
        lon         DOUBLE PRECISION NOT NULL,
        resolved_at TIMESTAMPTZ NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS restaurants (
        id            TEXT PRIMARY KEY,
        name          TEXT NOT NULL,
        address       TEXT NOT NULL,
        contact_phone TEXT NOT NULL DEFAULT ''
    )`,
	`CREATE TABLE IF NOT EXISTS products (
        id          TEXT PRIMARY KEY,
        name        TEXT NOT NULL,
        price       NUMERIC(8,2) NOT NULL,
        description TEXT NOT NULL DEFAULT ''
    )`,
	`CREATE TABLE IF NOT EXISTS restaurant_menu_items (
        restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
        product_id    TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
        availability  BOOLEAN NOT NULL DEFAULT true,
        UNIQUE (restaurant_id, product_id)
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        id             TEXT PRIMARY KEY,
        firstname      TEXT NOT NULL,
        lastname       TEXT NOT NULL,
        phonenumber    TEXT NOT NULL,
        address        TEXT NOT NULL,
        status         TEXT NOT NULL,
        comment        TEXT NOT NULL DEFAULT '',
        payment_method TEXT NOT NULL DEFAULT ''
    )`,
	`CREATE TABLE IF NOT EXISTS order_products (
        order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
        product_id TEXT NOT NULL REFERENCES products(id),
        quantity   INTEGER NOT NULL,
        price      NUMERIC(8,2) NOT NULL
    )`,
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
