package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodcart/restorank/internal/models"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []*models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, order := range orders {
		if err := insertOrder(ctx, tx, order); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertOrder(ctx, tx, order); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertOrder(ctx context.Context, tx pgx.Tx, order *models.Order) error {
	query := `
        INSERT INTO orders (
            id, firstname, lastname, phonenumber, address,
            status, comment, payment_method
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := tx.Exec(ctx, query,
		order.ID,
		order.FirstName,
		order.LastName,
		order.PhoneNumber,
		order.Address,
		order.Status,
		order.Comment,
		order.PaymentMethod,
	)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		itemQuery := `
            INSERT INTO order_products (order_id, product_id, quantity, price)
            VALUES ($1, $2, $3, $4)
        `
		_, err := tx.Exec(ctx, itemQuery, order.ID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetUnprocessed returns orders awaiting assignment, line items
// included, oldest first.
func (r *OrderRepository) GetUnprocessed(ctx context.Context) ([]*models.Order, error) {
	query := `
        SELECT id, firstname, lastname, phonenumber, address,
               status, comment, payment_method
        FROM orders
        WHERE status = $1
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query, models.OrderStatusUnprocessed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	byID := make(map[string]*models.Order)
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.FirstName,
			&order.LastName,
			&order.PhoneNumber,
			&order.Address,
			&order.Status,
			&order.Comment,
			&order.PaymentMethod,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
		byID[order.ID] = order
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemQuery := `
        SELECT op.order_id, op.product_id, op.quantity, op.price
        FROM order_products op
        JOIN orders o ON o.id = op.order_id
        WHERE o.status = $1
    `
	itemRows, err := r.pool.Query(ctx, itemQuery, models.OrderStatusUnprocessed)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		item := models.OrderItem{}
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		if order, exists := byID[orderID]; exists {
			order.Items = append(order.Items, item)
		}
	}
	return orders, itemRows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE orders CASCADE")
	return err
}
