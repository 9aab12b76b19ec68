package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/greenfield-grocer/notifier/internal/model"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository provides read access to orders and their line items.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new order repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetWithItems retrieves an order with its line items, including the
// product name and unit for each line.
func (r *Repository) GetWithItems(ctx context.Context, id uuid.UUID) (model.Order, error) {
	query := `
		SELECT id, customer_id, delivery_date, delivery_method,
		       COALESCE(delivery_address, ''), COALESCE(special_instructions, '')
		FROM orders
		WHERE id = $1;
    `

	var o model.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.DeliveryDate, &o.DeliveryMethod,
		&o.DeliveryAddress, &o.SpecialInstructions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrOrderNotFound
		}

		return model.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	itemsQuery := `
		SELECT oi.product_id, p.name, p.unit, oi.quantity, oi.price_at_order
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1;
    `

	rows, err := r.db.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Unit, &item.Quantity, &item.PriceAtOrder); err != nil {
			return model.Order{}, err
		}

		o.Items = append(o.Items, item)
	}

	return o, nil
}
