package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/greenfield-grocer/notifier/internal/model"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Repository provides read access to the customers table. Customers are
// owned by the order-management side of the system; this subsystem never
// writes them.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new customer repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a customer by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, '')
		FROM customers
		WHERE id = $1;
    `

	var c model.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, ErrCustomerNotFound
		}

		return model.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}
