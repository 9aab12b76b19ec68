package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/greenfield-grocer/notifier/internal/model"
)

// Repository provides read access to the invoices table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new invoice repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListOverdue retrieves the customer's invoices that are unpaid or partially
// paid with a due date strictly in the past, oldest due date first.
func (r *Repository) ListOverdue(ctx context.Context, customerID uuid.UUID) ([]model.Invoice, error) {
	query := `
		SELECT id, customer_id, order_id, total, due_date, status
		FROM invoices
		WHERE customer_id = $1
		  AND status IN ('unpaid', 'partial')
		  AND due_date < NOW()
		ORDER BY due_date ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue invoices: %w", err)
	}
	defer rows.Close()

	var invoices []model.Invoice
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.OrderID, &inv.Total, &inv.DueDate, &inv.Status); err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, nil
}
