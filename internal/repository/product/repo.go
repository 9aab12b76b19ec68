package product

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/greenfield-grocer/notifier/internal/model"
)

// Repository provides read access to the products table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListAvailable retrieves all currently available products.
func (r *Repository) ListAvailable(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, price, unit, category, is_seasonal, is_available
		FROM products
		WHERE is_available = TRUE
		ORDER BY category, name;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list available products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListSeasonal retrieves up to limit available seasonal products.
func (r *Repository) ListSeasonal(ctx context.Context, limit int) ([]model.Product, error) {
	query := `
		SELECT id, name, price, unit, category, is_seasonal, is_available
		FROM products
		WHERE is_available = TRUE AND is_seasonal = TRUE
		ORDER BY name
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasonal products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
}

func scanProducts(rows rowScanner) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Unit, &p.Category, &p.IsSeasonal, &p.IsAvailable); err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	return products, nil
}
