package model

import "github.com/google/uuid"

// Product categories as stored in the catalog. The product list broadcast
// renders them in this fixed order.
const (
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryDairyEggs  = "dairy_eggs"
	CategoryBakery     = "bakery"
	CategoryPantry     = "pantry"
	CategoryMeat       = "meat"
)

// Product is a read-only projection of a catalog product.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Category    string    `json:"category"`
	IsSeasonal  bool      `json:"is_seasonal"`
	IsAvailable bool      `json:"is_available"`
}
