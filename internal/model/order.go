package model

import (
	"time"

	"github.com/google/uuid"
)

// Delivery methods as stored on orders.
const (
	DeliveryMethodDelivery   = "delivery"
	DeliveryMethodCollection = "collection"
)

// Order is a read-only projection of a placed order with its line items.
type Order struct {
	ID                  uuid.UUID   `json:"id"`
	CustomerID          uuid.UUID   `json:"customer_id"`
	DeliveryDate        time.Time   `json:"delivery_date"`
	DeliveryMethod      string      `json:"delivery_method"`
	DeliveryAddress     string      `json:"delivery_address,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Items               []OrderItem `json:"items"`
}

// OrderItem is one order line with the product details and the price
// captured at order time.
type OrderItem struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
	PriceAtOrder float64   `json:"price_at_order"`
}

// Total sums price-at-order times quantity across all line items.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.PriceAtOrder * item.Quantity
	}

	return total
}
