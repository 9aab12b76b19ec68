package model

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses considered outstanding by the payment reminder flow.
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPartial = "partial"
)

// Invoice is a read-only projection of an issued invoice.
type Invoice struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	OrderID    uuid.UUID `json:"order_id"`
	Total      float64   `json:"total"`
	DueDate    time.Time `json:"due_date"`
	Status     string    `json:"status"`
}
