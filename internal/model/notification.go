package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the delivery lifecycle state of a notification record.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Terminal reports whether no further status transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusFailed
}

// Type identifies the business event a notification record belongs to.
type Type string

const (
	TypeOrderConfirmation Type = "order_confirmation"
	TypePaymentReminder   Type = "payment_reminder"
	TypeProductList       Type = "product_list"
	TypeSeasonalPoll      Type = "seasonal_poll"
)

// Method is the delivery channel of a single notification record.
// One business event going to both channels produces two records.
type Method string

const (
	MethodWhatsApp Method = "whatsapp"
	MethodEmail    Method = "email"
)

// Notification is one (customer, channel, event) delivery unit.
//
// Content is rendered once at creation and never regenerated, so replaying
// a pending record after a crash sends exactly what was queued.
// SentAt is non-nil iff Status is "sent".
type Notification struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Type       Type       `json:"type"`
	Method     Method     `json:"method"`
	Content    string     `json:"content"`
	Status     Status     `json:"status"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
