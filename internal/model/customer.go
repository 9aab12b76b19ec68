package model

import "github.com/google/uuid"

// Customer is a read-only projection of the store's customer entity.
// Empty Phone or Email means the customer has no address for that channel.
type Customer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
	Email string    `json:"email,omitempty"`
}
