// Package template renders notification content for the two delivery
// channels. All composers are pure: the same input always produces
// byte-identical output, which is what lets the queue processor replay
// persisted content without regenerating it.
package template

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/greenfield-grocer/notifier/internal/model"
)

const businessName = "Greenfield Grocer"

// Email subjects per notification type.
const (
	SubjectVerificationCode = "Your " + businessName + " verification code"
)

var subjects = map[model.Type]string{
	model.TypeOrderConfirmation: "Your order is confirmed",
	model.TypePaymentReminder:   "Payment reminder",
	model.TypeProductList:       "Fresh this week at " + businessName,
	model.TypeSeasonalPoll:      "Seasonal picks",
}

// Subject returns the email subject line for a notification type.
func Subject(t model.Type) string {
	if s, ok := subjects[t]; ok {
		return s
	}

	return businessName
}

// money renders a monetary value with the fixed currency prefix and exactly
// two decimal places.
func money(v float64) string {
	return fmt.Sprintf("R%.2f", v)
}

// shortRef returns the short human-facing reference for an entity id.
func shortRef(id uuid.UUID) string {
	return id.String()[:8]
}

// quantity renders an order quantity without trailing zeros (2 -> "2",
// 1.5 -> "1.5").
func quantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
