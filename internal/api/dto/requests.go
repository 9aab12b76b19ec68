package dto

// OrderConfirmationRequest triggers an order confirmation dispatch job.
type OrderConfirmationRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
}

// PaymentReminderRequest triggers a synchronous payment reminder send.
type PaymentReminderRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

// BroadcastRequest triggers a catalog or poll broadcast to the given
// customers.
type BroadcastRequest struct {
	CustomerIDs []string `json:"customer_ids" validate:"required,min=1,dive,uuid"`
}

// VerificationCodeRequest triggers a verification code send to a raw
// contact (phone number or email address).
type VerificationCodeRequest struct {
	Contact string `json:"contact" validate:"required"`
	Code    string `json:"code" validate:"required"`
}
