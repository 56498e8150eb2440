package dto

import "time"

type CreateCheckoutRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
}

type VerifyPaymentRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type VerifyPaymentResponse struct {
	BookingID     string `json:"booking_id"`
	BookingStatus string `json:"booking_status"`
	PaymentStatus string `json:"payment_status"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type PaymentHistoryItem struct {
	ID          string     `json:"id"`
	BookingID   string     `json:"booking_id"`
	ServiceName string     `json:"service_name,omitempty"`
	Amount      int        `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}
