package dto

import "time"

// CreateBookingRequest carries what the client chose. Prices are not
// accepted from the client; the server quotes the booking itself.
type CreateBookingRequest struct {
	ServiceID  string    `json:"service_id" validate:"required,uuid4"`
	Date       time.Time `json:"date" validate:"required"`
	Address    string    `json:"address" validate:"required,min=5,max=300"`
	Notes      string    `json:"notes" validate:"omitempty,max=1000"`
	Addons     []string  `json:"addons" validate:"omitempty,dive,min=1"`
	CouponCode string    `json:"coupon_code" validate:"omitempty,max=30"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,is-booking-status"`
}

type AssignDecoratorRequest struct {
	DecoratorEmail string `json:"decorator_email" validate:"required,email"`
}
