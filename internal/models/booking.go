package models

import (
	"time"

	"gorm.io/datatypes"
)

// BookingAddon is a selected add-on snapshot stored on the booking.
type BookingAddon struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Booking struct {
	BaseModel
	ServiceID string `gorm:"not null;index" json:"service_id"`
	// Denormalized at creation time so the booking survives catalog edits.
	ServiceName  string `json:"service_name"`
	ServiceImage string `json:"image"`

	UserEmail string    `gorm:"not null;index" json:"user_email"`
	UserName  string    `json:"user_name"`
	EventDate time.Time `json:"date"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`

	Addons     datatypes.JSONSlice[BookingAddon] `json:"addons"`
	CouponCode string                            `json:"coupon_code"`
	Subtotal   int                               `json:"subtotal"`
	Discount   int                               `json:"discount"`
	Price      int                               `gorm:"not null" json:"price"`

	Status         BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DecoratorEmail string        `gorm:"index" json:"decorator_email,omitempty"`
	TransactionID  string        `json:"transaction_id,omitempty"`
}
