package models

import "time"

// PaymentTransaction records one checkout session created for a booking.
// SessionID is unique so a replayed verification maps onto the same row.
type PaymentTransaction struct {
	BaseModel
	BookingID     string        `gorm:"not null;index"`
	UserEmail     string        `gorm:"not null;index"`
	Amount        int           `gorm:"not null"`
	Currency      string        `gorm:"type:varchar(3);not null;default:'usd'"`
	SessionID     string        `gorm:"uniqueIndex;not null"`
	PaymentIntent string
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	PaidAt        *time.Time
}
