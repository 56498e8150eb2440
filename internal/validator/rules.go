package validator

import (
	"eventora_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	// Registration only fails on empty tag names, which are all fixed here.
	_ = v.RegisterValidation("is-user-role", isUserRole)
	_ = v.RegisterValidation("is-booking-status", isBookingStatus)
	_ = v.RegisterValidation("is-request-status", isRequestStatus)
}

func isUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).Valid()
}

func isBookingStatus(fl validator.FieldLevel) bool {
	return models.BookingStatus(fl.Field().String()).Valid()
}

// Admins only ever move a request to approved or rejected; pending is the
// initial state and cannot be requested.
func isRequestStatus(fl validator.FieldLevel) bool {
	s := models.RequestStatus(fl.Field().String())
	return s == models.RequestStatusApproved || s == models.RequestStatusRejected
}
