package apperrors

import (
	"net/http"
)

// Factories and predefined variables for common business-rule errors.

// ErrNotFound wraps a repository not-found error (404).
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a duplicate-resource error (409).
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds an invalid-operation error (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus builds an invalid-status error (409).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Auth ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Bookings ---

// ErrCannotCancelBooking: deletion is only allowed while a booking is pending.
var ErrCannotCancelBooking = New(
	CodeInvalidStatus,
	"booking",
	"Cannot cancel processed booking",
	http.StatusForbidden,
)

// ErrInvalidStatusTransition: the lifecycle only moves forward one step at a time.
var ErrInvalidStatusTransition = New(
	CodeInvalidStatus,
	"booking",
	"Booking status can only advance to the next stage",
	http.StatusConflict,
)

var ErrBookingNotPaid = New(
	CodeInvalidStatus,
	"booking",
	"Booking must be paid before a decorator can be assigned",
	http.StatusConflict,
)

// --- Decorator requests ---

var ErrRequestAlreadySubmitted = New(
	CodeAlreadyExists,
	"decorator_request",
	"Request already pending or processed",
	http.StatusConflict,
)

var ErrRequestAlreadyProcessed = New(
	CodeInvalidStatus,
	"decorator_request",
	"Request has already been processed",
	http.StatusConflict,
)

// --- Payments ---

var ErrPaymentNotCompleted = New(
	CodeInvalidOperation,
	"payment",
	"Payment has not been completed",
	http.StatusBadRequest,
)

// ErrPaymentGateway wraps a gateway failure (503).
func ErrPaymentGateway(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "payment", "Payment provider error", http.StatusServiceUnavailable)
}

var ErrUnknownAddon = New(
	CodeValidationFailed,
	"pricing",
	"Unknown add-on selected",
	http.StatusBadRequest,
)
