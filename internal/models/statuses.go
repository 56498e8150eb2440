package models

type UserRole string
type BookingStatus string
type RequestStatus string
type PaymentStatus string

const (
	UserRoleUser      UserRole = "user"
	UserRoleDecorator UserRole = "decorator"
	UserRoleAdmin     UserRole = "admin"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusAssigned  BookingStatus = "assigned"
	BookingStatusPlanning  BookingStatus = "planning"
	BookingStatusMaterials BookingStatus = "materials"
	BookingStatusOnWay     BookingStatus = "on_way"
	BookingStatusSetup     BookingStatus = "setup"
	BookingStatusCompleted BookingStatus = "completed"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// BookingLifecycle is the fixed, linearly ordered set of booking states.
var BookingLifecycle = []BookingStatus{
	BookingStatusPending,
	BookingStatusPaid,
	BookingStatusAssigned,
	BookingStatusPlanning,
	BookingStatusMaterials,
	BookingStatusOnWay,
	BookingStatusSetup,
	BookingStatusCompleted,
}

// NextBookingStatus returns the status that follows s in the lifecycle and
// false when s is terminal or unknown.
func NextBookingStatus(s BookingStatus) (BookingStatus, bool) {
	for i, status := range BookingLifecycle {
		if status == s {
			if i+1 < len(BookingLifecycle) {
				return BookingLifecycle[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleDecorator, UserRoleAdmin:
		return true
	}
	return false
}

func (s BookingStatus) Valid() bool {
	for _, status := range BookingLifecycle {
		if status == s {
			return true
		}
	}
	return false
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}
