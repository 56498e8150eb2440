package services

import (
	"context"

	"eventora_backend/internal/models"
	"eventora_backend/internal/pricing"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"
)

type BookingService interface {
	Create(ctx context.Context, userEmail, userName string, req *dto.CreateBookingRequest) (*models.Booking, error)
	ListFor(ctx context.Context, email string, role models.UserRole) ([]models.Booking, error)
	Get(ctx context.Context, email string, role models.UserRole, id string) (*models.Booking, error)
	Cancel(ctx context.Context, userEmail, id string) error
	AdvanceStatus(ctx context.Context, decoratorEmail, id string, target models.BookingStatus) (*models.Booking, error)
	AssignDecorator(ctx context.Context, id, decoratorEmail string) (*models.Booking, error)
}

type BookingServiceImpl struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
	userRepo    repositories.UserRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
	userRepo repositories.UserRepository,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
	}
}

// Create quotes the booking server-side from the catalog cost, the add-on
// registry and the coupon registry. Whatever totals the client computed for
// display are never read.
func (s *BookingServiceImpl) Create(ctx context.Context, userEmail, userName string, req *dto.CreateBookingRequest) (*models.Booking, error) {
	service, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NewNotFoundError("service", "Service not found")
		}
		return nil, apperrors.InternalError(err)
	}

	quote, err := pricing.Compute(service.Cost, req.Addons, req.CouponCode)
	if err != nil {
		if apperrors.Is(err, pricing.ErrUnknownAddon) {
			return nil, apperrors.ErrUnknownAddon
		}
		return nil, apperrors.InternalError(err)
	}

	booking := &models.Booking{
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		ServiceImage: service.ImageURL,
		UserEmail:    userEmail,
		UserName:     userName,
		EventDate:    req.Date,
		Address:      req.Address,
		Notes:        req.Notes,
		Addons:       quote.Addons,
		CouponCode:   quote.Coupon,
		Subtotal:     quote.Subtotal,
		Discount:     quote.Discount,
		Price:        quote.Total,
		Status:       models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return booking, nil
}

// ListFor scopes the listing by role: admins see everything, decorators see
// bookings assigned to them, users see their own.
func (s *BookingServiceImpl) ListFor(ctx context.Context, email string, role models.UserRole) ([]models.Booking, error) {
	var (
		bookings []models.Booking
		err      error
	)

	switch role {
	case models.UserRoleAdmin:
		bookings, err = s.bookingRepo.FindAll(ctx)
	case models.UserRoleDecorator:
		bookings, err = s.bookingRepo.FindByDecoratorEmail(ctx, email)
	default:
		bookings, err = s.bookingRepo.FindByUserEmail(ctx, email)
	}

	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) Get(ctx context.Context, email string, role models.UserRole, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.NewNotFoundError("booking", "Booking not found")
		}
		return nil, apperrors.InternalError(err)
	}

	switch role {
	case models.UserRoleAdmin:
	case models.UserRoleDecorator:
		if booking.DecoratorEmail != email {
			return nil, apperrors.ErrInsufficientPermissions
		}
	default:
		if booking.UserEmail != email {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	return booking, nil
}

// Cancel deletes the caller's booking, but only while it is still pending.
func (s *BookingServiceImpl) Cancel(ctx context.Context, userEmail, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return apperrors.NewNotFoundError("booking", "Booking not found")
		}
		return apperrors.InternalError(err)
	}

	if booking.UserEmail != userEmail {
		return apperrors.ErrInsufficientPermissions
	}

	if booking.Status != models.BookingStatusPending {
		return apperrors.ErrCannotCancelBooking
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// AdvanceStatus moves an assigned booking exactly one step along the
// lifecycle. Only the assigned decorator may advance it, and only through
// the stages that follow assignment.
func (s *BookingServiceImpl) AdvanceStatus(ctx context.Context, decoratorEmail, id string, target models.BookingStatus) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.NewNotFoundError("booking", "Booking not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if booking.DecoratorEmail != decoratorEmail {
		return nil, apperrors.ErrInsufficientPermissions
	}

	// Decorators work the post-assignment stages only. pending→paid belongs
	// to payment verification, paid→assigned to admin assignment.
	if booking.Status == models.BookingStatusPending || booking.Status == models.BookingStatusPaid {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	next, ok := models.NextBookingStatus(booking.Status)
	if !ok || target != next {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	updated, err := s.bookingRepo.Update(ctx, id, map[string]interface{}{"status": target})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

// AssignDecorator puts a paid booking into a decorator's queue. Re-assigning
// an already assigned booking is allowed until work starts.
func (s *BookingServiceImpl) AssignDecorator(ctx context.Context, id, decoratorEmail string) (*models.Booking, error) {
	decorator, err := s.userRepo.GetByEmail(ctx, decoratorEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "Decorator not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if decorator.Role != models.UserRoleDecorator {
		return nil, apperrors.ErrInvalidUserRole
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.NewNotFoundError("booking", "Booking not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if booking.Status != models.BookingStatusPaid && booking.Status != models.BookingStatusAssigned {
		return nil, apperrors.ErrBookingNotPaid
	}

	updated, err := s.bookingRepo.Update(ctx, id, map[string]interface{}{
		"status":          models.BookingStatusAssigned,
		"decorator_email": decorator.Email,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}
