package services

import (
	"context"
	"testing"
	"time"

	"eventora_backend/internal/models"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingService(db *gorm.DB) BookingService {
	return NewBookingService(
		repositories.NewBookingRepository(db),
		repositories.NewServiceRepository(db),
		repositories.NewUserRepository(db),
	)
}

func createBookingVia(t *testing.T, svc BookingService, serviceID, userEmail string, addons []string, coupon string) *models.Booking {
	t.Helper()

	booking, err := svc.Create(context.Background(), userEmail, "Test Client", &dto.CreateBookingRequest{
		ServiceID:  serviceID,
		Date:       time.Now().AddDate(0, 1, 0),
		Address:    "12 Garden Street, Berlin",
		Addons:     addons,
		CouponCode: coupon,
	})
	require.NoError(t, err)
	return booking
}

func TestBookingCreate_PriceIsComputedServerSide(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)

	booking := createBookingVia(t, svc, catalogEntry.ID, "client@example.com",
		[]string{"Premium Lighting Setup"}, "SAVE10")

	assert.Equal(t, 1150, booking.Subtotal)
	assert.Equal(t, 115, booking.Discount)
	assert.Equal(t, 1035, booking.Price)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, "Garden Wedding Package", booking.ServiceName)
}

func TestBookingCreate_UnknownAddonRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Birthday Decor", "Birthday", 300)

	_, err := svc.Create(context.Background(), "client@example.com", "Test Client", &dto.CreateBookingRequest{
		ServiceID: catalogEntry.ID,
		Date:      time.Now().AddDate(0, 1, 0),
		Address:   "12 Garden Street, Berlin",
		Addons:    []string{"Confetti Cannon"},
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestBookingCancel_OnlyWhilePending(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)

	pending := createBookingVia(t, svc, catalogEntry.ID, "client@example.com", nil, "")
	require.NoError(t, svc.Cancel(context.Background(), "client@example.com", pending.ID))

	err := db.First(&models.Booking{}, "id = ?", pending.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingCancel_ProcessedBookingRefused(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)

	booking := createBookingVia(t, svc, catalogEntry.ID, "client@example.com", nil, "")
	require.NoError(t, db.Model(booking).Update("status", models.BookingStatusPaid).Error)

	err := svc.Cancel(context.Background(), "client@example.com", booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrCannotCancelBooking)

	// The booking is untouched.
	var kept models.Booking
	require.NoError(t, db.First(&kept, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingStatusPaid, kept.Status)
}

func TestBookingCancel_OnlyOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)

	booking := createBookingVia(t, svc, catalogEntry.ID, "client@example.com", nil, "")

	err := svc.Cancel(context.Background(), "other@example.com", booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestAssignDecorator_RequiresPaidBooking(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)
	createTestUser(t, db, "deco@example.com", "Deco", models.UserRoleDecorator)

	booking := createBookingVia(t, svc, catalogEntry.ID, "client@example.com", nil, "")

	_, err := svc.AssignDecorator(context.Background(), booking.ID, "deco@example.com")
	assert.ErrorIs(t, err, apperrors.ErrBookingNotPaid)

	require.NoError(t, db.Model(booking).Update("status", models.BookingStatusPaid).Error)

	assigned, err := svc.AssignDecorator(context.Background(), booking.ID, "deco@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAssigned, assigned.Status)
	assert.Equal(t, "deco@example.com", assigned.DecoratorEmail)
}

func TestAssignDecorator_RejectsNonDecorator(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)
	createTestUser(t, db, "plain@example.com", "Plain", models.UserRoleUser)

	booking := createBookingVia(t, svc, catalogEntry.ID, "client@example.com", nil, "")
	require.NoError(t, db.Model(booking).Update("status", models.BookingStatusPaid).Error)

	_, err := svc.AssignDecorator(context.Background(), booking.ID, "plain@example.com")
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestAdvanceStatus_SingleStepOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)
	createTestUser(t, db, "deco@example.com", "Deco", models.UserRoleDecorator)

	booking := createBookingVia(t, svc, catalogEntry.ID, "client@example.com", nil, "")
	require.NoError(t, db.Model(booking).Updates(map[string]interface{}{
		"status":          models.BookingStatusAssigned,
		"decorator_email": "deco@example.com",
	}).Error)

	// Jumping two stages ahead is refused.
	_, err := svc.AdvanceStatus(context.Background(), "deco@example.com", booking.ID, models.BookingStatusMaterials)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	// The next stage is accepted, one at a time, up to completion.
	for _, next := range []models.BookingStatus{
		models.BookingStatusPlanning,
		models.BookingStatusMaterials,
		models.BookingStatusOnWay,
		models.BookingStatusSetup,
		models.BookingStatusCompleted,
	} {
		updated, err := svc.AdvanceStatus(context.Background(), "deco@example.com", booking.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	// completed is terminal.
	_, err = svc.AdvanceStatus(context.Background(), "deco@example.com", booking.ID, models.BookingStatusCompleted)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestAdvanceStatus_OnlyAssignedDecorator(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)

	booking := createBookingVia(t, svc, catalogEntry.ID, "client@example.com", nil, "")
	require.NoError(t, db.Model(booking).Updates(map[string]interface{}{
		"status":          models.BookingStatusAssigned,
		"decorator_email": "deco@example.com",
	}).Error)

	_, err := svc.AdvanceStatus(context.Background(), "intruder@example.com", booking.ID, models.BookingStatusPlanning)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestListFor_ScopesByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	catalogEntry := createTestService(t, db, "Garden Wedding Package", "Wedding", 1000)
	createTestUser(t, db, "a@example.com", "A", models.UserRoleUser)
	createTestUser(t, db, "b@example.com", "B", models.UserRoleUser)

	first := createBookingVia(t, svc, catalogEntry.ID, "a@example.com", nil, "")
	createBookingVia(t, svc, catalogEntry.ID, "b@example.com", nil, "")
	require.NoError(t, db.Model(first).Updates(map[string]interface{}{
		"status":          models.BookingStatusAssigned,
		"decorator_email": "deco@example.com",
	}).Error)

	own, err := svc.ListFor(context.Background(), "a@example.com", models.UserRoleUser)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	assigned, err := svc.ListFor(context.Background(), "deco@example.com", models.UserRoleDecorator)
	require.NoError(t, err)
	assert.Len(t, assigned, 1)

	all, err := svc.ListFor(context.Background(), "admin@example.com", models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
