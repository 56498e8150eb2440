package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eventora_backend/internal/email"
	"eventora_backend/internal/models"
	"eventora_backend/internal/payment"
	"eventora_backend/internal/repositories"
	"eventora_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeGateway stands in for Stripe. Sessions are paid once markPaid is
// called, and every call is counted to prove idempotency.
type fakeGateway struct {
	sessions      map[string]*payment.CheckoutSession
	createCalls   int
	retrieveCalls int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]*payment.CheckoutSession{}}
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, params payment.CheckoutParams) (*payment.CheckoutSession, error) {
	f.createCalls++
	id := fmt.Sprintf("cs_test_%d", f.createCalls)
	session := &payment.CheckoutSession{
		ID:            id,
		URL:           "https://checkout.example.com/" + id,
		PaymentStatus: "unpaid",
		AmountTotal:   int64(params.Amount) * 100,
		Currency:      params.Currency,
		ClientRef:     params.Reference,
	}
	f.sessions[id] = session
	return session, nil
}

func (f *fakeGateway) RetrieveSession(_ context.Context, sessionID string) (*payment.CheckoutSession, error) {
	f.retrieveCalls++
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("no such session: %s", sessionID)
	}
	return session, nil
}

func (f *fakeGateway) markPaid(sessionID string) {
	f.sessions[sessionID].PaymentStatus = "paid"
	f.sessions[sessionID].PaymentIntent = "pi_" + sessionID
}

func newPaymentFixture(t *testing.T) (*gorm.DB, PaymentService, *fakeGateway, *models.Booking) {
	t.Helper()
	setTestConfig(t)

	db := newTestDB(t)
	gateway := newFakeGateway()
	svc := NewPaymentService(
		gateway,
		repositories.NewPaymentRepository(db),
		repositories.NewBookingRepository(db),
		email.NoopProvider{},
	)

	createTestUser(t, db, "client@example.com", "Test Client", models.UserRoleUser)
	booking := &models.Booking{
		ServiceID:   "svc-1",
		ServiceName: "Garden Wedding Package",
		UserEmail:   "client@example.com",
		UserName:    "Test Client",
		EventDate:   time.Now().AddDate(0, 1, 0),
		Address:     "12 Garden Street, Berlin",
		Subtotal:    1000,
		Price:       1000,
		Status:      models.BookingStatusPending,
	}
	require.NoError(t, db.Create(booking).Error)

	return db, svc, gateway, booking
}

func TestCheckoutSession_UsesStoredBookingPrice(t *testing.T) {
	_, svc, gateway, booking := newPaymentFixture(t)

	resp, err := svc.CreateCheckoutSession(context.Background(), "client@example.com", booking.ID)
	require.NoError(t, err)

	assert.Equal(t, 1000, resp.Amount)
	assert.Equal(t, "usd", resp.Currency)
	assert.NotEmpty(t, resp.CheckoutURL)
	assert.Equal(t, booking.ID, gateway.sessions[resp.SessionID].ClientRef)
}

func TestCheckoutSession_OnlyOwnPendingBooking(t *testing.T) {
	db, svc, _, booking := newPaymentFixture(t)

	_, err := svc.CreateCheckoutSession(context.Background(), "other@example.com", booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	require.NoError(t, db.Model(booking).Update("status", models.BookingStatusPaid).Error)
	_, err = svc.CreateCheckoutSession(context.Background(), "client@example.com", booking.ID)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestVerify_UnpaidSessionRefused(t *testing.T) {
	_, svc, _, booking := newPaymentFixture(t)

	resp, err := svc.CreateCheckoutSession(context.Background(), "client@example.com", booking.ID)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), "client@example.com", resp.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrPaymentNotCompleted)
}

func TestVerify_MarksBookingPaidAndIsIdempotent(t *testing.T) {
	db, svc, gateway, booking := newPaymentFixture(t)

	checkout, err := svc.CreateCheckoutSession(context.Background(), "client@example.com", booking.ID)
	require.NoError(t, err)
	gateway.markPaid(checkout.SessionID)

	first, err := svc.Verify(context.Background(), "client@example.com", checkout.SessionID)
	require.NoError(t, err)
	assert.Equal(t, string(models.BookingStatusPaid), first.BookingStatus)
	assert.Equal(t, string(models.PaymentStatusPaid), first.PaymentStatus)
	retrievesAfterFirst := gateway.retrieveCalls

	// Repeat with the same session id: same state, no second gateway call,
	// no duplicate transaction.
	second, err := svc.Verify(context.Background(), "client@example.com", checkout.SessionID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, retrievesAfterFirst, gateway.retrieveCalls)

	var txCount int64
	require.NoError(t, db.Model(&models.PaymentTransaction{}).
		Where("booking_id = ?", booking.ID).Count(&txCount).Error)
	assert.Equal(t, int64(1), txCount)

	var stored models.Booking
	require.NoError(t, db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingStatusPaid, stored.Status)
	assert.Equal(t, first.TransactionID, stored.TransactionID)
}

func TestVerify_OnlySessionOwner(t *testing.T) {
	_, svc, gateway, booking := newPaymentFixture(t)

	checkout, err := svc.CreateCheckoutSession(context.Background(), "client@example.com", booking.ID)
	require.NoError(t, err)
	gateway.markPaid(checkout.SessionID)

	_, err = svc.Verify(context.Background(), "other@example.com", checkout.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestHistory_ListsCallerTransactions(t *testing.T) {
	_, svc, gateway, booking := newPaymentFixture(t)

	checkout, err := svc.CreateCheckoutSession(context.Background(), "client@example.com", booking.ID)
	require.NoError(t, err)
	gateway.markPaid(checkout.SessionID)
	_, err = svc.Verify(context.Background(), "client@example.com", checkout.SessionID)
	require.NoError(t, err)

	items, err := svc.History(context.Background(), "client@example.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Garden Wedding Package", items[0].ServiceName)
	assert.Equal(t, string(models.PaymentStatusPaid), items[0].Status)
	assert.NotNil(t, items[0].PaidAt)

	empty, err := svc.History(context.Background(), "other@example.com")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

var _ payment.Gateway = (*fakeGateway)(nil)
