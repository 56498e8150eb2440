package services

import (
	"context"
	"fmt"
	"strings"

	"eventora_backend/internal/config"
	"eventora_backend/internal/email"
	"eventora_backend/internal/logger"
	"eventora_backend/internal/models"
	"eventora_backend/internal/payment"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"
)

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, userEmail, bookingID string) (*dto.CheckoutResponse, error)
	Verify(ctx context.Context, userEmail, sessionID string) (*dto.VerifyPaymentResponse, error)
	History(ctx context.Context, userEmail string) ([]dto.PaymentHistoryItem, error)
}

type PaymentServiceImpl struct {
	gateway       payment.Gateway
	paymentRepo   repositories.PaymentRepository
	bookingRepo   repositories.BookingRepository
	emailProvider email.Provider
}

func NewPaymentService(
	gateway payment.Gateway,
	paymentRepo repositories.PaymentRepository,
	bookingRepo repositories.BookingRepository,
	emailProvider email.Provider,
) PaymentService {
	return &PaymentServiceImpl{
		gateway:       gateway,
		paymentRepo:   paymentRepo,
		bookingRepo:   bookingRepo,
		emailProvider: emailProvider,
	}
}

// CreateCheckoutSession opens a gateway session for the caller's pending
// booking. The charged amount is the booking's stored server-computed price.
func (s *PaymentServiceImpl) CreateCheckoutSession(ctx context.Context, userEmail, bookingID string) (*dto.CheckoutResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.NewNotFoundError("booking", "Booking not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if booking.UserEmail != userEmail {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if booking.Status != models.BookingStatusPending {
		return nil, apperrors.ErrInvalidStatus("payment", "Booking is not awaiting payment")
	}

	cfg := config.GetConfig()
	clientURL := strings.TrimRight(cfg.Payment.ClientURL, "/")

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutParams{
		Reference:     booking.ID,
		Description:   fmt.Sprintf("Eventora booking: %s", booking.ServiceName),
		Amount:        booking.Price,
		Currency:      cfg.Payment.Currency,
		CustomerEmail: booking.UserEmail,
		SuccessURL:    clientURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     clientURL + "/payment/cancel",
	})
	if err != nil {
		return nil, apperrors.ErrPaymentGateway(err)
	}

	tx := &models.PaymentTransaction{
		BookingID: booking.ID,
		UserEmail: booking.UserEmail,
		Amount:    booking.Price,
		Currency:  cfg.Payment.Currency,
		SessionID: session.ID,
		Status:    models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, tx); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
		Amount:      booking.Price,
		Currency:    cfg.Payment.Currency,
	}, nil
}

// Verify settles a checkout session. Repeating the call with the same
// session id is harmless: an already settled transaction short-circuits
// without touching the gateway or the booking again.
func (s *PaymentServiceImpl) Verify(ctx context.Context, userEmail, sessionID string) (*dto.VerifyPaymentResponse, error) {
	tx, err := s.paymentRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.NewNotFoundError("payment", "Checkout session not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if tx.UserEmail != userEmail {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if tx.Status == models.PaymentStatusPaid {
		booking, err := s.bookingRepo.GetByID(ctx, tx.BookingID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.VerifyPaymentResponse{
			BookingID:     booking.ID,
			BookingStatus: string(booking.Status),
			PaymentStatus: string(tx.Status),
			TransactionID: tx.ID,
		}, nil
	}

	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, apperrors.ErrPaymentGateway(err)
	}

	if !session.Paid() {
		return nil, apperrors.ErrPaymentNotCompleted
	}

	tx, err = s.paymentRepo.MarkPaid(ctx, sessionID, session.PaymentIntent)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, tx.BookingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The booking only moves forward from pending. A verify raced by another
	// verify finds it already paid and leaves it alone.
	if booking.Status == models.BookingStatusPending {
		booking, err = s.bookingRepo.Update(ctx, booking.ID, map[string]interface{}{
			"status":         models.BookingStatusPaid,
			"transaction_id": tx.ID,
		})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		s.sendReceipt(ctx, booking, tx)
	}

	return &dto.VerifyPaymentResponse{
		BookingID:     booking.ID,
		BookingStatus: string(booking.Status),
		PaymentStatus: string(tx.Status),
		TransactionID: tx.ID,
	}, nil
}

func (s *PaymentServiceImpl) History(ctx context.Context, userEmail string) ([]dto.PaymentHistoryItem, error) {
	txs, err := s.paymentRepo.FindByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.PaymentHistoryItem, 0, len(txs))
	for i := range txs {
		serviceName := ""
		if booking, err := s.bookingRepo.GetByID(ctx, txs[i].BookingID); err == nil {
			serviceName = booking.ServiceName
		}
		items = append(items, dto.ToPaymentHistoryItem(&txs[i], serviceName))
	}
	return items, nil
}

func (s *PaymentServiceImpl) sendReceipt(ctx context.Context, booking *models.Booking, tx *models.PaymentTransaction) {
	err := s.emailProvider.SendTemplate(
		[]string{booking.UserEmail},
		"Your Eventora payment was received",
		email.TemplatePaymentReceipt,
		email.TemplateData{
			"Name":        booking.UserName,
			"ServiceName": booking.ServiceName,
			"Amount":      tx.Amount,
			"Currency":    strings.ToUpper(tx.Currency),
		},
	)
	if err != nil {
		logger.CtxWarn(ctx, "Failed to send payment receipt", "error", err.Error())
	}
}
