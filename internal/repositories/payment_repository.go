package repositories

import (
	"context"
	"errors"
	"time"

	"eventora_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("payment transaction not found")

type PaymentRepository interface {
	Create(ctx context.Context, tx *models.PaymentTransaction) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	FindByUserEmail(ctx context.Context, email string) ([]models.PaymentTransaction, error)
	MarkPaid(ctx context.Context, sessionID, paymentIntent string) (*models.PaymentTransaction, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, tx *models.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *PaymentRepositoryImpl) GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *PaymentRepositoryImpl) FindByUserEmail(ctx context.Context, email string) ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := r.db.WithContext(ctx).Where("user_email = ?", email).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *PaymentRepositoryImpl) MarkPaid(ctx context.Context, sessionID, paymentIntent string) (*models.PaymentTransaction, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.PaymentTransaction{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":         models.PaymentStatusPaid,
			"payment_intent": paymentIntent,
			"paid_at":        now,
			"updated_at":     now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTransactionNotFound
	}
	return r.GetBySessionID(ctx, sessionID)
}
