package repositories

import (
	"context"
	"errors"

	"eventora_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	FindByUserEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByDecoratorEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	RevenueTotal(ctx context.Context) (int64, error)
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *BookingRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Booking, error) {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrBookingNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) FindByUserEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Where("user_email = ?", email).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByDecoratorEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Where("decorator_email = ?", email).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error
	return count, err
}

// RevenueTotal sums the final price of every booking that made it past
// the pending stage.
func (r *BookingRepositoryImpl) RevenueTotal(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status <> ?", models.BookingStatusPending).
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue).Error
	return revenue, err
}
