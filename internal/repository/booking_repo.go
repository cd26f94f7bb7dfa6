package repository

import (
	"context"
	"time"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.StoredBooking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// GetByRequestID returns gorm.ErrRecordNotFound when no booking carries the key.
func (r *BookingRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.StoredBooking, error) {
	var b domain.StoredBooking
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteOlderThan removes bookings created before cutoff and reports how many went.
func (r *BookingRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.StoredBooking{})
	return res.RowsAffected, res.Error
}
