package sandbox

import (
	"context"

	"staybook/internal/domain"
)

type ReviewRepository interface {
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Review, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.StoredBooking) error
	GetByRequestID(ctx context.Context, requestID string) (*domain.StoredBooking, error)
}
