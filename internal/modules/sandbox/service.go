package sandbox

import (
	"context"
	"errors"
	"strings"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingRepository
}

func NewService(reviews ReviewRepository, bookings BookingRepository) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

func (s *Service) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	if strings.TrimSpace(propertyID) == "" {
		return nil, ErrInvalidRequest
	}
	return s.reviews.ListByProperty(ctx, propertyID)
}

// CreateBooking stores a booking request. A request id seen before returns the
// original booking with created=false instead of storing a duplicate.
func (s *Service) CreateBooking(ctx context.Context, in domain.BookingFields, requestID string) (*domain.StoredBooking, bool, error) {
	requestID = strings.TrimSpace(requestID)

	if requestID != "" {
		existing, err := s.bookings.GetByRequestID(ctx, requestID)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	}

	b := &domain.StoredBooking{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		CardLast4:      last4(in.CardNumber),
		ExpirationDate: in.ExpirationDate,
		BillingAddress: in.BillingAddress,
	}
	if requestID != "" {
		b.RequestID = &requestID
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			// lost a race with a concurrent retry carrying the same key
			existing, getErr := s.bookings.GetByRequestID(ctx, requestID)
			if getErr != nil {
				return nil, false, ErrConflict
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func last4(card string) string {
	if len(card) <= 4 {
		return card
	}
	return card[len(card)-4:]
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "SQLSTATE 23505") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
