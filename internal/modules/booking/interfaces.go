package booking

import (
	"context"

	"staybook/internal/domain"
)

// BookingCreator sends a booking request to the backend. requestID is the
// idempotency key of the form session.
type BookingCreator interface {
	CreateBooking(ctx context.Context, fields domain.BookingFields, requestID string) error
}
