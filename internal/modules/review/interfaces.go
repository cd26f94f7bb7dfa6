package review

import (
	"context"

	"staybook/internal/domain"
)

// ReviewLister reads the review list of one property from the backend.
type ReviewLister interface {
	ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error)
}
