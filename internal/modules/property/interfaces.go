package property

import (
	"context"

	"staybook/internal/domain"
	"staybook/internal/modules/review"
)

type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, limit, offset int) ([]domain.Property, error)
}

// ReviewRenderer renders the review section embedded in the detail page.
type ReviewRenderer interface {
	Render(ctx context.Context, propertyID, acceptLanguage string) review.View
}
