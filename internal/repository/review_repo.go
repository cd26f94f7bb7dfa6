package repository

import (
	"context"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByProperty returns reviews of one property, oldest first.
func (r *ReviewRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Review, error) {
	var rows []domain.StoredReview
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("date ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToReview())
	}
	return out, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.StoredReview) error {
	return r.db.WithContext(ctx).Create(rv).Error
}
