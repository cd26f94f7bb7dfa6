package repository

import (
	"context"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetByID fetches a property by its identifier
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// List returns properties ordered by name
func (r *PropertyRepository) List(ctx context.Context, limit, offset int) ([]domain.Property, error) {
	if limit <= 0 {
		limit = 20
	}

	var items []domain.Property
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error

	return items, err
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}
