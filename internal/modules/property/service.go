package property

import (
	"context"
	"errors"
	"strings"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

// PageSize is the number of properties per index page.
const PageSize = 20

type Service struct {
	properties PropertyRepository
}

func NewService(properties PropertyRepository) *Service {
	return &Service{properties: properties}
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns one page of the catalog. Pages start at 1; anything lower is
// treated as the first page.
func (s *Service) List(ctx context.Context, page int) ([]domain.Property, error) {
	if page < 1 {
		page = 1
	}

	items, err := s.properties.List(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Property{}
	}
	return items, nil
}
