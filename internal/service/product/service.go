package product

import (
	"context"

	"shopeasy/internal/domain"
)

type Service struct {
	repo repository
}

type repository interface {
	List(ctx context.Context) ([]domain.Product, error)
}

func New(repo repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog, never nil, so the wire shape is always an array.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
