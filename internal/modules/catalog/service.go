package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)

	// Seed inserts the sample catalog when the products table is empty.
	Seed(ctx context.Context) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Seed(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, p := range SampleProducts() {
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}
	}
	s.logger.Info("seeded sample catalog", zap.Int("products", len(SampleProducts())))
	return nil
}
