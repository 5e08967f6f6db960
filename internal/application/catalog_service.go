package application

import (
	"context"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	repo "github.com/oksasatya/kyystore-api/internal/domain/repository"
)

type CatalogService struct {
	Repo repo.ProductRepository
}

func NewCatalogService(r repo.ProductRepository) *CatalogService {
	return &CatalogService{Repo: r}
}

func (s *CatalogService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.List(ctx)
}
