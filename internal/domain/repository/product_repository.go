package repository

import (
	"context"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
)

// ProductRepository serves the read-only catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
}
