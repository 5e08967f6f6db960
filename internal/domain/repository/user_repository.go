package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
	ErrIDTaken    = errors.New("id already exists")
)

// UserRepository defines the storage contract for user records.
// List returns records in insertion order. Add fails with ErrEmailTaken when
// the email already exists, atomically with the insert.
type UserRepository interface {
	Add(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
