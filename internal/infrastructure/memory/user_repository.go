package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	"github.com/oksasatya/kyystore-api/internal/domain/repository"
)

// UserRepository keeps users in process memory, in insertion order.
// Everything is lost on restart.
type UserRepository struct {
	mu      sync.RWMutex
	users   []*entity.User
	byEmail map[string]int
	byID    map[string]int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byEmail: make(map[string]int),
		byID:    make(map[string]int),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Add(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if _, ok := r.byEmail[key]; ok {
		return repository.ErrEmailTaken
	}
	if _, ok := r.byID[u.ID]; ok {
		return repository.ErrIDTaken
	}
	r.users = append(r.users, u.Clone())
	idx := len(r.users) - 1
	r.byEmail[key] = idx
	r.byID[u.ID] = idx
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.users[idx].Clone(), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.users[idx].Clone(), nil
}

func (r *UserRepository) List(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
