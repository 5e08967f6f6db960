package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	"github.com/oksasatya/kyystore-api/internal/domain/repository"
)

func newUser(id, email string) *entity.User {
	return &entity.User{ID: id, Role: entity.RoleUser, Email: email, Name: id, CreatedAt: time.Now()}
}

func TestUserRepository_AddAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Add(ctx, newUser("u-1", "a@example.com")))

	u, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)

	u, err = repo.FindByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.FindByID(ctx, "u-404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Add(ctx, newUser("u-1", "a@example.com")))
	err := repo.Add(ctx, newUser("u-2", "A@Example.com "))
	assert.ErrorIs(t, err, repository.ErrEmailTaken)

	err = repo.Add(ctx, newUser("u-1", "b@example.com"))
	assert.ErrorIs(t, err, repository.ErrIDTaken)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserRepository_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Add(ctx, newUser(fmt.Sprintf("u-%d", i), fmt.Sprintf("u%d@example.com", i))))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, u := range all {
		assert.Equal(t, fmt.Sprintf("u-%d", i), u.ID)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	in := newUser("u-1", "a@example.com")
	require.NoError(t, repo.Add(ctx, in))
	in.Name = "mutated after add"

	u, err := repo.FindByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.Name)

	u.Name = "mutated after read"
	again, err := repo.FindByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", again.Name)
}

func TestUserRepository_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_ = repo.Add(ctx, newUser(fmt.Sprintf("u-%d", i), fmt.Sprintf("u%d@example.com", i)))
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestUserRepository_ConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	const n = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			if err := repo.Add(ctx, newUser(fmt.Sprintf("u-%d", i), "same@example.com")); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, success)
}

func TestProductRepository_List(t *testing.T) {
	repo := NewProductRepository(nil)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, "p-1", items[0].ID)
	assert.Equal(t, entity.ProductSold, items[4].Status)

	items[0].Name = "changed"
	again, _ := repo.List(context.Background())
	assert.Equal(t, "Valorant Account", again[0].Name)
}
