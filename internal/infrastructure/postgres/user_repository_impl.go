package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	"github.com/oksasatya/kyystore-api/internal/domain/repository"
)

// uniqueViolation is the SQLSTATE for unique_violation
const uniqueViolation = "23505"

const userColumns = `id, role, email, name, password_hash, created_at,
	nik, date_of_birth, phone, address, card_number, card_expiry, card_cvv`

// UserRepository stores users in Postgres. Token columns hold the envelope
// output verbatim.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Add(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, u.ID, string(u.Role), u.Email, u.Name, u.PasswordHash, u.CreatedAt,
		u.NIK, u.DateOfBirth, u.Phone, u.Address, u.CardNumber, u.CardExpiry, u.CardCVV)
	return insertError(err)
}

// insertError maps unique violations to repository errors.
func insertError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if pgErr.ConstraintName == "users_pkey" {
			return repository.ErrIDTaken
		}
		return repository.ErrEmailTaken
	}
	return fmt.Errorf("insert user: %w", err)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var role string
	if err := row.Scan(&u.ID, &role, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt,
		&u.NIK, &u.DateOfBirth, &u.Phone, &u.Address, &u.CardNumber, &u.CardExpiry, &u.CardCVV); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.Role = entity.Role(role)
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
