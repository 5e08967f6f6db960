package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/kyystore-api/internal/domain/repository"
)

func TestInsertError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"email unique", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_lower_key"}, repository.ErrEmailTaken},
		{"primary key", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_pkey"}, repository.ErrIDTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insertError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestInsertError_WrapsOther(t *testing.T) {
	base := errors.New("connection reset")
	err := insertError(base)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "insert user")
}
