package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	PasswordCost = bcrypt.MinCost
	t.Cleanup(func() { PasswordCost = bcrypt.DefaultCost })

	hash, err := HashPassword("admin1234")
	require.NoError(t, err)
	assert.NotEqual(t, "admin1234", hash)
	assert.True(t, CompareHashAndPassword(hash, "admin1234"))
	assert.False(t, CompareHashAndPassword(hash, "admin12345"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "admin1234"))
}
