package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	// MinCost keeps the test fast; verification logic is cost-independent.
	hasher := NewPasswordHasher(bcrypt.MinCost)

	t.Run("round trip", func(t *testing.T) {
		digest, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", digest)

		assert.True(t, hasher.Verify("correct horse battery staple", digest))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		digest, err := hasher.Hash("password-one")
		require.NoError(t, err)

		assert.False(t, hasher.Verify("password-two", digest))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := hasher.Hash("same-password")
		require.NoError(t, err)
		second, err := hasher.Hash("same-password")
		require.NoError(t, err)

		// Salted digests must differ even for identical inputs.
		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Verify("same-password", first))
		assert.True(t, hasher.Verify("same-password", second))
	})

	t.Run("malformed digest verifies false", func(t *testing.T) {
		assert.False(t, hasher.Verify("anything", "not-a-bcrypt-digest"))
		assert.False(t, hasher.Verify("anything", ""))
	})
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	hasher := NewPasswordHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewPasswordHasher(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)
}
