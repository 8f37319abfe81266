package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "qwerty"

	hash, err := HashPassword(password, bcrypt.MinCost)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestVerifyPassword(t *testing.T) {
	password := "qwerty"

	hash, err := HashPassword(password, bcrypt.MinCost)
	assert.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		assert.True(t, VerifyPassword(hash, password))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, VerifyPassword(hash, "abcde"))
	})

	t.Run("different hash each time", func(t *testing.T) {
		hash2, err := HashPassword(password, bcrypt.MinCost)
		assert.NoError(t, err)
		assert.NotEqual(t, hash, hash2)
		assert.True(t, VerifyPassword(hash2, password))
	})
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("abcde")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, h.Verify(hash, "abcde"))
	assert.False(t, h.Verify(hash, "qwerty"))
	assert.False(t, h.Verify("not-a-hash", "abcde"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hash, err := BcryptHasher{}.Hash("abcde")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("é", 40), bcrypt.MinCost)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
