package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookstore/internal/platform/crypto"
	"bookstore/internal/seller"
	"bookstore/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSellerFinder struct {
	mock.Mock
}

func (m *mockSellerFinder) GetByEmail(ctx context.Context, email string) (seller.Seller, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(seller.Seller), args.Error(1)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(hash, plain string) bool {
	return m.Called(hash, plain).Bool(0)
}

var maxim = seller.Seller{ID: 7, FirstName: "Maxim", LastName: "Konovalov", Email: "mkonovalov@mail.ru", HashPassword: "stored"}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		finder := new(mockSellerFinder)
		verifier := new(mockVerifier)
		finder.On("GetByEmail", ctx, "mkonovalov@mail.ru").Return(maxim, nil)
		verifier.On("Verify", "stored", "qwerty").Return(true)

		service := NewService(testutil.TestSecret, 30*time.Minute, finder, verifier)
		token, err := service.Login(ctx, "mkonovalov@mail.ru", "qwerty")
		require.NoError(t, err)
		assert.Equal(t, 1800, token.ExpiresIn)

		claims, err := crypto.ParseToken(testutil.TestSecret, token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "7", claims.Sub)
		assert.Equal(t, "mkonovalov@mail.ru", claims.Email)
		finder.AssertExpectations(t)
		verifier.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		finder := new(mockSellerFinder)
		verifier := new(mockVerifier)
		finder.On("GetByEmail", ctx, "mkonovalov@mail.ru").Return(maxim, nil)
		verifier.On("Verify", "stored", "abcde").Return(false)

		_, err := NewService(testutil.TestSecret, time.Minute, finder, verifier).Login(ctx, "mkonovalov@mail.ru", "abcde")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		finder := new(mockSellerFinder)
		verifier := new(mockVerifier)
		finder.On("GetByEmail", ctx, "nobody@mail.ru").Return(seller.Seller{}, seller.ErrNotFound)

		_, err := NewService(testutil.TestSecret, time.Minute, finder, verifier).Login(ctx, "nobody@mail.ru", "x")
		assert.ErrorIs(t, err, ErrUnauthorized)
		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("store failure is not unauthorized", func(t *testing.T) {
		finder := new(mockSellerFinder)
		finder.On("GetByEmail", ctx, "a@mail.ru").Return(seller.Seller{}, errors.New("db down"))

		_, err := NewService(testutil.TestSecret, time.Minute, finder, new(mockVerifier)).Login(ctx, "a@mail.ru", "x")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}
