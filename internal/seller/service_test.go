package seller

import (
	"context"
	"errors"
	"testing"

	"bookstore/internal/book"
	"bookstore/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	repo   *MockRepository
	books  *MockBookRepository
	hasher *MockPasswordHasher
	tx     *testutil.Transactor
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := serviceMocks{
		repo:   NewMockRepository(ctrl),
		books:  NewMockBookRepository(ctrl),
		hasher: NewMockPasswordHasher(ctrl),
		tx:     &testutil.Transactor{},
	}
	return NewService(m.tx, m.repo, m.books, m.hasher), m
}

var maxim = Profile{FirstName: "Maxim", LastName: "Konovalov", Email: "mkonovalov@mail.ru"}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores hash, not password", func(t *testing.T) {
		service, m := newTestService(t)
		m.hasher.EXPECT().Hash("qwerty").Return("hashed-qwerty", nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, s *Seller) error {
				assert.Equal(t, "hashed-qwerty", s.HashPassword)
				s.ID = 1
				return nil
			})

		created, err := service.Create(ctx, maxim, "qwerty")
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "mkonovalov@mail.ru", created.Email)
		assert.Equal(t, 1, m.tx.Commits)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, m := newTestService(t)
		m.hasher.EXPECT().Hash("qwerty").Return("hashed", nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(ErrConflict)

		_, err := service.Create(ctx, maxim, "qwerty")
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, 1, m.tx.Rollbacks)
	})

	t.Run("hash failure never reaches the store", func(t *testing.T) {
		service, m := newTestService(t)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("too long"))

		_, err := service.Create(ctx, maxim, "qwerty")
		assert.Error(t, err)
		assert.Zero(t, m.tx.Commits+m.tx.Rollbacks)
	})
}

func TestService_GetWithBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("seller with books", func(t *testing.T) {
		service, m := newTestService(t)
		seller := Seller{ID: 1, FirstName: "Maxim", LastName: "Konovalov", Email: "mkonovalov@mail.ru", HashPassword: "h"}
		books := []book.Book{{ID: 10, Author: "Pushkin", Title: "Eugeny Onegin", Year: 2001, CountPages: 104, SellerID: 1}}
		m.repo.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(1)).Return(seller, nil)
		m.books.EXPECT().ListBySeller(gomock.Any(), gomock.Any(), int64(1)).Return(books, nil)

		detail, err := service.GetWithBooks(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, seller, detail.Seller)
		assert.Equal(t, books, detail.Books)
	})

	t.Run("seller without books", func(t *testing.T) {
		service, m := newTestService(t)
		m.repo.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(2)).Return(Seller{ID: 2}, nil)
		m.books.EXPECT().ListBySeller(gomock.Any(), gomock.Any(), int64(2)).Return(nil, nil)

		detail, err := service.GetWithBooks(ctx, 2)
		require.NoError(t, err)
		assert.NotNil(t, detail.Books)
		assert.Empty(t, detail.Books)
	})

	t.Run("absent is a nil result, not an error", func(t *testing.T) {
		service, m := newTestService(t)
		m.repo.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(3)).Return(Seller{}, ErrNotFound)

		detail, err := service.GetWithBooks(ctx, 3)
		assert.NoError(t, err)
		assert.Nil(t, detail)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("only profile fields are written", func(t *testing.T) {
		service, m := newTestService(t)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, s *Seller) error {
				assert.Equal(t, int64(1), s.ID)
				assert.Empty(t, s.HashPassword)
				s.HashPassword = "stored-hash"
				return nil
			})

		updated, err := service.Update(ctx, 1, Profile{FirstName: "Anton", LastName: "Antonov", Email: "anton444@mail.ru"})
		require.NoError(t, err)
		assert.Equal(t, "Anton", updated.FirstName)
		assert.Equal(t, "anton444@mail.ru", updated.Email)
	})

	t.Run("absent id", func(t *testing.T) {
		service, m := newTestService(t)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(ErrNotFound)

		_, err := service.Update(ctx, 404, maxim)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	// Update does not look up the email before writing; only the store can
	// reject a duplicate.
	t.Run("no application email check", func(t *testing.T) {
		service, m := newTestService(t)
		m.repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.Update(ctx, 1, Profile{FirstName: "A", LastName: "B", Email: "taken@mail.ru"})
		assert.NoError(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("books deleted before seller in one unit of work", func(t *testing.T) {
		service, m := newTestService(t)
		gomock.InOrder(
			m.books.EXPECT().DeleteBySeller(gomock.Any(), gomock.Any(), int64(1)).Return(int64(2), nil),
			m.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(1)).Return(true, nil),
		)

		assert.NoError(t, service.Delete(ctx, 1))
		assert.Equal(t, 1, m.tx.Commits)
	})

	t.Run("absent id still succeeds", func(t *testing.T) {
		service, m := newTestService(t)
		m.books.EXPECT().DeleteBySeller(gomock.Any(), gomock.Any(), int64(404)).Return(int64(0), nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(404)).Return(false, nil)

		assert.NoError(t, service.Delete(ctx, 404))
	})

	t.Run("failure rolls back", func(t *testing.T) {
		service, m := newTestService(t)
		m.books.EXPECT().DeleteBySeller(gomock.Any(), gomock.Any(), int64(1)).Return(int64(1), nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(1)).Return(false, errors.New("conn reset"))

		assert.Error(t, service.Delete(ctx, 1))
		assert.Equal(t, 1, m.tx.Rollbacks)
	})
}

func TestService_List(t *testing.T) {
	service, m := newTestService(t)
	m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]Seller{{ID: 1}, {ID: 2}}, nil)

	sellers, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sellers, 2)
}
