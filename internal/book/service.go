package book

import (
	"context"
	"errors"

	"bookstore/internal/platform/database"
)

// Service provides book-related business logic.
type Service struct {
	tx   database.Transactor
	repo Repository
}

// NewService creates a new book service.
func NewService(tx database.Transactor, repo Repository) *Service {
	return &Service{tx: tx, repo: repo}
}

// Create stores a book for an existing seller.
func (s *Service) Create(ctx context.Context, sellerID int64, f Fields) (Book, error) {
	b := Book{
		Author:     f.Author,
		Title:      f.Title,
		Year:       f.Year,
		CountPages: f.CountPages,
		SellerID:   sellerID,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		return s.repo.Create(ctx, db, &b)
	})
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

// List returns every book.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	var books []Book
	err := s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		var err error
		books, err = s.repo.List(ctx, db)
		return err
	})
	return books, err
}

// Get returns nil without error when the book does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*Book, error) {
	var found *Book
	err := s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		b, err := s.repo.GetByID(ctx, db, id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = &b
		return nil
	})
	return found, err
}

// Update returns ErrNotFound when the book does not exist.
func (s *Service) Update(ctx context.Context, id int64, f Fields) (Book, error) {
	b := Book{
		ID:         id,
		Author:     f.Author,
		Title:      f.Title,
		Year:       f.Year,
		CountPages: f.CountPages,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		return s.repo.Update(ctx, db, &b)
	})
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete succeeds whether or not the book exists.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		return s.repo.Delete(ctx, db, id)
	})
}
