package seller

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/book"
	"bookstore/internal/platform/database"
)

// Service implements the seller operations. Each public method is one unit
// of work.
type Service struct {
	tx     database.Transactor
	repo   Repository
	books  BookRepository
	hasher PasswordHasher
}

func NewService(tx database.Transactor, repo Repository, books BookRepository, hasher PasswordHasher) *Service {
	return &Service{tx: tx, repo: repo, books: books, hasher: hasher}
}

// Create hashes password and stores a new seller. It returns ErrConflict when
// the email is taken; the store's unique constraint is the only check.
func (s *Service) Create(ctx context.Context, p Profile, password string) (Seller, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return Seller{}, fmt.Errorf("hash password: %w", err)
	}

	seller := Seller{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		HashPassword: hash,
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		return s.repo.Create(ctx, db, &seller)
	})
	if err != nil {
		return Seller{}, err
	}
	return seller, nil
}

func (s *Service) List(ctx context.Context) ([]Seller, error) {
	var sellers []Seller
	err := s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		var err error
		sellers, err = s.repo.List(ctx, db)
		return err
	})
	return sellers, err
}

// GetWithBooks returns the seller and its books, or nil when id is unknown.
func (s *Service) GetWithBooks(ctx context.Context, id int64) (*Detail, error) {
	var detail *Detail
	err := s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		seller, err := s.repo.GetByID(ctx, db, id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		books, err := s.books.ListBySeller(ctx, db, id)
		if err != nil {
			return err
		}
		if books == nil {
			books = []book.Book{}
		}
		detail = &Detail{Seller: seller, Books: books}
		return nil
	})
	return detail, err
}

// GetByEmail returns ErrNotFound when no seller has the email.
func (s *Service) GetByEmail(ctx context.Context, email string) (Seller, error) {
	var seller Seller
	err := s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		var err error
		seller, err = s.repo.GetByEmail(ctx, db, email)
		return err
	})
	return seller, err
}

// Update overwrites the profile fields of an existing seller and returns
// ErrNotFound when id is unknown. The email is not checked against other
// sellers before writing.
func (s *Service) Update(ctx context.Context, id int64, p Profile) (Seller, error) {
	seller := Seller{
		ID:        id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		return s.repo.Update(ctx, db, &seller)
	})
	if err != nil {
		return Seller{}, err
	}
	return seller, nil
}

// Delete removes the seller and every book it owns in one transaction.
// Deleting an unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context, db database.DBTX) error {
		if _, err := s.books.DeleteBySeller(ctx, db, id); err != nil {
			return err
		}
		_, err := s.repo.Delete(ctx, db, id)
		return err
	})
}
