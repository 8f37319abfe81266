package seller

import (
	"context"

	"bookstore/internal/book"
	"bookstore/internal/platform/database"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=seller

// Repository defines the contract for seller data storage. Every method runs
// against the unit of work passed as db.
type Repository interface {
	Create(ctx context.Context, db database.DBTX, s *Seller) error
	List(ctx context.Context, db database.DBTX) ([]Seller, error)
	GetByID(ctx context.Context, db database.DBTX, id int64) (Seller, error)
	GetByEmail(ctx context.Context, db database.DBTX, email string) (Seller, error)
	Update(ctx context.Context, db database.DBTX, s *Seller) error
	Delete(ctx context.Context, db database.DBTX, id int64) (bool, error)
}

// BookRepository is the part of book storage sellers depend on.
type BookRepository interface {
	ListBySeller(ctx context.Context, db database.DBTX, sellerID int64) ([]book.Book, error)
	DeleteBySeller(ctx context.Context, db database.DBTX, sellerID int64) (int64, error)
}

// PasswordHasher computes the one-way credential hash stored for a seller.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
