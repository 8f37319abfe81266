package book

import (
	"context"

	"bookstore/internal/platform/database"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage. Every method runs
// against the unit of work passed as db.
type Repository interface {
	Create(ctx context.Context, db database.DBTX, b *Book) error
	List(ctx context.Context, db database.DBTX) ([]Book, error)
	GetByID(ctx context.Context, db database.DBTX, id int64) (Book, error)
	Update(ctx context.Context, db database.DBTX, b *Book) error
	Delete(ctx context.Context, db database.DBTX, id int64) error
	ListBySeller(ctx context.Context, db database.DBTX, sellerID int64) ([]Book, error)
	DeleteBySeller(ctx context.Context, db database.DBTX, sellerID int64) (int64, error)
}
