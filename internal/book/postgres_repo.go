package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookstore/internal/platform/database"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const selectColumns = `id, author, title, year, count_pages, seller_id`

type PostgresRepo struct {
	timeout time.Duration
}

func NewPostgresRepo(timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func scanBook(row pgx.Row, b *Book) error {
	return row.Scan(&b.ID, &b.Author, &b.Title, &b.Year, &b.CountPages, &b.SellerID)
}

func (r *PostgresRepo) Create(ctx context.Context, db database.DBTX, b *Book) error {
	const query = `
	INSERT INTO books (author, title, year, count_pages, seller_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := db.QueryRow(timeoutCtx, query, b.Author, b.Title, b.Year, b.CountPages, b.SellerID).Scan(&b.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrSellerNotFound
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, db database.DBTX) ([]Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM books ORDER BY id`
	return r.query(ctx, db, query)
}

func (r *PostgresRepo) ListBySeller(ctx context.Context, db database.DBTX, sellerID int64) ([]Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM books WHERE seller_id = $1 ORDER BY id`
	return r.query(ctx, db, query, sellerID)
}

func (r *PostgresRepo) query(ctx context.Context, db database.DBTX, query string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, db database.DBTX, id int64) (Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM books WHERE id = $1`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := scanBook(db.QueryRow(timeoutCtx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book %d: %w", id, err)
	}
	return b, nil
}

// Update overwrites the mutable columns and refreshes b from the stored row.
// seller_id is never changed.
func (r *PostgresRepo) Update(ctx context.Context, db database.DBTX, b *Book) error {
	const query = `
	UPDATE books SET author = $1, title = $2, year = $3, count_pages = $4
	WHERE id = $5
	RETURNING ` + selectColumns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := scanBook(db.QueryRow(timeoutCtx, query, b.Author, b.Title, b.Year, b.CountPages, b.ID), b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update book %d: %w", b.ID, err)
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, db database.DBTX, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

func (r *PostgresRepo) DeleteBySeller(ctx context.Context, db database.DBTX, sellerID int64) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := db.Exec(timeoutCtx, `DELETE FROM books WHERE seller_id = $1`, sellerID)
	if err != nil {
		return 0, fmt.Errorf("delete books of seller %d: %w", sellerID, err)
	}
	return tag.RowsAffected(), nil
}
