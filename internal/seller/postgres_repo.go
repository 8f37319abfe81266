package seller

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

const selectColumns = `id, first_name, last_name, email, hash_password`

type PostgresRepo struct {
	timeout time.Duration
}

func NewPostgresRepo(timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func scanSeller(row pgx.Row, s *Seller) error {
	return row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.HashPassword)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Create inserts the seller and sets its store-assigned id. Email uniqueness
// is decided by the sellers_email_key constraint.
func (r *PostgresRepo) Create(ctx context.Context, db database.DBTX, s *Seller) error {
	const query = `
	INSERT INTO sellers (first_name, last_name, email, hash_password)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := db.QueryRow(timeoutCtx, query, s.FirstName, s.LastName, s.Email, s.HashPassword).Scan(&s.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, db database.DBTX) ([]Seller, error) {
	const query = `SELECT ` + selectColumns + ` FROM sellers ORDER BY id`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}
	defer rows.Close()

	out := []Seller{}
	for rows.Next() {
		var s Seller
		if err := scanSeller(rows, &s); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, db database.DBTX, id int64) (Seller, error) {
	const query = `SELECT ` + selectColumns + ` FROM sellers WHERE id = $1`
	return r.getOne(ctx, db, query, id)
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, db database.DBTX, email string) (Seller, error) {
	const query = `SELECT ` + selectColumns + ` FROM sellers WHERE email = $1 LIMIT 1`
	return r.getOne(ctx, db, query, email)
}

func (r *PostgresRepo) getOne(ctx context.Context, db database.DBTX, query string, arg any) (Seller, error) {
	var s Seller
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := scanSeller(db.QueryRow(timeoutCtx, query, arg), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Seller{}, ErrNotFound
		}
		return Seller{}, fmt.Errorf("get seller: %w", err)
	}
	return s, nil
}

// Update overwrites first_name, last_name and email and refreshes s from the
// stored row. hash_password is never written here.
func (r *PostgresRepo) Update(ctx context.Context, db database.DBTX, s *Seller) error {
	const query = `
	UPDATE sellers SET first_name = $1, last_name = $2, email = $3
	WHERE id = $4
	RETURNING ` + selectColumns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := scanSeller(db.QueryRow(timeoutCtx, query, s.FirstName, s.LastName, s.Email, s.ID), s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("update seller %d: %w", s.ID, err)
	}
	return nil
}

// Delete reports whether a row was removed.
func (r *PostgresRepo) Delete(ctx context.Context, db database.DBTX, id int64) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := db.Exec(timeoutCtx, `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete seller %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
