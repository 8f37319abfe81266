package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"bookstore/internal/platform/crypto"
	"bookstore/internal/seller"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

// SellerFinder looks a seller up by login email.
type SellerFinder interface {
	GetByEmail(ctx context.Context, email string) (seller.Seller, error)
}

// Verifier checks a plaintext password against a stored hash.
type Verifier interface {
	Verify(hash, plain string) bool
}

// Token is an issued bearer token.
type Token struct {
	AccessToken string
	ExpiresIn   int
}

type Service struct {
	secret   string
	ttl      time.Duration
	sellers  SellerFinder
	verifier Verifier
}

func NewService(secret string, ttl time.Duration, sellers SellerFinder, verifier Verifier) *Service {
	return &Service{
		secret:   secret,
		ttl:      ttl,
		sellers:  sellers,
		verifier: verifier,
	}
}

// Login exchanges seller credentials for an access token. An unknown email
// and a wrong password both yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	sel, err := s.sellers.GetByEmail(ctx, email)
	if errors.Is(err, seller.ErrNotFound) {
		return Token{}, ErrUnauthorized
	}
	if err != nil {
		return Token{}, err
	}
	if !s.verifier.Verify(sel.HashPassword, password) {
		return Token{}, ErrUnauthorized
	}

	accessToken, _, err := crypto.GenerateToken(s.secret, strconv.FormatInt(sel.ID, 10), sel.Email, s.ttl)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: accessToken, ExpiresIn: int(s.ttl.Seconds())}, nil
}
