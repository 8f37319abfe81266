package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes with the given bcrypt cost; 0 means bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// BcryptHasher adapts the bcrypt helpers to the seller and auth services.
// A zero Cost means bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	return HashPassword(password, h.Cost)
}

func (h BcryptHasher) Verify(hash, plain string) bool {
	return VerifyPassword(hash, plain)
}
