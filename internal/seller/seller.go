package seller

import (
	"errors"

	"bookstore/internal/book"
)

var (
	// ErrNotFound is returned when a seller is not found.
	ErrNotFound = errors.New("seller not found")
	// ErrConflict is returned when the email is already taken.
	ErrConflict = errors.New("seller email already exists")
)

// Seller is a row of the sellers table. It has no json tags: responses are
// built with ToPublic and ToDetail so HashPassword cannot be serialized.
type Seller struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	HashPassword string
}

// Profile holds the fields a seller update may overwrite.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
}

// Detail is a seller together with every book it owns.
type Detail struct {
	Seller Seller
	Books  []book.Book
}

// Public is the response representation of a seller.
type Public struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// PublicWithBooks is the response representation of a seller detail.
type PublicWithBooks struct {
	Public
	Books []book.Public `json:"books"`
}

func ToPublic(s Seller) Public {
	return Public{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}

func ToPublicList(sellers []Seller) []Public {
	out := make([]Public, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, ToPublic(s))
	}
	return out
}

func ToDetail(d Detail) PublicWithBooks {
	return PublicWithBooks{
		Public: ToPublic(d.Seller),
		Books:  book.ToPublicList(d.Books),
	}
}
