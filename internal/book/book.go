package book

import (
	"errors"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrSellerNotFound is returned when a book references a seller that does not exist.
	ErrSellerNotFound = errors.New("seller not found")
)

// Book is a row of the books table.
type Book struct {
	ID         int64
	Author     string
	Title      string
	Year       int
	CountPages int
	SellerID   int64
}

// Fields are the mutable columns of a book.
type Fields struct {
	Author     string
	Title      string
	Year       int
	CountPages int
}

// Public is the response representation of a book.
type Public struct {
	ID         int64  `json:"id"`
	Author     string `json:"author"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	CountPages int    `json:"count_pages"`
	SellerID   int64  `json:"seller_id"`
}

func ToPublic(b Book) Public {
	return Public{
		ID:         b.ID,
		Author:     b.Author,
		Title:      b.Title,
		Year:       b.Year,
		CountPages: b.CountPages,
		SellerID:   b.SellerID,
	}
}

// ToPublicList never returns nil so an empty set encodes as [].
func ToPublicList(books []Book) []Public {
	out := make([]Public, 0, len(books))
	for _, b := range books {
		out = append(out, ToPublic(b))
	}
	return out
}
