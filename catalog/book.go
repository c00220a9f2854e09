package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Book is a single catalog entry.
//
// Availability is owned by the Catalog: it flips to false on a successful BorrowBook
// and back to true on a successful ReturnBook. Nothing else changes it.
type Book struct {
	ID     uuid.UUID
	Title  string
	Author string
	Genre  string

	available bool
}

// NewBook creates an available Book with a freshly generated ID.
func NewBook(title, author, genre string) *Book {
	return &Book{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		Genre:     genre,
		available: true,
	}
}

// IsAvailable reports whether the book can currently be borrowed.
func (b *Book) IsAvailable() bool {
	return b.available
}

// String renders the book the way the availability report lists it.
func (b *Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Genre: %s, Available: %t", b.Title, b.Author, b.Genre, b.available)
}
