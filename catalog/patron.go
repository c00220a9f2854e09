package catalog

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Patron is a registered borrower.
//
// A book is in the borrowed sequence if and only if it has a borrow date.
// Borrow and Return are the only methods that change either of them.
type Patron struct {
	ID          uuid.UUID
	Name        string
	ContactInfo string

	borrowed    []*Book
	borrowDates map[uuid.UUID]time.Time
}

// NewPatron creates a Patron without any borrowed books and with a freshly generated ID.
func NewPatron(name, contactInfo string) *Patron {
	return &Patron{
		ID:          uuid.New(),
		Name:        name,
		ContactInfo: contactInfo,
		borrowed:    make([]*Book, 0),
		borrowDates: make(map[uuid.UUID]time.Time),
	}
}

// Borrow appends the book to the borrowed sequence and records when it was borrowed.
// It does not check availability, the Catalog does that.
func (p *Patron) Borrow(book *Book, borrowedAt time.Time) {
	p.borrowed = append(p.borrowed, book)
	p.borrowDates[book.ID] = borrowedAt
}

// Return removes the first matching entry from the borrowed sequence together with its borrow date.
// Returning a book that is not borrowed is a no-op.
func (p *Patron) Return(book *Book) {
	idx := p.indexOf(book)
	if idx < 0 {
		return
	}

	p.borrowed = slices.Delete(p.borrowed, idx, idx+1)
	delete(p.borrowDates, book.ID)
}

// BorrowDateOf returns when the book was borrowed, or false if this patron does not hold it.
func (p *Patron) BorrowDateOf(book *Book) (time.Time, bool) {
	if book == nil {
		return time.Time{}, false
	}

	borrowedAt, ok := p.borrowDates[book.ID]

	return borrowedAt, ok
}

// HasBorrowed reports whether the book is in this patron's borrowed sequence.
func (p *Patron) HasBorrowed(book *Book) bool {
	return p.indexOf(book) >= 0
}

// BorrowedBooks returns a copy of the borrowed sequence in borrow order.
func (p *Patron) BorrowedBooks() []*Book {
	return slices.Clone(p.borrowed)
}

// String renders the patron with the number of currently borrowed books.
func (p *Patron) String() string {
	return fmt.Sprintf("Name: %s, Contact: %s, Borrowed Books: %d", p.Name, p.ContactInfo, len(p.borrowed))
}

func (p *Patron) indexOf(book *Book) int {
	if book == nil {
		return -1
	}

	return slices.IndexFunc(p.borrowed, func(b *Book) bool {
		return b.ID == book.ID
	})
}
