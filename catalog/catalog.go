package catalog

import (
	"slices"
	"strings"
	"sync"
)

// Catalog owns all books and patrons and runs the borrowing workflow.
//
// Books and patrons are kept in insertion order without any uniqueness check.
// Lookups are case-insensitive on the whole title or name and return the first match.
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	books   []*Book
	patrons []*Patron

	clock            Clock
	finePolicy       FinePolicy
	notifiers        []Notifier
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// New creates an empty Catalog with the system clock and the default fine policy.
func New(options ...Option) (*Catalog, error) {
	c := &Catalog{
		books:      make([]*Book, 0),
		patrons:    make([]*Patron, 0),
		clock:      SystemClock(),
		finePolicy: DefaultFinePolicy(),
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// AddBook appends the book to the catalog. A nil book is ignored.
func (c *Catalog) AddBook(book *Book) {
	if book == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = append(c.books, book)
}

// RemoveBook removes the book from the catalog. Removing a book that is not in the catalog is a no-op.
// Patrons who borrowed the book keep it in their borrowed sequence.
func (c *Catalog) RemoveBook(book *Book) {
	if book == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = slices.DeleteFunc(c.books, func(b *Book) bool {
		return b.ID == book.ID
	})
}

// AddPatron appends the patron to the catalog. A nil patron is ignored.
func (c *Catalog) AddPatron(patron *Patron) {
	if patron == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.patrons = append(c.patrons, patron)
}

// RemovePatron removes the patron from the catalog. Removing a patron that is not in the catalog is a no-op.
// Books the patron still holds stay unavailable.
func (c *Catalog) RemovePatron(patron *Patron) {
	if patron == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.patrons = slices.DeleteFunc(c.patrons, func(p *Patron) bool {
		return p.ID == patron.ID
	})
}

// FindBookByTitle returns the first book whose title equals title, ignoring case.
func (c *Catalog) FindBookByTitle(title BookTitleString) (*Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.findBookByTitle(title)
}

// FindPatronByName returns the first patron whose name equals name, ignoring case.
func (c *Catalog) FindPatronByName(name PatronNameString) (*Patron, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.findPatronByName(name)
}

// Books returns a snapshot of all books in insertion order.
func (c *Catalog) Books() []*Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.books)
}

// Patrons returns a snapshot of all patrons in insertion order.
func (c *Catalog) Patrons() []*Patron {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.patrons)
}

func (c *Catalog) findBookByTitle(title string) (*Book, bool) {
	idx := slices.IndexFunc(c.books, func(b *Book) bool {
		return strings.EqualFold(b.Title, title)
	})

	if idx < 0 {
		return nil, false
	}

	return c.books[idx], true
}

func (c *Catalog) findPatronByName(name string) (*Patron, bool) {
	idx := slices.IndexFunc(c.patrons, func(p *Patron) bool {
		return strings.EqualFold(p.Name, name)
	})

	if idx < 0 {
		return nil, false
	}

	return c.patrons[idx], true
}

// countBorrowedBooks returns how many books in the catalog are currently unavailable.
func (c *Catalog) countBorrowedBooks() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	borrowed := 0
	for _, book := range c.books {
		if !book.available {
			borrowed++
		}
	}

	return borrowed
}
