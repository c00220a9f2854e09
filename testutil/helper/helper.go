package helper

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// FakeClock is a catalog.Clock that only moves when told to.
type FakeClock struct {
	now time.Time
	mu  sync.Mutex
}

// NewFakeClock creates a FakeClock standing at now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now implements catalog.Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// AdvanceDays moves the clock forward by n full days.
func (c *FakeClock) AdvanceDays(n int) {
	c.Advance(time.Duration(n) * 24 * time.Hour)
}

// GivenFakeClock returns a FakeClock at a fixed, arbitrary point in time.
func GivenFakeClock() *FakeClock {
	return NewFakeClock(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))
}

// GivenCatalog creates a Catalog with the given options and fails the test on error.
func GivenCatalog(t testing.TB, options ...catalog.Option) *catalog.Catalog {
	t.Helper()

	lib, err := catalog.New(options...)
	require.NoError(t, err, "error in arranging test data")

	return lib
}

// GivenStandardCollection adds the three books and two patrons of the standard demo collection.
func GivenStandardCollection(lib *catalog.Catalog) {
	lib.AddBook(catalog.NewBook("The Great Gatsby", "F. Scott Fitzgerald", "Classic"))
	lib.AddBook(catalog.NewBook("1984", "George Orwell", "Dystopian"))
	lib.AddBook(catalog.NewBook("To Kill a Mockingbird", "Harper Lee", "Classic"))

	lib.AddPatron(catalog.NewPatron("John Doe", "john.doe@example.com"))
	lib.AddPatron(catalog.NewPatron("Jane Smith", "jane.smith@example.com"))
}
