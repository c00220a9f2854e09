package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/helper" //nolint:revive
)

func Test_AvailabilityReport_ListsAllBooksInOrder(t *testing.T) {
	// arrange
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "John Doe", "The Great Gatsby")

	// act
	report := lib.AvailabilityReport()

	// assert
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, []string{
		"Book Availability Report:",
		"Title: The Great Gatsby, Author: F. Scott Fitzgerald, Genre: Classic, Available: false",
		"Title: 1984, Author: George Orwell, Genre: Dystopian, Available: true",
		"Title: To Kill a Mockingbird, Author: Harper Lee, Genre: Classic, Available: true",
	}, report.Lines())
}

func Test_BorrowingHistoryReport_ListsBorrowedBooksWithDates(t *testing.T) {
	// arrange
	clock := GivenFakeClock()
	lib := GivenCatalog(t, catalog.WithClock(clock))
	GivenStandardCollection(lib)
	borrowedAt := clock.Now()
	lib.BorrowBook(context.Background(), "John Doe", "The Great Gatsby")
	clock.AdvanceDays(1)
	lib.BorrowBook(context.Background(), "John Doe", "1984")

	// act
	report, found := lib.BorrowingHistoryReport("john doe")

	// assert
	require.True(t, found)
	assert.Equal(t, "John Doe", report.PatronName)
	require.Equal(t, 2, report.Count)
	assert.Equal(t, "The Great Gatsby", report.Books[0].Title)
	assert.Equal(t, borrowedAt, report.Books[0].BorrowedAt)
	assert.Equal(t, catalog.DefaultFinePolicy().DueDate(borrowedAt), report.Books[0].DueAt)
	assert.Equal(t, "1984", report.Books[1].Title)
	assert.Equal(t, []string{
		"Borrowing History Report for John Doe:",
		" - The Great Gatsby (Borrowed on: 2024-03-01 10:00:00 UTC, Due: 2024-03-15 10:00:00 UTC)",
		" - 1984 (Borrowed on: 2024-03-02 10:00:00 UTC, Due: 2024-03-16 10:00:00 UTC)",
	}, report.Lines())
}

func Test_BorrowingHistoryReport_WhenPatronUnknown_ReturnsFalse(t *testing.T) {
	// arrange
	lib := GivenCatalog(t)
	GivenStandardCollection(lib)

	// act
	_, found := lib.BorrowingHistoryReport("Nobody")

	// assert
	assert.False(t, found)
}

func Test_FineReport_ListsOnlyPositiveFines(t *testing.T) {
	// arrange
	clock := GivenFakeClock()
	lib := GivenCatalog(t, catalog.WithClock(clock))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")
	clock.AdvanceDays(10)
	lib.BorrowBook(context.Background(), "John Doe", "The Great Gatsby")
	clock.AdvanceDays(10)

	// act
	report := lib.FineReport()

	// assert
	require.Len(t, report.Fines, 1)
	assert.Equal(t, catalog.FineEntry{PatronName: "Jane Smith", BookTitle: "1984", Amount: 3.0}, report.Fines[0])
	assert.Equal(t, 3.0, report.Total)
	assert.Equal(t, []string{
		"Fine Report:",
		"Jane Smith has a fine of $3.00 for the book: 1984",
	}, report.Lines())
}

func Test_FineReport_WithPatronsSharingAName_ReportsEachPatron(t *testing.T) {
	// arrange
	clock := GivenFakeClock()
	lib := GivenCatalog(t, catalog.WithClock(clock))
	first := catalog.NewPatron("Alex Kim", "alex.one@example.com")
	second := catalog.NewPatron("Alex Kim", "alex.two@example.com")
	book := catalog.NewBook("Dune", "Frank Herbert", "Science Fiction")
	lib.AddPatron(first)
	lib.AddPatron(second)
	lib.AddBook(book)
	second.Borrow(book, clock.Now())
	clock.AdvanceDays(16)

	// act
	report := lib.FineReport()

	// assert
	require.Len(t, report.Fines, 1)
	assert.Equal(t, 1.0, report.Fines[0].Amount)
}

func Test_Reports_DoNotMutateCatalog(t *testing.T) {
	// arrange
	clock := GivenFakeClock()
	lib := GivenCatalog(t, catalog.WithClock(clock))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")
	clock.AdvanceDays(20)
	before := lib.AvailabilityReport()

	// act
	lib.FineReport()
	lib.BorrowingHistoryReport("Jane Smith")
	lib.CalculateFine("Jane Smith", "1984")

	// assert
	assert.Equal(t, before, lib.AvailabilityReport())
	assert.Equal(t, 3.0, lib.CalculateFine("Jane Smith", "1984"))
}

func Test_WriteReport_WritesOneLinePerEntry(t *testing.T) {
	// arrange
	lib := GivenCatalog(t)
	GivenStandardCollection(lib)
	var buf bytes.Buffer

	// act
	err := catalog.WriteReport(&buf, lib.FineReport())

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "Fine Report:\n", buf.String())
}

func Test_WriteReport_WhenWriterFails_ReturnsError(t *testing.T) {
	// arrange
	lib := GivenCatalog(t)
	writeErr := errors.New("disk full")

	// act
	err := catalog.WriteReport(failingWriter{err: writeErr}, lib.AvailabilityReport())

	// assert
	assert.ErrorIs(t, err, writeErr)
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func Test_FineReport_KeepsFinesForBooksCalculateFineCannotResolve(t *testing.T) {
	// arrange
	clock := GivenFakeClock()
	lib := GivenCatalog(t, catalog.WithClock(clock))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")
	lib.BorrowBook(context.Background(), "John Doe", "The Great Gatsby")
	clock.AdvanceDays(20)

	removed, _ := lib.FindBookByTitle("1984")
	lib.RemoveBook(removed)

	borrowedGatsby, _ := lib.FindBookByTitle("The Great Gatsby")
	lib.RemoveBook(borrowedGatsby)
	lib.AddBook(catalog.NewBook("The Great Gatsby", "F. Scott Fitzgerald", "Classic"))
	lib.AddBook(borrowedGatsby)

	// act
	report := lib.FineReport()

	// assert
	require.Len(t, report.Fines, 2)
	assert.Equal(t, "John Doe", report.Fines[0].PatronName)
	assert.Equal(t, "The Great Gatsby", report.Fines[0].BookTitle)
	assert.Equal(t, "Jane Smith", report.Fines[1].PatronName)
	assert.Equal(t, "1984", report.Fines[1].BookTitle)
	assert.InDelta(t, 3.0, report.Fines[1].Amount, 1e-9)
	assert.InDelta(t, 6.0, report.Total, 1e-9)
	assert.Zero(t, lib.CalculateFine("Jane Smith", "1984"), "the book is no longer in the catalog")
	assert.Zero(t, lib.CalculateFine("John Doe", "The Great Gatsby"), "the title resolves to the unborrowed duplicate")
}
