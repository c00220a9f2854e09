package catalog

import (
	"fmt"
	"io"
	"time"
)

const (
	availabilityReportTitle = "Book Availability Report:"
	historyReportTitle      = "Borrowing History Report for %s:"
	fineReportTitle         = "Fine Report:"
	reportDateLayout        = "2006-01-02 15:04:05 MST"
)

// Report is a read-only view of the catalog that renders to text lines.
type Report interface {
	Lines() []string
}

// WriteReport writes every line of the report to w, each followed by a newline.
func WriteReport(w io.Writer, report Report) error {
	for _, line := range report.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// BookAvailability represents one line of the availability report.
type BookAvailability struct {
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Available bool   `json:"available"`
}

// AvailabilityReport lists every book in catalog order with its availability.
type AvailabilityReport struct {
	Books []BookAvailability `json:"books"`
	Count int                `json:"count"`
}

// Lines renders the report header followed by one line per book.
func (r AvailabilityReport) Lines() []string {
	lines := make([]string, 0, len(r.Books)+1)
	lines = append(lines, availabilityReportTitle)

	for _, b := range r.Books {
		lines = append(lines, fmt.Sprintf("Title: %s, Author: %s, Genre: %s, Available: %t", b.Title, b.Author, b.Genre, b.Available))
	}

	return lines
}

// BorrowedBookInfo represents a book a patron currently holds.
type BorrowedBookInfo struct {
	BookID     string    `json:"book_id"`
	Title      string    `json:"title"`
	BorrowedAt time.Time `json:"borrowed_at"`
	DueAt      time.Time `json:"due_at"`
}

// BorrowingHistoryReport lists the books a patron currently holds, in borrow order.
type BorrowingHistoryReport struct {
	PatronName string             `json:"patron_name"`
	Books      []BorrowedBookInfo `json:"books"`
	Count      int                `json:"count"`
}

// Lines renders the report header followed by one line per borrowed book.
func (r BorrowingHistoryReport) Lines() []string {
	lines := make([]string, 0, len(r.Books)+1)
	lines = append(lines, fmt.Sprintf(historyReportTitle, r.PatronName))

	for _, b := range r.Books {
		lines = append(lines, fmt.Sprintf(
			" - %s (Borrowed on: %s, Due: %s)",
			b.Title,
			b.BorrowedAt.Format(reportDateLayout),
			b.DueAt.Format(reportDateLayout)))
	}

	return lines
}

// FineEntry represents an outstanding fine for one borrowed book.
type FineEntry struct {
	PatronName string     `json:"patron_name"`
	BookTitle  string     `json:"book_title"`
	Amount     FineAmount `json:"amount"`
}

// FineReport lists every positive fine, grouped by patron in catalog order.
type FineReport struct {
	Fines []FineEntry `json:"fines"`
	Total FineAmount  `json:"total"`
}

// Lines renders the report header followed by one line per fine.
func (r FineReport) Lines() []string {
	lines := make([]string, 0, len(r.Fines)+1)
	lines = append(lines, fineReportTitle)

	for _, f := range r.Fines {
		lines = append(lines, fmt.Sprintf("%s has a fine of $%.2f for the book: %s", f.PatronName, f.Amount, f.BookTitle))
	}

	return lines
}

// AvailabilityReport builds the availability report for all books.
func (c *Catalog) AvailabilityReport() AvailabilityReport {
	c.mu.RLock()
	defer c.mu.RUnlock()

	report := AvailabilityReport{
		Books: make([]BookAvailability, 0, len(c.books)),
	}

	for _, book := range c.books {
		report.Books = append(report.Books, BookAvailability{
			BookID:    book.ID.String(),
			Title:     book.Title,
			Author:    book.Author,
			Genre:     book.Genre,
			Available: book.available,
		})
	}

	report.Count = len(report.Books)

	return report
}

// BorrowingHistoryReport builds the report of books the named patron currently holds.
// It returns false if no patron has that name.
func (c *Catalog) BorrowingHistoryReport(patronName PatronNameString) (BorrowingHistoryReport, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	patron, found := c.findPatronByName(patronName)
	if !found {
		return BorrowingHistoryReport{}, false
	}

	report := BorrowingHistoryReport{
		PatronName: patron.Name,
		Books:      make([]BorrowedBookInfo, 0, len(patron.borrowed)),
	}

	for _, book := range patron.borrowed {
		borrowedAt, _ := patron.BorrowDateOf(book)
		report.Books = append(report.Books, BorrowedBookInfo{
			BookID:     book.ID.String(),
			Title:      book.Title,
			BorrowedAt: borrowedAt,
			DueAt:      c.finePolicy.DueDate(borrowedAt),
		})
	}

	report.Count = len(report.Books)

	return report, true
}

// FineReport builds the report of all positive fines as of now.
// Fines are assessed per patron and borrowed book, so patrons sharing a name are reported separately.
// Unlike CalculateFine, which looks the patron and book up by name and title, the report also lists
// books that were removed from the catalog while borrowed and books shadowed by a duplicate title.
func (c *Catalog) FineReport() FineReport {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.clock.Now()
	report := FineReport{
		Fines: make([]FineEntry, 0),
	}

	for _, patron := range c.patrons {
		for _, book := range patron.borrowed {
			borrowedAt, _ := patron.BorrowDateOf(book)

			fine := c.finePolicy.Assess(borrowedAt, now)
			if fine <= 0 {
				continue
			}

			report.Fines = append(report.Fines, FineEntry{
				PatronName: patron.Name,
				BookTitle:  book.Title,
				Amount:     fine,
			})
			report.Total += fine
		}
	}

	return report
}
