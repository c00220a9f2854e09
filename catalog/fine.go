package catalog

import (
	"time"
)

const (
	// DefaultBorrowPeriodDays is the number of days a book can be kept without a fine.
	DefaultBorrowPeriodDays = 14

	// DefaultDailyFineRate is the fine per full day beyond the borrow period.
	DefaultDailyFineRate FineAmount = 0.50

	day = 24 * time.Hour
)

// FinePolicy defines how overdue fines are computed.
type FinePolicy struct {
	BorrowPeriodDays int
	DailyRate        FineAmount
}

// DefaultFinePolicy returns 14 fine-free days and 0.50 per overdue day.
func DefaultFinePolicy() FinePolicy {
	return FinePolicy{
		BorrowPeriodDays: DefaultBorrowPeriodDays,
		DailyRate:        DefaultDailyFineRate,
	}
}

// Validate returns ErrInvalidFinePolicy for a negative borrow period or rate.
func (p FinePolicy) Validate() error {
	if p.BorrowPeriodDays < 0 || p.DailyRate < 0 {
		return ErrInvalidFinePolicy
	}

	return nil
}

// ElapsedDays returns the number of full 24-hour days between borrowedAt and now.
// A borrow date in the future counts as zero days.
func ElapsedDays(borrowedAt, now time.Time) int64 {
	elapsed := now.Sub(borrowedAt)
	if elapsed < 0 {
		return 0
	}

	return int64(elapsed / day)
}

// Assess returns the fine for a book borrowed at borrowedAt, as of now.
func (p FinePolicy) Assess(borrowedAt, now time.Time) FineAmount {
	return p.FineForDays(ElapsedDays(borrowedAt, now))
}

// FineForDays returns (elapsedDays - BorrowPeriodDays) * DailyRate when positive, otherwise 0.
func (p FinePolicy) FineForDays(elapsedDays int64) FineAmount {
	overdueDays := elapsedDays - int64(p.BorrowPeriodDays)
	if overdueDays <= 0 {
		return 0
	}

	return FineAmount(overdueDays) * p.DailyRate
}

// DueDate returns the end of the fine-free period for a book borrowed at borrowedAt.
func (p FinePolicy) DueDate(borrowedAt time.Time) time.Time {
	return borrowedAt.Add(time.Duration(p.BorrowPeriodDays) * day)
}

// CalculateFine returns the current fine for the book the patron has borrowed.
// It is 0 when the patron or the book cannot be found, or the patron does not hold the book.
func (c *Catalog) CalculateFine(patronName, bookTitle string) FineAmount {
	c.mu.RLock()
	defer c.mu.RUnlock()

	patron, found := c.findPatronByName(patronName)
	if !found {
		return 0
	}

	book, found := c.findBookByTitle(bookTitle)
	if !found {
		return 0
	}

	borrowedAt, borrowed := patron.BorrowDateOf(book)
	if !borrowed {
		return 0
	}

	return c.finePolicy.Assess(borrowedAt, c.clock.Now())
}
