package catalog

import (
	"time"
)

// FineAmount is a fine in an abstract fractional currency unit (rendered as dollars in reports).
type FineAmount = float64

// PatronNameString represents the name a patron is looked up by.
type PatronNameString = string

// BookTitleString represents the title a book is looked up by.
type BookTitleString = string

// OccurredAt represents when a notification occurred.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
