package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

const (
	// BookBorrowedNotificationType is the notification type identifier.
	BookBorrowedNotificationType = "BookBorrowed"

	// BorrowingBookFailedNotificationType is the notification type identifier.
	BorrowingBookFailedNotificationType = "BorrowingBookFailed"

	// BookReturnedNotificationType is the notification type identifier.
	BookReturnedNotificationType = "BookReturned"

	// ReturningBookFailedNotificationType is the notification type identifier.
	ReturningBookFailedNotificationType = "ReturningBookFailed"
)

// Notification is what a borrow or return emits, whether it succeeded or not.
type Notification interface {
	// NotificationType returns the string identifier for this notification type.
	NotificationType() string

	// HasOccurredAt returns when this notification occurred.
	HasOccurredAt() time.Time

	// IsFailure returns true if this notification reports a failed operation.
	IsFailure() bool

	// Message returns the human-readable line for consoles and logs.
	Message() string
}

// Notifier receives every Notification the Catalog emits.
// An error returned by a Notifier is logged and counted but never fails the catalog operation.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, notification Notification) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, notification Notification) error {
	return f(ctx, notification)
}

// WriterNotifier prints each notification's message as one line, like a console would show it.
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a WriterNotifier writing to w.
func NewWriterNotifier(w io.Writer) WriterNotifier {
	return WriterNotifier{w: w}
}

// Notify writes the notification message followed by a newline.
func (n WriterNotifier) Notify(_ context.Context, notification Notification) error {
	if _, err := fmt.Fprintln(n.w, notification.Message()); err != nil {
		return errors.Join(ErrNotifyingFailed, err)
	}

	return nil
}

// BookBorrowed represents a successful borrow.
type BookBorrowed struct {
	PatronID   string     `json:"patron_id"`
	PatronName string     `json:"patron_name"`
	BookID     string     `json:"book_id"`
	BookTitle  string     `json:"book_title"`
	OccurredAt OccurredAt `json:"occurred_at"`
}

// BuildBookBorrowed creates a new BookBorrowed notification.
func BuildBookBorrowed(patronID uuid.UUID, patronName string, bookID uuid.UUID, bookTitle string, occurredAt time.Time) BookBorrowed {
	return BookBorrowed{
		PatronID:   patronID.String(),
		PatronName: patronName,
		BookID:     bookID.String(),
		BookTitle:  bookTitle,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// NotificationType returns the notification type identifier.
func (n BookBorrowed) NotificationType() string {
	return BookBorrowedNotificationType
}

// HasOccurredAt returns when this notification occurred.
func (n BookBorrowed) HasOccurredAt() time.Time {
	return n.OccurredAt
}

// IsFailure returns false since this notification represents a successful operation.
func (n BookBorrowed) IsFailure() bool {
	return false
}

// Message returns "<patron> borrowed <title>".
func (n BookBorrowed) Message() string {
	return n.PatronName + " borrowed " + n.BookTitle
}

// BorrowingBookFailed represents a borrow that was rejected without changing any state.
type BorrowingBookFailed struct {
	PatronName  string     `json:"patron_name"`
	BookTitle   string     `json:"book_title"`
	FailureInfo string     `json:"failure_info"`
	OccurredAt  OccurredAt `json:"occurred_at"`
}

// BuildBorrowingBookFailed creates a new BorrowingBookFailed notification.
func BuildBorrowingBookFailed(patronName, bookTitle, failureInfo string, occurredAt time.Time) BorrowingBookFailed {
	return BorrowingBookFailed{
		PatronName:  patronName,
		BookTitle:   bookTitle,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// NotificationType returns the notification type identifier.
func (n BorrowingBookFailed) NotificationType() string {
	return BorrowingBookFailedNotificationType
}

// HasOccurredAt returns when this notification occurred.
func (n BorrowingBookFailed) HasOccurredAt() time.Time {
	return n.OccurredAt
}

// IsFailure returns true since this notification represents a rejected operation.
func (n BorrowingBookFailed) IsFailure() bool {
	return true
}

// Message returns a line naming the patron, the title and the reason.
func (n BorrowingBookFailed) Message() string {
	return fmt.Sprintf("%s could not borrow %s: %s", n.PatronName, n.BookTitle, n.FailureInfo)
}

// BookReturned represents a successful return.
type BookReturned struct {
	PatronID   string     `json:"patron_id"`
	PatronName string     `json:"patron_name"`
	BookID     string     `json:"book_id"`
	BookTitle  string     `json:"book_title"`
	OccurredAt OccurredAt `json:"occurred_at"`
}

// BuildBookReturned creates a new BookReturned notification.
func BuildBookReturned(patronID uuid.UUID, patronName string, bookID uuid.UUID, bookTitle string, occurredAt time.Time) BookReturned {
	return BookReturned{
		PatronID:   patronID.String(),
		PatronName: patronName,
		BookID:     bookID.String(),
		BookTitle:  bookTitle,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// NotificationType returns the notification type identifier.
func (n BookReturned) NotificationType() string {
	return BookReturnedNotificationType
}

// HasOccurredAt returns when this notification occurred.
func (n BookReturned) HasOccurredAt() time.Time {
	return n.OccurredAt
}

// IsFailure returns false since this notification represents a successful operation.
func (n BookReturned) IsFailure() bool {
	return false
}

// Message returns "<patron> returned <title>".
func (n BookReturned) Message() string {
	return n.PatronName + " returned " + n.BookTitle
}

// ReturningBookFailed represents a return that was rejected without changing any state.
type ReturningBookFailed struct {
	PatronName  string     `json:"patron_name"`
	BookTitle   string     `json:"book_title"`
	FailureInfo string     `json:"failure_info"`
	OccurredAt  OccurredAt `json:"occurred_at"`
}

// BuildReturningBookFailed creates a new ReturningBookFailed notification.
func BuildReturningBookFailed(patronName, bookTitle, failureInfo string, occurredAt time.Time) ReturningBookFailed {
	return ReturningBookFailed{
		PatronName:  patronName,
		BookTitle:   bookTitle,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// NotificationType returns the notification type identifier.
func (n ReturningBookFailed) NotificationType() string {
	return ReturningBookFailedNotificationType
}

// HasOccurredAt returns when this notification occurred.
func (n ReturningBookFailed) HasOccurredAt() time.Time {
	return n.OccurredAt
}

// IsFailure returns true since this notification represents a rejected operation.
func (n ReturningBookFailed) IsFailure() bool {
	return true
}

// Message returns a line naming the patron, the title and the reason.
func (n ReturningBookFailed) Message() string {
	return fmt.Sprintf("%s could not return %s: %s", n.PatronName, n.BookTitle, n.FailureInfo)
}
