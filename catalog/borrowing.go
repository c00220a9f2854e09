package catalog

import (
	"context"
	"time"
)

// BorrowBook lends the book with the given title to the patron with the given name.
//
// Business Rules:
//
//	GIVEN: a patron name and a book title, both matched case-insensitively
//	WHEN: BorrowBook is called
//	THEN: the book becomes unavailable, the patron holds it with the current time as borrow date,
//	      and BookBorrowed is emitted
//	FAILURE: "patron not found" if no patron has that name
//	FAILURE: "book not found" if no book has that title
//	FAILURE: "book is not available" if the book is currently borrowed by anyone
//
// A failure emits BorrowingBookFailed and leaves the catalog unchanged.
func (c *Catalog) BorrowBook(ctx context.Context, patronName PatronNameString, bookTitle BookTitleString) Result {
	start := time.Now()
	ctx, span := c.startOperationSpan(ctx, SpanNameBorrowBook, operationBorrowBook, patronName, bookTitle)

	result := c.borrow(patronName, bookTitle)

	c.publish(ctx, result.Notification)
	c.observe(ctx, operationBorrowBook, span, result, time.Since(start))

	return result
}

// ReturnBook takes the book with the given title back from the patron with the given name.
//
// Business Rules:
//
//	GIVEN: a patron name and a book title, both matched case-insensitively
//	WHEN: ReturnBook is called
//	THEN: the book becomes available, it is removed from the patron's borrowed books together
//	      with its borrow date, and BookReturned is emitted
//	FAILURE: "patron not found" if no patron has that name
//	FAILURE: "book not found" if no book has that title
//	FAILURE: "book is not borrowed by the patron" if this patron does not hold the book
//
// A failure emits ReturningBookFailed and leaves the catalog unchanged.
func (c *Catalog) ReturnBook(ctx context.Context, patronName PatronNameString, bookTitle BookTitleString) Result {
	start := time.Now()
	ctx, span := c.startOperationSpan(ctx, SpanNameReturnBook, operationReturnBook, patronName, bookTitle)

	result := c.giveBack(patronName, bookTitle)

	c.publish(ctx, result.Notification)
	c.observe(ctx, operationReturnBook, span, result, time.Since(start))

	return result
}

func (c *Catalog) borrow(patronName, bookTitle string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	patron, found := c.findPatronByName(patronName)
	if !found {
		return failureResult(
			BuildBorrowingBookFailed(patronName, bookTitle, FailureReasonPatronNotFound, now),
			FailureReasonPatronNotFound)
	}

	book, found := c.findBookByTitle(bookTitle)
	if !found {
		return failureResult(
			BuildBorrowingBookFailed(patron.Name, bookTitle, FailureReasonBookNotFound, now),
			FailureReasonBookNotFound)
	}

	if !book.available {
		return failureResult(
			BuildBorrowingBookFailed(patron.Name, book.Title, FailureReasonBookNotAvailable, now),
			FailureReasonBookNotAvailable)
	}

	book.available = false
	patron.Borrow(book, now)

	return successResult(BuildBookBorrowed(patron.ID, patron.Name, book.ID, book.Title, now))
}

func (c *Catalog) giveBack(patronName, bookTitle string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	patron, found := c.findPatronByName(patronName)
	if !found {
		return failureResult(
			BuildReturningBookFailed(patronName, bookTitle, FailureReasonPatronNotFound, now),
			FailureReasonPatronNotFound)
	}

	book, found := c.findBookByTitle(bookTitle)
	if !found {
		return failureResult(
			BuildReturningBookFailed(patron.Name, bookTitle, FailureReasonBookNotFound, now),
			FailureReasonBookNotFound)
	}

	if !patron.HasBorrowed(book) {
		return failureResult(
			BuildReturningBookFailed(patron.Name, book.Title, FailureReasonBookNotBorrowedByPatron, now),
			FailureReasonBookNotBorrowedByPatron)
	}

	book.available = true
	patron.Return(book)

	return successResult(BuildBookReturned(patron.ID, patron.Name, book.ID, book.Title, now))
}

// publish hands the notification to every notifier. Notifier errors are logged and counted, never returned.
func (c *Catalog) publish(ctx context.Context, notification Notification) {
	for _, notifier := range c.notifiers {
		if err := notifier.Notify(ctx, notification); err != nil {
			c.logNotifyError(ctx, notification, err)
			c.recordNotificationFailure(ctx, notification)
		}
	}
}

func (c *Catalog) observe(ctx context.Context, operation string, span SpanContext, result Result, duration time.Duration) {
	c.logOperation(ctx, operation, result, duration)
	c.recordOperationMetrics(ctx, operation, result, duration)
	c.recordBorrowedBooks(ctx, result)
	c.finishOperationSpan(span, result, duration)
}
