package catalog

const (
	successOutcome = StatusSuccess
	failureOutcome = StatusFailure

	// FailureReasonPatronNotFound is reported when no patron matches the given name.
	FailureReasonPatronNotFound = "patron not found"

	// FailureReasonBookNotFound is reported when no book matches the given title.
	FailureReasonBookNotFound = "book not found"

	// FailureReasonBookNotAvailable is reported when borrowing a book that is already borrowed.
	FailureReasonBookNotAvailable = "book is not available"

	// FailureReasonBookNotBorrowedByPatron is reported when returning a book the patron does not hold.
	FailureReasonBookNotBorrowedByPatron = "book is not borrowed by the patron"
)

// Result represents the outcome of BorrowBook or ReturnBook.
//
// IMPORTANT: Result is only built by the Catalog. Do not construct it directly.
type Result struct {
	Outcome      string // "success" or "failure"
	Notification Notification
	reason       string
}

func successResult(notification Notification) Result {
	return Result{
		Outcome:      successOutcome,
		Notification: notification,
	}
}

func failureResult(notification Notification, reason string) Result {
	return Result{
		Outcome:      failureOutcome,
		Notification: notification,
		reason:       reason,
	}
}

// Succeeded returns true if the operation changed the catalog state.
func (r Result) Succeeded() bool {
	return r.Outcome == successOutcome
}

// FailureReason returns one of the FailureReason constants, or an empty string on success.
func (r Result) FailureReason() string {
	return r.reason
}
