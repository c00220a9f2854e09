// Package catalog provides an in-memory library catalog: books, patrons,
// borrowing and returning books, overdue fines and read-only reports.
//
// The Catalog is the aggregate root. It owns all books and patrons, and it is
// the only place where a book changes between available and borrowed:
//
//	Available -> [BorrowBook succeeds] -> Unavailable -> [ReturnBook succeeds] -> Available
//
// Business failures (unknown patron, unknown book, book not available, book not
// held by the patron) are not Go errors. BorrowBook and ReturnBook return a Result
// carrying the outcome and a Notification, and every Notification is handed to the
// configured Notifier(s) after the catalog state has been changed.
//
// Fines are never stored. CalculateFine and FineReport recompute them from the
// borrow date and the configured Clock on every call.
//
// Common usage pattern:
//
//	lib, err := catalog.New(
//		catalog.WithNotifier(catalog.NewWriterNotifier(os.Stdout)),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	lib.AddBook(catalog.NewBook("1984", "George Orwell", "Dystopian"))
//	lib.AddPatron(catalog.NewPatron("Jane Smith", "jane.smith@example.com"))
//
//	result := lib.BorrowBook(ctx, "Jane Smith", "1984")
//	if !result.Succeeded() {
//		// result.FailureReason() tells why
//	}
//
//	fine := lib.CalculateFine("Jane Smith", "1984")
//
// Observability follows the dependency-free pattern of Logger, ContextualLogger,
// MetricsCollector and TracingCollector; OpenTelemetry implementations live in
// the oteladapters sub-package.
package catalog
