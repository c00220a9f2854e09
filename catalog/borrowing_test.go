package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/helper" //nolint:revive
	"github.com/AntonStoeckl/library-catalog-go/testutil/observability/testdoubles"
)

func Test_BorrowBook_WhenAvailable_Succeeds(t *testing.T) {
	// arrange
	clock := GivenFakeClock()
	notifier := testdoubles.NewNotifierSpy()
	lib := GivenCatalog(t, catalog.WithClock(clock), catalog.WithNotifier(notifier))
	GivenStandardCollection(lib)

	// act
	result := lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// assert
	assert.True(t, result.Succeeded())
	assert.Empty(t, result.FailureReason())

	book, _ := lib.FindBookByTitle("1984")
	patron, _ := lib.FindPatronByName("Jane Smith")
	assert.False(t, book.IsAvailable())
	assert.Equal(t, []*catalog.Book{book}, patron.BorrowedBooks())
	borrowedAt, ok := patron.BorrowDateOf(book)
	assert.True(t, ok)
	assert.Equal(t, clock.Now(), borrowedAt)

	notifications := notifier.GetNotifications()
	assert.Len(t, notifications, 1)
	assert.Equal(t, catalog.BookBorrowedNotificationType, notifications[0].NotificationType())
	assert.Equal(t, "Jane Smith borrowed 1984", notifications[0].Message())
	assert.False(t, notifications[0].IsFailure())
}

func Test_BorrowBook_WhenAlreadyBorrowed_FailsWithoutChanges(t *testing.T) {
	// arrange
	clock := GivenFakeClock()
	lib := GivenCatalog(t, catalog.WithClock(clock))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")
	clock.AdvanceDays(1)

	// act
	result := lib.BorrowBook(context.Background(), "John Doe", "1984")

	// assert
	assert.False(t, result.Succeeded())
	assert.Equal(t, catalog.FailureReasonBookNotAvailable, result.FailureReason())
	assert.Equal(t, catalog.BorrowingBookFailedNotificationType, result.Notification.NotificationType())
	assert.True(t, result.Notification.IsFailure())

	john, _ := lib.FindPatronByName("John Doe")
	assert.Empty(t, john.BorrowedBooks())
}

func Test_BorrowBook_SamePatronTwice_FailsSecondTime(t *testing.T) {
	// arrange
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// act
	result := lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// assert
	assert.Equal(t, catalog.FailureReasonBookNotAvailable, result.FailureReason())
	jane, _ := lib.FindPatronByName("Jane Smith")
	assert.Len(t, jane.BorrowedBooks(), 1)
}

func Test_BorrowBook_WithUnknownNames_Fails(t *testing.T) {
	testCases := []struct {
		name           string
		patronName     string
		bookTitle      string
		expectedReason string
	}{
		{"unknown patron", "Nobody", "1984", catalog.FailureReasonPatronNotFound},
		{"unknown book", "Jane Smith", "Nonexistent Book", catalog.FailureReasonBookNotFound},
		{"both unknown", "Nobody", "Nonexistent Book", catalog.FailureReasonPatronNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			notifier := testdoubles.NewNotifierSpy()
			lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithNotifier(notifier))
			GivenStandardCollection(lib)
			before := lib.AvailabilityReport()

			// act
			result := lib.BorrowBook(context.Background(), tc.patronName, tc.bookTitle)

			// assert
			assert.False(t, result.Succeeded())
			assert.Equal(t, tc.expectedReason, result.FailureReason())
			assert.Equal(t, before, lib.AvailabilityReport())
			assert.Len(t, notifier.GetNotifications(), 1)
			assert.Equal(t, catalog.BorrowingBookFailedNotificationType, notifier.GetNotifications()[0].NotificationType())
		})
	}
}

func Test_BorrowBook_IgnoresCaseOfNames(t *testing.T) {
	// arrange
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()))
	GivenStandardCollection(lib)

	// act
	result := lib.BorrowBook(context.Background(), "jane smith", "THE GREAT GATSBY")

	// assert
	assert.True(t, result.Succeeded())
	book, _ := lib.FindBookByTitle("The Great Gatsby")
	assert.False(t, book.IsAvailable())
}

func Test_ReturnBook_WhenBorrowedByPatron_Succeeds(t *testing.T) {
	// arrange
	notifier := testdoubles.NewNotifierSpy()
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithNotifier(notifier))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "John Doe", "The Great Gatsby")

	// act
	result := lib.ReturnBook(context.Background(), "John Doe", "The Great Gatsby")

	// assert
	assert.True(t, result.Succeeded())

	book, _ := lib.FindBookByTitle("The Great Gatsby")
	john, _ := lib.FindPatronByName("John Doe")
	assert.True(t, book.IsAvailable())
	assert.Empty(t, john.BorrowedBooks())
	_, stillDated := john.BorrowDateOf(book)
	assert.False(t, stillDated)

	notifications := notifier.GetNotifications()
	assert.Len(t, notifications, 2)
	assert.Equal(t, catalog.BookReturnedNotificationType, notifications[1].NotificationType())
	assert.Equal(t, "John Doe returned The Great Gatsby", notifications[1].Message())
}

func Test_ReturnBook_WhenBorrowedByAnotherPatron_FailsWithoutChanges(t *testing.T) {
	// arrange
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// act
	result := lib.ReturnBook(context.Background(), "John Doe", "1984")

	// assert
	assert.False(t, result.Succeeded())
	assert.Equal(t, catalog.FailureReasonBookNotBorrowedByPatron, result.FailureReason())
	assert.Equal(t, catalog.ReturningBookFailedNotificationType, result.Notification.NotificationType())

	book, _ := lib.FindBookByTitle("1984")
	jane, _ := lib.FindPatronByName("Jane Smith")
	assert.False(t, book.IsAvailable())
	assert.Len(t, jane.BorrowedBooks(), 1)
}

func Test_ReturnBook_WithUnknownNames_Fails(t *testing.T) {
	// arrange
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()))
	GivenStandardCollection(lib)

	// act
	unknownPatron := lib.ReturnBook(context.Background(), "Nobody", "1984")
	unknownBook := lib.ReturnBook(context.Background(), "Jane Smith", "Nonexistent Book")
	neverBorrowed := lib.ReturnBook(context.Background(), "Jane Smith", "1984")

	// assert
	assert.Equal(t, catalog.FailureReasonPatronNotFound, unknownPatron.FailureReason())
	assert.Equal(t, catalog.FailureReasonBookNotFound, unknownBook.FailureReason())
	assert.Equal(t, catalog.FailureReasonBookNotBorrowedByPatron, neverBorrowed.FailureReason())
	assert.Equal(t, "Jane Smith could not return 1984: book is not borrowed by the patron", neverBorrowed.Notification.Message())
}

func Test_BorrowThenReturn_RestoresOriginalState(t *testing.T) {
	// arrange
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()))
	GivenStandardCollection(lib)
	before := lib.AvailabilityReport()
	historyBefore, _ := lib.BorrowingHistoryReport("Jane Smith")

	// act
	borrowed := lib.BorrowBook(context.Background(), "Jane Smith", "To Kill a Mockingbird")
	returned := lib.ReturnBook(context.Background(), "Jane Smith", "To Kill a Mockingbird")

	// assert
	assert.True(t, borrowed.Succeeded())
	assert.True(t, returned.Succeeded())
	assert.Equal(t, before, lib.AvailabilityReport())
	historyAfter, _ := lib.BorrowingHistoryReport("Jane Smith")
	assert.Equal(t, historyBefore, historyAfter)
}

func Test_ReturnBook_AfterReturn_BookCanBeBorrowedAgain(t *testing.T) {
	// arrange
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()))
	GivenStandardCollection(lib)
	lib.BorrowBook(context.Background(), "John Doe", "1984")
	lib.ReturnBook(context.Background(), "John Doe", "1984")

	// act
	result := lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// assert
	assert.True(t, result.Succeeded())
}

func Test_BorrowBook_WhenNotifierFails_StillSucceeds(t *testing.T) {
	// arrange
	failing := testdoubles.NewFailingNotifierSpy(catalog.ErrNotifyingFailed)
	second := testdoubles.NewNotifierSpy()
	lib := GivenCatalog(t,
		catalog.WithClock(GivenFakeClock()),
		catalog.WithNotifier(failing),
		catalog.WithNotifier(second))
	GivenStandardCollection(lib)

	// act
	result := lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// assert
	assert.True(t, result.Succeeded())
	assert.Len(t, failing.GetNotifications(), 1)
	assert.Len(t, second.GetNotifications(), 1, "later notifiers are still called")
}
