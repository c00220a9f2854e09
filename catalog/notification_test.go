package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/helper" //nolint:revive
)

func Test_WriterNotifier_PrintsOneLinePerNotification(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	lib := GivenCatalog(t,
		catalog.WithClock(GivenFakeClock()),
		catalog.WithNotifier(catalog.NewWriterNotifier(&buf)))
	GivenStandardCollection(lib)

	// act
	lib.BorrowBook(context.Background(), "John Doe", "The Great Gatsby")
	lib.BorrowBook(context.Background(), "Jane Smith", "The Great Gatsby")
	lib.ReturnBook(context.Background(), "John Doe", "The Great Gatsby")

	// assert
	assert.Equal(t,
		"John Doe borrowed The Great Gatsby\n"+
			"Jane Smith could not borrow The Great Gatsby: book is not available\n"+
			"John Doe returned The Great Gatsby\n",
		buf.String())
}

func Test_WriterNotifier_WhenWriterFails_ReturnsJoinedError(t *testing.T) {
	// arrange
	writeErr := errors.New("broken pipe")
	notifier := catalog.NewWriterNotifier(failingWriter{err: writeErr})
	notification := catalog.BuildBorrowingBookFailed("Jane Smith", "1984", catalog.FailureReasonBookNotFound, GivenFakeClock().Now())

	// act
	err := notifier.Notify(context.Background(), notification)

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotifyingFailed)
	assert.ErrorIs(t, err, writeErr)
}

func Test_NotifierFunc_CallsFunction(t *testing.T) {
	// arrange
	var received catalog.Notification
	notifier := catalog.NotifierFunc(func(_ context.Context, n catalog.Notification) error {
		received = n
		return nil
	})
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithNotifier(notifier))
	GivenStandardCollection(lib)

	// act
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// assert
	borrowed, ok := received.(catalog.BookBorrowed)
	assert.True(t, ok)
	assert.Equal(t, "Jane Smith", borrowed.PatronName)
	assert.Equal(t, "1984", borrowed.BookTitle)
	assert.Equal(t, GivenFakeClock().Now(), borrowed.HasOccurredAt())
}
