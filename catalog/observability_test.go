package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/helper" //nolint:revive
	"github.com/AntonStoeckl/library-catalog-go/testutil/observability/testdoubles"
)

func Test_Observability_WithLogger_LogsOutcomes(t *testing.T) {
	// arrange
	logger := testdoubles.NewLoggerSpy(true)
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithLogger(logger))
	GivenStandardCollection(lib)

	// act
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")
	lib.BorrowBook(context.Background(), "John Doe", "1984")

	// assert
	records := logger.GetInfoRecords()
	require.Len(t, records, 2)
	assert.Equal(t, "catalog operation succeeded: borrow_book", records[0].Message)
	assert.Equal(t, "Jane Smith", records[0].Arg("patron_name"))
	assert.Equal(t, "1984", records[0].Arg("book_title"))
	assert.NotNil(t, records[0].Arg("duration_ms"))
	assert.Equal(t, "catalog operation rejected: borrow_book", records[1].Message)
	assert.Equal(t, catalog.FailureReasonBookNotAvailable, records[1].Arg("reason"))
}

func Test_Observability_WithContextualLogger_PassesContext(t *testing.T) {
	// arrange
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "request-42")
	logger := testdoubles.NewContextualLoggerSpy(true)
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithContextualLogger(logger))
	GivenStandardCollection(lib)
	lib.BorrowBook(ctx, "John Doe", "The Great Gatsby")

	// act
	lib.ReturnBook(ctx, "John Doe", "The Great Gatsby")

	// assert
	assert.True(t, logger.HasInfoLog("catalog operation succeeded: return_book"))
	for _, record := range logger.GetInfoRecords() {
		assert.Equal(t, "request-42", record.Context.Value(ctxKey{}))
	}
}

func Test_Observability_WhenNotifierFails_LogsWarningAndCountsFailure(t *testing.T) {
	// arrange
	logger := testdoubles.NewContextualLoggerSpy(true)
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	lib := GivenCatalog(t,
		catalog.WithClock(GivenFakeClock()),
		catalog.WithNotifier(testdoubles.NewFailingNotifierSpy(errors.New("journal unreachable"))),
		catalog.WithContextualLogger(logger),
		catalog.WithMetrics(metrics))
	GivenStandardCollection(lib)

	// act
	result := lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// assert
	assert.True(t, result.Succeeded())
	assert.True(t, logger.HasWarnLog("notifier failed"))
	assert.Equal(t, "journal unreachable", logger.GetWarnRecords()[0].Args[1])
	assert.True(t,
		metrics.HasCounterRecordForMetric(catalog.MetricNotificationFailures).
			WithStatus(catalog.StatusError).
			WithLabel("notification_type", catalog.BookBorrowedNotificationType).
			Assert())
}

func Test_Observability_WithMetrics_RecordsDurationAndCount(t *testing.T) {
	// arrange
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithMetrics(metrics))
	GivenStandardCollection(lib)

	// act
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")
	lib.ReturnBook(context.Background(), "John Doe", "1984")

	// assert
	assert.True(t,
		metrics.HasDurationRecordForMetric(catalog.MetricOperationDuration).
			WithOperation("borrow_book").
			WithStatus(catalog.StatusSuccess).
			Assert())
	assert.True(t,
		metrics.HasCounterRecordForMetric(catalog.MetricOperationsTotal).
			WithOperation("return_book").
			WithStatus(catalog.StatusFailure).
			WithLabel("reason", catalog.FailureReasonBookNotBorrowedByPatron).
			Assert())
	assert.Equal(t, 2, metrics.CountCounterRecordsForMetric(catalog.MetricOperationsTotal))
}

func Test_Observability_WithContextualMetrics_PrefersContextAwareMethods(t *testing.T) {
	// arrange
	metrics := testdoubles.NewContextualMetricsCollectorSpy(true)
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithMetrics(metrics))
	GivenStandardCollection(lib)

	// act
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// assert
	assert.Equal(t, 3, metrics.GetContextualCallCount(), "one duration, one counter and one gauge")
	assert.Len(t, metrics.GetDurationRecords(), 1)
	assert.Len(t, metrics.GetCounterRecords(), 1)
	assert.Len(t, metrics.GetValueRecords(), 1)
}

func Test_Observability_WithMetrics_TracksBorrowedBooks(t *testing.T) {
	// arrange
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithMetrics(metrics))
	GivenStandardCollection(lib)
	ctx := context.Background()

	// act
	lib.BorrowBook(ctx, "Jane Smith", "1984")
	lib.BorrowBook(ctx, "John Doe", "The Great Gatsby")
	lib.BorrowBook(ctx, "John Doe", "1984")
	lib.ReturnBook(ctx, "Jane Smith", "1984")

	// assert
	records := metrics.GetValueRecords()
	require.Len(t, records, 3, "rejected operations leave the gauge alone")
	for _, record := range records {
		assert.Equal(t, catalog.MetricBooksBorrowed, record.Metric)
	}
	assert.Equal(t, 1.0, records[0].Value)
	assert.Equal(t, 2.0, records[1].Value)
	assert.Equal(t, 1.0, records[2].Value)
}

func Test_Observability_WithTracing_StartsAndFinishesSpans(t *testing.T) {
	// arrange
	tracing := testdoubles.NewTracingCollectorSpy(true)
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithTracing(tracing))
	GivenStandardCollection(lib)

	// act
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")
	lib.ReturnBook(context.Background(), "Jane Smith", "Nonexistent Book")

	// assert
	assert.True(t,
		tracing.HasSpanRecordForName(catalog.SpanNameBorrowBook).
			WithStartAttribute("operation", "borrow_book").
			WithStartAttribute("patron_name", "Jane Smith").
			WithStartAttribute("book_title", "1984").
			WithStatus(catalog.StatusSuccess).
			Assert())
	assert.True(t,
		tracing.HasSpanRecordForName(catalog.SpanNameReturnBook).
			WithStatus(catalog.StatusFailure).
			WithEndAttribute("failure_reason", catalog.FailureReasonBookNotFound).
			WithSpanAttribute("failure_reason", catalog.FailureReasonBookNotFound).
			Assert())

	for _, record := range tracing.GetSpanRecords() {
		assert.True(t, record.Finished, record.Name)
	}
}
