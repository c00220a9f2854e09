package catalog

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Logger interface for operational logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation.
// It follows the same dependency-free pattern as MetricsCollector and TracingCollector,
// so any logging backend that supports context-based correlation can be plugged in.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector interface for collecting Catalog operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
// The Catalog uses the context-aware methods when available and falls back to MetricsCollector otherwise.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for collecting distributed tracing information from Catalog operations.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

const (
	// MetricOperationDuration is the histogram of borrow/return durations in seconds.
	MetricOperationDuration = "catalog_operation_duration_seconds"

	// MetricOperationsTotal counts borrow/return operations by operation and outcome.
	MetricOperationsTotal = "catalog_operations_total"

	// MetricNotificationFailures counts notifier errors.
	MetricNotificationFailures = "catalog_notification_failures_total"

	// MetricBooksBorrowed is the gauge of books currently borrowed, set after every successful borrow or return.
	MetricBooksBorrowed = "catalog_books_borrowed"

	// SpanNameBorrowBook is the span name for BorrowBook.
	SpanNameBorrowBook = "catalog.borrow_book"

	// SpanNameReturnBook is the span name for ReturnBook.
	SpanNameReturnBook = "catalog.return_book"

	// StatusSuccess is the status label for operations that changed the catalog state.
	StatusSuccess = "success"

	// StatusFailure is the status label for rejected operations.
	StatusFailure = "failure"

	// StatusError is the status label for infrastructure errors, e.g. a failing notifier.
	StatusError = "error"

	operationBorrowBook = "borrow_book"
	operationReturnBook = "return_book"

	labelOperation = "operation"
	labelStatus    = "status"
	labelReason    = "reason"

	spanAttrPatronName = "patron_name"
	spanAttrBookTitle  = "book_title"
	spanAttrReason     = "failure_reason"
	spanAttrDurationMS = "duration_ms"

	logMsgOperationSucceeded = "catalog operation succeeded: "
	logMsgOperationRejected  = "catalog operation rejected: "
	logMsgNotifyFailed       = "notifier failed"
	logAttrPatronName        = "patron_name"
	logAttrBookTitle         = "book_title"
	logAttrReason            = "reason"
	logAttrDurationMS        = "duration_ms"
	logAttrNotificationType  = "notification_type"
	logAttrError             = "error"
)

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// startOperationSpan starts a tracing span if the tracing collector is configured.
func (c *Catalog) startOperationSpan(
	ctx context.Context,
	spanName string,
	operation string,
	patronName string,
	bookTitle string,
) (context.Context, SpanContext) {
	if c.tracingCollector == nil {
		return ctx, nil
	}

	return c.tracingCollector.StartSpan(ctx, spanName, map[string]string{
		labelOperation:     operation,
		spanAttrPatronName: patronName,
		spanAttrBookTitle:  bookTitle,
	})
}

// finishOperationSpan finishes a tracing span with the result outcome.
func (c *Catalog) finishOperationSpan(span SpanContext, result Result, duration time.Duration) {
	if c.tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		spanAttrDurationMS: fmt.Sprintf("%.2f", toMilliseconds(duration)),
	}

	span.SetStatus(result.Outcome)

	if !result.Succeeded() {
		span.AddAttribute(spanAttrReason, result.FailureReason())
		attrs[spanAttrReason] = result.FailureReason()
	}

	c.tracingCollector.FinishSpan(span, result.Outcome, attrs)
}

// recordOperationMetrics records duration and count of an operation, preferring context-aware methods.
func (c *Catalog) recordOperationMetrics(ctx context.Context, operation string, result Result, duration time.Duration) {
	if c.metricsCollector == nil {
		return
	}

	durationLabels := map[string]string{
		labelOperation: operation,
		labelStatus:    result.Outcome,
	}

	counterLabels := map[string]string{
		labelOperation: operation,
		labelStatus:    result.Outcome,
	}

	if !result.Succeeded() {
		counterLabels[labelReason] = result.FailureReason()
	}

	if contextualCollector, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, MetricOperationDuration, duration, durationLabels)
		contextualCollector.IncrementCounterContext(ctx, MetricOperationsTotal, counterLabels)

		return
	}

	c.metricsCollector.RecordDuration(MetricOperationDuration, duration, durationLabels)
	c.metricsCollector.IncrementCounter(MetricOperationsTotal, counterLabels)
}

// recordBorrowedBooks sets the borrowed-books gauge; only successful operations change the count.
func (c *Catalog) recordBorrowedBooks(ctx context.Context, result Result) {
	if c.metricsCollector == nil || !result.Succeeded() {
		return
	}

	borrowed := float64(c.countBorrowedBooks())

	if contextualCollector, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, MetricBooksBorrowed, borrowed, nil)
		return
	}

	c.metricsCollector.RecordValue(MetricBooksBorrowed, borrowed, nil)
}

// recordNotificationFailure counts a notifier error.
func (c *Catalog) recordNotificationFailure(ctx context.Context, notification Notification) {
	if c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelStatus:             StatusError,
		logAttrNotificationType: notification.NotificationType(),
	}

	if contextualCollector, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, MetricNotificationFailures, labels)
		return
	}

	c.metricsCollector.IncrementCounter(MetricNotificationFailures, labels)
}

// logOperation logs the outcome of an operation to both the plain and the contextual logger, if configured.
func (c *Catalog) logOperation(ctx context.Context, operation string, result Result, duration time.Duration) {
	notification := result.Notification
	args := []any{
		logAttrNotificationType, notification.NotificationType(),
		logAttrDurationMS, toMilliseconds(duration),
	}

	switch n := notification.(type) {
	case BookBorrowed:
		args = append(args, logAttrPatronName, n.PatronName, logAttrBookTitle, n.BookTitle)
	case BookReturned:
		args = append(args, logAttrPatronName, n.PatronName, logAttrBookTitle, n.BookTitle)
	case BorrowingBookFailed:
		args = append(args, logAttrPatronName, n.PatronName, logAttrBookTitle, n.BookTitle, logAttrReason, n.FailureInfo)
	case ReturningBookFailed:
		args = append(args, logAttrPatronName, n.PatronName, logAttrBookTitle, n.BookTitle, logAttrReason, n.FailureInfo)
	}

	msg := logMsgOperationSucceeded + operation
	if !result.Succeeded() {
		msg = logMsgOperationRejected + operation
	}

	if c.logger != nil {
		c.logger.Info(msg, args...)
	}

	if c.contextualLogger != nil {
		c.contextualLogger.InfoContext(ctx, msg, args...)
	}
}

// logNotifyError logs a notifier error at warn level.
func (c *Catalog) logNotifyError(ctx context.Context, notification Notification, err error) {
	args := []any{
		logAttrError, err.Error(),
		logAttrNotificationType, notification.NotificationType(),
	}

	if c.logger != nil {
		c.logger.Warn(logMsgNotifyFailed, args...)
	}

	if c.contextualLogger != nil {
		c.contextualLogger.WarnContext(ctx, logMsgNotifyFailed, args...)
	}
}
