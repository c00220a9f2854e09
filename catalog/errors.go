package catalog

import "errors"

var (
	// ErrNilClock is returned when a nil Clock is provided to WithClock.
	ErrNilClock = errors.New("clock must not be nil")

	// ErrNilNotifier is returned when a nil Notifier is provided to WithNotifier.
	ErrNilNotifier = errors.New("notifier must not be nil")

	// ErrNilLogger is returned when a nil logger is provided to WithLogger or WithContextualLogger.
	ErrNilLogger = errors.New("logger must not be nil")

	// ErrNilMetricsCollector is returned when a nil metrics collector is provided to WithMetrics.
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")

	// ErrNilTracingCollector is returned when a nil tracing collector is provided to WithTracing.
	ErrNilTracingCollector = errors.New("tracing collector must not be nil")

	// ErrInvalidFinePolicy is returned when a FinePolicy has a negative borrow period or rate.
	ErrInvalidFinePolicy = errors.New("fine policy must have a non-negative borrow period and daily rate")

	// ErrNotifyingFailed is joined with the error of a Notifier that could not deliver a notification.
	ErrNotifyingFailed = errors.New("notifying failed")
)
