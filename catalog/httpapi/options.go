package httpapi

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/journal"
)

// EntryLister provides the newest journal entries; journal.Journal implements it.
type EntryLister interface {
	Entries(ctx context.Context, limit int) ([]journal.Entry, error)
}

// Option defines a functional option for configuring the API.
type Option func(*API) error

// WithLogger sets the logger for request logging.
//
// Info level: served requests with status and timing
// Error level: failures reading the notification journal.
func WithLogger(logger catalog.Logger) Option {
	return func(a *API) error {
		if logger == nil {
			return ErrNilLogger
		}

		a.logger = logger

		return nil
	}
}

// WithRateLimit limits all requests with a token bucket refilled at requestsPerSecond holding up to burst tokens.
// Requests beyond the limit are answered with 429.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(a *API) error {
		if requestsPerSecond <= 0 || burst < 1 {
			return ErrInvalidRateLimit
		}

		a.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

		return nil
	}
}

// WithEntryLister enables GET /notifications, served from the given journal.
func WithEntryLister(lister EntryLister) Option {
	return func(a *API) error {
		if lister == nil {
			return ErrNilEntryLister
		}

		a.entries = lister

		return nil
	}
}
