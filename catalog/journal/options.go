package journal

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// Option defines a functional option for configuring a Journal.
type Option func(*Journal) error

// WithTableName sets the table the journal writes to. The default is "catalog_notifications".
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		j.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Journal.
//
// Debug level: SQL statements with execution timing
// Info level: appended entries
// Warn level: failures closing result rows
// Error level: failures that are returned to the caller.
func WithLogger(logger catalog.Logger) Option {
	return func(j *Journal) error {
		j.logger = logger
		return nil
	}
}

// WithRetry makes Notify retry inserts that failed before reaching the server, e.g. on a broken connection.
// Delays grow exponentially from baseDelay. The default is a single attempt.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(j *Journal) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}

		if baseDelay < 0 {
			return ErrNegativeBaseDelay
		}

		j.retry = retryConfig{maxAttempts: maxAttempts, baseDelay: baseDelay}

		return nil
	}
}
