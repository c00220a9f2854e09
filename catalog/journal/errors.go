package journal

import "errors"

var (
	// ErrNilDatabaseConnection is returned when a nil connection is given to a constructor.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when WithTableName is given an empty name.
	ErrEmptyTableName = errors.New("journal table name must not be empty")

	// ErrBuildingQueryFailed is returned when goqu cannot build a query.
	ErrBuildingQueryFailed = errors.New("building journal query failed")

	// ErrEncodingPayloadFailed is returned when a notification cannot be encoded as JSON.
	ErrEncodingPayloadFailed = errors.New("encoding notification payload failed")

	// ErrDecodingPayloadFailed is returned when a stored payload cannot be decoded into a notification.
	ErrDecodingPayloadFailed = errors.New("decoding notification payload failed")

	// ErrUnknownNotificationType is returned when decoding an entry with an unknown notification type.
	ErrUnknownNotificationType = errors.New("unknown notification type")

	// ErrAppendingEntryFailed is returned when the insert of a journal entry fails.
	ErrAppendingEntryFailed = errors.New("appending journal entry failed")

	// ErrNoRowsAffected is returned when an insert reports zero affected rows.
	ErrNoRowsAffected = errors.New("appending journal entry affected no rows")

	// ErrQueryingEntriesFailed is returned when reading journal entries fails.
	ErrQueryingEntriesFailed = errors.New("querying journal entries failed")

	// ErrScanningRowFailed is returned when a journal row cannot be scanned.
	ErrScanningRowFailed = errors.New("scanning journal row failed")

	// ErrCreatingSchemaFailed is returned when EnsureSchema fails.
	ErrCreatingSchemaFailed = errors.New("creating journal schema failed")

	// ErrDroppingSchemaFailed is returned when DropSchema fails.
	ErrDroppingSchemaFailed = errors.New("dropping journal schema failed")

	// ErrInvalidMaxAttempts is returned when WithRetry is given a non-positive number of attempts.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNegativeBaseDelay is returned when WithRetry is given a negative base delay.
	ErrNegativeBaseDelay = errors.New("base delay must not be negative")

	// ErrInvalidLimit is returned when Entries is called with a limit below 1.
	ErrInvalidLimit = errors.New("limit must be at least 1")
)
