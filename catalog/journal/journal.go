package journal

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/journal/internal/adapters"
)

const (
	defaultTableName = "catalog_notifications"

	logMsgBuildInsertQueryFailed = "failed to build journal insert query"
	logMsgBuildSelectQueryFailed = "failed to build journal select query"
	logMsgDBExecFailed           = "journal database execution failed"
	logMsgDBQueryFailed          = "journal database query failed"
	logMsgScanRowFailed          = "failed to scan journal row"
	logMsgCloseRowsFailed        = "failed to close journal rows"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgEntryAppended          = "journal entry appended"
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrDurationMS            = "duration_ms"
	logAttrNotificationType      = "notification_type"
	logAttrEntryID               = "entry_id"
	logActionAppend              = "append"
	logActionEntries             = "entries"
	logActionSchema              = "schema"
)

// Journal appends catalog notifications to a PostgreSQL table. It implements catalog.Notifier.
type Journal struct {
	db        adapters.DBAdapter
	tableName string
	logger    catalog.Logger
	retry     retryConfig
}

// NewJournalFromPGXPool creates a Journal on a pgx pool.
func NewJournalFromPGXPool(db *pgxpool.Pool, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewPGXAdapter(db), options)
}

// NewJournalFromSQLDB creates a Journal on a database/sql connection, e.g. one opened with the "postgres" driver of lib/pq.
func NewJournalFromSQLDB(db *sql.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLAdapter(db), options)
}

// NewJournalFromSQLX creates a Journal on a sqlx connection.
func NewJournalFromSQLX(db *sqlx.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLXAdapter(db), options)
}

func newJournal(db adapters.DBAdapter, options []Option) (Journal, error) {
	j := Journal{
		db:        db,
		tableName: defaultTableName,
		retry:     defaultRetryConfig(),
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// TableName returns the configured table name.
func (j Journal) TableName() string {
	return j.tableName
}

// Ping checks that the database is reachable.
func (j Journal) Ping(ctx context.Context) error {
	return j.db.Ping(ctx)
}

// EnsureSchema creates the journal table and its index if they do not exist yet.
func (j Journal) EnsureSchema(ctx context.Context) error {
	for _, sqlQuery := range buildSchemaQueries(j.tableName) {
		start := time.Now()
		if _, err := j.db.Exec(ctx, sqlQuery); err != nil {
			j.logError(logMsgDBExecFailed, err, logAttrQuery, sqlQuery)
			return errors.Join(ErrCreatingSchemaFailed, err)
		}

		j.logQueryWithDuration(sqlQuery, logActionSchema, time.Since(start))
	}

	return nil
}

// DropSchema drops the journal table. It is meant for test cleanup.
func (j Journal) DropSchema(ctx context.Context) error {
	sqlQuery := buildDropQuery(j.tableName)

	start := time.Now()
	if _, err := j.db.Exec(ctx, sqlQuery); err != nil {
		j.logError(logMsgDBExecFailed, err, logAttrQuery, sqlQuery)
		return errors.Join(ErrDroppingSchemaFailed, err)
	}

	j.logQueryWithDuration(sqlQuery, logActionSchema, time.Since(start))

	return nil
}

// Notify appends the notification as a new journal entry.
func (j Journal) Notify(ctx context.Context, notification catalog.Notification) error {
	entry, err := buildEntry(notification)
	if err != nil {
		j.logError(logMsgBuildInsertQueryFailed, err, logAttrNotificationType, notification.NotificationType())
		return err
	}

	sqlQuery, err := buildInsertQuery(j.tableName, entry)
	if err != nil {
		j.logError(logMsgBuildInsertQueryFailed, err, logAttrNotificationType, notification.NotificationType())
		return errors.Join(ErrBuildingQueryFailed, err)
	}

	start := time.Now()
	var result adapters.DBResult
	err = j.withRetries(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = j.db.Exec(ctx, sqlQuery)

		return execErr
	})
	if err != nil {
		j.logError(logMsgDBExecFailed, err, logAttrNotificationType, notification.NotificationType())
		return errors.Join(ErrAppendingEntryFailed, err)
	}

	duration := time.Since(start)
	j.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrAppendingEntryFailed, err)
	}

	if rowsAffected < 1 {
		return ErrNoRowsAffected
	}

	if j.logger != nil {
		j.logger.Info(
			logMsgEntryAppended,
			logAttrEntryID, entry.ID.String(),
			logAttrNotificationType, entry.NotificationType,
			logAttrDurationMS, toMilliseconds(duration))
	}

	return nil
}

// Entries returns at most limit entries, newest first.
func (j Journal) Entries(ctx context.Context, limit int) ([]Entry, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	sqlQuery, err := buildSelectQuery(j.tableName, uint(limit))
	if err != nil {
		j.logError(logMsgBuildSelectQueryFailed, err)
		return nil, errors.Join(ErrBuildingQueryFailed, err)
	}

	start := time.Now()
	rows, err := j.db.Query(ctx, sqlQuery)
	if err != nil {
		j.logError(logMsgDBQueryFailed, err)
		return nil, errors.Join(ErrQueryingEntriesFailed, err)
	}
	defer j.closeRows(rows)

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			j.logError(logMsgScanRowFailed, scanErr)
			return nil, scanErr
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		j.logError(logMsgDBQueryFailed, err)
		return nil, errors.Join(ErrQueryingEntriesFailed, err)
	}

	j.logQueryWithDuration(sqlQuery, logActionEntries, time.Since(start))

	return entries, nil
}

func scanEntry(rows adapters.DBRows) (Entry, error) {
	var (
		id    string
		entry Entry
	)

	if err := rows.Scan(&id, &entry.NotificationType, &entry.OccurredAt, &entry.Failure, &entry.Payload); err != nil {
		return Entry{}, errors.Join(ErrScanningRowFailed, err)
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return Entry{}, errors.Join(ErrScanningRowFailed, err)
	}

	entry.ID = parsedID

	return entry, nil
}

func (j Journal) closeRows(rows adapters.DBRows) {
	if err := rows.Close(); err != nil && j.logger != nil {
		j.logger.Warn(logMsgCloseRowsFailed, logAttrError, err.Error())
	}
}

func (j Journal) logQueryWithDuration(sqlQuery, action string, duration time.Duration) {
	if j.logger != nil {
		j.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

func (j Journal) logError(message string, err error, args ...any) {
	if j.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		j.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

var _ catalog.Notifier = Journal{}
