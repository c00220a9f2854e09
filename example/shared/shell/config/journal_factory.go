package config

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/journal"
)

// OpenJournal connects to dsn with the library selected by adapterType, creates the schema
// if needed and returns the journal together with a function closing the connection.
func OpenJournal(
	ctx context.Context,
	adapterType string,
	dsn string,
	logger catalog.Logger,
	options ...journal.Option,
) (journal.Journal, func(), error) {
	if logger != nil {
		options = append(options, journal.WithLogger(logger))
	}

	var (
		j       journal.Journal
		closeFn func()
		err     error
	)

	switch adapterType {
	case AdapterTypePGXPool:
		j, closeFn, err = openPGXJournal(ctx, dsn, options)
	case AdapterTypeSQLDB:
		db, openErr := PostgresSQLDB(ctx, dsn)
		if openErr != nil {
			return journal.Journal{}, nil, openErr
		}

		closeFn = func() { _ = db.Close() }
		j, err = journal.NewJournalFromSQLDB(db, options...)
	case AdapterTypeSQLXDB:
		db, openErr := PostgresSQLX(ctx, dsn)
		if openErr != nil {
			return journal.Journal{}, nil, openErr
		}

		closeFn = func() { _ = db.Close() }
		j, err = journal.NewJournalFromSQLX(db, options...)
	default:
		return journal.Journal{}, nil, errors.Join(ErrUnsupportedAdapterType, errors.New(adapterType))
	}

	if err != nil {
		if closeFn != nil {
			closeFn()
		}

		return journal.Journal{}, nil, err
	}

	if err = j.EnsureSchema(ctx); err != nil {
		closeFn()
		return journal.Journal{}, nil, err
	}

	return j, closeFn, nil
}

func openPGXJournal(ctx context.Context, dsn string, options []journal.Option) (journal.Journal, func(), error) {
	poolConfig, err := PostgresPGXPoolConfig(dsn)
	if err != nil {
		return journal.Journal{}, nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return journal.Journal{}, nil, err
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return journal.Journal{}, nil, err
	}

	j, err := journal.NewJournalFromPGXPool(pool, options...)
	if err != nil {
		pool.Close()
		return journal.Journal{}, nil, err
	}

	return j, pool.Close, nil
}
