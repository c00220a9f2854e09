// Package journal provides a PostgreSQL-backed catalog.Notifier that appends every
// borrow and return notification to an audit table.
//
// The journal is an append-only trail. The catalog state itself stays in memory and
// is never restored from the journal.
//
// It works with pgx.Pool, sql.DB (lib/pq) and sqlx.DB:
//
//	j, err := journal.NewJournalFromPGXPool(pool, journal.WithTableName("catalog_notifications"))
//	if err != nil {
//		// handle error
//	}
//
//	if err = j.EnsureSchema(ctx); err != nil {
//		// handle error
//	}
//
//	lib, err := catalog.New(catalog.WithNotifier(j))
package journal
