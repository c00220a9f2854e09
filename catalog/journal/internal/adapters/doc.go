// Package adapters lets the notification journal run on pgx.Pool, sql.DB or sqlx.DB
// behind a single DBAdapter interface.
package adapters
