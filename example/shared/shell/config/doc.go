// Package config provides the application configuration for the library catalog
// example programs: environment lookup, PostgreSQL connection factories for the
// notification journal (pgx.Pool, sql.DB, sqlx.DB) and OpenTelemetry providers.
//
// This package is part of the shell (infrastructure) layer.
package config
