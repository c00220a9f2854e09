package config

import (
	"errors"
	"os"
	"strconv"
)

const (
	// EnvJournalDSN names the variable holding the PostgreSQL DSN of the notification journal.
	// The journal is disabled when it is empty.
	EnvJournalDSN = "CATALOG_JOURNAL_DSN"

	// EnvAdapterType names the variable selecting the database library for the journal.
	EnvAdapterType = "ADAPTER_TYPE"

	// EnvHTTPAddress names the variable holding the listen address of the HTTP server.
	EnvHTTPAddress = "CATALOG_HTTP_ADDR"

	// EnvRateLimit names the variable holding the allowed requests per second of the HTTP server.
	EnvRateLimit = "CATALOG_RATE_LIMIT_RPS"

	// EnvRateBurst names the variable holding the request burst size of the HTTP server.
	EnvRateBurst = "CATALOG_RATE_LIMIT_BURST"

	// EnvOTLPEndpoint names the variable holding the OTLP gRPC endpoint; telemetry export is disabled when it is empty.
	EnvOTLPEndpoint = "CATALOG_OTLP_ENDPOINT"

	// AdapterTypePGXPool selects pgxpool.Pool.
	AdapterTypePGXPool = "pgx.pool"

	// AdapterTypeSQLDB selects database/sql with lib/pq.
	AdapterTypeSQLDB = "sql.db"

	// AdapterTypeSQLXDB selects sqlx with lib/pq.
	AdapterTypeSQLXDB = "sqlx.db"

	defaultHTTPAddress = ":8080"
	defaultRateLimit   = 20.0
	defaultRateBurst   = 40
)

// ErrUnsupportedAdapterType is returned for an ADAPTER_TYPE other than pgx.pool, sql.db or sqlx.db.
var ErrUnsupportedAdapterType = errors.New("unsupported adapter type")

// ErrInvalidEnvValue is returned when a numeric environment variable cannot be parsed.
var ErrInvalidEnvValue = errors.New("invalid environment value")

// JournalDSN returns the journal DSN, or an empty string when the journal is disabled.
func JournalDSN() string {
	return os.Getenv(EnvJournalDSN)
}

// AdapterType returns the configured adapter type, pgx.pool by default.
func AdapterType() (string, error) {
	adapterType := os.Getenv(EnvAdapterType)
	if adapterType == "" {
		return AdapterTypePGXPool, nil
	}

	switch adapterType {
	case AdapterTypePGXPool, AdapterTypeSQLDB, AdapterTypeSQLXDB:
		return adapterType, nil
	default:
		return "", errors.Join(ErrUnsupportedAdapterType, errors.New(adapterType))
	}
}

// HTTPAddress returns the listen address, ":8080" by default.
func HTTPAddress() string {
	if addr := os.Getenv(EnvHTTPAddress); addr != "" {
		return addr
	}

	return defaultHTTPAddress
}

// RateLimit returns requests per second and burst size for the HTTP rate limiter.
func RateLimit() (float64, int, error) {
	limit := defaultRateLimit
	burst := defaultRateBurst

	if raw := os.Getenv(EnvRateLimit); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.Join(ErrInvalidEnvValue, errors.New(EnvRateLimit))
		}

		limit = parsed
	}

	if raw := os.Getenv(EnvRateBurst); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return 0, 0, errors.Join(ErrInvalidEnvValue, errors.New(EnvRateBurst))
		}

		burst = parsed
	}

	return limit, burst, nil
}

// OTLPEndpoint returns the OTLP gRPC endpoint, or an empty string when export is disabled.
func OTLPEndpoint() string {
	return os.Getenv(EnvOTLPEndpoint)
}
