package journal

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/lib/pq"
)

const (
	dialectPostgres     = "postgres"
	colID               = "id"
	colNotificationType = "notification_type"
	colOccurredAt       = "occurred_at"
	colFailure          = "failure"
	colPayload          = "payload"
	castJsonb           = "?::jsonb"
	castIDText          = "id::text"
)

// buildInsertQuery builds a single-row insert with the payload cast to jsonb.
func buildInsertQuery(tableName string, entry Entry) (string, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(tableName).
		Rows(goqu.Record{
			colID:               entry.ID.String(),
			colNotificationType: entry.NotificationType,
			colOccurredAt:       entry.OccurredAt,
			colFailure:          entry.Failure,
			colPayload:          goqu.L(castJsonb, string(entry.Payload)),
		})

	sqlQuery, _, err := insertStmt.ToSQL()
	if err != nil {
		return "", err
	}

	return sqlQuery, nil
}

// buildSelectQuery selects the newest entries first, at most limit of them.
func buildSelectQuery(tableName string, limit uint) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(tableName).
		Select(goqu.L(castIDText), goqu.C(colNotificationType), goqu.C(colOccurredAt), goqu.C(colFailure), goqu.C(colPayload)).
		Order(goqu.I(colOccurredAt).Desc(), goqu.I(colID).Desc()).
		Limit(limit)

	sqlQuery, _, err := selectStmt.ToSQL()
	if err != nil {
		return "", err
	}

	return sqlQuery, nil
}

// buildSchemaQueries returns the DDL for the journal table and its occurred_at index.
// goqu has no DDL support, so identifiers are quoted with lib/pq.
func buildSchemaQueries(tableName string) []string {
	table := pq.QuoteIdentifier(tableName)
	index := pq.QuoteIdentifier(tableName + "_occurred_at_idx")

	createTable := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	%s UUID PRIMARY KEY,
	%s TEXT NOT NULL,
	%s TIMESTAMP WITH TIME ZONE NOT NULL,
	%s BOOLEAN NOT NULL,
	%s JSONB NOT NULL
)`, table, colID, colNotificationType, colOccurredAt, colFailure, colPayload)

	createIndex := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (%s)`, index, table, colOccurredAt)

	return []string{createTable, createIndex}
}

func buildDropQuery(tableName string) string {
	return "DROP TABLE IF EXISTS " + pq.QuoteIdentifier(tableName)
}
