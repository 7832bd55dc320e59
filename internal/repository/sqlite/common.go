package sqlite

import (
	"context"
	"database/sql"

	"birthdays/internal/errors"
)

// HandleSourceError converts database errors to structured app errors
func HandleSourceError(operation string, err error) error {
	return errors.NewSourceError(operation, err)
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleSourceError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleSourceError("scan "+entityType, err)
	}

	return results, nil
}
