package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"birthdays/internal/domain"
	"birthdays/internal/errors"
	"birthdays/internal/logging"

	_ "modernc.org/sqlite"
)

// Options controls how rows are read and converted
type Options struct {
	Table      string
	DateFormat string
	// Now supplies the year birthdates are normalized to; defaults to time.Now
	Now func() time.Time
}

// SQLiteRepository reads birthday records from a SQLite database.
// The database is opened read-only and never modified.
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New opens the database at dbPath. A missing file is reported instead
// of letting the driver create an empty database.
func New(dbPath string, opts Options) (*SQLiteRepository, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, errors.NewFileOpenError(dbPath, err)
	}

	dsn, err := readOnlyDSN(dbPath)
	if err != nil {
		return nil, errors.NewFileOpenError(dbPath, err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewFileOpenError(dbPath, err)
	}

	if opts.Table == "" {
		opts.Table = "birthdays"
	}
	if opts.DateFormat == "" {
		opts.DateFormat = "2-1-2006"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// readOnlyDSN builds a read-only SQLite URI for dbPath. The path is made
// absolute and escaped so '?', '#' and '%' in file names survive.
func readOnlyDSN(dbPath string) (string, error) {
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// listBirthdayRows returns the raw rows of the configured table in rowid order
func (r *SQLiteRepository) listBirthdayRows(ctx context.Context) ([]*BirthdayRow, error) {
	// table is validated as a plain identifier by config
	query := fmt.Sprintf(`
	SELECT rowid, name, surname, birthdate
	FROM "%s"
	ORDER BY rowid ASC`, r.opts.Table)

	return QueryMultiple(ctx, r.db, query, ScanBirthdayRows, r.opts.Table)
}

// ReadRecords reads every row and converts it to a domain record. The first
// malformed birthdate aborts the read.
func (r *SQLiteRepository) ReadRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.listBirthdayRows(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		born, err := ParseBirthdateFromDB(row.Birthdate, r.opts.DateFormat)
		if err != nil {
			return nil, errors.NewRowParseError(int(row.RowID), "birthdate", err)
		}
		records = append(records, domain.NewRecord(
			int(row.RowID),
			StringFromDB(row.Name),
			StringFromDB(row.Surname),
			born,
			r.opts.Now().Year(),
		))
	}

	logging.Debugf("read %d records from table %s\n", len(records), r.opts.Table)
	return records, nil
}
