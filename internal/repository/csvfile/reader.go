// Package csvfile reads birthday records from delimited text files.
package csvfile

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"birthdays/internal/domain"
	"birthdays/internal/errors"
	"birthdays/internal/logging"
)

// Column names expected in the header row
const (
	ColumnName      = "name"
	ColumnSurname   = "surname"
	ColumnBirthdate = "birthdate"
)

// Options controls parsing
type Options struct {
	Delimiter  rune
	DateFormat string
	// Now supplies the year birthdates are normalized to; defaults to time.Now
	Now func() time.Time
}

// Reader reads birthday records from a CSV file. The file is opened on each
// ReadRecords call and closed before it returns.
type Reader struct {
	path string
	opts Options
}

// New creates a Reader for path
func New(path string, opts Options) *Reader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ';'
	}
	if opts.DateFormat == "" {
		opts.DateFormat = "2-1-2006"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Reader{path: path, opts: opts}
}

// ReadRecords opens the file and parses every row. The first bad row
// aborts the read.
func (r *Reader) ReadRecords(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.NewFileOpenError(r.path, err)
	}
	defer f.Close()

	records, err := r.Decode(ctx, f)
	if err != nil {
		return nil, err
	}

	logging.Debugf("read %d records from %s\n", len(records), r.path)
	return records, nil
}

// Close is a no-op; the file handle never outlives ReadRecords
func (r *Reader) Close() error {
	return nil
}

// columns holds the position of each known column in a row
type columns struct {
	name, surname, birthdate int
}

// Decode parses records from in. The first row must be a header naming
// the name, surname and birthdate columns in any order.
func (r *Reader) Decode(ctx context.Context, in io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(in)
	cr.Comma = r.opts.Delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, csvError(err)
	}

	cols, err := mapHeader(header)
	if err != nil {
		return nil, errors.NewRowParseError(1, "header", err)
	}

	var records []domain.Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		line, _ := cr.FieldPos(0)
		record, err := r.toRecord(row, cols, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *Reader) toRecord(row []string, cols columns, line int) (domain.Record, error) {
	var born *domain.Date
	if raw := strings.TrimSpace(row[cols.birthdate]); raw != "" {
		d, err := domain.ParseDate(raw, r.opts.DateFormat)
		if err != nil {
			return domain.Record{}, errors.NewRowParseError(line, ColumnBirthdate, err)
		}
		born = &d
	}

	return domain.NewRecord(
		line,
		strings.TrimSpace(row[cols.name]),
		strings.TrimSpace(row[cols.surname]),
		born,
		r.opts.Now().Year(),
	), nil
}

func mapHeader(header []string) (columns, error) {
	cols := columns{name: -1, surname: -1, birthdate: -1}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		switch strings.ToLower(strings.TrimSpace(h)) {
		case ColumnName:
			cols.name = i
		case ColumnSurname:
			cols.surname = i
		case ColumnBirthdate:
			cols.birthdate = i
		}
	}

	var missing []string
	if cols.name < 0 {
		missing = append(missing, ColumnName)
	}
	if cols.surname < 0 {
		missing = append(missing, ColumnSurname)
	}
	if cols.birthdate < 0 {
		missing = append(missing, ColumnBirthdate)
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing column(s) %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// csvError converts encoding/csv errors, keeping the offending line
func csvError(err error) error {
	var parseErr *csv.ParseError
	if stderrors.As(err, &parseErr) {
		return errors.NewRowParseError(parseErr.StartLine, "", parseErr.Err)
	}
	return errors.NewRowParseError(0, "", err)
}
