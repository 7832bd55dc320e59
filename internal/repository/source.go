// Package repository picks the record source for a birthday file.
package repository

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"birthdays/internal/domain"
	"birthdays/internal/repository/csvfile"
	"birthdays/internal/repository/sqlite"
)

// Source reads every birthday record from one input
type Source interface {
	ReadRecords(ctx context.Context) ([]domain.Record, error)
	Close() error
}

// Kind identifies the format of a birthday file
type Kind string

const (
	KindCSV    Kind = "csv"
	KindSQLite Kind = "sqlite"
)

// Options holds the settings shared by all sources
type Options struct {
	Delimiter  rune
	DateFormat string
	Table      string
	Now        func() time.Time
}

// KindOf decides the source format from the file extension.
// Anything that is not a SQLite database is read as CSV.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	default:
		return KindCSV
	}
}

// Open returns the source for path
func Open(path string, opts Options) (Source, error) {
	switch KindOf(path) {
	case KindSQLite:
		repo, err := sqlite.New(path, sqlite.Options{
			Table:      opts.Table,
			DateFormat: opts.DateFormat,
			Now:        opts.Now,
		})
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return csvfile.New(path, csvfile.Options{
			Delimiter:  opts.Delimiter,
			DateFormat: opts.DateFormat,
			Now:        opts.Now,
		}), nil
	}
}
