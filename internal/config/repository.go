package config

import (
	"fmt"
	"time"

	"birthdays/internal/repository"
)

// CreateSource creates the record source described by the configuration.
// now supplies the year birthdates are normalized to.
func CreateSource(config *Config, now func() time.Time) (repository.Source, error) {
	src, err := repository.Open(config.Source.Path, repository.Options{
		Delimiter:  config.Source.Delimiter,
		DateFormat: config.Source.DateFormat,
		Table:      config.Source.Table,
		Now:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open birthday source: %w", err)
	}

	return src, nil
}
