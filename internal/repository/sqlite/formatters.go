package sqlite

import (
	"database/sql"
	"strings"

	"birthdays/internal/domain"
)

// ParseBirthdateFromDB parses a nullable birthdate column. NULL and blank
// values yield nil.
func ParseBirthdateFromDB(s sql.NullString, layout string) (*domain.Date, error) {
	if !s.Valid {
		return nil, nil
	}
	raw := strings.TrimSpace(s.String)
	if raw == "" {
		return nil, nil
	}
	born, err := domain.ParseDate(raw, layout)
	if err != nil {
		return nil, err
	}
	return &born, nil
}

// StringFromDB returns the trimmed column value, or "" for NULL
func StringFromDB(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return strings.TrimSpace(s.String)
}
