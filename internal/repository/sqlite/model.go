package sqlite

import "database/sql"

// BirthdayRow is one row of the birthdays table as stored.
// Every column may be NULL; conversion to a domain record happens later.
type BirthdayRow struct {
	RowID     int64
	Name      sql.NullString
	Surname   sql.NullString
	Birthdate sql.NullString
}
