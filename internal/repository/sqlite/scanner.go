package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanBirthdayRow scans a single birthday row
func ScanBirthdayRow(scanner Scanner) (*BirthdayRow, error) {
	row := &BirthdayRow{}
	err := scanner.Scan(
		&row.RowID,
		&row.Name,
		&row.Surname,
		&row.Birthdate,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ScanBirthdayRows scans every remaining birthday row
func ScanBirthdayRows(rows Rows) ([]*BirthdayRow, error) {
	var result []*BirthdayRow
	for rows.Next() {
		row, err := ScanBirthdayRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
