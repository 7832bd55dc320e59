package domain

// Record represents one person read from a birthday source.
// Birthdate is nil when the source row had no date. When set, its year
// has already been replaced with the year the source was read in.
type Record struct {
	Name      string
	Surname   string
	Birthdate *Date
	// Line is the source line (CSV) or row id (SQLite) the record came from.
	Line int

	// born is the date as read, kept so February 29 is not lost when
	// Birthdate lands in a non-leap year.
	born *Date
}

// NewRecord creates a Record from a source row. born is the date as read,
// or nil when the row had none; Birthdate becomes born moved to year.
func NewRecord(line int, name, surname string, born *Date, year int) Record {
	r := Record{Name: name, Surname: surname, Line: line}
	if born != nil {
		b := *born
		r.born = &b
		r.Birthdate = NormalizeBirthdate(b, year)
	}
	return r
}

// HasBirthdate reports whether the record carries a usable date.
func (r Record) HasBirthdate() bool {
	return r.Birthdate != nil
}

// Anniversary returns the date whose month and day recur every year.
// It must only be called when HasBirthdate is true.
func (r Record) Anniversary() Date {
	if r.born != nil {
		return *r.born
	}
	return *r.Birthdate
}

// FullName returns "name surname".
func (r Record) FullName() string {
	switch {
	case r.Surname == "":
		return r.Name
	case r.Name == "":
		return r.Surname
	default:
		return r.Name + " " + r.Surname
	}
}

// NormalizeBirthdate replaces the year of a parsed birthdate with year.
func NormalizeBirthdate(born Date, year int) *Date {
	d := born.InYear(year)
	return &d
}
