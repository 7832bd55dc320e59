package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Date
		wantErr  bool
	}{
		{
			name:     "zero padded",
			input:    "02-06-2000",
			expected: Date{Year: 2000, Month: time.June, Day: 2},
		},
		{
			name:     "without padding",
			input:    "2-6-2000",
			expected: Date{Year: 2000, Month: time.June, Day: 2},
		},
		{
			name:     "leap day",
			input:    "29-02-2000",
			expected: Date{Year: 2000, Month: time.February, Day: 29},
		},
		{name: "day out of range", input: "31-02-2000", wantErr: true},
		{name: "wrong separator", input: "02/06/2000", wantErr: true},
		{name: "iso order", input: "2000-06-02", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, "2-1-2006")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	today := NewDate(2024, time.May, 28)

	assert.Equal(t, 5, today.DaysUntil(NewDate(2024, time.June, 2)))
	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, -1, today.DaysUntil(NewDate(2024, time.May, 27)))
	assert.Equal(t, 3, NewDate(2024, time.December, 30).DaysUntil(NewDate(2025, time.January, 2)))
}

func TestDate_DaysUntilAcrossDST(t *testing.T) {
	// dates are compared in UTC so a local DST change does not shorten a day
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("timezone database not available")
	}
	before := DateOf(time.Date(2024, time.March, 30, 23, 30, 0, 0, loc))
	after := DateOf(time.Date(2024, time.April, 1, 0, 30, 0, 0, loc))
	assert.Equal(t, 2, before.DaysUntil(after))
}

func TestDate_AddDays(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.June, 4), NewDate(2024, time.May, 28).AddDays(7))
	assert.Equal(t, NewDate(2025, time.January, 1), NewDate(2024, time.December, 31).AddDays(1))
	assert.Equal(t, NewDate(2024, time.February, 29), NewDate(2024, time.March, 1).AddDays(-1))
}

func TestDate_InYear(t *testing.T) {
	leapDay := Date{Year: 2000, Month: time.February, Day: 29}

	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, leapDay.InYear(2024))
	assert.Equal(t, Date{Year: 2023, Month: time.February, Day: 28}, leapDay.InYear(2023))
	assert.Equal(t, Date{Year: 2023, Month: time.June, Day: 2}, Date{Year: 1990, Month: time.June, Day: 2}.InYear(2023))
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.June, 2)
	b := NewDate(2024, time.June, 3)
	c := NewDate(2025, time.January, 1)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, c.After(a))
	assert.False(t, a.Before(a))
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2024-06-02", NewDate(2024, time.June, 2).String())
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2023))
}
