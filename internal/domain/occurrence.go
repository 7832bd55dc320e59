package domain

// Tier classifies how close an upcoming birthday is.
type Tier int

const (
	// TierUpcoming is a birthday inside the window but not imminent.
	TierUpcoming Tier = iota
	// TierUrgent is a birthday at most the urgent threshold away.
	TierUrgent
)

// DefaultUrgentWithin is the number of days at or below which a birthday is urgent.
const DefaultUrgentWithin = 2

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierUrgent:
		return "urgent"
	case TierUpcoming:
		return "upcoming"
	default:
		return "unknown"
	}
}

// ClassifyTier returns TierUrgent when daysAway <= urgentWithin.
func ClassifyTier(daysAway, urgentWithin int) Tier {
	if daysAway <= urgentWithin {
		return TierUrgent
	}
	return TierUpcoming
}

// NextOccurrence returns the occurrence of birthday that is compared against today.
// Without wrap it is always the occurrence in today's year, which may already
// be in the past. With wrap set it is the first occurrence on or after today,
// looking at today's year and then the next one. Pass the date as read, not a
// normalized one, so February 29 lands on the 29th in leap years.
func NextOccurrence(birthday, today Date, wrap bool) Date {
	occ := birthday.InYear(today.Year)
	if wrap && occ.Before(today) {
		occ = birthday.InYear(today.Year + 1)
	}
	return occ
}

// Upcoming is a record inside the look-ahead window together with the
// occurrence it matched.
type Upcoming struct {
	Record     Record
	Occurrence Date
	DaysAway   int
	Tier       Tier
}
