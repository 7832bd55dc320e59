package services

import (
	"slices"

	"birthdays/internal/domain"
	"birthdays/internal/logging"
)

// birthdayServiceImpl implements the BirthdayService interface
type birthdayServiceImpl struct {
	window Window
}

// NewBirthdayService creates a new BirthdayService for window
func NewBirthdayService(window Window) BirthdayService {
	return &birthdayServiceImpl{window: window}
}

// FilterUpcoming keeps records whose next occurrence lies in [today, today+Days].
// Records without a birthdate are dropped.
func (s *birthdayServiceImpl) FilterUpcoming(records []domain.Record, today domain.Date) []domain.Upcoming {
	last := today.AddDays(s.window.Days)

	var result []domain.Upcoming
	for _, record := range records {
		if !record.HasBirthdate() {
			logging.Debugf("skipping %s (line %d): no birthdate\n", record.FullName(), record.Line)
			continue
		}

		occurrence := domain.NextOccurrence(record.Anniversary(), today, s.window.WrapYear)
		if occurrence.Before(today) || occurrence.After(last) {
			continue
		}
		daysAway := today.DaysUntil(occurrence)

		result = append(result, domain.Upcoming{
			Record:     record,
			Occurrence: occurrence,
			DaysAway:   daysAway,
			Tier:       domain.ClassifyTier(daysAway, s.window.UrgentWithin),
		})
	}
	return result
}

// SortUpcoming orders by occurrence, keeping input order for equal dates
func (s *birthdayServiceImpl) SortUpcoming(upcoming []domain.Upcoming) []domain.Upcoming {
	slices.SortStableFunc(upcoming, func(a, b domain.Upcoming) int {
		return a.Occurrence.Compare(b.Occurrence)
	})
	return upcoming
}

// Upcoming returns the sorted birthdays inside the window
func (s *birthdayServiceImpl) Upcoming(records []domain.Record, today domain.Date) []domain.Upcoming {
	upcoming := s.SortUpcoming(s.FilterUpcoming(records, today))
	logging.Debugf("%d of %d records within %d days of %s\n", len(upcoming), len(records), s.window.Days, today)
	return upcoming
}
