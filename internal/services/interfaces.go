package services

import (
	"birthdays/internal/domain"
)

// Window describes which birthdays count as upcoming
type Window struct {
	Days         int  `json:"days"`          // look-ahead in days; today+Days is included
	UrgentWithin int  `json:"urgent_within"` // days at or below which a birthday is urgent
	WrapYear     bool `json:"wrap_year"`     // consider next year's occurrence once this year's has passed
}

// BirthdayService filters and orders birthday records relative to a given day.
// today is always passed in so results never depend on the wall clock.
type BirthdayService interface {
	// Filter and sort operations
	FilterUpcoming(records []domain.Record, today domain.Date) []domain.Upcoming
	SortUpcoming(upcoming []domain.Upcoming) []domain.Upcoming

	// Upcoming runs FilterUpcoming followed by SortUpcoming
	Upcoming(records []domain.Record, today domain.Date) []domain.Upcoming
}
