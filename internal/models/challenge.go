package models

import "github.com/julianstephens/muhasabah/internal/constants"

// Challenge is a fixed-length daily commitment tracked separately from the
// deed score. Completed dates are checked off one per day.
type Challenge struct {
	ID             string                    `json:"id"`
	Title          string                    `json:"title"`
	TotalDays      int                       `json:"total_days"`
	StartDate      string                    `json:"start_date"`
	CompletedDates []string                  `json:"completed_dates"`
	Status         constants.ChallengeStatus `json:"status"`
}

// IsCompleted reports whether the given date has already been checked off.
func (c Challenge) IsCompleted(date string) bool {
	for _, d := range c.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}
