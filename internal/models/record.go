package models

import "github.com/julianstephens/muhasabah/internal/constants"

// DailyRecord is one day's self-assessment, keyed by date (YYYY-MM-DD).
//
// TotalAverage stores the aggregate computed at save time. It is never
// recomputed implicitly, so history stays stable if weighting rules change.
type DailyRecord struct {
	Date          string         `json:"date"`
	Scores        map[string]int `json:"scores"`
	Sins          []string       `json:"sins,omitempty"`
	Report        string         `json:"report"`
	TotalAverage  int            `json:"total_average"`
	PerformedQada map[string]int `json:"performed_qada,omitempty"`
	Workouts      map[string]int `json:"workouts,omitempty"`
	UpdatedAt     int64          `json:"updated_at"`
}

// NewDailyRecord returns an empty record for the given date.
func NewDailyRecord(date string) DailyRecord {
	return DailyRecord{
		Date:          date,
		Scores:        map[string]int{},
		Sins:          []string{},
		PerformedQada: map[string]int{},
		Workouts:      map[string]int{},
	}
}

// HasMissedPrayer reports whether any score carries the missed-prayer sentinel.
func (r DailyRecord) HasMissedPrayer() bool {
	for _, s := range r.Scores {
		if s == constants.MissedPrayer {
			return true
		}
	}
	return false
}
