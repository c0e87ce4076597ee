package models

// UserLevel is the singleton progression counter. CurrentLevel is monotonic
// non-decreasing in [1, 100]; LastCheckDate records the week-start date of
// the last window that was processed for advancement, so re-evaluating the
// same week never advances twice.
type UserLevel struct {
	CurrentLevel  int    `json:"current_level"`
	LastCheckDate string `json:"last_check_date"`
}
