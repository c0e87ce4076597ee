package models

// WorkoutDefinition describes a trackable exercise and its measurement unit.
type WorkoutDefinition struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Unit     string `json:"unit"`
	IsCustom bool   `json:"is_custom,omitempty"`
}
