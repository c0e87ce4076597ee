package models

import "github.com/julianstephens/muhasabah/internal/constants"

// DeedDefinition describes a trackable daily action. Definitions are
// immutable once created; custom ones are owned by Settings.
type DeedDefinition struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Type     constants.DeedType `json:"type"`
	IsCustom bool               `json:"is_custom,omitempty"`
}

// SinDefinition describes a recordable infraction. Each occurrence in a
// day's sin list counts once toward the penalty.
type SinDefinition struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
