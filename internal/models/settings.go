package models

// Settings represents application-wide settings. Custom deed and workout
// definitions are owned here; deleting a custom deed must cascade-clear its
// score from the currently open day (not historical days).
type Settings struct {
	CustomDeeds    []DeedDefinition    `json:"custom_deeds"`
	CustomWorkouts []WorkoutDefinition `json:"custom_workouts"`
}
