package catalog

import "github.com/julianstephens/muhasabah/internal/models"

// Workouts is the static workout catalog. User-defined workouts are appended
// from Settings, see AllWorkouts.
var Workouts = []models.WorkoutDefinition{
	{ID: "pushups", Title: "Push-ups", Unit: "reps"},
	{ID: "situps", Title: "Sit-ups", Unit: "reps"},
	{ID: "squats", Title: "Squats", Unit: "reps"},
	{ID: "plank", Title: "Plank", Unit: "seconds"},
	{ID: "running", Title: "Running", Unit: "minutes"},
}

// AllWorkouts returns the static catalog plus any user-defined workouts.
func AllWorkouts(custom []models.WorkoutDefinition) []models.WorkoutDefinition {
	out := make([]models.WorkoutDefinition, 0, len(Workouts)+len(custom))
	out = append(out, Workouts...)
	out = append(out, custom...)
	return out
}

// FindWorkout returns the definition for id from the combined catalog.
func FindWorkout(custom []models.WorkoutDefinition, id string) (models.WorkoutDefinition, bool) {
	for _, w := range AllWorkouts(custom) {
		if w.ID == id {
			return w, true
		}
	}
	return models.WorkoutDefinition{}, false
}
