package engine

import (
	"fmt"
	"time"

	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/storage"
)

// LogWorkout stores a workout value on the given date's record and updates
// the personal-record map when the value beats the stored best. Returns
// whether a new PR was set.
func (e *Engine) LogWorkout(date, workoutID string, value int) (bool, error) {
	if value <= 0 {
		return false, fmt.Errorf("workout value must be positive, got %d", value)
	}

	settings, err := e.store.GetSettings()
	if err != nil {
		return false, fmt.Errorf("failed to read settings: %w", err)
	}
	if _, ok := catalog.FindWorkout(settings.CustomWorkouts, workoutID); !ok {
		return false, fmt.Errorf("unknown workout %q", workoutID)
	}

	rec, err := e.store.GetRecord(date)
	if err == storage.ErrNotFound {
		rec = models.NewDailyRecord(date)
	} else if err != nil {
		return false, fmt.Errorf("failed to read record for %s: %w", date, err)
	}
	if rec.Workouts == nil {
		rec.Workouts = map[string]int{}
	}
	rec.Workouts[workoutID] += value
	rec.UpdatedAt = time.Now().UnixMilli()
	if err := e.store.SaveRecord(rec); err != nil {
		return false, fmt.Errorf("failed to save record for %s: %w", date, err)
	}

	prs, err := e.store.GetWorkoutPRs()
	if err != nil {
		return false, fmt.Errorf("failed to read workout PRs: %w", err)
	}
	if value <= prs[workoutID] {
		return false, nil
	}
	prs[workoutID] = value
	if err := e.store.SaveWorkoutPRs(prs); err != nil {
		return false, fmt.Errorf("failed to save workout PRs: %w", err)
	}
	return true, nil
}
