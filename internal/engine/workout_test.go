package engine

import (
	"testing"

	"github.com/julianstephens/muhasabah/internal/models"
)

func TestLogWorkoutAccumulatesAndTracksPR(t *testing.T) {
	store := newMockStore()
	eng := New(store)

	newPR, err := eng.LogWorkout("2026-08-29", "pushups", 30)
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if !newPR {
		t.Error("expected first logged value to be a PR")
	}

	// A second set on the same day accumulates on the record but does not
	// beat the best single value.
	newPR, err = eng.LogWorkout("2026-08-29", "pushups", 20)
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if newPR {
		t.Error("20 must not beat a PR of 30")
	}

	rec, err := store.GetRecord("2026-08-29")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec.Workouts["pushups"] != 50 {
		t.Errorf("expected 50 accumulated reps, got %d", rec.Workouts["pushups"])
	}
	if store.prs["pushups"] != 30 {
		t.Errorf("expected PR of 30, got %d", store.prs["pushups"])
	}

	newPR, err = eng.LogWorkout("2026-08-30", "pushups", 35)
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if !newPR || store.prs["pushups"] != 35 {
		t.Errorf("expected new PR of 35, got %d (newPR=%v)", store.prs["pushups"], newPR)
	}
}

func TestLogWorkoutCustomDefinition(t *testing.T) {
	store := newMockStore()
	store.settings.CustomWorkouts = []models.WorkoutDefinition{
		{ID: "swimming", Title: "Swimming", Unit: "laps", IsCustom: true},
	}
	eng := New(store)

	if _, err := eng.LogWorkout("2026-08-29", "swimming", 12); err != nil {
		t.Fatalf("LogWorkout failed for custom workout: %v", err)
	}
}

func TestLogWorkoutRejectsBadInput(t *testing.T) {
	store := newMockStore()
	eng := New(store)

	if _, err := eng.LogWorkout("2026-08-29", "pushups", 0); err == nil {
		t.Error("expected error for non-positive value")
	}
	if _, err := eng.LogWorkout("2026-08-29", "juggling", 10); err == nil {
		t.Error("expected error for unknown workout id")
	}
	if len(store.writeLog) != 0 {
		t.Errorf("no writes expected on rejected input, got %v", store.writeLog)
	}
}
