package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/muhasabah/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "muhasabah.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRecordRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	rec := models.DailyRecord{
		Date:          "2026-08-29",
		Scores:        map[string]int{"prayer_fajr": 100, "gaze_control": 90, "prayer_dhuhr": -100},
		Sins:          []string{"ghibat", "ghibat"},
		Report:        "a hard day",
		TotalAverage:  72,
		PerformedQada: map[string]int{"fajr": 1},
		Workouts:      map[string]int{"pushups": 30},
		UpdatedAt:     1756400000000,
	}
	if err := store.SaveRecord(rec); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	got, err := store.GetRecord("2026-08-29")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if got.TotalAverage != 72 || got.Report != "a hard day" || got.UpdatedAt != rec.UpdatedAt {
		t.Errorf("record fields mismatch: %+v", got)
	}
	if got.Scores["prayer_dhuhr"] != -100 {
		t.Errorf("expected sentinel score preserved, got %d", got.Scores["prayer_dhuhr"])
	}
	if len(got.Sins) != 2 {
		t.Errorf("expected duplicate sins preserved, got %v", got.Sins)
	}
	if got.PerformedQada["fajr"] != 1 || got.Workouts["pushups"] != 30 {
		t.Errorf("maps mismatch: %+v", got)
	}
}

func TestSQLiteGetRecordNotFound(t *testing.T) {
	store := newTestSQLiteStore(t)

	_, err := store.GetRecord("2026-01-01")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteSaveRecordOverwrites(t *testing.T) {
	store := newTestSQLiteStore(t)

	rec := models.NewDailyRecord("2026-08-29")
	rec.TotalAverage = 50
	if err := store.SaveRecord(rec); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	rec.TotalAverage = 95
	rec.Report = "revised"
	if err := store.SaveRecord(rec); err != nil {
		t.Fatalf("SaveRecord (overwrite) failed: %v", err)
	}

	got, err := store.GetRecord("2026-08-29")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if got.TotalAverage != 95 || got.Report != "revised" {
		t.Errorf("expected overwrite to win, got %+v", got)
	}
}

func TestSQLiteGetRecordsRange(t *testing.T) {
	store := newTestSQLiteStore(t)

	for _, date := range []string{"2026-08-28", "2026-08-29", "2026-09-01", "2026-09-10"} {
		rec := models.NewDailyRecord(date)
		if err := store.SaveRecord(rec); err != nil {
			t.Fatalf("SaveRecord(%s) failed: %v", date, err)
		}
	}

	got, err := store.GetRecords("2026-08-29", "2026-09-04")
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records in range, got %d", len(got))
	}
	if got[0].Date != "2026-08-29" || got[1].Date != "2026-09-01" {
		t.Errorf("unexpected order: %s, %s", got[0].Date, got[1].Date)
	}
}

func TestSQLiteQadaRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	// Unset singleton reads as all zeros, not as an error.
	q, err := store.GetQada()
	if err != nil {
		t.Fatalf("GetQada on empty store failed: %v", err)
	}
	if q.Total() != 0 {
		t.Errorf("expected empty ledger, got %+v", q)
	}

	q.Dhuhr = 3
	q.Asr = 3
	q.Fasting = 10
	if err := store.SaveQada(q); err != nil {
		t.Fatalf("SaveQada failed: %v", err)
	}

	got, err := store.GetQada()
	if err != nil {
		t.Fatalf("GetQada failed: %v", err)
	}
	if got != q {
		t.Errorf("ledger mismatch: got %+v, want %+v", got, q)
	}
}

func TestSQLiteLevelRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	level, err := store.GetLevel()
	if err != nil {
		t.Fatalf("GetLevel on empty store failed: %v", err)
	}
	if level.CurrentLevel != 1 {
		t.Errorf("expected default level 1, got %d", level.CurrentLevel)
	}

	level.CurrentLevel = 17
	level.LastCheckDate = "2026-08-22"
	if err := store.SaveLevel(level); err != nil {
		t.Fatalf("SaveLevel failed: %v", err)
	}

	got, err := store.GetLevel()
	if err != nil {
		t.Fatalf("GetLevel failed: %v", err)
	}
	if got != level {
		t.Errorf("level mismatch: got %+v, want %+v", got, level)
	}
}

func TestSQLiteSettingsRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	settings := models.Settings{
		CustomDeeds: []models.DeedDefinition{
			{ID: "custom_binary_1", Title: "Morning dhikr", Type: "binary", IsCustom: true},
		},
	}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if len(got.CustomDeeds) != 1 || got.CustomDeeds[0].ID != "custom_binary_1" {
		t.Errorf("settings mismatch: %+v", got)
	}
}

func TestSQLiteChallengesRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	challenges := []models.Challenge{
		{ID: "c1", Title: "40 days of fajr", TotalDays: 40, StartDate: "2026-08-01",
			CompletedDates: []string{"2026-08-01", "2026-08-02"}, Status: "active"},
		{ID: "c2", Title: "a week without anger", TotalDays: 7, StartDate: "2026-08-20", Status: "failed"},
	}
	if err := store.SaveChallenges(challenges); err != nil {
		t.Fatalf("SaveChallenges failed: %v", err)
	}

	got, err := store.GetChallenges()
	if err != nil {
		t.Fatalf("GetChallenges failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c2" {
		t.Fatalf("challenges mismatch: %+v", got)
	}
	if len(got[0].CompletedDates) != 2 {
		t.Errorf("expected completed dates preserved, got %v", got[0].CompletedDates)
	}
}

func TestSQLiteWorkoutPRsRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	prs := map[string]int{"pushups": 55, "plank": 180}
	if err := store.SaveWorkoutPRs(prs); err != nil {
		t.Fatalf("SaveWorkoutPRs failed: %v", err)
	}

	got, err := store.GetWorkoutPRs()
	if err != nil {
		t.Fatalf("GetWorkoutPRs failed: %v", err)
	}
	if got["pushups"] != 55 || got["plank"] != 180 {
		t.Errorf("PRs mismatch: %v", got)
	}
}
