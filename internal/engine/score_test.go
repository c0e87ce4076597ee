package engine

import (
	"errors"
	"testing"

	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/models"
)

func deedsByID(t *testing.T, ids ...string) []models.DeedDefinition {
	t.Helper()
	out := make([]models.DeedDefinition, 0, len(ids))
	for _, id := range ids {
		d, ok := catalog.Find(nil, id)
		if !ok {
			t.Fatalf("unknown deed id %q", id)
		}
		out = append(out, d)
	}
	return out
}

func TestComputeScoreWeightedAverage(t *testing.T) {
	// Two binary deeds at 100 (weight 1 each), sleep at 80 (weight 1), gaze
	// control at 90 (weight 3), fajr at 10 (weight 2): 570 over a weight of
	// 8 is 71.25, rounded to 71.
	deeds := deedsByID(t, "ziyarat_ashura", "surah_yasin", "sleep_time",
		catalog.DeedGazeControl, catalog.DeedPrayerFajr)
	scores := map[string]int{
		"ziyarat_ashura":        100,
		"surah_yasin":           100,
		"sleep_time":            80,
		catalog.DeedGazeControl: 90,
		catalog.DeedPrayerFajr:  10,
	}

	got, err := ComputeScore(deeds, scores, 0)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if got != 71 {
		t.Errorf("expected 71, got %d", got)
	}
}

func TestComputeScoreSentinelExcludedFromBothSums(t *testing.T) {
	// Same day as above but fajr carries the missed sentinel: the prayer
	// drops out of numerator and denominator, 550 over 6 rounds to 92. If the
	// sentinel leaked into the sum the result would collapse far below zero.
	deeds := deedsByID(t, "ziyarat_ashura", "surah_yasin", "sleep_time",
		catalog.DeedGazeControl, catalog.DeedPrayerFajr)
	scores := map[string]int{
		"ziyarat_ashura":        100,
		"surah_yasin":           100,
		"sleep_time":            80,
		catalog.DeedGazeControl: 90,
		catalog.DeedPrayerFajr:  constants.MissedPrayer,
	}

	got, err := ComputeScore(deeds, scores, 0)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if got != 92 {
		t.Errorf("expected 92, got %d", got)
	}
}

func TestComputeScoreGoldenBonusOutsideAverage(t *testing.T) {
	deeds := deedsByID(t, catalog.DeedGoldenNightPrayer, "golden_salawat")
	scores := map[string]int{
		catalog.DeedGoldenNightPrayer: 100,
		"golden_salawat":              100,
	}

	got, err := ComputeScore(deeds, scores, 0)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if got != 30 {
		t.Errorf("expected flat bonus of 30 with no averaged deeds, got %d", got)
	}
}

func TestComputeScorePerfectDay(t *testing.T) {
	scores := map[string]int{}
	for _, d := range catalog.Deeds {
		if d.Type == constants.DeedGolden {
			continue
		}
		scores[d.ID] = 100
	}

	got, err := ComputeScore(catalog.Deeds, scores, 0)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if got != 100 {
		t.Errorf("expected 100 for a perfect non-golden day, got %d", got)
	}
}

func TestComputeScoreSinPenaltyLinear(t *testing.T) {
	deeds := deedsByID(t, "ziyarat_ashura")
	scores := map[string]int{"ziyarat_ashura": 100}

	clean, err := ComputeScore(deeds, scores, 0)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	penalized, err := ComputeScore(deeds, scores, 3)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if clean-penalized != 3*constants.SinPenalty {
		t.Errorf("expected %d penalty for 3 sins, got %d", 3*constants.SinPenalty, clean-penalized)
	}
	// The total is unclamped and may go negative.
	if penalized != 70 {
		t.Errorf("expected 70, got %d", penalized)
	}
	deep, err := ComputeScore(deeds, map[string]int{}, 5)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if deep != -50 {
		t.Errorf("expected -50 for an empty day with 5 sins, got %d", deep)
	}
}

func TestComputeScoreEmptyDay(t *testing.T) {
	got, err := ComputeScore(nil, nil, 0)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 for an empty day, got %d", got)
	}
}

func TestComputeScoreIgnoresScoresForDeletedDeeds(t *testing.T) {
	deeds := deedsByID(t, "ziyarat_ashura")
	scores := map[string]int{
		"ziyarat_ashura": 100,
		"custom_gone":    100, // deed deleted since the record was written
	}

	got, err := ComputeScore(deeds, scores, 0)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if got != 100 {
		t.Errorf("expected deleted-deed score to be ignored, got %d", got)
	}
}

func TestValidateScoreDomains(t *testing.T) {
	tests := []struct {
		name   string
		deedID string
		score  int
		ok     bool
	}{
		{"binary 0", "ziyarat_ashura", 0, true},
		{"binary 100", "ziyarat_ashura", 100, true},
		{"binary 50", "ziyarat_ashura", 50, false},
		{"scalar step of 5", "sleep_time", 85, true},
		{"scalar off-step", "sleep_time", 47, false},
		{"scalar negative", "sleep_time", -5, false},
		{"scalar above max", "sleep_time", 105, false},
		{"prayer sentinel", catalog.DeedPrayerFajr, constants.MissedPrayer, true},
		{"prayer ordinary", catalog.DeedPrayerFajr, 95, true},
		{"prayer other negative", catalog.DeedPrayerFajr, -5, false},
		{"golden 100", catalog.DeedGoldenNightPrayer, 100, true},
		{"golden partial", catalog.DeedGoldenNightPrayer, 60, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			deed, ok := catalog.Find(nil, tc.deedID)
			if !ok {
				t.Fatalf("unknown deed id %q", tc.deedID)
			}
			err := ValidateScore(deed, tc.score)
			if tc.ok && err != nil {
				t.Errorf("expected %d valid for %s, got %v", tc.score, tc.deedID, err)
			}
			if !tc.ok {
				var domainErr *ScoreDomainError
				if !errors.As(err, &domainErr) {
					t.Errorf("expected ScoreDomainError for %s=%d, got %v", tc.deedID, tc.score, err)
				} else if domainErr.DeedID != tc.deedID {
					t.Errorf("error names deed %q, want %q", domainErr.DeedID, tc.deedID)
				}
			}
		})
	}
}
