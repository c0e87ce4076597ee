package cli

import (
	"testing"

	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/utils"
)

func TestParseScoreArgs(t *testing.T) {
	scores, err := ParseScoreArgs([]string{
		"ziyarat_ashura=100",
		"sleep_time = 85",
		"prayer_fajr=missed",
	})
	if err != nil {
		t.Fatalf("ParseScoreArgs failed: %v", err)
	}
	if scores["ziyarat_ashura"] != 100 {
		t.Errorf("expected 100, got %d", scores["ziyarat_ashura"])
	}
	if scores["sleep_time"] != 85 {
		t.Errorf("expected whitespace-trimmed 85, got %d", scores["sleep_time"])
	}
	if scores["prayer_fajr"] != constants.MissedPrayer {
		t.Errorf("expected missed sentinel, got %d", scores["prayer_fajr"])
	}
}

func TestParseScoreArgsRejectsMalformed(t *testing.T) {
	for _, arg := range []string{"no-equals", "deed=ten", "deed="} {
		if _, err := ParseScoreArgs([]string{arg}); err == nil {
			t.Errorf("expected error for %q", arg)
		}
	}
}

func TestResolveDate(t *testing.T) {
	got, err := ResolveDate("")
	if err != nil || got != utils.Today() {
		t.Errorf("empty date must resolve to today, got %q (%v)", got, err)
	}
	if _, err := ResolveDate("2026-08-29"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if _, err := ResolveDate("29.08.2026"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestEnsureEditable(t *testing.T) {
	if err := EnsureEditable(utils.Today(), false); err != nil {
		t.Errorf("today must be editable: %v", err)
	}
	if err := EnsureEditable("2020-01-01", false); err == nil {
		t.Error("past dates must require --force")
	}
	if err := EnsureEditable("2020-01-01", true); err != nil {
		t.Errorf("--force must allow past dates: %v", err)
	}
}

func TestDeedsByType(t *testing.T) {
	binaries := DeedsByType(catalog.Deeds, constants.DeedBinary)
	if len(binaries) == 0 {
		t.Fatal("expected binary deeds in the static catalog")
	}
	for _, d := range binaries {
		if d.Type != constants.DeedBinary {
			t.Errorf("deed %s has type %s", d.ID, d.Type)
		}
	}
}
