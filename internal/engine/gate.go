package engine

import (
	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/storage"
	"github.com/julianstephens/muhasabah/internal/utils"
)

// DayStatus is one day's verdict in the weekly gate.
type DayStatus struct {
	Date   string
	Status constants.GateStatus
}

// EvaluateDay applies the four progression criteria to a stored record:
// the day total reaches the threshold, no missed-prayer sentinel was
// logged, both high-weight scalars reach their floor, and every binary deed
// in the catalog scores a full 100.
//
// The binary-completeness check uses the catalog at evaluation time, custom
// deeds included, so historical days are re-judged against the current
// catalog.
func EvaluateDay(rec models.DailyRecord, deeds []models.DeedDefinition) constants.GateStatus {
	if rec.TotalAverage < constants.GateMinTotal {
		return constants.GateFail
	}
	if rec.HasMissedPrayer() {
		return constants.GateFail
	}
	if rec.Scores[catalog.DeedGazeControl] < constants.GateMinHighWeight ||
		rec.Scores[catalog.DeedTruthfulness] < constants.GateMinHighWeight {
		return constants.GateFail
	}
	for _, deed := range deeds {
		if deed.Type != constants.DeedBinary {
			continue
		}
		if rec.Scores[deed.ID] != constants.GateBinaryRequired {
			return constants.GateFail
		}
	}
	return constants.GateSuccess
}

// EvaluateWeek inspects the 7 consecutive days starting at startOfWeek and
// returns a verdict per day relative to today. Days without a record are
// pending until they pass, then fail. A store read error counts as fail
// rather than propagating; a data gap must never stall progression gating.
func (e *Engine) EvaluateWeek(startOfWeek, today string) ([]DayStatus, error) {
	dates, err := utils.WeekDates(startOfWeek)
	if err != nil {
		return nil, err
	}

	deeds := e.Catalog()

	out := make([]DayStatus, 0, len(dates))
	for _, date := range dates {
		rec, err := e.store.GetRecord(date)
		switch {
		case err == storage.ErrNotFound:
			if date < today {
				out = append(out, DayStatus{Date: date, Status: constants.GateFail})
			} else {
				out = append(out, DayStatus{Date: date, Status: constants.GatePending})
			}
		case err != nil:
			out = append(out, DayStatus{Date: date, Status: constants.GateFail})
		default:
			out = append(out, DayStatus{Date: date, Status: EvaluateDay(rec, deeds)})
		}
	}
	return out, nil
}

// WeekPassed reports the week's net verdict: every one of the seven days
// must be a success. A single fail or pending day stalls the week.
func WeekPassed(days []DayStatus) bool {
	if len(days) != constants.GateDaysPerWeek {
		return false
	}
	for _, d := range days {
		if d.Status != constants.GateSuccess {
			return false
		}
	}
	return true
}
