package engine

import (
	"fmt"

	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/utils"
)

// AdvanceLevel runs the progression state machine for the most recently
// fully-elapsed week: the 7-day window ending right before today's week.
// The level advances by one only when that window is a unanimous success
// and has not been processed before (tracked by LastCheckDate, the window's
// start date). There is no regression; a failed week only prevents
// advancement. Level 100 is terminal.
func (e *Engine) AdvanceLevel(today string) (models.UserLevel, bool, error) {
	thisWeekStart, err := utils.StartOfWeek(today)
	if err != nil {
		return models.UserLevel{}, false, err
	}
	windowStart, err := utils.AddDays(thisWeekStart, -constants.GateDaysPerWeek)
	if err != nil {
		return models.UserLevel{}, false, err
	}

	level, err := e.store.GetLevel()
	if err != nil {
		return models.UserLevel{}, false, fmt.Errorf("failed to read level: %w", err)
	}
	if level.CurrentLevel < constants.MinLevel {
		level.CurrentLevel = constants.MinLevel
	}

	if level.CurrentLevel >= constants.MaxLevel {
		return level, false, nil
	}
	// Date strings compare lexicographically; an equal or later check date
	// means this window was already processed.
	if level.LastCheckDate != "" && level.LastCheckDate >= windowStart {
		return level, false, nil
	}

	days, err := e.EvaluateWeek(windowStart, today)
	if err != nil {
		return models.UserLevel{}, false, err
	}
	if !WeekPassed(days) {
		return level, false, nil
	}

	level.CurrentLevel++
	level.LastCheckDate = windowStart
	if err := e.store.SaveLevel(level); err != nil {
		return models.UserLevel{}, false, fmt.Errorf("failed to save level: %w", err)
	}
	return level, true, nil
}
