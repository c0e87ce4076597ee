package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/utils"
)

// StartChallenge creates a new active challenge beginning on startDate.
func (e *Engine) StartChallenge(title string, totalDays int, startDate string) (models.Challenge, error) {
	if totalDays <= 0 {
		return models.Challenge{}, fmt.Errorf("challenge length must be positive, got %d days", totalDays)
	}
	if _, err := utils.ParseDate(startDate); err != nil {
		return models.Challenge{}, err
	}

	challenges, err := e.store.GetChallenges()
	if err != nil {
		return models.Challenge{}, fmt.Errorf("failed to read challenges: %w", err)
	}

	c := models.Challenge{
		ID:        uuid.New().String(),
		Title:     title,
		TotalDays: totalDays,
		StartDate: startDate,
		Status:    constants.ChallengeActive,
	}
	challenges = append(challenges, c)
	if err := e.store.SaveChallenges(challenges); err != nil {
		return models.Challenge{}, fmt.Errorf("failed to save challenges: %w", err)
	}
	return c, nil
}

// CheckChallenge marks date as completed on an active challenge. Checking
// the final day flips the challenge to success; a date past the window with
// unchecked days flips it to failed.
func (e *Engine) CheckChallenge(id, date string) (models.Challenge, error) {
	challenges, err := e.store.GetChallenges()
	if err != nil {
		return models.Challenge{}, fmt.Errorf("failed to read challenges: %w", err)
	}

	for i, c := range challenges {
		if c.ID != id {
			continue
		}
		if c.Status != constants.ChallengeActive {
			return models.Challenge{}, fmt.Errorf("challenge %q is already %s", c.Title, c.Status)
		}

		endDate, err := utils.AddDays(c.StartDate, c.TotalDays-1)
		if err != nil {
			return models.Challenge{}, err
		}
		if date < c.StartDate {
			return models.Challenge{}, fmt.Errorf("challenge %q starts on %s", c.Title, c.StartDate)
		}
		if date > endDate {
			c.Status = constants.ChallengeFailed
			challenges[i] = c
			if err := e.store.SaveChallenges(challenges); err != nil {
				return models.Challenge{}, fmt.Errorf("failed to save challenges: %w", err)
			}
			return c, fmt.Errorf("challenge %q ended on %s", c.Title, endDate)
		}
		if c.IsCompleted(date) {
			return c, nil
		}

		c.CompletedDates = append(c.CompletedDates, date)
		if len(c.CompletedDates) >= c.TotalDays {
			c.Status = constants.ChallengeSuccess
		}
		challenges[i] = c
		if err := e.store.SaveChallenges(challenges); err != nil {
			return models.Challenge{}, fmt.Errorf("failed to save challenges: %w", err)
		}
		return c, nil
	}
	return models.Challenge{}, fmt.Errorf("challenge %q not found", id)
}
