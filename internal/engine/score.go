package engine

import (
	"fmt"
	"math"

	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/models"
)

// ScoreDomainError reports a deed score outside its type's legal domain.
type ScoreDomainError struct {
	DeedID string
	Score  int
}

func (e *ScoreDomainError) Error() string {
	return fmt.Sprintf("score %d is out of range for deed %q", e.Score, e.DeedID)
}

// ValidateScore checks that score is legal for the deed's type: binary and
// golden deeds take 0 or 100, scalar deeds take multiples of 5 in [0, 100],
// prayer deeds additionally accept the missed-prayer sentinel.
func ValidateScore(deed models.DeedDefinition, score int) error {
	switch deed.Type {
	case constants.DeedBinary, constants.DeedGolden:
		if score == 0 || score == constants.MaxScore {
			return nil
		}
	case constants.DeedScalar:
		if score >= 0 && score <= constants.MaxScore && score%constants.ScoreStep == 0 {
			return nil
		}
	case constants.DeedPrayer:
		if score == constants.MissedPrayer {
			return nil
		}
		if score >= 0 && score <= constants.MaxScore && score%constants.ScoreStep == 0 {
			return nil
		}
	default:
		return fmt.Errorf("deed %q has unknown type %q", deed.ID, deed.Type)
	}
	return &ScoreDomainError{DeedID: deed.ID, Score: score}
}

// ComputeScore turns one day's raw entries into the signed day total.
//
// Non-golden deeds form a weighted average: weight 1 for binary and scalar
// deeds, 3 for the two designated high-weight scalars, 2 for prayers. A
// prayer carrying the missed sentinel is excluded from both sums, as if the
// deed were absent that day. Golden deeds sit outside the average and add a
// flat bonus when scored 100. Each sin costs a flat penalty. The result is
// rounded half away from zero and is deliberately unclamped: it can go
// negative or above 100.
//
// Deeds absent from scores count as 0. Scores whose id is not in deeds are
// ignored; they belong to deeds deleted since the record was written.
func ComputeScore(deeds []models.DeedDefinition, scores map[string]int, sinCount int) (int, error) {
	var weightedSum, totalWeight float64
	var bonus int

	for _, deed := range deeds {
		score := scores[deed.ID]
		if err := ValidateScore(deed, score); err != nil {
			return 0, err
		}

		if deed.Type == constants.DeedGolden {
			if score == constants.MaxScore {
				if catalog.IsDoubleGolden(deed.ID) {
					bonus += constants.GoldenDoubleBonus
				} else {
					bonus += constants.GoldenBonus
				}
			}
			continue
		}

		if deed.Type == constants.DeedPrayer && score == constants.MissedPrayer {
			// Missed prayers are owed to the ledger, not averaged.
			continue
		}

		weight := 1.0
		switch {
		case deed.Type == constants.DeedPrayer:
			weight = 2.0
		case catalog.IsHighWeight(deed.ID):
			weight = 3.0
		}

		weightedSum += float64(score) * weight
		totalWeight += weight
	}

	base := 0.0
	if totalWeight > 0 {
		base = weightedSum / totalWeight
	}

	penalty := float64(sinCount * constants.SinPenalty)

	return int(math.Round(base + float64(bonus) - penalty)), nil
}
