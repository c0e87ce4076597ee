package engine

import (
	"fmt"
	"time"

	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/storage"
)

// ReconcileQada applies the ledger delta for one prayer slot, comparing the
// persisted previous score against the new one. Only transitions across the
// missed-prayer sentinel mutate the ledger; numeric score changes never do.
// Decrements floor at zero.
func ReconcileQada(ledger models.QadaCounts, ledgerKeys []string, previous, next int) models.QadaCounts {
	wasMissed := previous == constants.MissedPrayer
	isMissed := next == constants.MissedPrayer

	switch {
	case isMissed && !wasMissed:
		for _, key := range ledgerKeys {
			ledger.Set(key, ledger.Get(key)+1)
		}
	case !isMissed && wasMissed:
		for _, key := range ledgerKeys {
			ledger.Set(key, ledger.Get(key)-1)
		}
	}
	return ledger
}

// PayQada records one made-up obligation: the ledger key is decremented and
// the repayment is logged into today's performed_qada map, creating the
// record if absent. With no outstanding debt the call is a no-op and paid is
// false. This write path is independent from the sentinel-driven
// reconciliation; it never touches Scores.
func (e *Engine) PayQada(key, date string) (models.QadaCounts, bool, error) {
	if !models.IsValidQadaKey(key) {
		return models.QadaCounts{}, false, fmt.Errorf("unknown obligation key %q", key)
	}

	ledger, err := e.store.GetQada()
	if err != nil {
		return models.QadaCounts{}, false, fmt.Errorf("failed to read ledger: %w", err)
	}
	if ledger.Get(key) == 0 {
		return ledger, false, nil
	}

	ledger.Set(key, ledger.Get(key)-1)
	if err := e.store.SaveQada(ledger); err != nil {
		return models.QadaCounts{}, false, fmt.Errorf("failed to save ledger: %w", err)
	}

	rec, err := e.store.GetRecord(date)
	if err == storage.ErrNotFound {
		rec = models.NewDailyRecord(date)
	} else if err != nil {
		return models.QadaCounts{}, false, fmt.Errorf("failed to read record for %s: %w", date, err)
	}
	if rec.PerformedQada == nil {
		rec.PerformedQada = map[string]int{}
	}
	rec.PerformedQada[key]++
	rec.UpdatedAt = time.Now().UnixMilli()

	if err := e.store.SaveRecord(rec); err != nil {
		return models.QadaCounts{}, false, fmt.Errorf("failed to save record for %s: %w", date, err)
	}
	return ledger, true, nil
}

// AddQadaDebt manually increments one ledger key, the alternate writer used
// by the ledger screen for debts predating the app.
func (e *Engine) AddQadaDebt(key string) (models.QadaCounts, error) {
	if !models.IsValidQadaKey(key) {
		return models.QadaCounts{}, fmt.Errorf("unknown obligation key %q", key)
	}

	ledger, err := e.store.GetQada()
	if err != nil {
		return models.QadaCounts{}, fmt.Errorf("failed to read ledger: %w", err)
	}
	ledger.Set(key, ledger.Get(key)+1)
	if err := e.store.SaveQada(ledger); err != nil {
		return models.QadaCounts{}, fmt.Errorf("failed to save ledger: %w", err)
	}
	return ledger, nil
}
