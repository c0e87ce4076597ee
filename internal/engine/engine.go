package engine

import (
	"fmt"
	"time"

	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/logger"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/storage"
)

// Engine is the scoring, ledger-reconciliation, and progression core. It
// owns no state of its own; everything flows through the store so the
// invariants stay centralized here.
type Engine struct {
	store storage.Provider
}

func New(store storage.Provider) *Engine {
	return &Engine{store: store}
}

// Catalog returns the static deed catalog plus the currently active custom
// deeds. A settings read failure degrades to the static catalog only.
func (e *Engine) Catalog() []models.DeedDefinition {
	settings, err := e.store.GetSettings()
	if err != nil {
		logger.Warn("Failed to load settings, using static catalog", "error", err)
		return catalog.All(nil)
	}
	return catalog.All(settings.CustomDeeds)
}

// SaveDay runs the full save workflow for one date: validate and aggregate
// the entries, reconcile the qada ledger against the freshly-read previous
// record, then persist the record. The ledger write happens before the
// record write, so a reader observing the new record never sees a ledger
// that misses its sentinel transitions.
//
// The "report must be non-empty" precondition belongs to the caller, as does
// the today-only editing policy.
func (e *Engine) SaveDay(date string, scores map[string]int, sins []string, report string) (models.DailyRecord, error) {
	deeds := e.Catalog()

	total, err := ComputeScore(deeds, scores, len(sins))
	if err != nil {
		return models.DailyRecord{}, err
	}

	// Diff against the persisted previous record, fetched now. Comparing
	// against anything cached would double-count on repeated saves.
	prev, err := e.store.GetRecord(date)
	if err == storage.ErrNotFound {
		prev = models.NewDailyRecord(date)
	} else if err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to read previous record for %s: %w", date, err)
	}

	ledger, err := e.store.GetQada()
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to read ledger: %w", err)
	}

	updated := ledger
	for _, prayerID := range catalog.PrayerDeedIDs() {
		updated = ReconcileQada(updated, catalog.LedgerKeysFor(prayerID),
			prev.Scores[prayerID], scores[prayerID])
	}
	if updated != ledger {
		if err := e.store.SaveQada(updated); err != nil {
			return models.DailyRecord{}, fmt.Errorf("failed to save ledger: %w", err)
		}
	}

	rec := models.DailyRecord{
		Date:          date,
		Scores:        scores,
		Sins:          sins,
		Report:        report,
		TotalAverage:  total,
		PerformedQada: prev.PerformedQada,
		Workouts:      prev.Workouts,
		UpdatedAt:     time.Now().UnixMilli(),
	}
	if err := e.store.SaveRecord(rec); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to save record for %s: %w", date, err)
	}
	return rec, nil
}

// AddCustomDeed appends a user-defined deed to settings.
func (e *Engine) AddCustomDeed(deed models.DeedDefinition) error {
	settings, err := e.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	for _, d := range catalog.All(settings.CustomDeeds) {
		if d.ID == deed.ID {
			return fmt.Errorf("deed %q already exists", deed.ID)
		}
	}
	settings.CustomDeeds = append(settings.CustomDeeds, deed)
	return e.store.SaveSettings(settings)
}

// RemoveCustomDeed deletes a user-defined deed and cascade-clears its score
// from the given (current) day's record. Historical days keep their stored
// scores; ComputeScore ignores ids no longer in the catalog.
func (e *Engine) RemoveCustomDeed(id, date string) error {
	settings, err := e.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	found := false
	kept := settings.CustomDeeds[:0]
	for _, d := range settings.CustomDeeds {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return fmt.Errorf("custom deed %q not found", id)
	}
	settings.CustomDeeds = kept
	if err := e.store.SaveSettings(settings); err != nil {
		return err
	}

	rec, err := e.store.GetRecord(date)
	if err == storage.ErrNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read record for %s: %w", date, err)
	}
	if _, ok := rec.Scores[id]; !ok {
		return nil
	}
	delete(rec.Scores, id)
	rec.UpdatedAt = time.Now().UnixMilli()
	return e.store.SaveRecord(rec)
}
