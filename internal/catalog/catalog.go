package catalog

import (
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/models"
)

// Deed ids referenced by the scoring rules.
const (
	DeedGazeControl  = "gaze_control"
	DeedTruthfulness = "truthfulness"

	DeedPrayerFajr    = "prayer_fajr"
	DeedPrayerDhuhr   = "prayer_dhuhr"
	DeedPrayerMaghrib = "prayer_maghrib"

	DeedGoldenNightPrayer = "golden_night_prayer"
	DeedGoldenFatherHand  = "golden_father_hand"
	DeedGoldenMotherHand  = "golden_mother_hand"
)

// Deeds is the static deed catalog. User-defined deeds are appended from
// Settings, see All.
var Deeds = []models.DeedDefinition{
	// Binary deeds (0 or 100)
	{ID: "ziyarat_ashura", Title: "Ziyarat Ashura", Type: constants.DeedBinary},
	{ID: "ziyarat_ale_yasin", Title: "Ziyarat Ale Yasin", Type: constants.DeedBinary},
	{ID: "surah_fath", Title: "Surah Al-Fath", Type: constants.DeedBinary},
	{ID: "surah_dhariyat", Title: "Surah Adh-Dhariyat", Type: constants.DeedBinary},
	{ID: "surah_waqiah", Title: "Surah Al-Waqi'ah", Type: constants.DeedBinary},
	{ID: "surah_yasin", Title: "Surah Ya-Sin", Type: constants.DeedBinary},

	// Scalar deeds (0 to 100 in steps of 5)
	{ID: DeedGazeControl, Title: "Gaze control", Type: constants.DeedScalar},
	{ID: DeedTruthfulness, Title: "Truthfulness", Type: constants.DeedScalar},
	{ID: "sleep_time", Title: "Sleeping on time", Type: constants.DeedScalar},

	// Prayer deeds (scalar plus the missed-prayer sentinel)
	{ID: DeedPrayerFajr, Title: "Fajr prayer on time", Type: constants.DeedPrayer},
	{ID: DeedPrayerDhuhr, Title: "Dhuhr prayer on time", Type: constants.DeedPrayer},
	{ID: DeedPrayerMaghrib, Title: "Maghrib prayer on time", Type: constants.DeedPrayer},

	// Golden deeds (flat bonus, outside the weighted average)
	{ID: DeedGoldenNightPrayer, Title: "Night prayer", Type: constants.DeedGolden},
	{ID: DeedGoldenFatherHand, Title: "Kissing father's hand", Type: constants.DeedGolden},
	{ID: DeedGoldenMotherHand, Title: "Kissing mother's hand", Type: constants.DeedGolden},
	{ID: "golden_salawat", Title: "100 salawat", Type: constants.DeedGolden},
	{ID: "golden_parents", Title: "Making parents happy", Type: constants.DeedGolden},
	{ID: "golden_others", Title: "Making others happy", Type: constants.DeedGolden},
}

// highWeightScalars are the two designated scalar deeds carrying weight 3.
var highWeightScalars = map[string]bool{
	DeedGazeControl:  true,
	DeedTruthfulness: true,
}

// doubleGolden are the golden deeds worth +20 instead of +10.
var doubleGolden = map[string]bool{
	DeedGoldenNightPrayer: true,
	DeedGoldenFatherHand:  true,
	DeedGoldenMotherHand:  true,
}

// prayerLedgerKeys maps each tracked prayer slot to the ledger keys a miss
// increments. Dhuhr and maghrib cover paired prayer windows.
var prayerLedgerKeys = map[string][]string{
	DeedPrayerFajr:    {models.QadaFajr},
	DeedPrayerDhuhr:   {models.QadaDhuhr, models.QadaAsr},
	DeedPrayerMaghrib: {models.QadaMaghrib, models.QadaIsha},
}

// IsHighWeight reports whether the deed id is one of the weight-3 scalars.
func IsHighWeight(id string) bool {
	return highWeightScalars[id]
}

// IsDoubleGolden reports whether the golden deed id earns the +20 bonus.
func IsDoubleGolden(id string) bool {
	return doubleGolden[id]
}

// LedgerKeysFor returns the ledger keys mapped to a prayer deed id, or nil
// for non-prayer ids.
func LedgerKeysFor(deedID string) []string {
	return prayerLedgerKeys[deedID]
}

// PrayerDeedIDs returns the tracked prayer slot ids in catalog order.
func PrayerDeedIDs() []string {
	return []string{DeedPrayerFajr, DeedPrayerDhuhr, DeedPrayerMaghrib}
}

// All returns the static catalog plus any user-defined deeds currently
// active. The result is a fresh slice; callers may not mutate the statics.
func All(custom []models.DeedDefinition) []models.DeedDefinition {
	out := make([]models.DeedDefinition, 0, len(Deeds)+len(custom))
	out = append(out, Deeds...)
	out = append(out, custom...)
	return out
}

// Find returns the definition for id from the combined catalog.
func Find(custom []models.DeedDefinition, id string) (models.DeedDefinition, bool) {
	for _, d := range All(custom) {
		if d.ID == id {
			return d, true
		}
	}
	return models.DeedDefinition{}, false
}
