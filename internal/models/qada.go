package models

// QadaCounts is the singleton debt ledger: one non-negative counter of
// missed occurrences per obligation category.
type QadaCounts struct {
	Fajr    int `json:"fajr"`
	Dhuhr   int `json:"dhuhr"`
	Asr     int `json:"asr"`
	Maghrib int `json:"maghrib"`
	Isha    int `json:"isha"`
	Ayat    int `json:"ayat"`
	Fasting int `json:"fasting"`
}

// Ledger key names. These are also the keys of DailyRecord.PerformedQada.
const (
	QadaFajr    = "fajr"
	QadaDhuhr   = "dhuhr"
	QadaAsr     = "asr"
	QadaMaghrib = "maghrib"
	QadaIsha    = "isha"
	QadaAyat    = "ayat"
	QadaFasting = "fasting"
)

// QadaKeys lists every ledger key in display order.
var QadaKeys = []string{QadaFajr, QadaDhuhr, QadaAsr, QadaMaghrib, QadaIsha, QadaAyat, QadaFasting}

// Get returns the count for a ledger key, 0 for unknown keys.
func (q QadaCounts) Get(key string) int {
	switch key {
	case QadaFajr:
		return q.Fajr
	case QadaDhuhr:
		return q.Dhuhr
	case QadaAsr:
		return q.Asr
	case QadaMaghrib:
		return q.Maghrib
	case QadaIsha:
		return q.Isha
	case QadaAyat:
		return q.Ayat
	case QadaFasting:
		return q.Fasting
	}
	return 0
}

// Set overwrites the count for a ledger key, flooring at zero. Unknown keys
// are ignored.
func (q *QadaCounts) Set(key string, val int) {
	if val < 0 {
		val = 0
	}
	switch key {
	case QadaFajr:
		q.Fajr = val
	case QadaDhuhr:
		q.Dhuhr = val
	case QadaAsr:
		q.Asr = val
	case QadaMaghrib:
		q.Maghrib = val
	case QadaIsha:
		q.Isha = val
	case QadaAyat:
		q.Ayat = val
	case QadaFasting:
		q.Fasting = val
	}
}

// IsValidQadaKey reports whether key names a tracked obligation category.
func IsValidQadaKey(key string) bool {
	for _, k := range QadaKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Total returns the sum of all outstanding debt units.
func (q QadaCounts) Total() int {
	return q.Fajr + q.Dhuhr + q.Asr + q.Maghrib + q.Isha + q.Ayat + q.Fasting
}
