package storage

import (
	"errors"

	"github.com/julianstephens/muhasabah/internal/models"
)

// ErrNotFound is returned when the requested document does not exist.
// Callers treat it as a data gap, never as a fatal condition.
var ErrNotFound = errors.New("not found")

// Provider is the persistence collaborator of the engine. Reads and writes
// are synchronous; any remote mirroring behind a Provider must be best
// effort and must never block the caller.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Daily records, keyed by date (YYYY-MM-DD)
	GetRecord(date string) (models.DailyRecord, error)
	SaveRecord(models.DailyRecord) error
	// GetRecords returns the records with startDate <= date <= endDate,
	// ordered by date. Dates without a record are simply absent.
	GetRecords(startDate, endDate string) ([]models.DailyRecord, error)
	GetAllRecords() ([]models.DailyRecord, error)
	DeleteRecord(date string) error

	// Qada ledger (singleton)
	GetQada() (models.QadaCounts, error)
	SaveQada(models.QadaCounts) error

	// User level (singleton)
	GetLevel() (models.UserLevel, error)
	SaveLevel(models.UserLevel) error

	// Workout personal records (singleton map workoutId -> best value)
	GetWorkoutPRs() (map[string]int, error)
	SaveWorkoutPRs(map[string]int) error

	// Challenges
	GetChallenges() ([]models.Challenge, error)
	SaveChallenges([]models.Challenge) error

	// Utils
	GetConfigPath() string
}

// DefaultLevel is the level document used when none has been stored yet.
func DefaultLevel() models.UserLevel {
	return models.UserLevel{CurrentLevel: 1}
}
