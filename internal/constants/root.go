package constants

// DeedType represents the scoring domain of a deed
type DeedType string

// GateStatus represents a single day's verdict in the weekly gate
type GateStatus string

// ChallengeStatus represents the lifecycle state of a challenge
type ChallengeStatus string

const (
	AppName            = "muhasabah"
	DefaultKeyringUser = "mirror-connection"
	DefaultConfigPath  = "~/.config/muhasabah/muhasabah.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Deed Type constants
	DeedBinary DeedType = "binary"
	DeedScalar DeedType = "scalar"
	DeedPrayer DeedType = "prayer"
	DeedGolden DeedType = "golden"

	// MissedPrayer is the sentinel score meaning "this obligatory prayer was
	// missed and is owed". It is excluded from the weighted average and drives
	// the qada ledger instead.
	MissedPrayer = -100

	// ScoreStep is the granularity of scalar and prayer scores (0, 5, ..., 100)
	ScoreStep = 5
	MaxScore  = 100

	// SinPenalty is subtracted from the day total once per recorded sin
	SinPenalty = 10

	// Golden deed bonuses
	GoldenBonus       = 10
	GoldenDoubleBonus = 20

	// Weekly gate thresholds
	GateMinTotal       = 90
	GateMinHighWeight  = 90
	GateDaysPerWeek    = 7
	GateBinaryRequired = 100

	// Levels
	MinLevel = 1
	MaxLevel = 100

	// Gate Status constants
	GatePending GateStatus = "pending"
	GateSuccess GateStatus = "success"
	GateFail    GateStatus = "fail"

	// Challenge Status constants
	ChallengeActive  ChallengeStatus = "active"
	ChallengeSuccess ChallengeStatus = "success"
	ChallengeFailed  ChallengeStatus = "failed"
)
