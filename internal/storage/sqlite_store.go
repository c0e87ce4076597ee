package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/muhasabah/internal/models"
)

// SQLiteStore is the default Provider. Records live in a table keyed by
// date; the ledger, level, settings, and workout PRs are singleton rows.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS records (
	date TEXT PRIMARY KEY,
	scores TEXT NOT NULL DEFAULT '{}',
	sins TEXT NOT NULL DEFAULT '[]',
	report TEXT NOT NULL DEFAULT '',
	total_average INTEGER NOT NULL DEFAULT 0,
	performed_qada TEXT NOT NULL DEFAULT '{}',
	workouts TEXT NOT NULL DEFAULT '{}',
	updated_at INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS qada_counts (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	fajr INTEGER NOT NULL DEFAULT 0,
	dhuhr INTEGER NOT NULL DEFAULT 0,
	asr INTEGER NOT NULL DEFAULT 0,
	maghrib INTEGER NOT NULL DEFAULT 0,
	isha INTEGER NOT NULL DEFAULT 0,
	ayat INTEGER NOT NULL DEFAULT 0,
	fasting INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS user_level (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	current_level INTEGER NOT NULL DEFAULT 1,
	last_check_date TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL DEFAULT '{}'
);
CREATE TABLE IF NOT EXISTS workout_prs (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL DEFAULT '{}'
);
CREATE TABLE IF NOT EXISTS challenges (
	id TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'muhasabah init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent, which doubles as a forward-compat
	// guard when a new table is introduced.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return models.Settings{}, nil
	}
	if err != nil {
		return models.Settings{}, err
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO settings (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, string(data))
	return err
}

func (s *SQLiteStore) GetRecord(date string) (models.DailyRecord, error) {
	row := s.db.QueryRow(`
		SELECT date, scores, sins, report, total_average, performed_qada, workouts, updated_at
		FROM records WHERE date = ?`, date)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return models.DailyRecord{}, ErrNotFound
	}
	return rec, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.DailyRecord, error) {
	var rec models.DailyRecord
	var scores, sins, performedQada, workouts string

	err := row.Scan(&rec.Date, &scores, &sins, &rec.Report, &rec.TotalAverage,
		&performedQada, &workouts, &rec.UpdatedAt)
	if err != nil {
		return models.DailyRecord{}, err
	}

	if err := json.Unmarshal([]byte(scores), &rec.Scores); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to parse scores: %w", err)
	}
	if err := json.Unmarshal([]byte(sins), &rec.Sins); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to parse sins: %w", err)
	}
	if err := json.Unmarshal([]byte(performedQada), &rec.PerformedQada); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to parse performed_qada: %w", err)
	}
	if err := json.Unmarshal([]byte(workouts), &rec.Workouts); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to parse workouts: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) SaveRecord(rec models.DailyRecord) error {
	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return fmt.Errorf("failed to serialize scores: %w", err)
	}
	sins, err := json.Marshal(rec.Sins)
	if err != nil {
		return fmt.Errorf("failed to serialize sins: %w", err)
	}
	performedQada, err := json.Marshal(rec.PerformedQada)
	if err != nil {
		return fmt.Errorf("failed to serialize performed_qada: %w", err)
	}
	workouts, err := json.Marshal(rec.Workouts)
	if err != nil {
		return fmt.Errorf("failed to serialize workouts: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO records (date, scores, sins, report, total_average, performed_qada, workouts, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			scores = excluded.scores,
			sins = excluded.sins,
			report = excluded.report,
			total_average = excluded.total_average,
			performed_qada = excluded.performed_qada,
			workouts = excluded.workouts,
			updated_at = excluded.updated_at`,
		rec.Date, string(scores), string(sins), rec.Report, rec.TotalAverage,
		string(performedQada), string(workouts), rec.UpdatedAt)
	return err
}

func (s *SQLiteStore) GetRecords(startDate, endDate string) ([]models.DailyRecord, error) {
	rows, err := s.db.Query(`
		SELECT date, scores, sins, report, total_average, performed_qada, workouts, updated_at
		FROM records WHERE date >= ? AND date <= ? ORDER BY date`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (s *SQLiteStore) GetAllRecords() ([]models.DailyRecord, error) {
	rows, err := s.db.Query(`
		SELECT date, scores, sins, report, total_average, performed_qada, workouts, updated_at
		FROM records ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func collectRecords(rows *sql.Rows) ([]models.DailyRecord, error) {
	var out []models.DailyRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) DeleteRecord(date string) error {
	res, err := s.db.Exec(`DELETE FROM records WHERE date = ?`, date)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) GetQada() (models.QadaCounts, error) {
	var q models.QadaCounts
	err := s.db.QueryRow(`
		SELECT fajr, dhuhr, asr, maghrib, isha, ayat, fasting
		FROM qada_counts WHERE id = 1`).
		Scan(&q.Fajr, &q.Dhuhr, &q.Asr, &q.Maghrib, &q.Isha, &q.Ayat, &q.Fasting)
	if err == sql.ErrNoRows {
		return models.QadaCounts{}, nil
	}
	return q, err
}

func (s *SQLiteStore) SaveQada(q models.QadaCounts) error {
	_, err := s.db.Exec(`
		INSERT INTO qada_counts (id, fajr, dhuhr, asr, maghrib, isha, ayat, fasting)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fajr = excluded.fajr,
			dhuhr = excluded.dhuhr,
			asr = excluded.asr,
			maghrib = excluded.maghrib,
			isha = excluded.isha,
			ayat = excluded.ayat,
			fasting = excluded.fasting`,
		q.Fajr, q.Dhuhr, q.Asr, q.Maghrib, q.Isha, q.Ayat, q.Fasting)
	return err
}

func (s *SQLiteStore) GetLevel() (models.UserLevel, error) {
	var level models.UserLevel
	err := s.db.QueryRow(`SELECT current_level, last_check_date FROM user_level WHERE id = 1`).
		Scan(&level.CurrentLevel, &level.LastCheckDate)
	if err == sql.ErrNoRows {
		return DefaultLevel(), nil
	}
	return level, err
}

func (s *SQLiteStore) SaveLevel(level models.UserLevel) error {
	_, err := s.db.Exec(`
		INSERT INTO user_level (id, current_level, last_check_date) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_level = excluded.current_level,
			last_check_date = excluded.last_check_date`,
		level.CurrentLevel, level.LastCheckDate)
	return err
}

func (s *SQLiteStore) GetWorkoutPRs() (map[string]int, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM workout_prs WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, err
	}

	prs := map[string]int{}
	if err := json.Unmarshal([]byte(data), &prs); err != nil {
		return nil, fmt.Errorf("failed to parse workout PRs: %w", err)
	}
	return prs, nil
}

func (s *SQLiteStore) SaveWorkoutPRs(prs map[string]int) error {
	data, err := json.Marshal(prs)
	if err != nil {
		return fmt.Errorf("failed to serialize workout PRs: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO workout_prs (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, string(data))
	return err
}

func (s *SQLiteStore) GetChallenges() ([]models.Challenge, error) {
	rows, err := s.db.Query(`SELECT data FROM challenges ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Challenge
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var c models.Challenge
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("failed to parse challenge: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveChallenges(challenges []models.Challenge) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM challenges`); err != nil {
		return err
	}
	for i, c := range challenges {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to serialize challenge: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO challenges (id, data, position) VALUES (?, ?, ?)`,
			c.ID, string(data), i); err != nil {
			return err
		}
	}
	return tx.Commit()
}
