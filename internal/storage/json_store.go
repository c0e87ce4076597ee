package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/muhasabah/internal/models"
)

// document is the on-disk layout of the JSON store: a single file holding
// every record plus the singleton documents.
type document struct {
	Version    int                           `json:"version"`
	Settings   models.Settings               `json:"settings"`
	Records    map[string]models.DailyRecord `json:"records"`
	Qada       models.QadaCounts             `json:"qada"`
	Level      models.UserLevel              `json:"level"`
	WorkoutPRs map[string]int                `json:"workout_prs"`
	Challenges []models.Challenge            `json:"challenges"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version:    1,
		Records:    make(map[string]models.DailyRecord),
		Level:      DefaultLevel(),
		WorkoutPRs: make(map[string]int),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.doc != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'muhasabah init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Records == nil {
		s.doc.Records = make(map[string]models.DailyRecord)
	}
	if s.doc.WorkoutPRs == nil {
		s.doc.WorkoutPRs = make(map[string]int)
	}
	if s.doc.Level.CurrentLevel == 0 {
		s.doc.Level = DefaultLevel()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetRecord(date string) (models.DailyRecord, error) {
	if err := s.loaded(); err != nil {
		return models.DailyRecord{}, err
	}
	rec, ok := s.doc.Records[date]
	if !ok {
		return models.DailyRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *JSONStore) SaveRecord(rec models.DailyRecord) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Records[rec.Date] = rec
	return s.save()
}

func (s *JSONStore) GetRecords(startDate, endDate string) ([]models.DailyRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var out []models.DailyRecord
	for date, rec := range s.doc.Records {
		if date >= startDate && date <= endDate {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *JSONStore) GetAllRecords() ([]models.DailyRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	out := make([]models.DailyRecord, 0, len(s.doc.Records))
	for _, rec := range s.doc.Records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *JSONStore) DeleteRecord(date string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.doc.Records[date]; !ok {
		return ErrNotFound
	}
	delete(s.doc.Records, date)
	return s.save()
}

func (s *JSONStore) GetQada() (models.QadaCounts, error) {
	if err := s.loaded(); err != nil {
		return models.QadaCounts{}, err
	}
	return s.doc.Qada, nil
}

func (s *JSONStore) SaveQada(q models.QadaCounts) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Qada = q
	return s.save()
}

func (s *JSONStore) GetLevel() (models.UserLevel, error) {
	if err := s.loaded(); err != nil {
		return models.UserLevel{}, err
	}
	return s.doc.Level, nil
}

func (s *JSONStore) SaveLevel(level models.UserLevel) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Level = level
	return s.save()
}

func (s *JSONStore) GetWorkoutPRs() (map[string]int, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(s.doc.WorkoutPRs))
	for k, v := range s.doc.WorkoutPRs {
		out[k] = v
	}
	return out, nil
}

func (s *JSONStore) SaveWorkoutPRs(prs map[string]int) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.WorkoutPRs = prs
	return s.save()
}

func (s *JSONStore) GetChallenges() ([]models.Challenge, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.doc.Challenges, nil
}

func (s *JSONStore) SaveChallenges(challenges []models.Challenge) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Challenges = challenges
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
