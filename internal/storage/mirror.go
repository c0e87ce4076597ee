package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	_ "github.com/lib/pq"

	"github.com/julianstephens/muhasabah/internal/logger"
	"github.com/julianstephens/muhasabah/internal/models"
)

// MirrorStore wraps a primary Provider and shadows every write to a remote
// Postgres document table. Reads and synchronous writes always hit the
// primary; the remote copy is fire-and-forget, last-write-wins. A mirror
// failure is logged and dropped, never surfaced to the caller.
type MirrorStore struct {
	Provider

	dsn    string
	remote *sql.DB
	wg     sync.WaitGroup
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are rejected; credentials belong in the OS keyring,
// the environment, or .pgpass.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// NewMirrorStore wraps primary with a best-effort Postgres mirror at dsn.
func NewMirrorStore(primary Provider, dsn string) *MirrorStore {
	return &MirrorStore{Provider: primary, dsn: dsn}
}

func (s *MirrorStore) Init() error {
	if err := s.Provider.Init(); err != nil {
		return err
	}
	return s.connect()
}

func (s *MirrorStore) Load() error {
	if err := s.Provider.Load(); err != nil {
		return err
	}
	return s.connect()
}

func (s *MirrorStore) connect() error {
	if s.remote != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		// A broken mirror never blocks local use.
		logger.Warn("Mirror unavailable, continuing local-only", "error", err)
		return nil
	}
	s.remote = db

	s.async("schema", func() error {
		_, err := s.remote.Exec(`
			CREATE TABLE IF NOT EXISTS muhasabah_documents (
				key TEXT PRIMARY KEY,
				data JSONB NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`)
		return err
	})
	return nil
}

// Close waits for in-flight mirror writes before closing both sides.
func (s *MirrorStore) Close() error {
	s.wg.Wait()
	if s.remote != nil {
		if err := s.remote.Close(); err != nil {
			logger.Warn("Failed to close mirror connection", "error", err)
		}
	}
	return s.Provider.Close()
}

// async runs fn on a goroutine; the caller never observes the outcome.
func (s *MirrorStore) async(what string, fn func() error) {
	if s.remote == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := fn(); err != nil {
			logger.Warn("Mirror write failed", "document", what, "error", err)
		}
	}()
}

func (s *MirrorStore) put(key string, doc any) {
	data, err := json.Marshal(doc)
	if err != nil {
		logger.Warn("Mirror serialization failed", "document", key, "error", err)
		return
	}
	s.async(key, func() error {
		_, err := s.remote.Exec(`
			INSERT INTO muhasabah_documents (key, data, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET data = excluded.data, updated_at = now()`,
			key, string(data))
		return err
	})
}

func (s *MirrorStore) SaveRecord(rec models.DailyRecord) error {
	if err := s.Provider.SaveRecord(rec); err != nil {
		return err
	}
	s.put("record/"+rec.Date, rec)
	return nil
}

func (s *MirrorStore) DeleteRecord(date string) error {
	if err := s.Provider.DeleteRecord(date); err != nil {
		return err
	}
	s.async("record/"+date, func() error {
		_, err := s.remote.Exec(`DELETE FROM muhasabah_documents WHERE key = $1`, "record/"+date)
		return err
	})
	return nil
}

func (s *MirrorStore) SaveQada(q models.QadaCounts) error {
	if err := s.Provider.SaveQada(q); err != nil {
		return err
	}
	s.put("qada", q)
	return nil
}

func (s *MirrorStore) SaveLevel(level models.UserLevel) error {
	if err := s.Provider.SaveLevel(level); err != nil {
		return err
	}
	s.put("level", level)
	return nil
}

func (s *MirrorStore) SaveSettings(settings models.Settings) error {
	if err := s.Provider.SaveSettings(settings); err != nil {
		return err
	}
	s.put("settings", settings)
	return nil
}

func (s *MirrorStore) SaveWorkoutPRs(prs map[string]int) error {
	if err := s.Provider.SaveWorkoutPRs(prs); err != nil {
		return err
	}
	s.put("workout_prs", prs)
	return nil
}

func (s *MirrorStore) SaveChallenges(challenges []models.Challenge) error {
	if err := s.Provider.SaveChallenges(challenges); err != nil {
		return err
	}
	s.put("challenges", challenges)
	return nil
}

// Ping checks remote reachability for diagnostics.
func (s *MirrorStore) Ping() error {
	if s.remote == nil {
		return fmt.Errorf("mirror not connected")
	}
	return s.remote.Ping()
}
