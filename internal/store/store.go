package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

// stateKey is the single storage key the whole application state lives under.
const stateKey = "state"

// Store owns the persisted application state: one JSON blob in the app_state
// table, overwritten as a unit on every save.
type Store struct {
	db  *sql.DB
	now func() time.Time
	log *zap.Logger
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now, log: zap.NewNop()}
}

// WithClock overrides the wall-clock source, used by tests to pin "today".
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) WithLogger(log *zap.Logger) *Store {
	s.log = log
	return s
}

// Load reads the persisted state. A missing or unparsable blob degrades to
// the default state instead of failing; fields absent from an older blob are
// backfilled with their defaults. The daily rollover runs last, so the
// returned state always has today's water bucket and a fresh checklist.
// The only error surfaced is a database-level read failure.
func (s *Store) Load() (model.State, error) {
	state := model.DefaultState()

	var blob string
	err := s.db.QueryRow(`SELECT blob FROM app_state WHERE key = ?`, stateKey).Scan(&blob)
	switch {
	case err == sql.ErrNoRows:
		// first run
	case err != nil:
		return model.State{}, fmt.Errorf("read app state: %w", err)
	default:
		var loaded model.State
		if jsonErr := json.Unmarshal([]byte(blob), &loaded); jsonErr != nil {
			s.log.Warn("app state blob unparsable, falling back to defaults", zap.Error(jsonErr))
		} else {
			state = applyDefaults(loaded)
		}
	}

	return service.Rollover(state, service.DateKey(s.now())), nil
}

// Save persists the whole state under the single key, replacing whatever was
// there. Last write wins.
func (s *Store) Save(state model.State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode app state: %w", err)
	}
	_, err = s.db.Exec(`
INSERT INTO app_state(key, blob, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET blob=excluded.blob, updated_at=excluded.updated_at
`, stateKey, string(blob))
	if err != nil {
		return fmt.Errorf("write app state: %w", err)
	}
	return nil
}
