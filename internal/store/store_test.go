package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/achrafi04/fitlog/internal/db"
	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitlog.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func fixedClock(date string) func() time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestLoadFirstRunReturnsDefaults(t *testing.T) {
	t.Parallel()
	st := store.New(newTestDB(t)).WithClock(fixedClock("2024-06-01"))

	state, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Exercises) == 0 || len(state.Reminders) == 0 || len(state.Nutrition.Checklist) == 0 {
		t.Fatalf("default state not populated: %+v", state)
	}
	if state.WaterTodayDate != "2024-06-01" {
		t.Fatalf("rollover did not stamp today: %q", state.WaterTodayDate)
	}
	if state.WaterGoalML != model.DefaultWaterGoalML {
		t.Fatalf("unexpected default goal %d", state.WaterGoalML)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	st := store.New(newTestDB(t)).WithClock(fixedClock("2024-06-01"))

	state, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	state.WaterTodayML = 1750
	state.Bodyweight = []model.WeightLog{{Date: "2024-06-01", WeightKg: 82.5}}
	state.Nutrition.Notes = "cut sugar"
	if err := st.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.WaterTodayML != 1750 {
		t.Fatalf("water not persisted: %d", loaded.WaterTodayML)
	}
	if len(loaded.Bodyweight) != 1 || loaded.Bodyweight[0].WeightKg != 82.5 {
		t.Fatalf("bodyweight not persisted: %+v", loaded.Bodyweight)
	}
	if loaded.Nutrition.Notes != "cut sugar" {
		t.Fatalf("notes not persisted: %q", loaded.Nutrition.Notes)
	}
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if _, err := sqldb.Exec(`INSERT INTO app_state(key, blob) VALUES('state', '{not json')`); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	st := store.New(sqldb).WithClock(fixedClock("2024-06-01"))
	state, err := st.Load()
	if err != nil {
		t.Fatalf("load should not fail on corruption: %v", err)
	}
	if len(state.Exercises) == 0 {
		t.Fatalf("expected default state after corruption")
	}
}

func TestLoadBackfillsMissingFields(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	// blob from an old app version: only water fields present
	old := `{"waterGoalMl": 2500, "waterTodayMl": 300, "waterTodayDate": "2024-06-01"}`
	if _, err := sqldb.Exec(`INSERT INTO app_state(key, blob) VALUES('state', ?)`, old); err != nil {
		t.Fatalf("seed old blob: %v", err)
	}

	st := store.New(sqldb).WithClock(fixedClock("2024-06-01"))
	state, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.WaterGoalML != 2500 || state.WaterTodayML != 300 {
		t.Fatalf("stored fields lost in backfill: %+v", state)
	}
	if len(state.Exercises) == 0 || len(state.Templates) == 0 || len(state.Reminders) == 0 {
		t.Fatalf("missing fields not backfilled")
	}
	if state.Nutrition.Checklist == nil || state.WaterHistory == nil || state.Logs == nil {
		t.Fatalf("nil containers not backfilled")
	}
	if state.Session.DayType != model.DayPush {
		t.Fatalf("session day type not defaulted: %q", state.Session.DayType)
	}
}

func TestLoadRunsRollover(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	st := store.New(sqldb).WithClock(fixedClock("2024-06-01"))

	state, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	state.WaterTodayML = 0
	state.WaterGoalML = 3000
	for label := range state.Nutrition.Checklist {
		state.Nutrition.Checklist[label] = true
	}
	if err := st.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	next := store.New(sqldb).WithClock(fixedClock("2024-06-02"))
	rolled, err := next.Load()
	if err != nil {
		t.Fatalf("load next day: %v", err)
	}
	if rolled.WaterTodayDate != "2024-06-02" || rolled.WaterTodayML != 0 {
		t.Fatalf("bucket not rolled: %s %d", rolled.WaterTodayDate, rolled.WaterTodayML)
	}
	found := false
	for _, h := range rolled.WaterHistory {
		if h.Date == "2024-06-01" && h.ML == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("previous day not archived: %+v", rolled.WaterHistory)
	}
	for label, checked := range rolled.Nutrition.Checklist {
		if checked {
			t.Fatalf("checklist item %q survived rollover", label)
		}
	}
}

func TestSaveOverwritesWholeBlob(t *testing.T) {
	t.Parallel()
	st := store.New(newTestDB(t)).WithClock(fixedClock("2024-06-01"))

	state, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	state.WaterTodayML = 100
	if err := st.Save(state); err != nil {
		t.Fatalf("first save: %v", err)
	}
	state.WaterTodayML = 200
	if err := st.Save(state); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.WaterTodayML != 200 {
		t.Fatalf("last write should win, got %d", loaded.WaterTodayML)
	}
}
