package fitlog

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/achrafi04/fitlog/internal/app"
	"github.com/achrafi04/fitlog/internal/db"
	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/store"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := os.Getenv("FITLOG_DB"); env != "" {
		return env, nil
	}
	return app.DefaultDBPath()
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(store.New(sqldb))
}

// withState runs a read-only view over the loaded state.
func withState(run func(model.State) error) error {
	return withStore(func(st *store.Store) error {
		state, err := st.Load()
		if err != nil {
			return err
		}
		return run(state)
	})
}

// mutateState applies a mutator to the loaded state and persists the result.
// Every mutation is a full load / transform / whole-blob save cycle.
func mutateState(apply func(model.State) model.State) error {
	return withStore(func(st *store.Store) error {
		state, err := st.Load()
		if err != nil {
			return err
		}
		return st.Save(apply(state))
	})
}

func parseIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func parseIndexArg(name, value string) (int, error) {
	v, err := parseIntArg(name, value)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be >= 0", name)
	}
	return v, nil
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func validHHMM(value string) bool {
	if len(value) != 5 || value[2] != ':' {
		return false
	}
	h, err := strconv.Atoi(value[:2])
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(value[3:])
	if err != nil || m < 0 || m > 59 {
		return false
	}
	return true
}
