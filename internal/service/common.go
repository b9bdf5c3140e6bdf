package service

import (
	"time"

	"github.com/achrafi04/fitlog/internal/model"
)

const dateLayout = "2006-01-02"

// DateKey formats t as the calendar-date key used throughout the state
// (water buckets, bodyweight entries, reminder dedup).
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func cloneSets(sets []model.SetEntry) []model.SetEntry {
	out := make([]model.SetEntry, len(sets))
	copy(out, sets)
	return out
}

func cloneChecklist(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
