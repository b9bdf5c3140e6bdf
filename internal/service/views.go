package service

import (
	"math"
	"sort"
	"time"

	"github.com/achrafi04/fitlog/internal/model"
)

const (
	last7Days      = 7
	last30Weights  = 30
	recentLogCount = 5
)

// UnknownExercise is the display name for a dangling exercise reference.
const UnknownExercise = "unknown exercise"

// TemplateEntry is a template slot resolved for display.
type TemplateEntry struct {
	ExerciseID string
	Name       string
	RestSec    int
}

// WaterPercent reports today's progress toward the goal, rounded and
// clamped to [0, 100].
func WaterPercent(s model.State) int {
	if s.WaterGoalML <= 0 {
		return 0
	}
	pct := int(math.Round(float64(s.WaterTodayML) / float64(s.WaterGoalML) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Last7DaysWater returns one bucket per calendar date for the 7 days ending
// today. Today comes from the live bucket, earlier days from the history;
// days with no record report 0.
func Last7DaysWater(s model.State, today time.Time) []model.WaterLog {
	byDate := make(map[string]int, len(s.WaterHistory))
	for _, h := range s.WaterHistory {
		byDate[h.Date] = h.ML
	}

	out := make([]model.WaterLog, 0, last7Days)
	for i := last7Days - 1; i >= 0; i-- {
		date := DateKey(today.AddDate(0, 0, -i))
		ml := byDate[date]
		if date == s.WaterTodayDate {
			ml = s.WaterTodayML
		}
		out = append(out, model.WaterLog{Date: date, ML: ml})
	}
	return out
}

// Last30Weights returns the bodyweight series ascending by date, truncated
// to the most recent 30 entries.
func Last30Weights(s model.State) []model.WeightLog {
	entries := make([]model.WeightLog, len(s.Bodyweight))
	copy(entries, s.Bodyweight)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	if len(entries) > last30Weights {
		entries = entries[len(entries)-last30Weights:]
	}
	return entries
}

// MostRecentWeight returns the latest bodyweight reading, if any.
func MostRecentWeight(s model.State) (float64, bool) {
	latest := model.WeightLog{}
	found := false
	for _, w := range s.Bodyweight {
		if !found || w.Date > latest.Date {
			latest = w
			found = true
		}
	}
	return latest.WeightKg, found
}

// RecentLogs returns up to the 5 most recent workout logs. Logs are already
// most-recent-first by construction.
func RecentLogs(s model.State) []model.WorkoutLog {
	if len(s.Logs) <= recentLogCount {
		return s.Logs
	}
	return s.Logs[:recentLogCount]
}

// TemplateFor resolves the template slots of a day type to display entries.
func TemplateFor(s model.State, day model.DayType) []TemplateEntry {
	slots := s.Templates[day]
	out := make([]TemplateEntry, 0, len(slots))
	for _, slot := range slots {
		out = append(out, TemplateEntry{
			ExerciseID: slot.ExerciseID,
			Name:       ExerciseName(s, slot.ExerciseID),
			RestSec:    slot.RestSec,
		})
	}
	return out
}

// ExerciseName resolves an exercise id for display. Dangling references
// degrade to a placeholder instead of failing.
func ExerciseName(s model.State, id string) string {
	for _, e := range s.Exercises {
		if e.ID == id {
			return e.Name
		}
	}
	return UnknownExercise
}
