package service

import "github.com/achrafi04/fitlog/internal/model"

// Rollover finalizes the water bucket and nutrition checklist when the
// calendar date has moved past WaterTodayDate. It runs once per load, before
// the state reaches anything else, and is idempotent for a given today.
//
// When the app was closed over several days only the most recent prior day
// is archived; the skipped days stay absent from the history.
func Rollover(s model.State, today string) model.State {
	if s.WaterTodayDate == today {
		return s
	}

	if s.WaterTodayDate != "" {
		s.WaterHistory = upsertWaterLog(s.WaterHistory, model.WaterLog{
			Date: s.WaterTodayDate,
			ML:   s.WaterTodayML,
		})
	}
	s.WaterTodayDate = today
	s.WaterTodayML = 0

	checklist := make(map[string]bool, len(s.Nutrition.Checklist))
	for label := range s.Nutrition.Checklist {
		checklist[label] = false
	}
	s.Nutrition.Checklist = checklist

	return s
}

// upsertWaterLog replaces the entry for entry.Date if present, otherwise
// appends. History keeps at most one entry per date.
func upsertWaterLog(history []model.WaterLog, entry model.WaterLog) []model.WaterLog {
	out := make([]model.WaterLog, len(history))
	copy(out, history)
	for i := range out {
		if out[i].Date == entry.Date {
			out[i] = entry
			return out
		}
	}
	return append(out, entry)
}
