package store

import "github.com/achrafi04/fitlog/internal/model"

// applyDefaults backfills fields missing from a blob written by an older
// version of the app. The blob carries no schema version; this per-field
// merge is the whole migration story, so every field added to model.State
// needs a clause here.
func applyDefaults(s model.State) model.State {
	defaults := model.DefaultState()

	if s.WaterGoalML < model.MinWaterGoalML {
		s.WaterGoalML = defaults.WaterGoalML
	}
	if s.WaterTodayML < 0 {
		s.WaterTodayML = 0
	}
	if s.WaterHistory == nil {
		s.WaterHistory = []model.WaterLog{}
	}
	if s.Bodyweight == nil {
		s.Bodyweight = []model.WeightLog{}
	}
	if s.Exercises == nil {
		s.Exercises = defaults.Exercises
	}
	if s.Templates == nil {
		s.Templates = defaults.Templates
	}
	if s.Logs == nil {
		s.Logs = []model.WorkoutLog{}
	}
	if !model.ValidDayType(string(s.Session.DayType)) {
		s.Session.DayType = defaults.Session.DayType
	}
	if s.Session.Sets == nil {
		s.Session.Sets = []model.SetEntry{}
	}
	// nil means the field was absent from the blob; an empty list is a user
	// who deleted everything and must stay empty.
	if s.Reminders == nil {
		s.Reminders = defaults.Reminders
	}
	if s.Nutrition.Checklist == nil {
		s.Nutrition.Checklist = model.DefaultChecklist()
	}

	return s
}
