package model

// DefaultWaterGoalML is the hydration goal used until the user sets one.
const DefaultWaterGoalML = 3000

// MinWaterGoalML is the floor enforced when the goal is changed.
const MinWaterGoalML = 500

func defaultExercises() []Exercise {
	return []Exercise{
		{ID: "bench_press", Name: "Bench Press", Muscles: []string{"chest", "triceps", "front delts"}},
		{ID: "overhead_press", Name: "Overhead Press", Muscles: []string{"shoulders", "triceps"}},
		{ID: "incline_db_press", Name: "Incline Dumbbell Press", Muscles: []string{"upper chest", "front delts"}},
		{ID: "lateral_raise", Name: "Lateral Raise", Muscles: []string{"side delts"}},
		{ID: "triceps_pushdown", Name: "Triceps Pushdown", Muscles: []string{"triceps"}},
		{ID: "deadlift", Name: "Deadlift", Muscles: []string{"back", "glutes", "hamstrings"}},
		{ID: "barbell_row", Name: "Barbell Row", Muscles: []string{"lats", "mid back", "biceps"}},
		{ID: "lat_pulldown", Name: "Lat Pulldown", Muscles: []string{"lats", "biceps"}},
		{ID: "face_pull", Name: "Face Pull", Muscles: []string{"rear delts", "traps"}},
		{ID: "biceps_curl", Name: "Biceps Curl", Muscles: []string{"biceps"}},
		{ID: "squat", Name: "Back Squat", Muscles: []string{"quads", "glutes"}},
		{ID: "romanian_deadlift", Name: "Romanian Deadlift", Muscles: []string{"hamstrings", "glutes"}},
		{ID: "leg_press", Name: "Leg Press", Muscles: []string{"quads", "glutes"}},
		{ID: "leg_curl", Name: "Leg Curl", Muscles: []string{"hamstrings"}},
		{ID: "calf_raise", Name: "Calf Raise", Muscles: []string{"calves"}},
	}
}

func defaultTemplates() map[DayType][]TemplateSlot {
	return map[DayType][]TemplateSlot{
		DayPush: {
			{ExerciseID: "bench_press", RestSec: 180},
			{ExerciseID: "overhead_press", RestSec: 150},
			{ExerciseID: "incline_db_press", RestSec: 120},
			{ExerciseID: "lateral_raise", RestSec: 90},
			{ExerciseID: "triceps_pushdown", RestSec: 90},
		},
		DayPull: {
			{ExerciseID: "deadlift", RestSec: 210},
			{ExerciseID: "barbell_row", RestSec: 150},
			{ExerciseID: "lat_pulldown", RestSec: 120},
			{ExerciseID: "face_pull", RestSec: 90},
			{ExerciseID: "biceps_curl", RestSec: 90},
		},
		DayLegs: {
			{ExerciseID: "squat", RestSec: 210},
			{ExerciseID: "romanian_deadlift", RestSec: 150},
			{ExerciseID: "leg_press", RestSec: 120},
			{ExerciseID: "leg_curl", RestSec: 90},
			{ExerciseID: "calf_raise", RestSec: 90},
		},
	}
}

func defaultReminders() []Reminder {
	return []Reminder{
		{ID: "rem_water_morning", Title: "Drink water", Time: "10:00", Enabled: true, Kind: ReminderWater},
		{ID: "rem_lunch", Title: "Lunch", Time: "13:00", Enabled: true, Kind: ReminderMeal},
		{ID: "rem_creatine", Title: "Creatine", Time: "21:30", Enabled: true, Kind: ReminderSupp},
	}
}

// DefaultChecklist returns the fixed nutrition checklist keys, all unchecked.
func DefaultChecklist() map[string]bool {
	return map[string]bool{
		"protein target": false,
		"creatine":       false,
		"multivitamin":   false,
		"omega-3":        false,
		"veggies":        false,
	}
}

// DefaultState builds a fully populated fresh state. WaterTodayDate is left
// empty; the rollover step on first load stamps it with the current date.
func DefaultState() State {
	return State{
		WaterGoalML:  DefaultWaterGoalML,
		WaterHistory: []WaterLog{},
		Bodyweight:   []WeightLog{},
		Exercises:    defaultExercises(),
		Templates:    defaultTemplates(),
		Logs:         []WorkoutLog{},
		Session:      Session{DayType: DayPush, Sets: []SetEntry{}},
		Reminders:    defaultReminders(),
		Nutrition:    Nutrition{Checklist: DefaultChecklist()},
	}
}
