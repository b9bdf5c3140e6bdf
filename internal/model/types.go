package model

// DayType identifies a workout day in the push/pull/legs split.
type DayType string

const (
	DayPush DayType = "push"
	DayPull DayType = "pull"
	DayLegs DayType = "legs"
)

// ValidDayType reports whether s names one of the known day types.
func ValidDayType(s string) bool {
	switch DayType(s) {
	case DayPush, DayPull, DayLegs:
		return true
	}
	return false
}

// ReminderKind categorizes a reminder for display purposes.
type ReminderKind string

const (
	ReminderWater ReminderKind = "water"
	ReminderMeal  ReminderKind = "meal"
	ReminderSupp  ReminderKind = "supp"
)

type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Muscles  []string `json:"muscles"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

type SetEntry struct {
	ExerciseID string  `json:"exerciseId"`
	WeightKg   float64 `json:"weightKg"`
	Reps       int     `json:"reps"`
	RPE        float64 `json:"rpe,omitempty"`
}

// WorkoutLog is a saved session. Immutable once it lands in State.Logs.
type WorkoutLog struct {
	ID      string     `json:"id"`
	DateISO string     `json:"dateISO"`
	DayType DayType    `json:"dayType"`
	Notes   string     `json:"notes,omitempty"`
	Sets    []SetEntry `json:"sets"`
}

// WeightLog holds one bodyweight reading. Date is the unique key (YYYY-MM-DD);
// the collection stays sorted ascending by date.
type WeightLog struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
}

// WaterLog is a finalized past day's intake total.
type WaterLog struct {
	Date string `json:"date"`
	ML   int    `json:"ml"`
}

type Reminder struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Time    string       `json:"time"` // HH:MM
	Enabled bool         `json:"enabled"`
	Kind    ReminderKind `json:"kind"`
}

type Nutrition struct {
	Checklist map[string]bool `json:"todaysChecklist"`
	Notes     string          `json:"notes"`
}

// Session is the in-progress workout draft. Persisted in the blob so a
// session survives across CLI invocations.
type Session struct {
	DayType DayType    `json:"dayType"`
	Sets    []SetEntry `json:"sets"`
}

// TemplateSlot prefills one exercise of a session screen.
type TemplateSlot struct {
	ExerciseID string `json:"exerciseId"`
	RestSec    int    `json:"defaultRestSec"`
}

// State is the whole application state, persisted as one blob under a single
// storage key. Last write wins; there are no partial updates.
type State struct {
	WaterGoalML    int                        `json:"waterGoalMl"`
	WaterTodayML   int                        `json:"waterTodayMl"`
	WaterTodayDate string                     `json:"waterTodayDate"`
	WaterHistory   []WaterLog                 `json:"waterHistory"`
	Bodyweight     []WeightLog                `json:"bodyweight"`
	Exercises      []Exercise                 `json:"exercises"`
	Templates      map[DayType][]TemplateSlot `json:"workoutTemplates"`
	Logs           []WorkoutLog               `json:"logs"`
	Session        Session                    `json:"session"`
	Reminders      []Reminder                 `json:"reminders"`
	Nutrition      Nutrition                  `json:"nutrition"`
}
