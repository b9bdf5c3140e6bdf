package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/achrafi04/fitlog/internal/model"
)

// Defaults for a set with no prior history for its exercise.
const (
	fallbackWeightKg = 0
	fallbackReps     = 10
)

// SetPatch carries the fields of a draft set to overwrite; nil means keep.
type SetPatch struct {
	WeightKg *float64
	Reps     *int
	RPE      *float64
}

// AddSet appends a set for exerciseID to the draft, prefilled from the most
// recent prior set of the same exercise across saved logs. With no history
// the set starts at 0 kg x 10 reps.
func AddSet(s model.State, exerciseID string) model.State {
	weight, reps := lastSetFor(s.Logs, exerciseID)

	sets := cloneSets(s.Session.Sets)
	sets = append(sets, model.SetEntry{ExerciseID: exerciseID, WeightKg: weight, Reps: reps})
	s.Session.Sets = sets
	return s
}

// UpdateSet merges patch into the draft set at index. Out-of-range indexes
// leave the state unchanged.
func UpdateSet(s model.State, index int, patch SetPatch) model.State {
	if index < 0 || index >= len(s.Session.Sets) {
		return s
	}
	sets := cloneSets(s.Session.Sets)
	if patch.WeightKg != nil {
		sets[index].WeightKg = *patch.WeightKg
	}
	if patch.Reps != nil {
		sets[index].Reps = *patch.Reps
	}
	if patch.RPE != nil {
		sets[index].RPE = *patch.RPE
	}
	s.Session.Sets = sets
	return s
}

// RemoveSet drops the draft set at index, shifting later sets down.
func RemoveSet(s model.State, index int) model.State {
	if index < 0 || index >= len(s.Session.Sets) {
		return s
	}
	sets := cloneSets(s.Session.Sets)
	s.Session.Sets = append(sets[:index], sets[index+1:]...)
	return s
}

// SaveWorkout turns a non-empty draft into an immutable log at the head of
// Logs and starts a fresh draft with the same day type. Saving an empty
// draft is a no-op.
func SaveWorkout(s model.State, now time.Time, notes string) model.State {
	if len(s.Session.Sets) == 0 {
		return s
	}
	entry := model.WorkoutLog{
		ID:      uuid.NewString(),
		DateISO: now.Format(time.RFC3339),
		DayType: s.Session.DayType,
		Notes:   strings.TrimSpace(notes),
		Sets:    cloneSets(s.Session.Sets),
	}
	logs := make([]model.WorkoutLog, 0, len(s.Logs)+1)
	logs = append(logs, entry)
	logs = append(logs, s.Logs...)

	s.Logs = logs
	s.Session = model.Session{DayType: s.Session.DayType, Sets: []model.SetEntry{}}
	return s
}

// SetSessionDayType selects the split day for the current draft.
func SetSessionDayType(s model.State, day model.DayType) model.State {
	if !model.ValidDayType(string(day)) {
		return s
	}
	s.Session.DayType = day
	return s
}

// lastSetFor scans saved logs newest-first and returns the weight and reps
// of the first set found for exerciseID.
func lastSetFor(logs []model.WorkoutLog, exerciseID string) (float64, int) {
	ordered := make([]model.WorkoutLog, len(logs))
	copy(ordered, logs)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].DateISO > ordered[j].DateISO })

	for _, l := range ordered {
		for _, set := range l.Sets {
			if set.ExerciseID == exerciseID {
				return set.WeightKg, set.Reps
			}
		}
	}
	return fallbackWeightKg, fallbackReps
}
