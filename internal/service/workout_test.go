package service_test

import (
	"testing"
	"time"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

func TestAddSetSuggestsFromHistory(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()
	s.Logs = []model.WorkoutLog{
		{
			ID:      "w1",
			DateISO: "2024-01-01T10:00:00Z",
			DayType: model.DayPush,
			Sets:    []model.SetEntry{{ExerciseID: "bench_press", WeightKg: 60, Reps: 8}},
		},
	}

	s = service.AddSet(s, "bench_press")

	if len(s.Session.Sets) != 1 {
		t.Fatalf("expected one draft set, got %d", len(s.Session.Sets))
	}
	set := s.Session.Sets[0]
	if set.WeightKg != 60 || set.Reps != 8 {
		t.Fatalf("expected suggestion 60 kg x 8, got %.1f x %d", set.WeightKg, set.Reps)
	}
}

func TestAddSetPrefersMostRecentLog(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()
	s.Logs = []model.WorkoutLog{
		{ID: "new", DateISO: "2024-03-01T10:00:00Z", Sets: []model.SetEntry{{ExerciseID: "squat", WeightKg: 120, Reps: 5}}},
		{ID: "old", DateISO: "2024-01-01T10:00:00Z", Sets: []model.SetEntry{{ExerciseID: "squat", WeightKg: 100, Reps: 8}}},
	}

	s = service.AddSet(s, "squat")

	if set := s.Session.Sets[0]; set.WeightKg != 120 || set.Reps != 5 {
		t.Fatalf("expected most recent suggestion 120 x 5, got %.1f x %d", set.WeightKg, set.Reps)
	}
}

func TestAddSetFallbackWithoutHistory(t *testing.T) {
	t.Parallel()
	s := service.AddSet(model.DefaultState(), "bench_press")
	if set := s.Session.Sets[0]; set.WeightKg != 0 || set.Reps != 10 {
		t.Fatalf("expected fallback 0 kg x 10, got %.1f x %d", set.WeightKg, set.Reps)
	}
}

func TestUpdateSetMergesPatch(t *testing.T) {
	t.Parallel()
	s := service.AddSet(model.DefaultState(), "bench_press")

	weight := 62.5
	s = service.UpdateSet(s, 0, service.SetPatch{WeightKg: &weight})

	set := s.Session.Sets[0]
	if set.WeightKg != 62.5 {
		t.Fatalf("expected weight 62.5, got %.1f", set.WeightKg)
	}
	if set.Reps != 10 {
		t.Fatalf("patch touched reps: got %d", set.Reps)
	}
}

func TestUpdateAndRemoveSetBoundChecked(t *testing.T) {
	t.Parallel()
	s := service.AddSet(model.DefaultState(), "bench_press")

	reps := 99
	for _, index := range []int{-1, 1, 5} {
		out := service.UpdateSet(s, index, service.SetPatch{Reps: &reps})
		if out.Session.Sets[0].Reps != 10 {
			t.Fatalf("out-of-range update at %d mutated the draft", index)
		}
		out = service.RemoveSet(s, index)
		if len(out.Session.Sets) != 1 {
			t.Fatalf("out-of-range remove at %d changed the draft", index)
		}
	}
}

func TestRemoveSetShiftsIndices(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()
	s = service.AddSet(s, "bench_press")
	s = service.AddSet(s, "overhead_press")
	s = service.AddSet(s, "lateral_raise")

	s = service.RemoveSet(s, 1)

	if len(s.Session.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(s.Session.Sets))
	}
	if s.Session.Sets[1].ExerciseID != "lateral_raise" {
		t.Fatalf("expected lateral_raise shifted to index 1, got %s", s.Session.Sets[1].ExerciseID)
	}
}

func TestSaveWorkoutPrependsAndResetsDraft(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()
	s.Logs = []model.WorkoutLog{{ID: "older", DateISO: "2024-01-01T10:00:00Z"}}
	s = service.SetSessionDayType(s, model.DayLegs)
	s = service.AddSet(s, "squat")
	s = service.AddSet(s, "leg_press")

	s = service.SaveWorkout(s, time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC), "felt strong")

	if len(s.Logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(s.Logs))
	}
	saved := s.Logs[0]
	if saved.ID == "" || saved.ID == "older" {
		t.Fatalf("expected fresh id at head, got %q", saved.ID)
	}
	if saved.DayType != model.DayLegs || len(saved.Sets) != 2 || saved.Notes != "felt strong" {
		t.Fatalf("unexpected saved log: %+v", saved)
	}
	if len(s.Session.Sets) != 0 {
		t.Fatalf("expected empty draft after save, got %d sets", len(s.Session.Sets))
	}
	if s.Session.DayType != model.DayLegs {
		t.Fatalf("expected day type carried forward, got %s", s.Session.DayType)
	}
}

func TestSaveWorkoutEmptyDraftIsNoop(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()
	s = service.SaveWorkout(s, time.Now(), "")
	if len(s.Logs) != 0 {
		t.Fatalf("empty save produced a log: %+v", s.Logs)
	}
}

func TestMutatorsCopyOnWrite(t *testing.T) {
	t.Parallel()
	original := model.DefaultState()
	original = service.AddSet(original, "bench_press")
	draftLen := len(original.Session.Sets)

	_ = service.AddSet(original, "squat")
	_ = service.RemoveSet(original, 0)
	_ = service.SaveWorkout(original, time.Now(), "")

	if len(original.Session.Sets) != draftLen {
		t.Fatalf("mutator modified its input state: %d sets", len(original.Session.Sets))
	}
	if original.Session.Sets[0].ExerciseID != "bench_press" {
		t.Fatalf("input draft content changed: %+v", original.Session.Sets)
	}
}
