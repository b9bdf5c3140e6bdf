package service_test

import (
	"testing"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

func TestReminderCRUD(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()
	before := len(s.Reminders)

	s = service.AddReminder(s, "Vitamin D", "09:30", model.ReminderSupp)
	if len(s.Reminders) != before+1 {
		t.Fatalf("add did not append")
	}
	added := s.Reminders[len(s.Reminders)-1]
	if added.ID == "" || !added.Enabled || added.Time != "09:30" {
		t.Fatalf("unexpected reminder: %+v", added)
	}

	s = service.ToggleReminder(s, added.ID)
	s = service.UpdateReminderTime(s, added.ID, "10:15")
	s = service.UpdateReminderTitle(s, added.ID, "Vitamin D3")

	var got model.Reminder
	for _, r := range s.Reminders {
		if r.ID == added.ID {
			got = r
		}
	}
	if got.Enabled || got.Time != "10:15" || got.Title != "Vitamin D3" {
		t.Fatalf("updates not applied: %+v", got)
	}

	s = service.RemoveReminder(s, added.ID)
	if len(s.Reminders) != before {
		t.Fatalf("remove did not delete")
	}
}

func TestReminderUnknownIDIsNoop(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()

	for _, out := range []model.State{
		service.ToggleReminder(s, "missing"),
		service.UpdateReminderTime(s, "missing", "11:00"),
		service.UpdateReminderTitle(s, "missing", "x"),
		service.RemoveReminder(s, "missing"),
	} {
		if len(out.Reminders) != len(s.Reminders) {
			t.Fatalf("unknown id changed reminder count")
		}
		for i := range out.Reminders {
			if out.Reminders[i] != s.Reminders[i] {
				t.Fatalf("unknown id mutated reminder %d: %+v", i, out.Reminders[i])
			}
		}
	}
}
