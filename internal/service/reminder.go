package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/achrafi04/fitlog/internal/model"
)

// AddReminder appends a new reminder and always succeeds.
func AddReminder(s model.State, title, timeHHMM string, kind model.ReminderKind) model.State {
	reminders := cloneReminders(s.Reminders)
	reminders = append(reminders, model.Reminder{
		ID:      uuid.NewString(),
		Title:   strings.TrimSpace(title),
		Time:    strings.TrimSpace(timeHHMM),
		Enabled: true,
		Kind:    kind,
	})
	s.Reminders = reminders
	return s
}

// RemoveReminder deletes the reminder with the given id, ignoring unknown ids.
func RemoveReminder(s model.State, id string) model.State {
	reminders := make([]model.Reminder, 0, len(s.Reminders))
	for _, r := range s.Reminders {
		if r.ID != id {
			reminders = append(reminders, r)
		}
	}
	if len(reminders) == len(s.Reminders) {
		return s
	}
	s.Reminders = reminders
	return s
}

// ToggleReminder flips the enabled flag of the reminder with the given id.
func ToggleReminder(s model.State, id string) model.State {
	return patchReminder(s, id, func(r *model.Reminder) {
		r.Enabled = !r.Enabled
	})
}

// UpdateReminderTime sets the fire time (HH:MM) of the reminder with the
// given id.
func UpdateReminderTime(s model.State, id, timeHHMM string) model.State {
	return patchReminder(s, id, func(r *model.Reminder) {
		r.Time = strings.TrimSpace(timeHHMM)
	})
}

// UpdateReminderTitle renames the reminder with the given id.
func UpdateReminderTitle(s model.State, id, title string) model.State {
	return patchReminder(s, id, func(r *model.Reminder) {
		r.Title = strings.TrimSpace(title)
	})
}

func patchReminder(s model.State, id string, apply func(*model.Reminder)) model.State {
	found := false
	for i := range s.Reminders {
		if s.Reminders[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return s
	}

	reminders := cloneReminders(s.Reminders)
	for i := range reminders {
		if reminders[i].ID == id {
			apply(&reminders[i])
			break
		}
	}
	s.Reminders = reminders
	return s
}

func cloneReminders(reminders []model.Reminder) []model.Reminder {
	out := make([]model.Reminder, len(reminders))
	copy(out, reminders)
	return out
}
