package timer

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/achrafi04/fitlog/internal/model"
)

// Notifier delivers a reminder to the user. Implementations that cannot
// reach a notification surface should degrade to a no-op.
type Notifier interface {
	Notify(title, body string)
}

// ReminderScanner watches the wall clock and fires enabled reminders when
// their HH:MM comes up, at most once per reminder per calendar day. The
// dedup map lives in memory only, so reminders re-arm on every restart
// within the same day.
type ReminderScanner struct {
	clock     Clock
	notifier  Notifier
	log       *zap.Logger
	reminders func() []model.Reminder
	lastFired map[string]string // reminder id -> date last fired
}

// NewReminderScanner builds a scanner over a reminders source. The source is
// called on every tick so edits take effect without a restart.
func NewReminderScanner(clock Clock, notifier Notifier, log *zap.Logger, reminders func() []model.Reminder) *ReminderScanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReminderScanner{
		clock:     clock,
		notifier:  notifier,
		log:       log,
		reminders: reminders,
		lastFired: make(map[string]string),
	}
}

// Start runs the scan on a one-second tick. Stop the returned cron to tear
// the scanner down.
func (sc *ReminderScanner) Start() (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc("@every 1s", func() {
		sc.scanOnce(sc.clock.Now())
	}); err != nil {
		return nil, fmt.Errorf("schedule reminder scan: %w", err)
	}
	c.Start()
	return c, nil
}

func (sc *ReminderScanner) scanOnce(now time.Time) {
	current := now.Format("15:04")
	today := now.Format("2006-01-02")

	for _, r := range sc.reminders() {
		if !r.Enabled || r.Time != current {
			continue
		}
		if sc.lastFired[r.ID] == today {
			continue
		}
		sc.lastFired[r.ID] = today
		sc.log.Info("reminder fired",
			zap.String("id", r.ID),
			zap.String("title", r.Title),
			zap.String("time", r.Time),
		)
		sc.notifier.Notify(r.Title, reminderBody(r.Kind))
	}
}

func reminderBody(kind model.ReminderKind) string {
	switch kind {
	case model.ReminderWater:
		return "Time to drink some water."
	case model.ReminderMeal:
		return "Time to eat."
	case model.ReminderSupp:
		return "Time to take your supplements."
	}
	return "Reminder"
}
