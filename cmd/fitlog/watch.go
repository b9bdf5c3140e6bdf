package fitlog

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/achrafi04/fitlog/internal/config"
	"github.com/achrafi04/fitlog/internal/logger"
	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/store"
	"github.com/achrafi04/fitlog/internal/timer"
)

// consoleNotifier prints reminders to the terminal with a bell. A desktop
// notification surface would slot in behind the same interface; when none is
// available this is the degraded no-op-adjacent path.
type consoleNotifier struct {
	out *os.File
}

func (n consoleNotifier) Notify(title, body string) {
	fmt.Fprintf(n.out, "\a[%s] %s\n", title, body)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run in the foreground and fire reminders at their times",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(); err != nil {
			return err
		}
		log := logger.L()
		defer log.Sync()

		cfg := config.Load(log)
		if dbPath == "" && cfg.DBPath != "" {
			dbPath = cfg.DBPath
		}

		return withStore(func(st *store.Store) error {
			st.WithLogger(log)

			// re-read on every tick so reminder edits apply without restart
			reminders := func() []model.Reminder {
				state, err := st.Load()
				if err != nil {
					log.Warn("reload reminders", zap.Error(err))
					return nil
				}
				return state.Reminders
			}

			scanner := timer.NewReminderScanner(
				timer.SystemClock(),
				consoleNotifier{out: os.Stdout},
				log,
				reminders,
			)
			c, err := scanner.Start()
			if err != nil {
				return err
			}
			log.Info("reminder watch started")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			<-c.Stop().Done()
			log.Info("reminder watch stopped")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
