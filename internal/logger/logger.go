package logger

import "go.uber.org/zap"

var log *zap.Logger = zap.NewNop()

// Init builds the production logger used by long-running commands.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger, a no-op until Init has run.
func L() *zap.Logger {
	return log
}
