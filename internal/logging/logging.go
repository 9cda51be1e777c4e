package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing to
// $XDG_STATE_HOME/trackdeck/trackdeck.log (or ~/.local/state/...) with
// size-based rotation. Text format for human readability.
// A TUI owns the terminal, so nothing may log to stdout or stderr.
func Init() error {
	logDir, err := stateDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	out := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "trackdeck.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect the standard log package to the same file so stray
	// library output cannot corrupt the terminal.
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags)

	return nil
}

func stateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "trackdeck"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", "trackdeck"), nil
}
