// Package launcher wires the application together and runs the TUI.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/joho/godotenv"

	"github.com/trackdeck/trackdeck/internal/api"
	"github.com/trackdeck/trackdeck/internal/cache"
	"github.com/trackdeck/trackdeck/internal/config"
	"github.com/trackdeck/trackdeck/internal/logging"
	"github.com/trackdeck/trackdeck/internal/session"
	"github.com/trackdeck/trackdeck/internal/tui"
)

// Launch starts the TUI application
func Launch() error {
	// Optional .env for local development. Missing file is fine.
	_ = godotenv.Load()

	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("failed to locate config directory: %w", err)
	}

	store := session.NewStore(dir)

	// The snapshot cache is optional: without it the app just starts
	// with a blank dashboard until the first fetch lands.
	snapshots, err := cache.Open(ctx, dir)
	if err != nil {
		slog.Warn("failed to open snapshot cache", "error", err)
		slog.Info("continuing without offline snapshots")
		snapshots = nil
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			slog.Error("error closing snapshot cache", "error", err)
		}
	}()

	client := api.New(cfg.Server.URL, cfg.Server.RequestTimeout, store)

	model := tui.InitialModel(client, store, snapshots, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// On a 401 the server no longer honors the stored token. Drop it
	// and push the user back to the login screen.
	client.OnUnauthorized = func() {
		store.Clear()
		p.Send(tui.SessionExpiredMsg{})
	}

	if _, err := p.Run(); err != nil {
		// A shutdown signal cancels the context and kills the
		// program; that is a clean exit, not a failure.
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
