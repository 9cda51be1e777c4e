// Package cache persists the last-fetched board data in a SQLite
// database so the UI has something to draw before the first server
// round-trip completes.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/trackdeck/trackdeck/internal/models"
)

const (
	scopeProjects = "projects"
	scopeIssues   = "issues/%d"
)

// Cache is a snapshot store keyed by scope. A stale or missing snapshot
// is never an error condition for callers; loads report absence and
// save failures are logged and swallowed. A nil *Cache is valid and
// caches nothing, for when the database could not be opened.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the snapshot database under dir.
func Open(ctx context.Context, dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return open(ctx, filepath.Join(dir, "snapshots.db"))
}

func open(ctx context.Context, path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// Set busy timeout so concurrent saves retry instead of failing
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing cache db", "error", closeErr)
		}
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing cache db", "error", closeErr)
		}
		return nil, fmt.Errorf("cache database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := migrate(ctx, db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing cache db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}

	return &Cache{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			scope TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		)
	`)
	return err
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// SaveProjects replaces the project list snapshot. Failures are logged,
// not returned; the cache must never interrupt a successful fetch.
func (c *Cache) SaveProjects(ctx context.Context, projects []models.Project) {
	c.save(ctx, scopeProjects, projects)
}

// LoadProjects returns the cached project list, reporting whether a
// snapshot existed.
func (c *Cache) LoadProjects(ctx context.Context) ([]models.Project, bool) {
	var projects []models.Project
	if !c.load(ctx, scopeProjects, &projects) {
		return nil, false
	}
	return projects, true
}

// SaveIssues replaces the issue snapshot for one project.
func (c *Cache) SaveIssues(ctx context.Context, projectID int, issues []models.Issue) {
	c.save(ctx, fmt.Sprintf(scopeIssues, projectID), issues)
}

// LoadIssues returns the cached issues for a project.
func (c *Cache) LoadIssues(ctx context.Context, projectID int) ([]models.Issue, bool) {
	var issues []models.Issue
	if !c.load(ctx, fmt.Sprintf(scopeIssues, projectID), &issues) {
		return nil, false
	}
	return issues, true
}

// Clear drops every snapshot. Called on logout so the next account does
// not see the previous account's board.
func (c *Cache) Clear(ctx context.Context) {
	if c == nil {
		return
	}
	if _, err := c.db.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		slog.Error("failed to clear snapshots", "error", err)
	}
}

func (c *Cache) save(ctx context.Context, scope string, v any) {
	if c == nil {
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode snapshot", "scope", scope, "error", err)
		return
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO snapshots (scope, body, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET body = excluded.body, saved_at = excluded.saved_at
	`, scope, string(body), time.Now().UTC())
	if err != nil {
		slog.Error("failed to save snapshot", "scope", scope, "error", err)
	}
}

func (c *Cache) load(ctx context.Context, scope string, v any) bool {
	if c == nil {
		return false
	}
	var body string
	err := c.db.QueryRowContext(ctx,
		`SELECT body FROM snapshots WHERE scope = ?`, scope).Scan(&body)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		slog.Error("failed to load snapshot", "scope", scope, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		slog.Error("failed to decode snapshot", "scope", scope, "error", err)
		return false
	}
	return true
}
