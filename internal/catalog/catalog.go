// Package catalog serves study content from an in-memory SQLite database.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/verte-zerg/prepdeck/internal/content"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Catalog wraps read access to the seeded content.
type Catalog struct {
	db *sql.DB
}

// Open creates an in-memory database and seeds it with c.
func Open(ctx context.Context, c content.Content) (*Catalog, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every connection gets its own :memory: database.
	db.SetMaxOpenConns(1)
	cat := &Catalog{db: db}
	if err := cat.migrate(ctx); err != nil {
		cat.closeQuietly()
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	if err := cat.seed(ctx, c); err != nil {
		cat.closeQuietly()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return cat, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) closeQuietly() {
	if cerr := c.db.Close(); cerr != nil {
		// Best-effort close on setup failure.
		_ = cerr
	}
}

func (c *Catalog) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE roles (
			id TEXT PRIMARY KEY,
			welcome TEXT NOT NULL,
			tracked INTEGER NOT NULL,
			phase1_pct INTEGER NOT NULL,
			phase2_pct INTEGER NOT NULL,
			study_hours INTEGER NOT NULL,
			completed_tasks INTEGER NOT NULL,
			total_tasks INTEGER NOT NULL
		);`,
		`CREATE TABLE tasks (
			role TEXT NOT NULL,
			id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			completed INTEGER NOT NULL,
			PRIMARY KEY (role, id)
		);`,
		`CREATE TABLE phase_items (
			role TEXT NOT NULL,
			phase INTEGER NOT NULL,
			position INTEGER NOT NULL,
			text TEXT NOT NULL
		);`,
		`CREATE TABLE practice_cards (
			id INTEGER PRIMARY KEY,
			role TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			action TEXT NOT NULL
		);`,
		`CREATE TABLE practice_stats (
			card_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			value TEXT NOT NULL,
			label TEXT NOT NULL
		);`,
		`CREATE TABLE resource_groups (
			key TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL
		);`,
		`CREATE TABLE resources (
			group_key TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			url TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL
		);`,
		`CREATE TABLE achievements (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			unlocked INTEGER NOT NULL
		);`,
		`CREATE INDEX idx_tasks_role ON tasks(role, position);`,
		`CREATE INDEX idx_phase_items_role ON phase_items(role, phase, position);`,
		`CREATE INDEX idx_resources_group ON resources(group_key, position);`,
	}
	for _, stmt := range stmts {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
