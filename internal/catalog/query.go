package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/verte-zerg/prepdeck/internal/model"
)

// Welcome returns the welcome title for a role, or "" when the role is unknown.
func (c *Catalog) Welcome(ctx context.Context, role model.Role) (string, error) {
	var welcome string
	err := c.db.QueryRowContext(ctx, `SELECT welcome FROM roles WHERE id = ?`, string(role)).Scan(&welcome)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return welcome, err
}

// Progress returns the seeded metrics for a track. The bool is false when the
// role has no metrics of its own.
func (c *Catalog) Progress(ctx context.Context, role model.Role) (model.PhaseProgress, bool, error) {
	var p model.PhaseProgress
	err := c.db.QueryRowContext(ctx,
		`SELECT phase1_pct, phase2_pct, study_hours, completed_tasks, total_tasks
		 FROM roles WHERE id = ? AND tracked = 1`, string(role),
	).Scan(&p.Phase1Percent, &p.Phase2Percent, &p.StudyHours, &p.CompletedTasks, &p.TotalTasks)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PhaseProgress{}, false, nil
	}
	if err != nil {
		return model.PhaseProgress{}, false, err
	}
	return p, true, nil
}

// Tasks returns the seed task list for a role in display order.
func (c *Catalog) Tasks(ctx context.Context, role model.Role) ([]model.Task, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, text, completed FROM tasks WHERE role = ? ORDER BY position ASC`, string(role))
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Text, &completed); err != nil {
			return nil, err
		}
		t.Completed = completed != 0
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// PhaseItems returns the bullet list for a phase. Role-specific items take
// precedence; phases without them fall back to the shared list.
func (c *Catalog) PhaseItems(ctx context.Context, role model.Role, phase model.Phase) ([]string, error) {
	items, err := c.phaseItems(ctx, string(role), phase)
	if err != nil || len(items) > 0 {
		return items, err
	}
	return c.phaseItems(ctx, sharedRole, phase)
}

func (c *Catalog) phaseItems(ctx context.Context, role string, phase model.Phase) ([]string, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT text FROM phase_items WHERE role = ? AND phase = ? ORDER BY position ASC`, role, int(phase))
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var items []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		items = append(items, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Practice returns the practice cards for a role with their stats.
func (c *Catalog) Practice(ctx context.Context, role model.Role) ([]model.PracticeCard, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT pc.id, pc.title, pc.description, pc.action, ps.value, ps.label
		 FROM practice_cards pc
		 LEFT JOIN practice_stats ps ON ps.card_id = pc.id
		 WHERE pc.role = ?
		 ORDER BY pc.position ASC, ps.position ASC`, string(role))
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var cards []model.PracticeCard
	lastID := int64(-1)
	for rows.Next() {
		var id int64
		var card model.PracticeCard
		var value, label sql.NullString
		if err := rows.Scan(&id, &card.Title, &card.Description, &card.Action, &value, &label); err != nil {
			return nil, err
		}
		if id != lastID {
			cards = append(cards, card)
			lastID = id
		}
		if value.Valid {
			cur := &cards[len(cards)-1]
			cur.Stats = append(cur.Stats, model.PracticeStat{Value: value.String, Label: label.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// ResourceGroups returns every resource group with its resources.
func (c *Catalog) ResourceGroups(ctx context.Context) ([]model.ResourceGroup, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT g.key, g.title, r.name, r.url, r.description, r.category
		 FROM resource_groups g
		 LEFT JOIN resources r ON r.group_key = g.key
		 ORDER BY g.position ASC, r.position ASC`)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var groups []model.ResourceGroup
	for rows.Next() {
		var key, title string
		var name, url, desc, category sql.NullString
		if err := rows.Scan(&key, &title, &name, &url, &desc, &category); err != nil {
			return nil, err
		}
		if len(groups) == 0 || groups[len(groups)-1].Key != key {
			groups = append(groups, model.ResourceGroup{Key: key, Title: title})
		}
		if name.Valid {
			cur := &groups[len(groups)-1]
			cur.Resources = append(cur.Resources, model.Resource{
				Group:       key,
				Name:        name.String,
				URL:         url.String,
				Description: desc.String,
				Category:    category.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// Achievements returns the badge list in display order.
func (c *Catalog) Achievements(ctx context.Context) ([]model.Achievement, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, description, unlocked FROM achievements ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var out []model.Achievement
	for rows.Next() {
		var a model.Achievement
		var unlocked int
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &unlocked); err != nil {
			return nil, err
		}
		a.Unlocked = unlocked != 0
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func closeRows(rows *sql.Rows) {
	if cerr := rows.Close(); cerr != nil {
		// Best-effort rows close.
		_ = cerr
	}
}
