package catalog

import (
	"context"
	"database/sql"
	"sort"

	"github.com/verte-zerg/prepdeck/internal/content"
	"github.com/verte-zerg/prepdeck/internal/model"
)

// sharedRole keys phase items that apply to every track.
const sharedRole = ""

func (c *Catalog) seed(ctx context.Context, data content.Content) (err error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO roles (id, welcome, tracked, phase1_pct, phase2_pct, study_hours, completed_tasks, total_tasks)
		 VALUES (?, ?, 0, 0, 0, 0, 0, 0)`,
		string(model.RolePartner), data.PartnerWelcome,
	); err != nil {
		return err
	}

	for _, role := range sortedRoles(data.Roles) {
		if err = seedRole(ctx, tx, data.Roles[role]); err != nil {
			return err
		}
	}
	if err = insertPhaseItems(ctx, tx, sharedRole, model.Phase3, data.Phase3); err != nil {
		return err
	}

	for gi, group := range data.ResourceGroups {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO resource_groups (key, position, title) VALUES (?, ?, ?)`,
			group.Key, gi, group.Title,
		); err != nil {
			return err
		}
		for ri, r := range group.Resources {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO resources (group_key, position, name, url, description, category)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				group.Key, ri, r.Name, r.URL, r.Description, r.Category,
			); err != nil {
				return err
			}
		}
	}

	for i, a := range data.Achievements {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO achievements (id, position, title, description, unlocked) VALUES (?, ?, ?, ?, ?)`,
			a.ID, i, a.Title, a.Description, boolToInt(a.Unlocked),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func seedRole(ctx context.Context, tx *sql.Tx, rc content.RoleContent) error {
	p := rc.Progress
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO roles (id, welcome, tracked, phase1_pct, phase2_pct, study_hours, completed_tasks, total_tasks)
		 VALUES (?, ?, 1, ?, ?, ?, ?, ?)`,
		string(rc.Role), rc.Welcome, p.Phase1Percent, p.Phase2Percent, p.StudyHours, p.CompletedTasks, p.TotalTasks,
	); err != nil {
		return err
	}
	for i, t := range rc.Tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (role, id, position, text, completed) VALUES (?, ?, ?, ?, ?)`,
			string(rc.Role), t.ID, i, t.Text, boolToInt(t.Completed),
		); err != nil {
			return err
		}
	}
	for _, phase := range []model.Phase{model.Phase1, model.Phase2} {
		if err := insertPhaseItems(ctx, tx, string(rc.Role), phase, rc.Phases[phase]); err != nil {
			return err
		}
	}
	for ci, card := range rc.Practice {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO practice_cards (role, position, title, description, action) VALUES (?, ?, ?, ?, ?)`,
			string(rc.Role), ci, card.Title, card.Description, card.Action,
		)
		if err != nil {
			return err
		}
		cardID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for si, s := range card.Stats {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO practice_stats (card_id, position, value, label) VALUES (?, ?, ?, ?)`,
				cardID, si, s.Value, s.Label,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func insertPhaseItems(ctx context.Context, tx *sql.Tx, role string, phase model.Phase, items []string) error {
	for i, text := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO phase_items (role, phase, position, text) VALUES (?, ?, ?, ?)`,
			role, int(phase), i, text,
		); err != nil {
			return err
		}
	}
	return nil
}

func sortedRoles(roles map[model.Role]content.RoleContent) []model.Role {
	out := make([]model.Role, 0, len(roles))
	for r := range roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
