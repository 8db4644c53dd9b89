// Package profile holds per-role study content and the current role selection.
package profile

import (
	"context"
	"fmt"

	"github.com/verte-zerg/prepdeck/internal/model"
)

// Source provides seed content per role.
type Source interface {
	Welcome(ctx context.Context, role model.Role) (string, error)
	Progress(ctx context.Context, role model.Role) (model.PhaseProgress, bool, error)
	Tasks(ctx context.Context, role model.Role) ([]model.Task, error)
	PhaseItems(ctx context.Context, role model.Role, phase model.Phase) ([]string, error)
	Practice(ctx context.Context, role model.Role) ([]model.PracticeCard, error)
}

// Profile is the preloaded content of one role.
type Profile struct {
	Role        model.Role
	Welcome     string
	Progress    model.PhaseProgress
	HasProgress bool
	Tasks       []model.Task
	Phases      map[model.Phase][]string
	Practice    []model.PracticeCard
}

// Store keeps the current role and its working task list.
type Store struct {
	profiles map[model.Role]Profile
	role     model.Role
	tasks    []model.Task
}

// New preloads every role from src so later reads cannot fail.
func New(ctx context.Context, src Source) (*Store, error) {
	s := &Store{profiles: map[model.Role]Profile{}}
	for _, role := range model.Roles() {
		p, err := loadProfile(ctx, src, role)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s profile: %w", role, err)
		}
		s.profiles[role] = p
	}
	return s, nil
}

func loadProfile(ctx context.Context, src Source, role model.Role) (Profile, error) {
	p := Profile{Role: role, Phases: map[model.Phase][]string{}}
	var err error
	if p.Welcome, err = src.Welcome(ctx, role); err != nil {
		return Profile{}, err
	}
	if p.Progress, p.HasProgress, err = src.Progress(ctx, role); err != nil {
		return Profile{}, err
	}
	if !role.IsTrack() {
		return p, nil
	}
	if p.Tasks, err = src.Tasks(ctx, role); err != nil {
		return Profile{}, err
	}
	for _, phase := range []model.Phase{model.Phase1, model.Phase2, model.Phase3} {
		items, err := src.PhaseItems(ctx, role, phase)
		if err != nil {
			return Profile{}, err
		}
		p.Phases[phase] = items
	}
	if p.Practice, err = src.Practice(ctx, role); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Role returns the current role, RoleNone before any selection.
func (s *Store) Role() model.Role {
	return s.role
}

// SelectRole switches to role and regenerates its task list from seed.
// It returns the sections whose content changed; unknown roles return nil.
func (s *Store) SelectRole(role model.Role) []model.Section {
	if role == model.RolePartner {
		return s.SelectPartnerMode()
	}
	if !role.IsTrack() {
		return nil
	}
	s.role = role
	s.tasks = cloneTasks(s.profiles[role].Tasks)
	return []model.Section{
		model.SectionDashboard,
		model.SectionTimeline,
		model.SectionPractice,
		model.SectionDaily,
		model.SectionProgress,
	}
}

// SelectPartnerMode switches to the reduced partner view. Only the dashboard changes.
func (s *Store) SelectPartnerMode() []model.Section {
	s.role = model.RolePartner
	s.tasks = nil
	return []model.Section{model.SectionDashboard}
}

// Welcome returns the welcome title for the current role, or "" before a selection.
func (s *Store) Welcome() string {
	return s.profiles[s.role].Welcome
}

// Tasks returns a copy of the working task list.
func (s *Store) Tasks() []model.Task {
	return cloneTasks(s.tasks)
}

// ToggleTask flips completion of the task with id. Unknown ids are ignored.
func (s *Store) ToggleTask(id int) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return true
		}
	}
	return false
}

// PhaseItems returns the bullet list for phase, or nil outside a track.
func (s *Store) PhaseItems(phase model.Phase) []string {
	if !s.role.IsTrack() {
		return nil
	}
	return append([]string(nil), s.profiles[s.role].Phases[phase]...)
}

// Practice returns the practice cards, or nil outside a track.
func (s *Store) Practice() []model.PracticeCard {
	if !s.role.IsTrack() {
		return nil
	}
	return append([]model.PracticeCard(nil), s.profiles[s.role].Practice...)
}

// Metrics returns the current role's progress, falling back to the
// software-engineer metrics when the role has none.
func (s *Store) Metrics() model.PhaseProgress {
	if p := s.profiles[s.role]; p.HasProgress {
		return p.Progress
	}
	return s.profiles[model.RoleSoftwareEngineer].Progress
}

func cloneTasks(tasks []model.Task) []model.Task {
	if tasks == nil {
		return nil
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}
