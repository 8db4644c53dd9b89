// Package app owns the dashboard state and maps user actions to operations.
package app

import (
	"log/slog"

	"github.com/verte-zerg/prepdeck/internal/achievement"
	"github.com/verte-zerg/prepdeck/internal/chart"
	"github.com/verte-zerg/prepdeck/internal/logging"
	"github.com/verte-zerg/prepdeck/internal/model"
	"github.com/verte-zerg/prepdeck/internal/nav"
	"github.com/verte-zerg/prepdeck/internal/profile"
	"github.com/verte-zerg/prepdeck/internal/progress"
	"github.com/verte-zerg/prepdeck/internal/timer"
	"github.com/verte-zerg/prepdeck/internal/view"
)

// Option customizes a State.
type Option func(*State)

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPresets overrides the timer presets in minutes.
func WithPresets(presets []int) Option {
	return func(s *State) {
		if len(presets) > 0 {
			s.presets = append([]int(nil), presets...)
		}
	}
}

// WithChartFactory sets how chart handles are created.
func WithChartFactory(f chart.Factory) Option {
	return func(s *State) {
		s.charts = chart.NewRegistry(f)
	}
}

// State is the single owner of timer, role, section and chart state.
// Every mutation re-renders only the slots it affects. Chart sections are
// recomputed when they are shown.
type State struct {
	timer     *timer.Timer
	profiles  *profile.Store
	nav       *nav.Navigator
	charts    *chart.Registry
	calc      progress.Calculator
	badges    *achievement.Tracker
	renderer  *view.Renderer
	weekly    model.DailyHours
	resources []model.ResourceGroup
	presets   []int
	cursor    int
	logger    *slog.Logger
}

// New builds a State drawing to surface and renders the initial dashboard.
func New(deps Deps, surface view.Surface, opts ...Option) *State {
	s := &State{
		timer:     timer.New(),
		profiles:  deps.Profiles,
		nav:       nav.New(),
		calc:      progress.NewCalculator(deps.Calendar),
		badges:    achievement.NewTracker(deps.Achievements),
		weekly:    deps.Weekly,
		resources: deps.Resources,
		presets:   append([]int(nil), timer.DefaultPresets...),
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.charts == nil {
		s.charts = chart.NewRegistry(nil)
	}
	s.renderer = view.NewRenderer(surface, s.charts)

	f := s.frame()
	s.renderer.RenderDashboard(f)
	s.renderer.RenderResources(f)
	s.renderer.RenderTimer(f)
	s.renderer.RenderProgressDetails(f)
	s.renderer.ShowOnly(s.nav.Current())
	return s
}

// Close releases chart handles.
func (s *State) Close() {
	s.charts.Close()
}

// Role returns the current role.
func (s *State) Role() model.Role { return s.profiles.Role() }

// Welcome is the dashboard title for the current role, empty before one is chosen.
func (s *State) Welcome() string { return s.profiles.Welcome() }

// Current returns the visible section.
func (s *State) Current() model.Section { return s.nav.Current() }

// Visible reports whether section is the visible one.
func (s *State) Visible(section model.Section) bool { return s.nav.Visible(section) }

// Timer returns the study timer for read access.
func (s *State) Timer() *timer.Timer { return s.timer }

// Tasks returns the working task list.
func (s *State) Tasks() []model.Task { return s.profiles.Tasks() }

// Cursor returns the selected task index.
func (s *State) Cursor() int { return s.cursor }

// Presets returns the timer presets in minutes.
func (s *State) Presets() []int { return append([]int(nil), s.presets...) }

// Snapshot returns the countdown state.
func (s *State) Snapshot() progress.Snapshot { return s.calc.Snapshot() }

// Metrics returns the progress metrics of the current role.
func (s *State) Metrics() model.PhaseProgress { return s.profiles.Metrics() }

// Frame returns the full render input for the current state.
func (s *State) Frame() view.Frame { return s.frame() }

// SetWidth sets the render width and redraws the visible section.
func (s *State) SetWidth(width int) {
	if width == s.renderer.Width() {
		return
	}
	s.renderer.SetWidth(width)
	s.renderer.Render(s.nav.Current(), s.frame())
}

// SelectRole switches role and re-renders the sections whose content depends
// on it. Unknown roles are ignored.
func (s *State) SelectRole(role model.Role) bool {
	if role == model.RolePartner {
		s.SelectPartnerMode()
		return true
	}
	affected := s.profiles.SelectRole(role)
	s.logger.Debug("select_role", "role", string(role), "accepted", affected != nil)
	if affected == nil {
		return false
	}
	s.cursor = 0
	s.refresh(affected)
	return true
}

// SelectPartnerMode switches to the partner view.
func (s *State) SelectPartnerMode() {
	affected := s.profiles.SelectPartnerMode()
	s.logger.Debug("select_partner_mode")
	s.cursor = 0
	s.refresh(affected)
	// The task list was dropped; clear whatever the previous role drew.
	s.renderer.RenderTasks(s.frame())
}

// Show makes section the only visible one and recomputes its content.
// Unknown sections are ignored.
func (s *State) Show(section model.Section) bool {
	ok := s.nav.Show(section)
	s.logger.Debug("show_section", "section", string(section), "accepted", ok)
	if !ok {
		return false
	}
	s.renderer.ShowOnly(section)
	s.renderer.Render(section, s.frame())
	return true
}

// StartTimer starts the study timer. It returns the handle to tick with and
// false when the timer was already running.
func (s *State) StartTimer() (timer.Handle, bool) {
	h, ok := s.timer.Start()
	s.logger.Debug("timer_start", "handle", uint64(h), "started", ok)
	if ok {
		s.renderer.RenderTimer(s.frame())
	}
	return h, ok
}

// PauseTimer stops ticking and keeps the elapsed time.
func (s *State) PauseTimer() {
	wasRunning := s.timer.Running()
	s.timer.Pause()
	s.logger.Debug("timer_pause", "was_running", wasRunning)
	if wasRunning {
		s.renderer.RenderTimer(s.frame())
	}
}

// ResetTimer stops the timer and zeroes it.
func (s *State) ResetTimer() {
	s.timer.Reset()
	s.logger.Debug("timer_reset")
	s.renderer.RenderTimer(s.frame())
}

// ApplyPreset resets the timer to minutes:00.
func (s *State) ApplyPreset(minutes int) {
	s.timer.SetPreset(minutes)
	s.logger.Debug("timer_preset", "minutes", minutes)
	s.renderer.RenderTimer(s.frame())
}

// TimerTick advances the timer if h is live. It reports whether the next
// tick should be scheduled.
func (s *State) TimerTick(h timer.Handle) bool {
	if !s.timer.Tick(h) {
		s.logger.Debug("timer_tick_dropped", "handle", uint64(h))
		return false
	}
	s.renderer.RenderTimer(s.frame())
	return true
}

// ToggleTask flips completion of task id. Unknown ids are ignored.
func (s *State) ToggleTask(id int) bool {
	ok := s.profiles.ToggleTask(id)
	s.logger.Debug("toggle_task", "id", id, "found", ok)
	if ok {
		s.renderer.RenderTasks(s.frame())
	}
	return ok
}

// ToggleSelectedTask toggles the task under the cursor.
func (s *State) ToggleSelectedTask() bool {
	tasks := s.profiles.Tasks()
	if s.cursor < 0 || s.cursor >= len(tasks) {
		return false
	}
	return s.ToggleTask(tasks[s.cursor].ID)
}

// MoveCursor moves the task cursor by delta, clamped to the list.
func (s *State) MoveCursor(delta int) {
	n := len(s.profiles.Tasks())
	if n == 0 {
		return
	}
	next := s.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	if next == s.cursor {
		return
	}
	s.cursor = next
	s.renderer.RenderTasks(s.frame())
}

// refresh re-renders role-dependent slots. Charts are left for Show unless
// their section is on screen.
func (s *State) refresh(sections []model.Section) {
	f := s.frame()
	for _, section := range sections {
		switch section {
		case model.SectionDaily:
			s.renderer.RenderTasks(f)
		case model.SectionProgress:
			s.renderer.RenderProgressDetails(f)
			if s.nav.Visible(section) {
				s.renderer.RenderOverallChart(f)
			}
		default:
			s.renderer.Render(section, f)
		}
	}
}

func (s *State) frame() view.Frame {
	phases := map[model.Phase][]string{}
	for _, p := range []model.Phase{model.Phase1, model.Phase2, model.Phase3} {
		phases[p] = s.profiles.PhaseItems(p)
	}
	return view.Frame{
		Role:         s.profiles.Role(),
		Welcome:      s.profiles.Welcome(),
		Countdown:    s.calc.Snapshot(),
		Phases:       phases,
		Practice:     s.profiles.Practice(),
		Timer:        s.timer.Display(),
		TimerRunning: s.timer.Running(),
		Tasks:        s.profiles.Tasks(),
		TaskCursor:   s.cursor,
		Weekly:       s.weekly,
		Metrics:      s.profiles.Metrics(),
		Resources:    s.resources,
		Achievements: s.badges.List(),
	}
}
