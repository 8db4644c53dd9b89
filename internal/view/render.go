package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/prepdeck/internal/chart"
	"github.com/verte-zerg/prepdeck/internal/model"
	"github.com/verte-zerg/prepdeck/internal/progress"
)

const (
	// DefaultTitle is shown before any role is picked.
	DefaultTitle = "Interview Preparation Dashboard"

	defaultWidth     = 80
	progressBarWidth = 30
	weeklyHeight     = 6
)

// Frame is everything the renderer needs to draw any section.
type Frame struct {
	Role         model.Role
	Welcome      string
	Countdown    progress.Snapshot
	Phases       map[model.Phase][]string
	Practice     []model.PracticeCard
	Timer        string
	TimerRunning bool
	Tasks        []model.Task
	TaskCursor   int
	Weekly       model.DailyHours
	Metrics      model.PhaseProgress
	Resources    []model.ResourceGroup
	Achievements []model.Achievement
}

// Renderer writes section content to a Surface. Rendering the same Frame
// twice writes the same slot content.
type Renderer struct {
	surface Surface
	charts  *chart.Registry
	width   int
}

// NewRenderer returns a Renderer drawing to surface. Charts are acquired
// through charts; a nil registry uses text charts.
func NewRenderer(surface Surface, charts *chart.Registry) *Renderer {
	if charts == nil {
		charts = chart.NewRegistry(nil)
	}
	return &Renderer{surface: surface, charts: charts, width: defaultWidth}
}

// SetWidth sets the column budget for charts and cards.
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// Width returns the column budget.
func (r *Renderer) Width() int {
	return r.width
}

// ShowOnly marks section visible and every other section hidden.
func (r *Renderer) ShowOnly(section model.Section) {
	for _, s := range model.Sections() {
		r.surface.SetVisible(s, s == section)
	}
}

// Render writes every slot of section.
func (r *Renderer) Render(section model.Section, f Frame) {
	switch section {
	case model.SectionDashboard:
		r.RenderDashboard(f)
	case model.SectionTimeline:
		r.RenderTimeline(f)
	case model.SectionDaily:
		r.RenderTimer(f)
		r.RenderTasks(f)
		r.RenderWeekly(f)
	case model.SectionPractice:
		r.RenderPractice(f)
	case model.SectionResources:
		r.RenderResources(f)
	case model.SectionProgress:
		r.RenderProgress(f)
	}
}

// RenderDashboard writes the welcome title, countdowns and phase progress.
func (r *Renderer) RenderDashboard(f Frame) {
	title := f.Welcome
	if title == "" {
		title = DefaultTitle
	}
	r.surface.RenderSlot(SlotWelcome, titleStyle.Render(title))
	r.surface.RenderSlot(SlotCastCountdown, countdown("Days until cast removal", f.Countdown.DaysUntilCast))
	r.surface.RenderSlot(SlotAppCountdown, countdown("Days until application", f.Countdown.DaysUntilApplication))
	r.surface.RenderSlot(SlotPhaseProgress, headerStyle.Render("Phase 1 progress")+"\n"+progressBar(f.Countdown.PhasePercent, progressBarWidth))
}

func countdown(label string, days int) string {
	return fmt.Sprintf("%s %s", mutedStyle.Render(label+":"), accentStyle.Render(fmt.Sprintf("%d", days)))
}

// RenderTimeline writes the three phase lists. Without a track every list is empty.
func (r *Renderer) RenderTimeline(f Frame) {
	slots := []struct {
		id    SlotID
		phase model.Phase
		title string
	}{
		{SlotPhase1, model.Phase1, "Phase 1: Foundation"},
		{SlotPhase2, model.Phase2, "Phase 2: Skill Building"},
		{SlotPhase3, model.Phase3, "Phase 3: Application"},
	}
	for _, s := range slots {
		items := f.Phases[s.phase]
		if !f.Role.IsTrack() || len(items) == 0 {
			r.surface.RenderSlot(s.id, "")
			continue
		}
		r.surface.RenderSlot(s.id, headerStyle.Render(s.title)+"\n"+bulletList(items))
	}
}

// RenderTimer writes the timer digits.
func (r *Renderer) RenderTimer(f Frame) {
	state := "paused"
	if f.TimerRunning {
		state = "running"
	}
	r.surface.RenderSlot(SlotTimer, lipgloss.JoinHorizontal(lipgloss.Center,
		digitsStyle.Render(f.Timer), "  ", mutedStyle.Render(state)))
}

// RenderTasks writes today's task list with the cursor row marked.
func (r *Renderer) RenderTasks(f Frame) {
	if !f.Role.IsTrack() || len(f.Tasks) == 0 {
		r.surface.RenderSlot(SlotTasks, "")
		return
	}
	lines := []string{headerStyle.Render("Today's tasks")}
	for i, t := range f.Tasks {
		marker := "  "
		if i == f.TaskCursor {
			marker = cursorStyle.Render("> ")
		}
		box, text := "[ ]", t.Text
		if t.Completed {
			box, text = "[x]", doneStyle.Render(t.Text)
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", marker, box, text))
	}
	r.surface.RenderSlot(SlotTasks, strings.Join(lines, "\n"))
}

// RenderWeekly refreshes the weekly study hours chart.
func (r *Renderer) RenderWeekly(f Frame) {
	series := chart.Series{
		Name:   "Weekly study hours",
		Labels: f.Weekly.Labels,
		Values: f.Weekly.Hours,
		Max:    f.Weekly.Max,
	}
	r.surface.RenderSlot(SlotWeeklyChart, r.chart(SlotWeeklyChart, chart.KindLine, series, weeklyHeight))
}

// RenderPractice writes the practice cards. Without a track the slot is empty.
func (r *Renderer) RenderPractice(f Frame) {
	if !f.Role.IsTrack() || len(f.Practice) == 0 {
		r.surface.RenderSlot(SlotPractice, "")
		return
	}
	cards := make([]string, len(f.Practice))
	for i, c := range f.Practice {
		cards[i] = practiceCard(c, r.width-4)
	}
	r.surface.RenderSlot(SlotPractice, lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func practiceCard(c model.PracticeCard, width int) string {
	stats := make([]string, len(c.Stats))
	for i, s := range c.Stats {
		stats[i] = statValue.Render(s.Value) + " " + mutedStyle.Render(s.Label)
	}
	lines := []string{titleStyle.Render(c.Title), c.Description}
	if len(stats) > 0 {
		lines = append(lines, strings.Join(stats, "   "))
	}
	if c.Action != "" {
		lines = append(lines, actionStyle.Render("[ "+c.Action+" ]"))
	}
	style := cardStyle
	if width > 20 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderResources writes every resource group as a table.
func (r *Renderer) RenderResources(f Frame) {
	r.surface.RenderSlot(SlotResources, strings.Join(ResourceLines(f.Resources, headerStyle.Render), "\n"))
}

// ResourceLines formats groups as titled tables. title styles group headings.
func ResourceLines(groups []model.ResourceGroup, title func(...string) string) []string {
	var lines []string
	for i, g := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		heading := g.Title
		if heading == "" {
			heading = g.Key
		}
		lines = append(lines, title(heading))
		rows := make([][]string, len(g.Resources))
		for j, res := range g.Resources {
			rows[j] = []string{res.Name, res.Category, res.Description, res.URL}
		}
		lines = append(lines, formatTable([]string{"Name", "Category", "Description", "URL"}, rows)...)
	}
	return lines
}

// RenderProgress refreshes the overall chart, metrics and achievements.
func (r *Renderer) RenderProgress(f Frame) {
	r.RenderOverallChart(f)
	r.RenderProgressDetails(f)
}

// RenderOverallChart refreshes the completed vs remaining chart.
func (r *Renderer) RenderOverallChart(f Frame) {
	m := f.Metrics
	series := chart.Series{
		Name:   "Overall progress",
		Labels: []string{"Completed", "Remaining"},
		Values: []float64{float64(m.CompletedTasks), float64(m.RemainingTasks())},
	}
	r.surface.RenderSlot(SlotOverallChart, r.chart(SlotOverallChart, chart.KindRatio, series, 0))
}

// RenderProgressDetails writes the metric line and the achievement list.
func (r *Renderer) RenderProgressDetails(f Frame) {
	m := f.Metrics
	r.surface.RenderSlot(SlotProgressMetrics, fmt.Sprintf("%s %d%%   %s %d%%   %s %d",
		mutedStyle.Render("Phase 1:"), m.Phase1Percent,
		mutedStyle.Render("Phase 2:"), m.Phase2Percent,
		mutedStyle.Render("Study hours:"), m.StudyHours))
	r.surface.RenderSlot(SlotAchievements, achievementList(f.Achievements))
}

func achievementList(badges []model.Achievement) string {
	if len(badges) == 0 {
		return ""
	}
	lines := []string{headerStyle.Render("Achievements")}
	for _, a := range badges {
		icon := "🔒"
		title := mutedStyle.Render(a.Title)
		if a.Unlocked {
			icon = "🏆"
			title = titleStyle.Render(a.Title)
		}
		lines = append(lines, fmt.Sprintf("%s %s", icon, title), "   "+mutedStyle.Render(a.Description))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) chart(slot SlotID, kind chart.Kind, s chart.Series, height int) string {
	c, err := r.charts.Refresh(string(slot), kind, s)
	if err != nil {
		return mutedStyle.Render(fmt.Sprintf("Chart unavailable: %v", err))
	}
	return c.Render(r.width-2, height)
}
