// Package tui provides the Bubble Tea dashboard interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/prepdeck/internal/app"
	"github.com/verte-zerg/prepdeck/internal/model"
	"github.com/verte-zerg/prepdeck/internal/timer"
	"github.com/verte-zerg/prepdeck/internal/view"
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	roleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Padding(0, 1)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// TickMsg advances the study timer when Handle is still live.
type TickMsg struct {
	Handle timer.Handle
}

func scheduleTick(h timer.Handle) tea.Cmd {
	return tea.Tick(timer.Interval, func(time.Time) tea.Msg {
		return TickMsg{Handle: h}
	})
}

// Options selects the initial role and section.
type Options struct {
	Role    model.Role
	Section model.Section
}

// Model implements the Bubble Tea dashboard UI.
type Model struct {
	state  *app.State
	screen *view.Buffer
	keys   keyMap
	help   help.Model
	body   viewport.Model
	modal  *roleModal

	width  int
	height int
}

// NewModel builds the dashboard. Without an initial role the role picker
// opens on startup.
func NewModel(deps app.Deps, opts Options, appOpts ...app.Option) *Model {
	screen := view.NewBuffer()
	m := &Model{
		state:  app.New(deps, screen, appOpts...),
		screen: screen,
		keys:   defaultKeyMap(),
		help:   help.New(),
		body:   viewport.New(0, 0),
	}
	m.body.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}
	if opts.Role != model.RoleNone {
		m.state.SelectRole(opts.Role)
	} else {
		m.modal = newRoleModal(model.RoleNone)
	}
	if opts.Section != "" {
		m.state.Show(opts.Section)
	}
	m.syncBody()
	return m
}

// State exposes the dashboard state.
func (m *Model) State() *app.State {
	return m.state
}

// ModalOpen reports whether the role picker is shown.
func (m *Model) ModalOpen() bool {
	return m.modal != nil
}

// Close releases chart handles.
func (m *Model) Close() {
	m.state.Close()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.modal != nil {
		return m.modal.Init()
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.modal != nil {
			m.modal.SetWidth(msg.Width)
		}
		return m, nil
	case TickMsg:
		eff := m.state.Dispatch(app.Action{Kind: app.ActionTimerTick, Handle: msg.Handle})
		m.syncBody()
		return m, m.tickCmd(eff)
	case tea.KeyMsg:
		if m.modal != nil {
			return m.updateModal(msg)
		}
		return m.handleKey(msg)
	}
	if m.modal != nil {
		return m.updateModal(msg)
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m *Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			m.modal = nil
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
	}
	done, cmd := m.modal.Update(msg)
	if !done {
		return m, cmd
	}
	role := m.modal.Role()
	m.modal = nil
	if role == model.RolePartner {
		m.state.Dispatch(app.Action{Kind: app.ActionPartnerMode})
	} else {
		m.state.Dispatch(app.Action{Kind: app.ActionSelectRole, Role: role})
	}
	m.syncBody()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var action app.Action
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	case key.Matches(msg, m.keys.Role):
		m.modal = newRoleModal(m.state.Role())
		m.modal.SetWidth(m.width)
		return m, m.modal.Init()
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		action = app.Action{Kind: app.ActionShowSection, Section: model.Sections()[idx]}
	case key.Matches(msg, m.keys.Next):
		action = app.Action{Kind: app.ActionNextSection}
	case key.Matches(msg, m.keys.Prev):
		action = app.Action{Kind: app.ActionPrevSection}
	case key.Matches(msg, m.keys.Partner):
		action = app.Action{Kind: app.ActionPartnerMode}
	case key.Matches(msg, m.keys.Start):
		action = app.Action{Kind: app.ActionStartTimer}
	case key.Matches(msg, m.keys.Pause):
		action = app.Action{Kind: app.ActionPauseTimer}
	case key.Matches(msg, m.keys.Reset):
		action = app.Action{Kind: app.ActionResetTimer}
	case key.Matches(msg, m.keys.Preset):
		presets := m.state.Presets()
		idx := presetIndex(msg.String())
		if idx < 0 || idx >= len(presets) {
			return m, nil
		}
		action = app.Action{Kind: app.ActionApplyPreset, Minutes: presets[idx]}
	case key.Matches(msg, m.keys.Up):
		action = app.Action{Kind: app.ActionMoveCursor, Delta: -1}
	case key.Matches(msg, m.keys.Down):
		action = app.Action{Kind: app.ActionMoveCursor, Delta: 1}
	case key.Matches(msg, m.keys.Toggle):
		action = app.Action{Kind: app.ActionToggleSelectedTask}
	default:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	eff := m.state.Dispatch(action)
	m.syncBody()
	return m, m.tickCmd(eff)
}

func (m *Model) tickCmd(eff app.Effect) tea.Cmd {
	if !eff.Tick {
		return nil
	}
	return scheduleTick(eff.Handle)
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderHeader()
	footer := hintStyle.Render(m.help.View(m.keys))
	if m.modal != nil {
		modal := m.modal.View()
		if m.width > 0 && m.height > 0 {
			bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
			if bodyHeight > 0 {
				modal = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, modal)
			}
		}
		return header + "\n" + modal + "\n" + footer
	}
	if m.height == 0 {
		return header + "\n" + m.screen.Compose() + "\n" + footer
	}
	return header + "\n" + m.body.View() + "\n" + footer
}

func (m *Model) renderHeader() string {
	current := m.state.Current()
	parts := make([]string, 0, len(model.Sections())+1)
	for i, s := range model.Sections() {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == current {
			parts = append(parts, activeNavStyle.Render(label))
		} else {
			parts = append(parts, inactiveNavStyle.Render(label))
		}
	}
	role := m.state.Role().DisplayName()
	if role == "" {
		role = "no role"
	}
	parts = append(parts, roleStyle.Render(role))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.state.SetWidth(width)
	m.body.Width = width
	bodyHeight := height - lipgloss.Height(m.renderHeader()) - lipgloss.Height(m.help.View(m.keys)) - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.body.Height = bodyHeight
	m.syncBody()
}

func (m *Model) syncBody() {
	m.body.SetContent(strings.TrimRight(m.screen.Compose(), "\n"))
}
