package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/prepdeck/internal/model"
)

// roleModal wraps the role picker form.
type roleModal struct {
	form   *huh.Form
	choice string
}

func newRoleModal(current model.Role) *roleModal {
	m := &roleModal{choice: string(current)}
	options := make([]huh.Option[string], 0, len(model.Roles()))
	for _, r := range model.Roles() {
		label := r.DisplayName()
		if r == model.RolePartner {
			label = "Partner mode"
		}
		options = append(options, huh.NewOption(label, string(r)))
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose your preparation track").
				Options(options...).
				Value(&m.choice),
		),
	).WithTheme(roleTheme()).WithShowHelp(false)
	return m
}

func (m *roleModal) Init() tea.Cmd {
	return m.form.Init()
}

// Update forwards msg to the form and reports whether a role was picked.
func (m *roleModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m.form.State == huh.StateCompleted, cmd
}

func (m *roleModal) Role() model.Role {
	r, _ := model.ParseRole(m.choice)
	return r
}

func (m *roleModal) SetWidth(width int) {
	if width > 8 {
		m.form = m.form.WithWidth(width - 8)
	}
}

func (m *roleModal) View() string {
	return modalStyle.Render(m.form.View() + "\n" + hintStyle.Render("enter select • esc close"))
}

func roleTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(lipgloss.Color("#1FB8CD"))
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	t.Blurred.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	return t
}
