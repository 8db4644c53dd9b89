package teatest

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

type counter struct {
	n      int
	width  int
	quit   bool
	events []string
}

func (c *counter) Init() tea.Cmd {
	return func() tea.Msg { return bumpMsg{} }
}

func (c *counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.n++
	case tea.QuitMsg:
		c.quit = true
	case tea.KeyMsg:
		c.events = append(c.events, msg.String())
		switch msg.String() {
		case "b":
			return c, tea.Batch(
				func() tea.Msg { return bumpMsg{} },
				func() tea.Msg { return bumpMsg{} },
			)
		case "s":
			return c, tea.Tick(time.Second, func(time.Time) tea.Msg { return bumpMsg{} })
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c *counter) View() string {
	return fmt.Sprintf("n=%d w=%d", c.n, c.width)
}

func TestDriverRunsInitAndBatches(t *testing.T) {
	c := &counter{}
	d := New(t, c, WithSize(80, 24))
	d.DrainInit()
	assert.Equal(t, "n=1 w=80", d.View())

	d.PressKey('b')
	assert.Equal(t, 3, c.n)
}

func TestDriverDropsSlowCommands(t *testing.T) {
	c := &counter{}
	d := New(t, c)
	d.PressKey('s')
	assert.Equal(t, 0, c.n)
}

func TestDriverStopsAfterQuit(t *testing.T) {
	c := &counter{}
	d := New(t, c)
	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.True(t, c.quit)

	d.Type("xy")
	assert.Equal(t, []string{"q"}, c.events)
}

func TestDriverSpecialKeys(t *testing.T) {
	c := &counter{}
	d := New(t, c)
	d.PressEnter()
	d.PressEsc()
	d.PressDown()
	d.Press(tea.KeyTab)
	assert.Equal(t, []string{"enter", "esc", "down", "tab"}, c.events)
}
