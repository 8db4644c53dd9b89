// Package nav tracks which dashboard section is visible.
package nav

import "github.com/verte-zerg/prepdeck/internal/model"

// Navigator keeps exactly one section visible.
type Navigator struct {
	sections []model.Section
	current  model.Section
}

// New returns a Navigator showing the dashboard.
func New() *Navigator {
	return &Navigator{
		sections: model.Sections(),
		current:  model.SectionDashboard,
	}
}

// Current returns the visible section.
func (n *Navigator) Current() model.Section {
	return n.current
}

// Sections returns all sections in navigation order.
func (n *Navigator) Sections() []model.Section {
	return append([]model.Section(nil), n.sections...)
}

// Visible reports whether s is the visible section.
func (n *Navigator) Visible(s model.Section) bool {
	return s == n.current
}

// Show makes s the only visible section. Unknown sections are ignored and
// return false; the caller refreshes s only when Show returns true.
func (n *Navigator) Show(s model.Section) bool {
	if n.index(s) < 0 {
		return false
	}
	n.current = s
	return true
}

// Next returns the section after the current one, wrapping around.
func (n *Navigator) Next() model.Section {
	return n.step(1)
}

// Prev returns the section before the current one, wrapping around.
func (n *Navigator) Prev() model.Section {
	return n.step(-1)
}

func (n *Navigator) step(delta int) model.Section {
	count := len(n.sections)
	idx := (n.index(n.current) + delta + count) % count
	return n.sections[idx]
}

func (n *Navigator) index(s model.Section) int {
	for i, sec := range n.sections {
		if sec == s {
			return i
		}
	}
	return -1
}
