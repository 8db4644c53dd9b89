// Package achievement serves the static badge list.
package achievement

import "github.com/verte-zerg/prepdeck/internal/model"

// Tracker holds the badge list. Unlock flags come from content and are never
// recomputed from live progress.
type Tracker struct {
	badges []model.Achievement
}

// NewTracker returns a Tracker over a copy of badges.
func NewTracker(badges []model.Achievement) *Tracker {
	return &Tracker{badges: append([]model.Achievement(nil), badges...)}
}

// List returns a copy of the badges in display order.
func (t *Tracker) List() []model.Achievement {
	return append([]model.Achievement(nil), t.badges...)
}

// Unlocked returns how many badges are unlocked.
func (t *Tracker) Unlocked() int {
	n := 0
	for _, b := range t.badges {
		if b.Unlocked {
			n++
		}
	}
	return n
}
