package app

import (
	"github.com/verte-zerg/prepdeck/internal/model"
	"github.com/verte-zerg/prepdeck/internal/timer"
)

// ActionKind enumerates user actions.
type ActionKind int

// User actions. Each maps to exactly one State operation.
const (
	ActionSelectRole ActionKind = iota
	ActionPartnerMode
	ActionShowSection
	ActionNextSection
	ActionPrevSection
	ActionStartTimer
	ActionPauseTimer
	ActionResetTimer
	ActionApplyPreset
	ActionTimerTick
	ActionToggleTask
	ActionToggleSelectedTask
	ActionMoveCursor
)

// Action is a user action with its argument.
type Action struct {
	Kind    ActionKind
	Role    model.Role
	Section model.Section
	Minutes int
	TaskID  int
	Delta   int
	Handle  timer.Handle
}

// Effect tells the caller whether a timer tick must be scheduled.
type Effect struct {
	Tick   bool
	Handle timer.Handle
}

// Dispatch applies a.
func (s *State) Dispatch(a Action) Effect {
	switch a.Kind {
	case ActionSelectRole:
		s.SelectRole(a.Role)
	case ActionPartnerMode:
		s.SelectPartnerMode()
	case ActionShowSection:
		s.Show(a.Section)
	case ActionNextSection:
		s.Show(s.nav.Next())
	case ActionPrevSection:
		s.Show(s.nav.Prev())
	case ActionStartTimer:
		if h, ok := s.StartTimer(); ok {
			return Effect{Tick: true, Handle: h}
		}
	case ActionPauseTimer:
		s.PauseTimer()
	case ActionResetTimer:
		s.ResetTimer()
	case ActionApplyPreset:
		s.ApplyPreset(a.Minutes)
	case ActionTimerTick:
		if s.TimerTick(a.Handle) {
			return Effect{Tick: true, Handle: a.Handle}
		}
	case ActionToggleTask:
		s.ToggleTask(a.TaskID)
	case ActionToggleSelectedTask:
		s.ToggleSelectedTask()
	case ActionMoveCursor:
		s.MoveCursor(a.Delta)
	}
	return Effect{}
}
