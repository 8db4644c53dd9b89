// Package model defines shared data structures.
package model

import "time"

// Role is the preparation track a user follows.
type Role string

// Roles known to the dashboard. RoleNone means no role has been picked yet.
const (
	RoleNone             Role = ""
	RoleSoftwareEngineer Role = "software-engineer"
	RoleProjectManager   Role = "project-manager"
	RolePartner          Role = "partner"
)

// Roles lists the selectable roles in display order.
func Roles() []Role {
	return []Role{RoleSoftwareEngineer, RoleProjectManager, RolePartner}
}

// ParseRole maps an identifier to a Role. Unknown identifiers return false.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, true
		}
	}
	return RoleNone, false
}

// DisplayName returns the human label for a role.
func (r Role) DisplayName() string {
	switch r {
	case RoleSoftwareEngineer:
		return "Software Engineer"
	case RoleProjectManager:
		return "Project Manager"
	case RolePartner:
		return "Partner"
	default:
		return ""
	}
}

// IsTrack reports whether the role has its own study content.
func (r Role) IsTrack() bool {
	return r == RoleSoftwareEngineer || r == RoleProjectManager
}

// Section is one of the mutually exclusive dashboard views.
type Section string

// Sections of the dashboard.
const (
	SectionDashboard Section = "dashboard"
	SectionTimeline  Section = "timeline"
	SectionDaily     Section = "daily"
	SectionPractice  Section = "practice"
	SectionResources Section = "resources"
	SectionProgress  Section = "progress"
)

// Sections lists all sections in navigation order.
func Sections() []Section {
	return []Section{
		SectionDashboard,
		SectionTimeline,
		SectionDaily,
		SectionPractice,
		SectionResources,
		SectionProgress,
	}
}

// ParseSection maps an identifier to a Section. Unknown identifiers return false.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections() {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// Title returns the heading shown for a section.
func (s Section) Title() string {
	switch s {
	case SectionDashboard:
		return "Dashboard"
	case SectionTimeline:
		return "Timeline"
	case SectionDaily:
		return "Daily"
	case SectionPractice:
		return "Practice"
	case SectionResources:
		return "Resources"
	case SectionProgress:
		return "Progress"
	default:
		return string(s)
	}
}

// Task is a single item on the daily task list.
type Task struct {
	ID        int
	Text      string
	Completed bool
}

// Achievement is an unlockable badge.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
}

// PhaseProgress holds per-role progress metrics.
type PhaseProgress struct {
	Phase1Percent  int
	Phase2Percent  int
	StudyHours     int
	CompletedTasks int
	TotalTasks     int
}

// RemainingTasks returns TotalTasks minus CompletedTasks, floored at zero.
func (p PhaseProgress) RemainingTasks() int {
	if p.CompletedTasks >= p.TotalTasks {
		return 0
	}
	return p.TotalTasks - p.CompletedTasks
}

// PracticeStat is a labelled value on a practice card.
type PracticeStat struct {
	Value string
	Label string
}

// PracticeCard describes one practice drill.
type PracticeCard struct {
	Title       string
	Description string
	Stats       []PracticeStat
	Action      string
}

// Phase identifies a timeline phase.
type Phase int

// Timeline phases.
const (
	Phase1 Phase = 1
	Phase2 Phase = 2
	Phase3 Phase = 3
)

// Resource is a static study link.
type Resource struct {
	Group       string
	Name        string
	URL         string
	Description string
	Category    string
}

// ResourceGroup is an ordered set of resources sharing a group key.
type ResourceGroup struct {
	Key       string
	Title     string
	Resources []Resource
}

// Milestones are the fixed calendar dates the dashboard counts down to.
type Milestones struct {
	CastRemoval time.Time
	Application time.Time
}

// PhaseWindow is the start and end of a phase.
type PhaseWindow struct {
	Start time.Time
	End   time.Time
}

// Calendar holds the dates used by the progress calculator.
type Calendar struct {
	Reference  time.Time
	Milestones Milestones
	Phase1     PhaseWindow
}

// DailyHours is a labelled study-hours series.
type DailyHours struct {
	Labels []string
	Hours  []float64
	Max    float64
}
