// Package view renders dashboard sections into named display slots.
package view

import (
	"strings"

	"github.com/verte-zerg/prepdeck/internal/model"
)

// SlotID names one addressable region of the display.
type SlotID string

// Display slots.
const (
	SlotWelcome         SlotID = "welcome-title"
	SlotCastCountdown   SlotID = "days-until-cast"
	SlotAppCountdown    SlotID = "days-until-application"
	SlotPhaseProgress   SlotID = "phase-progress"
	SlotPhase1          SlotID = "phase1-details"
	SlotPhase2          SlotID = "phase2-details"
	SlotPhase3          SlotID = "phase3-details"
	SlotPractice        SlotID = "practice-content"
	SlotTimer           SlotID = "timer"
	SlotTasks           SlotID = "today-tasks"
	SlotWeeklyChart     SlotID = "weekly-chart"
	SlotResources       SlotID = "resources"
	SlotOverallChart    SlotID = "overall-progress-chart"
	SlotProgressMetrics SlotID = "progress-metrics"
	SlotAchievements    SlotID = "achievements"
)

// Surface is the display capability the renderer writes to.
type Surface interface {
	RenderSlot(id SlotID, content string)
	SetVisible(section model.Section, visible bool)
}

var sectionSlots = map[model.Section][]SlotID{
	model.SectionDashboard: {SlotWelcome, SlotCastCountdown, SlotAppCountdown, SlotPhaseProgress},
	model.SectionTimeline:  {SlotPhase1, SlotPhase2, SlotPhase3},
	model.SectionDaily:     {SlotTimer, SlotTasks, SlotWeeklyChart},
	model.SectionPractice:  {SlotPractice},
	model.SectionResources: {SlotResources},
	model.SectionProgress:  {SlotOverallChart, SlotProgressMetrics, SlotAchievements},
}

// SectionSlots returns the slots of section in display order.
func SectionSlots(section model.Section) []SlotID {
	return append([]SlotID(nil), sectionSlots[section]...)
}

// Buffer is an in-memory Surface.
type Buffer struct {
	slots   map[SlotID]string
	visible map[model.Section]bool
}

// NewBuffer returns an empty Buffer with no section visible.
func NewBuffer() *Buffer {
	return &Buffer{slots: map[SlotID]string{}, visible: map[model.Section]bool{}}
}

// RenderSlot implements Surface.
func (b *Buffer) RenderSlot(id SlotID, content string) {
	b.slots[id] = content
}

// SetVisible implements Surface.
func (b *Buffer) SetVisible(section model.Section, visible bool) {
	b.visible[section] = visible
}

// Slot returns the last content written to id.
func (b *Buffer) Slot(id SlotID) string {
	return b.slots[id]
}

// Visible reports whether section is shown.
func (b *Buffer) Visible(section model.Section) bool {
	return b.visible[section]
}

// VisibleSections returns the shown sections in navigation order.
func (b *Buffer) VisibleSections() []model.Section {
	var out []model.Section
	for _, s := range model.Sections() {
		if b.visible[s] {
			out = append(out, s)
		}
	}
	return out
}

// Compose joins the non-empty slots of every visible section.
func (b *Buffer) Compose() string {
	var parts []string
	for _, s := range b.VisibleSections() {
		for _, id := range sectionSlots[s] {
			if c := b.slots[id]; c != "" {
				parts = append(parts, c)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}
