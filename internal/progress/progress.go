// Package progress computes milestone countdowns and phase completion.
package progress

import (
	"math"
	"time"

	"github.com/verte-zerg/prepdeck/internal/model"
)

const day = 24 * time.Hour

// DaysUntil returns the ceiling of whole days from reference to milestone.
// The result is negative once the milestone has passed.
func DaysUntil(milestone, reference time.Time) int {
	return int(math.Ceil(float64(milestone.Sub(reference)) / float64(day)))
}

// PhaseProgressPercent returns how far reference is into [start, end] as a
// rounded percentage in [0, 100].
func PhaseProgressPercent(reference, start, end time.Time) int {
	if reference.Before(start) {
		return 0
	}
	if reference.After(end) {
		return 100
	}
	total := end.Sub(start)
	if total <= 0 {
		return 100
	}
	elapsed := reference.Sub(start)
	pct := int(math.Round(float64(elapsed) / float64(total) * 100))
	return clamp(pct, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snapshot is the derived dashboard countdown state.
type Snapshot struct {
	Reference            time.Time
	DaysUntilCast        int
	DaysUntilApplication int
	PhasePercent         int
}

// Calculator binds the fixed calendar dates.
type Calculator struct {
	cal model.Calendar
}

// NewCalculator returns a Calculator for cal.
func NewCalculator(cal model.Calendar) Calculator {
	return Calculator{cal: cal}
}

// Calendar returns the bound dates.
func (c Calculator) Calendar() model.Calendar {
	return c.cal
}

// Snapshot derives countdowns and phase 1 progress for the reference date.
func (c Calculator) Snapshot() Snapshot {
	ref := c.cal.Reference
	return Snapshot{
		Reference:            ref,
		DaysUntilCast:        DaysUntil(c.cal.Milestones.CastRemoval, ref),
		DaysUntilApplication: DaysUntil(c.cal.Milestones.Application, ref),
		PhasePercent:         PhaseProgressPercent(ref, c.cal.Phase1.Start, c.cal.Phase1.End),
	}
}
