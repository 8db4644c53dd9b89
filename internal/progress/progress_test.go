package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/prepdeck/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	ref := date(2025, 9, 1)
	tests := []struct {
		name      string
		milestone time.Time
		want      int
	}{
		{"cast removal", date(2025, 9, 29), 28},
		{"application", date(2025, 12, 22), 112},
		{"same day", ref, 0},
		{"passed", date(2025, 8, 30), -2},
		{"partial day rounds up", ref.Add(36 * time.Hour), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.milestone, ref))
		})
	}
}

func TestPhaseProgressPercentBoundaries(t *testing.T) {
	start := date(2025, 9, 15)
	end := date(2025, 11, 10)
	tests := []struct {
		name string
		ref  time.Time
		want int
	}{
		{"day before start", start.AddDate(0, 0, -1), 0},
		{"at start", start, 0},
		{"one day after start", start.AddDate(0, 0, 1), 2},
		{"midpoint", date(2025, 10, 13), 50},
		{"day before end", end.AddDate(0, 0, -1), 98},
		{"at end", end, 100},
		{"day after end", end.AddDate(0, 0, 1), 100},
		{"fixed reference date", date(2025, 9, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhaseProgressPercent(tt.ref, start, end))
		})
	}
}

func TestPhaseProgressPercentMonotonic(t *testing.T) {
	start := date(2025, 9, 15)
	end := date(2025, 11, 10)
	prev := -1
	for ref := start.AddDate(0, 0, -10); !ref.After(end.AddDate(0, 0, 10)); ref = ref.Add(12 * time.Hour) {
		got := PhaseProgressPercent(ref, start, end)
		assert.GreaterOrEqual(t, got, prev, "ref %s", ref)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
		prev = got
	}
}

func TestPhaseProgressPercentZeroLength(t *testing.T) {
	d := date(2025, 9, 15)
	assert.Equal(t, 100, PhaseProgressPercent(d, d, d))
	assert.Equal(t, 0, PhaseProgressPercent(d.AddDate(0, 0, -1), d, d))
}

func TestCalculatorSnapshot(t *testing.T) {
	calc := NewCalculator(model.Calendar{
		Reference: date(2025, 9, 1),
		Milestones: model.Milestones{
			CastRemoval: date(2025, 9, 29),
			Application: date(2025, 12, 22),
		},
		Phase1: model.PhaseWindow{Start: date(2025, 9, 15), End: date(2025, 11, 10)},
	})
	snap := calc.Snapshot()
	assert.Equal(t, 28, snap.DaysUntilCast)
	assert.Equal(t, 112, snap.DaysUntilApplication)
	assert.Equal(t, 0, snap.PhasePercent)
	assert.Equal(t, date(2025, 9, 1), snap.Reference)
}
