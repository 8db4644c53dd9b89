package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/prepdeck/internal/model"
)

func visibleCount(n *Navigator) int {
	count := 0
	for _, s := range n.Sections() {
		if n.Visible(s) {
			count++
		}
	}
	return count
}

func TestStartsOnDashboard(t *testing.T) {
	n := New()
	assert.Equal(t, model.SectionDashboard, n.Current())
	assert.Equal(t, 1, visibleCount(n))
}

func TestShowIsExclusive(t *testing.T) {
	n := New()
	for _, s := range model.Sections() {
		require.True(t, n.Show(s))
		assert.Equal(t, s, n.Current())
		assert.Equal(t, 1, visibleCount(n))
		assert.True(t, n.Visible(s))

		require.True(t, n.Show(s))
		assert.Equal(t, 1, visibleCount(n))
	}
}

func TestShowUnknownIsNoop(t *testing.T) {
	n := New()
	n.Show(model.SectionPractice)
	assert.False(t, n.Show(model.Section("settings")))
	assert.Equal(t, model.SectionPractice, n.Current())
	assert.Equal(t, 1, visibleCount(n))
}

func TestNextPrevWrap(t *testing.T) {
	n := New()
	assert.Equal(t, model.SectionTimeline, n.Next())
	assert.Equal(t, model.SectionProgress, n.Prev())
	n.Show(model.SectionProgress)
	assert.Equal(t, model.SectionDashboard, n.Next())
}
