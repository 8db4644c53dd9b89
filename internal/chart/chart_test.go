package chart

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekly() Series {
	return Series{
		Name:   "Study Hours",
		Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Values: []float64{1.5, 2, 1, 2, 1.5, 3, 2.5},
		Max:    4,
	}
}

func TestPlotLine(t *testing.T) {
	out := PlotLine(weekly(), 60, 6)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1+6+1)
	assert.Equal(t, "Study Hours", lines[0])
	assert.Contains(t, lines[1], "4h")
	assert.Contains(t, lines[6], "0h")
	assert.Contains(t, lines[7], "Mon")
	assert.Contains(t, lines[7], "Sun")
}

func TestPlotLineEmpty(t *testing.T) {
	assert.Empty(t, PlotLine(Series{}, 40, 4))
}

func TestPlotWidthFor(t *testing.T) {
	assert.Equal(t, 80-2-3, PlotWidthFor(80, 2))
	assert.Equal(t, minPlotWidth, PlotWidthFor(0, 2))
	assert.Equal(t, minPlotWidth, PlotWidthFor(5, 2))
}

func TestLabelRowSpreadsLabels(t *testing.T) {
	row := labelRow([]string{"a", "b", "c"}, 11)
	assert.Equal(t, "a    b    c", row)
}

func TestPlotRatio(t *testing.T) {
	out := PlotRatio(Series{Values: []float64{8, 17}}, 25)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 8, strings.Count(lines[0], filledBlock))
	assert.Equal(t, 17, strings.Count(lines[0], emptyBlock))
	assert.Contains(t, lines[1], "Completed 8")
	assert.Contains(t, lines[1], "Remaining 17")
	assert.Contains(t, lines[1], "(32%)")
}

func TestPlotRatioNeedsTwoValues(t *testing.T) {
	assert.Empty(t, PlotRatio(Series{Values: []float64{1}}, 20))
}

type fakeChart struct {
	id        int
	destroyed *[]int
}

func (c fakeChart) Render(int, int) string { return "" }
func (c fakeChart) Destroy()              { *c.destroyed = append(*c.destroyed, c.id) }

type fakeFactory struct {
	created   int
	destroyed []int
	fail      bool
}

func (f *fakeFactory) New(Kind, Series) (Chart, error) {
	if f.fail {
		return nil, errors.New("no canvas")
	}
	f.created++
	return fakeChart{id: f.created, destroyed: &f.destroyed}, nil
}

func TestRegistryDisposesBeforeReacquire(t *testing.T) {
	f := &fakeFactory{}
	r := NewRegistry(f)

	_, err := r.Refresh("weekly", KindLine, weekly())
	require.NoError(t, err)
	assert.Empty(t, f.destroyed)

	_, err = r.Refresh("weekly", KindLine, weekly())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, f.destroyed)

	_, err = r.Refresh("overall", KindRatio, Series{Values: []float64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, f.destroyed)

	r.Close()
	assert.ElementsMatch(t, []int{1, 2, 3}, f.destroyed)
	_, ok := r.Get("weekly")
	assert.False(t, ok)
}

func TestRegistryFailureLeavesSlotEmpty(t *testing.T) {
	f := &fakeFactory{}
	r := NewRegistry(f)
	_, err := r.Refresh("weekly", KindLine, weekly())
	require.NoError(t, err)

	f.fail = true
	_, err = r.Refresh("weekly", KindLine, weekly())
	require.Error(t, err)
	assert.Equal(t, []int{1}, f.destroyed)
	_, ok := r.Get("weekly")
	assert.False(t, ok)
}

func TestTextFactoryDestroyedChartRendersNothing(t *testing.T) {
	r := NewRegistry(nil)
	c, err := r.Refresh("weekly", KindLine, weekly())
	require.NoError(t, err)
	assert.NotEmpty(t, c.Render(40, 4))

	_, err = r.Refresh("weekly", KindLine, weekly())
	require.NoError(t, err)
	assert.Empty(t, c.Render(40, 4))
}

func TestTextFactoryRejectsBadSeries(t *testing.T) {
	_, err := TextFactory{}.New(KindRatio, Series{Values: []float64{1}})
	require.Error(t, err)
	_, err = TextFactory{}.New(KindLine, Series{})
	require.Error(t, err)
	_, err = TextFactory{}.New(Kind(9), weekly())
	require.Error(t, err)
}
