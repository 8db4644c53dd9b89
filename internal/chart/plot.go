// Package chart draws text charts and manages chart handles per display slot.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	defaultPlotHeight = 8
	minPlotWidth      = 7
	axisSeparator     = " │ "
)

var lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1FB8CD"))

// Series is a labelled data series. Max fixes the top of the y axis; zero
// means scale to the largest value.
type Series struct {
	Name   string
	Labels []string
	Values []float64
	Max    float64
}

// PlotLine renders s as a braille line chart anchored at zero.
func PlotLine(s Series, width, height int) string {
	if len(s.Values) == 0 {
		return ""
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	top := s.Max
	if top <= 0 {
		_, top = minMax(s.Values)
	}
	if top <= 0 {
		top = 1
	}

	axisWidth := runewidth.StringWidth(formatTick(top))
	plotWidth := PlotWidthFor(width, axisWidth)
	values := resampleSeries(s.Values, plotWidth)

	cells := makeCells(height, plotWidth)
	dotRows := height * 4
	prevX, prevY := -1, -1
	for x, v := range values {
		px := x * 2
		py := valueToRow(v, 0, top, dotRows)
		if prevX >= 0 {
			drawLine(prevX, prevY, px, py, func(dx, dy int) {
				setBrailleDot(cells, dx, dy)
			})
		} else {
			setBrailleDot(cells, px, py)
		}
		prevX, prevY = px, py
	}

	labels := makeAxisLabels(height, top)
	lines := make([]string, 0, height+2)
	if s.Name != "" {
		lines = append(lines, s.Name)
	}
	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < plotWidth; x++ {
			row.WriteRune(brailleFromMask(cells[y][x]))
		}
		lines = append(lines, fmt.Sprintf("%*s%s%s", axisWidth, labels[y], axisSeparator, lineStyle.Render(row.String())))
	}
	if footer := labelRow(s.Labels, plotWidth); footer != "" {
		lines = append(lines, strings.Repeat(" ", axisWidth+runewidth.StringWidth(axisSeparator))+footer)
	}
	return strings.Join(lines, "\n")
}

// PlotWidthFor returns the plot area width that fits totalWidth next to an
// axis of axisWidth columns.
func PlotWidthFor(totalWidth, axisWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	w := totalWidth - axisWidth - runewidth.StringWidth(axisSeparator)
	if w < minPlotWidth {
		w = minPlotWidth
	}
	return w
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0fh", v)
	}
	return fmt.Sprintf("%.1fh", v)
}

func makeAxisLabels(height int, top float64) []string {
	labels := make([]string, height)
	if height <= 0 {
		return labels
	}
	labels[0] = formatTick(top)
	if height > 2 {
		labels[height/2] = formatTick(top / 2)
	}
	if height > 1 {
		labels[height-1] = formatTick(0)
	}
	return labels
}

// labelRow spreads labels evenly across width columns.
func labelRow(labels []string, width int) string {
	if len(labels) == 0 || width <= 0 {
		return ""
	}
	row := []rune(strings.Repeat(" ", width))
	for i, label := range labels {
		pos := 0
		if len(labels) > 1 {
			pos = int(math.Round(float64(i) * float64(width-1) / float64(len(labels)-1)))
		}
		w := runewidth.StringWidth(label)
		start := pos - w/2
		if start+w > width {
			start = width - w
		}
		if start < 0 {
			start = 0
		}
		for j, r := range []rune(label) {
			if start+j >= width {
				break
			}
			row[start+j] = r
		}
	}
	return strings.TrimRight(string(row), " ")
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]uint8, width)
	}
	return cells
}

func resampleSeries(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	if len(values) == 1 || width == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	if len(values) > width {
		for i := 0; i < width; i++ {
			start := i * len(values) / width
			end := (i + 1) * len(values) / width
			if end <= start {
				end = start + 1
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func valueToRow(v, lo, hi float64, rows int) int {
	if rows <= 1 || hi <= lo {
		return 0
	}
	pos := (v - lo) / (hi - lo)
	row := int(math.Round((1 - pos) * float64(rows-1)))
	if row < 0 {
		return 0
	}
	if row >= rows {
		return rows - 1
	}
	return row
}

// drawLine walks a Bresenham line between two dot coordinates.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func setBrailleDot(cells [][]uint8, x, y int) {
	if y < 0 || x < 0 {
		return
	}
	cellY, cellX := y/4, x/2
	if cellY >= len(cells) || cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleDotMask(x%2, y%4)
}

// brailleDotMask maps a dot within a 2x4 cell to its Unicode bit.
func brailleDotMask(x, y int) uint8 {
	masks := [2][4]uint8{
		{0x01, 0x02, 0x04, 0x40},
		{0x08, 0x10, 0x20, 0x80},
	}
	if x < 0 || x > 1 || y < 0 || y > 3 {
		return 0
	}
	return masks[x][y]
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
