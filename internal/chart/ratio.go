package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

var (
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#1FB8CD"))
	remainingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ECEBD5"))
)

// PlotRatio renders the first two values of s as a split bar with a legend.
// Labels default to Completed and Remaining.
func PlotRatio(s Series, width int) string {
	if len(s.Values) < 2 {
		return ""
	}
	done, rest := s.Values[0], s.Values[1]
	if done < 0 {
		done = 0
	}
	if rest < 0 {
		rest = 0
	}
	labels := []string{"Completed", "Remaining"}
	if len(s.Labels) >= 2 {
		labels = s.Labels[:2]
	}
	if width < 10 {
		width = 10
	}

	total := done + rest
	filled := 0
	if total > 0 {
		filled = int(math.Round(done / total * float64(width)))
	}
	if filled > width {
		filled = width
	}
	bar := doneStyle.Render(strings.Repeat(filledBlock, filled)) +
		remainingStyle.Render(strings.Repeat(emptyBlock, width-filled))

	pct := 0.0
	if total > 0 {
		pct = done / total * 100
	}
	lines := []string{}
	if s.Name != "" {
		lines = append(lines, s.Name)
	}
	lines = append(lines,
		bar,
		fmt.Sprintf("%s %s %.0f  %s %s %.0f  (%.0f%%)",
			doneStyle.Render(filledBlock), labels[0], done,
			remainingStyle.Render(emptyBlock), labels[1], rest,
			pct),
	)
	return strings.Join(lines, "\n")
}
