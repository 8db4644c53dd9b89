package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/prepdeck/internal/app"
	"github.com/verte-zerg/prepdeck/internal/chart"
	"github.com/verte-zerg/prepdeck/internal/config"
	"github.com/verte-zerg/prepdeck/internal/content"
	"github.com/verte-zerg/prepdeck/internal/view"
)

const terminalWidthBackup = 80

var headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print countdowns and progress",
		Args:  cobra.NoArgs,
		RunE:  runStatusCmd,
	}
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	deps, err := app.Load(cmd.Context(), s.content)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	state := app.New(deps, view.NewBuffer(), app.WithLogger(s.logger), app.WithPresets(s.presets))
	defer state.Close()
	if s.role != "" {
		state.SelectRole(s.role)
	}
	return writeStatus(cmd.OutOrStdout(), state, deps, terminalWidth())
}

func writeStatus(w io.Writer, state *app.State, deps app.Deps, width int) error {
	color := shouldUseColor(w)
	heading := func(s string) string {
		if color {
			return headingStyle.Render(s)
		}
		return s
	}

	snap := state.Snapshot()
	metrics := state.Metrics()
	role := state.Role().DisplayName()
	if role == "" {
		role = "none"
	}
	unlocked := 0
	for _, a := range deps.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	title := state.Welcome()
	if title == "" {
		title = view.DefaultTitle
	}

	lines := []string{
		heading(title),
		fmt.Sprintf("Role: %s", role),
		fmt.Sprintf("Reference date: %s", snap.Reference.Format(config.DateLayout)),
		fmt.Sprintf("Days until cast removal: %d", snap.DaysUntilCast),
		fmt.Sprintf("Days until application: %d", snap.DaysUntilApplication),
		fmt.Sprintf("Phase 1 progress: %d%%", snap.PhasePercent),
		fmt.Sprintf("Tasks: %d/%d completed", metrics.CompletedTasks, metrics.TotalTasks),
		fmt.Sprintf("Study hours: %d", metrics.StudyHours),
		fmt.Sprintf("Achievements: %d/%d unlocked", unlocked, len(deps.Achievements)),
		"",
		chart.PlotLine(chart.Series{
			Name:   heading("Weekly study hours"),
			Labels: deps.Weekly.Labels,
			Values: deps.Weekly.Hours,
			Max:    deps.Weekly.Max,
		}, width, 6),
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "Print study resources",
		Args:  cobra.NoArgs,
		RunE:  runResourcesCmd,
	}
}

func runResourcesCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	deps, err := app.Load(cmd.Context(), s.content)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	title := func(s ...string) string { return strings.Join(s, " ") }
	if shouldUseColor(cmd.OutOrStdout()) {
		title = headingStyle.Render
	}
	lines := view.ResourceLines(deps.Resources, title)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	return err
}

func newContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Print the built-in study content as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), content.DefaultTOML())
			return err
		},
	}
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
