// Package main provides the CLI entrypoint for prepdeck.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/prepdeck/internal/app"
	"github.com/verte-zerg/prepdeck/internal/config"
	"github.com/verte-zerg/prepdeck/internal/content"
	"github.com/verte-zerg/prepdeck/internal/logging"
	"github.com/verte-zerg/prepdeck/internal/model"
	"github.com/verte-zerg/prepdeck/internal/timer"
	"github.com/verte-zerg/prepdeck/internal/tui"
)

var (
	dashRole     string
	dashSection  string
	dashDate     string
	dashContent  string
	dashLogFile  string
	dashLogLevel string
)

// settings is the resolved startup configuration.
type settings struct {
	role    model.Role
	section model.Section
	content content.Content
	presets []int
	logger  *slog.Logger
	closer  io.Closer
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prepdeck",
		Short:         "Terminal interview preparation dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dashRole, "role", "", "preparation track (software-engineer, project-manager, partner)")
	rootCmd.PersistentFlags().StringVar(&dashDate, "date", "", "reference date for countdowns (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&dashContent, "content", "", "study content TOML file")
	rootCmd.PersistentFlags().StringVar(&dashLogFile, "log-file", "", "diagnostics log file")
	rootCmd.PersistentFlags().StringVar(&dashLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&dashSection, "section", string(model.SectionDashboard), "section shown on startup")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newResourcesCmd())
	rootCmd.AddCommand(newContentCmd())

	return rootCmd
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	deps, err := app.Load(cmd.Context(), s.content)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	s.logger.Info("dashboard_start", "role", string(s.role), "section", string(s.section))

	m := tui.NewModel(deps,
		tui.Options{Role: s.role, Section: s.section},
		app.WithLogger(s.logger),
		app.WithPresets(s.presets),
	)
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadSettings merges the config file under the command line flags.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "role", &dashRole, fileCfg.Dashboard.Role)
	applyStringConfig(cmd, "section", &dashSection, fileCfg.Dashboard.Section)
	applyStringConfig(cmd, "date", &dashDate, fileCfg.Dashboard.ReferenceDate)
	applyStringConfig(cmd, "content", &dashContent, fileCfg.Dashboard.Content)
	applyStringConfig(cmd, "log-file", &dashLogFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &dashLogLevel, fileCfg.Log.Level)

	s := &settings{presets: timer.DefaultPresets}
	if len(fileCfg.Timer.Presets) > 0 {
		s.presets = fileCfg.Timer.Presets
	}

	if dashRole != "" {
		role, ok := model.ParseRole(dashRole)
		if !ok {
			return nil, fmt.Errorf("unknown role %q", dashRole)
		}
		s.role = role
	}
	if dashSection != "" {
		section, ok := model.ParseSection(dashSection)
		if !ok {
			return nil, fmt.Errorf("unknown section %q", dashSection)
		}
		s.section = section
	}

	contentPath := dashContent
	if contentPath == "" {
		contentPath = config.DefaultContentPath()
	}
	s.content, err = content.Load(contentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	if err := applyCalendarConfig(&s.content.Calendar, fileCfg, dashDate); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(dashLogLevel)
	if err != nil {
		return nil, err
	}
	logPath := dashLogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	s.logger, s.closer, err = logging.Open(logPath, level)
	if err != nil {
		// Diagnostics are optional; keep running without them.
		logErrf("logging disabled: %v\n", err)
		s.logger, s.closer = logging.Discard(), nil
	}
	return s, nil
}

func (s *settings) close() {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		logErrf("failed to close log: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# prepdeck configuration
# Uncomment a value to enable it. CLI flags override config values.

[dashboard]
# role = "software-engineer"   # software-engineer, project-manager or partner
# section = %q          # Section shown on startup
# reference-date = "2025-09-01" # Date the countdowns are computed from
# content = %q

[milestones]
# cast-removal = "2025-09-29"
# application = "2025-12-22"

[phase]
# start = "2025-09-15"          # Phase 1 window
# end = "2025-11-10"

[timer]
# presets = [%d, %d, %d]        # Minutes bound to f, g and h

[log]
# level = "info"                # debug, info, warn or error
# file = %q
`, model.SectionDashboard, config.DefaultContentPath(),
		timer.DefaultPresets[0], timer.DefaultPresets[1], timer.DefaultPresets[2],
		config.DefaultLogPath())
}

type dateOverride struct {
	name   string
	value  *string
	target *time.Time
}

// applyCalendarConfig overrides the content calendar with config dates. A
// non-empty date replaces the reference date.
func applyCalendarConfig(cal *model.Calendar, fileCfg config.FileConfig, date string) error {
	overrides := []dateOverride{
		{"milestones.cast-removal", fileCfg.Milestones.CastRemoval, &cal.Milestones.CastRemoval},
		{"milestones.application", fileCfg.Milestones.Application, &cal.Milestones.Application},
		{"phase.start", fileCfg.Phase.Start, &cal.Phase1.Start},
		{"phase.end", fileCfg.Phase.End, &cal.Phase1.End},
	}
	if date != "" {
		overrides = append(overrides, dateOverride{"date", &date, &cal.Reference})
	}
	for _, o := range overrides {
		if o.value == nil {
			continue
		}
		t, err := config.ParseDate(*o.value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", o.name, err)
		}
		*o.target = t
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
