// Package content loads the static study content shown by the dashboard.
package content

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/prepdeck/internal/model"
)

//go:embed default.toml
var defaultContent string

// Content is the decoded, validated study content.
type Content struct {
	Calendar       model.Calendar
	Weekly         model.DailyHours
	Roles          map[model.Role]RoleContent
	Phase3         []string
	PartnerWelcome string
	ResourceGroups []model.ResourceGroup
	Achievements   []model.Achievement
}

// RoleContent is the study content of one track.
type RoleContent struct {
	Role     model.Role
	Welcome  string
	Progress model.PhaseProgress
	Phases   map[model.Phase][]string
	Tasks    []model.Task
	Practice []model.PracticeCard
}

type fileContent struct {
	ReferenceDate  string         `toml:"reference-date"`
	Phase3         []string       `toml:"phase3"`
	Milestones     fileMilestones `toml:"milestones"`
	Phase1         fileWindow     `toml:"phase1"`
	Weekly         fileWeekly     `toml:"weekly"`
	Partner        filePartner    `toml:"partner"`
	Roles          []fileRole     `toml:"roles"`
	ResourceGroups []fileGroup    `toml:"resource-groups"`
	Achievements   []fileBadge    `toml:"achievements"`
}

type fileMilestones struct {
	CastRemoval string `toml:"cast-removal"`
	Application string `toml:"application"`
}

type fileWindow struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

type fileWeekly struct {
	Labels []string  `toml:"labels"`
	Hours  []float64 `toml:"hours"`
	Max    float64   `toml:"max"`
}

type filePartner struct {
	Welcome string `toml:"welcome"`
}

type fileRole struct {
	ID       string         `toml:"id"`
	Welcome  string         `toml:"welcome"`
	Phase1   []string       `toml:"phase1"`
	Phase2   []string       `toml:"phase2"`
	Progress fileProgress   `toml:"progress"`
	Tasks    []fileTask     `toml:"tasks"`
	Practice []filePractice `toml:"practice"`
}

type fileProgress struct {
	Phase1         int `toml:"phase1"`
	Phase2         int `toml:"phase2"`
	StudyHours     int `toml:"study-hours"`
	CompletedTasks int `toml:"completed-tasks"`
	TotalTasks     int `toml:"total-tasks"`
}

type fileTask struct {
	ID        int    `toml:"id"`
	Text      string `toml:"text"`
	Completed bool   `toml:"completed"`
}

type filePractice struct {
	Title       string     `toml:"title"`
	Description string     `toml:"description"`
	Action      string     `toml:"action"`
	Stats       []fileStat `toml:"stats"`
}

type fileStat struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

type fileGroup struct {
	Key       string         `toml:"key"`
	Title     string         `toml:"title"`
	Resources []fileResource `toml:"resources"`
}

type fileResource struct {
	Name        string `toml:"name"`
	URL         string `toml:"url"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
}

type fileBadge struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Unlocked    bool   `toml:"unlocked"`
}

// Default returns the built-in content.
func Default() (Content, error) {
	return Decode(strings.NewReader(defaultContent))
}

// DefaultTOML returns the raw built-in content file.
func DefaultTOML() string {
	return defaultContent
}

// Load reads content from path. An empty path or a missing file yields the built-in content.
func Load(path string) (Content, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default()
		}
		return Content{}, fmt.Errorf("failed to open content: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close for read-only content.
			_ = cerr
		}
	}()
	c, err := Decode(f)
	if err != nil {
		return Content{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses and validates TOML content.
func Decode(r io.Reader) (Content, error) {
	var raw fileContent
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return Content{}, fmt.Errorf("failed to decode content: %w", err)
	}
	return raw.convert()
}

func (f fileContent) convert() (Content, error) {
	var c Content
	var err error
	if c.Calendar, err = f.calendar(); err != nil {
		return Content{}, err
	}
	if len(f.Weekly.Labels) != len(f.Weekly.Hours) {
		return Content{}, fmt.Errorf("weekly: %d labels for %d values", len(f.Weekly.Labels), len(f.Weekly.Hours))
	}
	c.Weekly = model.DailyHours{
		Labels: append([]string(nil), f.Weekly.Labels...),
		Hours:  append([]float64(nil), f.Weekly.Hours...),
		Max:    f.Weekly.Max,
	}
	c.Phase3 = append([]string(nil), f.Phase3...)
	c.PartnerWelcome = f.Partner.Welcome

	c.Roles = make(map[model.Role]RoleContent, len(f.Roles))
	for _, fr := range f.Roles {
		rc, err := fr.convert()
		if err != nil {
			return Content{}, err
		}
		if _, dup := c.Roles[rc.Role]; dup {
			return Content{}, fmt.Errorf("role %q defined twice", fr.ID)
		}
		c.Roles[rc.Role] = rc
	}

	for _, g := range f.ResourceGroups {
		if g.Key == "" {
			return Content{}, fmt.Errorf("resource group without key")
		}
		group := model.ResourceGroup{Key: g.Key, Title: g.Title}
		for _, r := range g.Resources {
			group.Resources = append(group.Resources, model.Resource{
				Group:       g.Key,
				Name:        r.Name,
				URL:         r.URL,
				Description: r.Description,
				Category:    r.Category,
			})
		}
		c.ResourceGroups = append(c.ResourceGroups, group)
	}

	seen := map[string]struct{}{}
	for _, b := range f.Achievements {
		if _, dup := seen[b.ID]; dup {
			return Content{}, fmt.Errorf("achievement %q defined twice", b.ID)
		}
		seen[b.ID] = struct{}{}
		c.Achievements = append(c.Achievements, model.Achievement{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			Unlocked:    b.Unlocked,
		})
	}
	return c, nil
}

type dateField struct {
	key   string
	value string
	dst   *time.Time
}

func (f fileContent) calendar() (model.Calendar, error) {
	var cal model.Calendar
	fields := []dateField{
		{"reference-date", f.ReferenceDate, &cal.Reference},
		{"milestones.cast-removal", f.Milestones.CastRemoval, &cal.Milestones.CastRemoval},
		{"milestones.application", f.Milestones.Application, &cal.Milestones.Application},
		{"phase1.start", f.Phase1.Start, &cal.Phase1.Start},
		{"phase1.end", f.Phase1.End, &cal.Phase1.End},
	}
	for _, fd := range fields {
		t, err := time.ParseInLocation("2006-01-02", fd.value, time.UTC)
		if err != nil {
			return model.Calendar{}, fmt.Errorf("invalid %s: %w", fd.key, err)
		}
		*fd.dst = t
	}
	return cal, nil
}

func (f fileRole) convert() (RoleContent, error) {
	role, ok := model.ParseRole(f.ID)
	if !ok || !role.IsTrack() {
		return RoleContent{}, fmt.Errorf("unknown role %q", f.ID)
	}
	rc := RoleContent{
		Role:    role,
		Welcome: f.Welcome,
		Progress: model.PhaseProgress{
			Phase1Percent:  f.Progress.Phase1,
			Phase2Percent:  f.Progress.Phase2,
			StudyHours:     f.Progress.StudyHours,
			CompletedTasks: f.Progress.CompletedTasks,
			TotalTasks:     f.Progress.TotalTasks,
		},
		Phases: map[model.Phase][]string{
			model.Phase1: append([]string(nil), f.Phase1...),
			model.Phase2: append([]string(nil), f.Phase2...),
		},
	}
	ids := map[int]struct{}{}
	for _, t := range f.Tasks {
		if _, dup := ids[t.ID]; dup {
			return RoleContent{}, fmt.Errorf("role %q: task id %d defined twice", f.ID, t.ID)
		}
		ids[t.ID] = struct{}{}
		rc.Tasks = append(rc.Tasks, model.Task{ID: t.ID, Text: t.Text, Completed: t.Completed})
	}
	for _, p := range f.Practice {
		card := model.PracticeCard{Title: p.Title, Description: p.Description, Action: p.Action}
		for _, s := range p.Stats {
			card.Stats = append(card.Stats, model.PracticeStat{Value: s.Value, Label: s.Label})
		}
		rc.Practice = append(rc.Practice, card)
	}
	return rc, nil
}
