package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/prepdeck/internal/model"
)

func TestDefaultContent(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), c.Calendar.Reference)
	assert.Equal(t, time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), c.Calendar.Milestones.CastRemoval)
	assert.Equal(t, time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC), c.Calendar.Milestones.Application)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), c.Calendar.Phase1.Start)
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), c.Calendar.Phase1.End)

	require.Len(t, c.Roles, 2)
	se := c.Roles[model.RoleSoftwareEngineer]
	assert.Len(t, se.Tasks, 5)
	assert.True(t, se.Tasks[0].Completed)
	assert.False(t, se.Tasks[2].Completed)
	assert.Len(t, se.Practice, 3)
	assert.Len(t, se.Practice[0].Stats, 3)
	assert.Equal(t, 25, se.Progress.TotalTasks)
	assert.Len(t, se.Phases[model.Phase1], 5)

	pm := c.Roles[model.RoleProjectManager]
	assert.Equal(t, "Review Agile methodology principles", pm.Tasks[0].Text)
	assert.Equal(t, 6, pm.Progress.CompletedTasks)

	assert.Len(t, c.Phase3, 5)
	assert.Equal(t, "Partner Preparation Dashboard", c.PartnerWelcome)
	require.Len(t, c.ResourceGroups, 3)
	assert.Equal(t, "technical", c.ResourceGroups[0].Key)
	assert.Empty(t, c.ResourceGroups[2].Resources[0].URL)
	require.Len(t, c.Achievements, 4)
	assert.True(t, c.Achievements[0].Unlocked)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, c.Weekly.Labels)
	assert.Equal(t, 4.0, c.Weekly.Max)
}

func TestLoadMissingFallsBackToDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Len(t, c.Roles, 2)
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	custom := strings.Replace(DefaultTOML(), `reference-date = "2025-09-01"`, `reference-date = "2025-10-01"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), c.Calendar.Reference)
}

func TestDecodeRejectsUnknownRole(t *testing.T) {
	body := strings.Replace(DefaultTOML(), `id = "project-manager"`, `id = "designer"`, 1)
	_, err := Decode(strings.NewReader(body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "designer")
}

func TestDecodeRejectsBadDate(t *testing.T) {
	body := strings.Replace(DefaultTOML(), `cast-removal = "2025-09-29"`, `cast-removal = "soon"`, 1)
	_, err := Decode(strings.NewReader(body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "milestones.cast-removal")
}

func TestDecodeRejectsWeeklyMismatch(t *testing.T) {
	body := strings.Replace(DefaultTOML(), `hours = [1.5, 2.0, 1.0, 2.0, 1.5, 3.0, 2.5]`, `hours = [1.5]`, 1)
	_, err := Decode(strings.NewReader(body))
	require.Error(t, err)
}
