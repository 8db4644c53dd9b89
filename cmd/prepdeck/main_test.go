package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/prepdeck/internal/app"
	"github.com/verte-zerg/prepdeck/internal/config"
	"github.com/verte-zerg/prepdeck/internal/content"
	"github.com/verte-zerg/prepdeck/internal/model"
	"github.com/verte-zerg/prepdeck/internal/view"
)

func strPtr(s string) *string { return &s }

func TestApplyCalendarConfig(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)
	cal := c.Calendar

	fileCfg := config.FileConfig{
		Milestones: config.MilestonesConfig{Application: strPtr("2026-01-05")},
		Phase:      config.PhaseConfig{End: strPtr("2025-12-01")},
	}
	require.NoError(t, applyCalendarConfig(&cal, fileCfg, "2025-09-10"))

	assert.Equal(t, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), cal.Reference)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), cal.Milestones.Application)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), cal.Phase1.End)
	assert.Equal(t, c.Calendar.Milestones.CastRemoval, cal.Milestones.CastRemoval)
}

func TestApplyCalendarConfigRejectsBadDate(t *testing.T) {
	cal := model.Calendar{}
	err := applyCalendarConfig(&cal, config.FileConfig{}, "09/10/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestWriteStatus(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)
	deps, err := app.Load(context.Background(), c)
	require.NoError(t, err)
	state := app.New(deps, view.NewBuffer())
	defer state.Close()
	state.SelectRole(model.RoleProjectManager)

	var out bytes.Buffer
	require.NoError(t, writeStatus(&out, state, deps, 80))
	text := out.String()
	assert.Contains(t, text, "Welcome, Future Epic Project Manager!")
	assert.NotContains(t, text, view.DefaultTitle)
	assert.Contains(t, text, "Role: Project Manager")
	assert.Contains(t, text, "Days until cast removal: 28")
	assert.Contains(t, text, "Days until application: 112")
	assert.Contains(t, text, "Tasks: 6/22 completed")
	assert.Contains(t, text, "Weekly study hours")
}

func TestWriteStatusWithoutRoleUsesDefaultTitle(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)
	deps, err := app.Load(context.Background(), c)
	require.NoError(t, err)
	state := app.New(deps, view.NewBuffer())
	defer state.Close()

	var out bytes.Buffer
	require.NoError(t, writeStatus(&out, state, deps, 80))
	assert.Contains(t, out.String(), view.DefaultTitle)
	assert.Contains(t, out.String(), "Role: none")
}

func TestDefaultConfigTemplateListsPresets(t *testing.T) {
	assert.Contains(t, defaultConfigTemplate(), "[timer]")
	assert.Contains(t, defaultConfigTemplate(), "# presets = [25, 45, 60]")
}
