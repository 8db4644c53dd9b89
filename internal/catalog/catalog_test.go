package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/prepdeck/internal/content"
	"github.com/verte-zerg/prepdeck/internal/model"
)

func openDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	cat, err := Open(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cat.Close()
	})
	return cat
}

func TestTasksInOrder(t *testing.T) {
	cat := openDefault(t)
	tasks, err := cat.Tasks(context.Background(), model.RoleSoftwareEngineer)
	require.NoError(t, err)
	require.Len(t, tasks, 5)
	assert.Equal(t, model.Task{ID: 1, Text: "Review data structures (Arrays, LinkedLists)", Completed: true}, tasks[0])
	assert.Equal(t, 5, tasks[4].ID)
	assert.False(t, tasks[4].Completed)
}

func TestTasksUnknownRole(t *testing.T) {
	cat := openDefault(t)
	tasks, err := cat.Tasks(context.Background(), model.RolePartner)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestPhaseItemsFallBackToShared(t *testing.T) {
	cat := openDefault(t)
	ctx := context.Background()

	p1, err := cat.PhaseItems(ctx, model.RoleProjectManager, model.Phase1)
	require.NoError(t, err)
	assert.Equal(t, "Project Management Concepts", p1[0])

	p3, err := cat.PhaseItems(ctx, model.RoleProjectManager, model.Phase3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Submit applications",
		"Complete skills assessments",
		"Prepare for final interviews",
		"Practice mock interviews",
		"Final preparation review",
	}, p3)
}

func TestPracticeCardsCarryStats(t *testing.T) {
	cat := openDefault(t)
	cards, err := cat.Practice(context.Background(), model.RoleProjectManager)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "Case Studies", cards[0].Title)
	assert.Equal(t, []model.PracticeStat{
		{Value: "4", Label: "Cases Completed"},
		{Value: "15", Label: "Study Hours"},
		{Value: "85%", Label: "Quality Score"},
	}, cards[0].Stats)
	assert.Equal(t, "Practice Presentation", cards[2].Action)
}

func TestProgressAndWelcome(t *testing.T) {
	cat := openDefault(t)
	ctx := context.Background()

	p, ok, err := cat.Progress(ctx, model.RoleSoftwareEngineer)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.PhaseProgress{Phase1Percent: 15, StudyHours: 24, CompletedTasks: 8, TotalTasks: 25}, p)

	_, ok, err = cat.Progress(ctx, model.RolePartner)
	require.NoError(t, err)
	assert.False(t, ok)

	w, err := cat.Welcome(ctx, model.RolePartner)
	require.NoError(t, err)
	assert.Equal(t, "Partner Preparation Dashboard", w)

	w, err = cat.Welcome(ctx, model.Role("nobody"))
	require.NoError(t, err)
	assert.Empty(t, w)
}

func TestResourceGroupsAndAchievements(t *testing.T) {
	cat := openDefault(t)
	ctx := context.Background()

	groups, err := cat.ResourceGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, []string{"technical", "epic", "behavioral"}, []string{groups[0].Key, groups[1].Key, groups[2].Key})
	assert.Len(t, groups[0].Resources, 3)
	assert.Equal(t, "https://careers.epic.com", groups[1].Resources[1].URL)

	badges, err := cat.Achievements(ctx)
	require.NoError(t, err)
	require.Len(t, badges, 4)
	assert.Equal(t, "first-study", badges[0].ID)
	assert.True(t, badges[0].Unlocked)
	assert.False(t, badges[3].Unlocked)
}
