package service

import (
	"context"
	"testing"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusService_Ensure_CreatesWhenAbsent(t *testing.T) {
	projects, _, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Website Redesign")
	require.NoError(t, projects.Create(ctx, proj))

	svc := NewStatusService(statuses, tasks, uow)

	st, err := svc.Ensure(ctx, proj.ID, "To Do", "#FF0000")
	require.NoError(t, err)
	assert.NotEmpty(t, st.ID, "UUID should be generated")
	assert.Equal(t, "To Do", st.Name)
	assert.Equal(t, "#FF0000", st.ColorHex)
	assert.Equal(t, 0, st.OrderIndex, "new statuses land at index 0")

	fetched, err := svc.GetByID(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ProjectID)
}

func TestStatusService_Ensure_ReusesExistingRowUnchanged(t *testing.T) {
	projects, _, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Website Redesign")
	require.NoError(t, projects.Create(ctx, proj))

	svc := NewStatusService(statuses, tasks, uow)

	first, err := svc.Ensure(ctx, proj.ID, "In Review", "#FF0000")
	require.NoError(t, err)

	// A second call with a different color must hand back the same row
	// and must not repaint it.
	second, err := svc.Ensure(ctx, proj.ID, "In Review", "#00FF00")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "#FF0000", second.ColorHex)

	all, err := svc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1, "no duplicate row for the same name")
}

func TestStatusService_Ensure_SameNameInAnotherProjectIsIndependent(t *testing.T) {
	projects, _, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	projA := testutil.NewTestProject("Alpha")
	projB := testutil.NewTestProject("Beta")
	require.NoError(t, projects.Create(ctx, projA))
	require.NoError(t, projects.Create(ctx, projB))

	svc := NewStatusService(statuses, tasks, uow)

	stA, err := svc.Ensure(ctx, projA.ID, "Done", "#111111")
	require.NoError(t, err)
	stB, err := svc.Ensure(ctx, projB.ID, "Done", "#222222")
	require.NoError(t, err)

	assert.NotEqual(t, stA.ID, stB.ID, "status names dedupe per project, not globally")
	assert.Equal(t, "#222222", stB.ColorHex)
}

func TestStatusService_Ensure_DefaultColor(t *testing.T) {
	projects, _, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))

	svc := NewStatusService(statuses, tasks, uow)

	st, err := svc.Ensure(ctx, proj.ID, "Backlog", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStatusColor, st.ColorHex)
}

func TestStatusService_Delete_LastStatusWithTasksIsRefused(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	list := testutil.NewTestNode(proj.ID, "Sprint Backlog")
	require.NoError(t, nodes.Create(ctx, list))

	only := testutil.NewTestStatus(proj.ID, "To Do")
	require.NoError(t, statuses.Create(ctx, only))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(list.ID, only.ID, "Write copy")))

	svc := NewStatusService(statuses, tasks, uow)

	err := svc.Delete(ctx, only.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraint)

	// The status must still be there.
	_, err = svc.GetByID(ctx, only.ID)
	require.NoError(t, err)
}

func TestStatusService_Delete_LastStatusWithoutTasksSucceeds(t *testing.T) {
	projects, _, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	only := testutil.NewTestStatus(proj.ID, "To Do")
	require.NoError(t, statuses.Create(ctx, only))

	svc := NewStatusService(statuses, tasks, uow)

	require.NoError(t, svc.Delete(ctx, only.ID))

	_, err := svc.GetByID(ctx, only.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatusService_Delete_ReassignsTasksToLowestOrderSurvivor(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	list := testutil.NewTestNode(proj.ID, "Launch")
	require.NoError(t, nodes.Create(ctx, list))

	doomed := testutil.NewTestStatus(proj.ID, "In Review", testutil.WithStatusOrder(2))
	doing := testutil.NewTestStatus(proj.ID, "Doing", testutil.WithStatusOrder(1))
	done := testutil.NewTestStatus(proj.ID, "Done", testutil.WithStatusOrder(3))
	for _, st := range []*domain.Status{doomed, doing, done} {
		require.NoError(t, statuses.Create(ctx, st))
	}

	t1 := testutil.NewTestTask(list.ID, doomed.ID, "Review API")
	t2 := testutil.NewTestTask(list.ID, doomed.ID, "Review docs")
	t3 := testutil.NewTestTask(list.ID, done.ID, "Ship it")
	for _, task := range []*domain.Task{t1, t2, t3} {
		require.NoError(t, tasks.Create(ctx, task))
	}

	svc := NewStatusService(statuses, tasks, uow)
	require.NoError(t, svc.Delete(ctx, doomed.ID))

	_, err := svc.GetByID(ctx, doomed.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Both orphans moved to the lowest-ordered survivor (Doing, idx 1).
	for _, id := range []string{t1.ID, t2.ID} {
		moved, err := tasks.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, doing.ID, moved.StatusID)
	}
	untouched, err := tasks.GetByID(ctx, t3.ID)
	require.NoError(t, err)
	assert.Equal(t, done.ID, untouched.StatusID)

	count, err := tasks.CountByStatus(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "no task may keep referencing a deleted status")
}

func TestStatusService_Reorder_PersistsTotalPermutation(t *testing.T) {
	projects, _, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))

	names := []string{"Backlog", "To Do", "Doing", "Review", "Done"}
	created := make([]*domain.Status, 0, len(names))
	for i, name := range names {
		st := testutil.NewTestStatus(proj.ID, name, testutil.WithStatusOrder(i))
		require.NoError(t, statuses.Create(ctx, st))
		created = append(created, st)
	}

	svc := NewStatusService(statuses, tasks, uow)

	// Drag "Done" (last) onto "To Do" (second).
	require.NoError(t, svc.Reorder(ctx, proj.ID, created[4].ID, created[1].ID))

	after, err := svc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, after, len(names))

	gotNames := make([]string, len(after))
	seen := make(map[int]bool, len(after))
	for i, st := range after {
		gotNames[i] = st.Name
		assert.Equal(t, i, st.OrderIndex, "indices must be a gapless 0-based sequence")
		assert.False(t, seen[st.OrderIndex], "duplicate order index %d", st.OrderIndex)
		seen[st.OrderIndex] = true
	}
	assert.Equal(t, []string{"Backlog", "Done", "To Do", "Doing", "Review"}, gotNames)
}

func TestStatusService_Reorder_UnknownIDLeavesStoreUntouched(t *testing.T) {
	projects, _, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	a := testutil.NewTestStatus(proj.ID, "To Do", testutil.WithStatusOrder(0))
	b := testutil.NewTestStatus(proj.ID, "Done", testutil.WithStatusOrder(1))
	require.NoError(t, statuses.Create(ctx, a))
	require.NoError(t, statuses.Create(ctx, b))

	svc := NewStatusService(statuses, tasks, uow)
	require.NoError(t, svc.Reorder(ctx, proj.ID, "no-such-id", b.ID))

	after, err := svc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, "To Do", after[0].Name)
	assert.Equal(t, "Done", after[1].Name)
}

func TestStatusService_Reorder_SamePositionIsNoOp(t *testing.T) {
	projects, _, statuses, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	a := testutil.NewTestStatus(proj.ID, "To Do", testutil.WithStatusOrder(0))
	require.NoError(t, statuses.Create(ctx, a))

	svc := NewStatusService(statuses, tasks, uow)
	require.NoError(t, svc.Reorder(ctx, proj.ID, a.ID, a.ID))
}
