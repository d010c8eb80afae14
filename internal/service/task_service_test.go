package service

import (
	"context"
	"testing"
	"time"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Create_Roundtrip(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, _ := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	list := testutil.NewTestNode(proj.ID, "Inbox")
	require.NoError(t, nodes.Create(ctx, list))
	status := testutil.NewTestStatus(proj.ID, "To Do")
	require.NoError(t, statuses.Create(ctx, status))

	svc := NewTaskService(tasks, nodes, statuses)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ListID:      list.ID,
		StatusID:    status.ID,
		UserID:      "ana",
		Name:        "Draft proposal",
		Description: "First pass, bullet points only",
		Assignee:    "bruno",
		Priority:    domain.PriorityHigh,
		DueDate:     &due,
	}
	require.NoError(t, svc.Create(ctx, task))
	assert.NotEmpty(t, task.ID, "UUID should be generated")

	fetched, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Draft proposal", fetched.Name)
	assert.Equal(t, domain.PriorityHigh, fetched.Priority)
	assert.Equal(t, "bruno", fetched.Assignee)
	require.NotNil(t, fetched.DueDate)
	assert.Equal(t, due, fetched.DueDate.UTC())
	assert.Equal(t, 0, fetched.ProgressValue(), "unset progress reads as 0")
}

func TestTaskService_Create_DefaultsPriorityToMedium(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, _ := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	list := testutil.NewTestNode(proj.ID, "Inbox")
	require.NoError(t, nodes.Create(ctx, list))
	status := testutil.NewTestStatus(proj.ID, "To Do")
	require.NoError(t, statuses.Create(ctx, status))

	svc := NewTaskService(tasks, nodes, statuses)

	task := &domain.Task{
		ListID:   list.ID,
		StatusID: status.ID,
		Name:     "No priority given",
	}
	require.NoError(t, svc.Create(ctx, task))

	fetched, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, fetched.Priority)
}

func TestTaskService_Create_RejectsFolderContainer(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, _ := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	folder := testutil.NewTestNode(proj.ID, "Design", testutil.WithNodeType(domain.NodeFolder))
	require.NoError(t, nodes.Create(ctx, folder))
	status := testutil.NewTestStatus(proj.ID, "To Do")
	require.NoError(t, statuses.Create(ctx, status))

	svc := NewTaskService(tasks, nodes, statuses)

	err := svc.Create(ctx, &domain.Task{
		ListID:   folder.ID,
		StatusID: status.ID,
		Name:     "Homeless task",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskService_Create_RejectsForeignProjectStatus(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, _ := setupRepos(t)
	ctx := context.Background()

	projA := testutil.NewTestProject("Alpha")
	projB := testutil.NewTestProject("Beta")
	require.NoError(t, projects.Create(ctx, projA))
	require.NoError(t, projects.Create(ctx, projB))

	list := testutil.NewTestNode(projA.ID, "Inbox")
	require.NoError(t, nodes.Create(ctx, list))
	foreign := testutil.NewTestStatus(projB.ID, "To Do")
	require.NoError(t, statuses.Create(ctx, foreign))

	svc := NewTaskService(tasks, nodes, statuses)

	err := svc.Create(ctx, &domain.Task{
		ListID:   list.ID,
		StatusID: foreign.ID,
		Name:     "Confused task",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskService_Create_RejectsOutOfRangeProgress(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, _ := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	list := testutil.NewTestNode(proj.ID, "Inbox")
	require.NoError(t, nodes.Create(ctx, list))
	status := testutil.NewTestStatus(proj.ID, "To Do")
	require.NoError(t, statuses.Create(ctx, status))

	svc := NewTaskService(tasks, nodes, statuses)

	over := 120
	err := svc.Create(ctx, &domain.Task{
		ListID:   list.ID,
		StatusID: status.ID,
		Name:     "Overachiever",
		Progress: &over,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskService_Update_MovesTaskBetweenStatuses(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, _ := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	list := testutil.NewTestNode(proj.ID, "Inbox")
	require.NoError(t, nodes.Create(ctx, list))
	todo := testutil.NewTestStatus(proj.ID, "To Do")
	done := testutil.NewTestStatus(proj.ID, "Done", testutil.WithStatusOrder(1))
	require.NoError(t, statuses.Create(ctx, todo))
	require.NoError(t, statuses.Create(ctx, done))

	svc := NewTaskService(tasks, nodes, statuses)

	task := testutil.NewTestTask(list.ID, todo.ID, "Ship feature")
	require.NoError(t, tasks.Create(ctx, task))

	task.StatusID = done.ID
	hundred := 100
	task.Progress = &hundred
	require.NoError(t, svc.Update(ctx, task))

	fetched, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, done.ID, fetched.StatusID)
	assert.Equal(t, 100, fetched.ProgressValue())
}

func TestTaskService_Delete(t *testing.T) {
	projects, nodes, statuses, tasks, _, _, _ := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, projects.Create(ctx, proj))
	list := testutil.NewTestNode(proj.ID, "Inbox")
	require.NoError(t, nodes.Create(ctx, list))
	status := testutil.NewTestStatus(proj.ID, "To Do")
	require.NoError(t, statuses.Create(ctx, status))

	svc := NewTaskService(tasks, nodes, statuses)

	task := testutil.NewTestTask(list.ID, status.ID, "Ephemeral")
	require.NoError(t, tasks.Create(ctx, task))
	require.NoError(t, svc.Delete(ctx, task.ID))

	_, err := svc.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
