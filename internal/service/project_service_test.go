package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/repository"
	"github.com/brunovale/prancheta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create_GeneratesIDAndRoundtrips(t *testing.T) {
	projects, nodes, statuses, tasks, _, profiles, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewProjectService(projects, nodes, statuses, tasks, profiles)

	proj := &domain.Project{Name: "Apartment Renovation", UserID: "ana", Color: "#8B5CF6"}
	require.NoError(t, svc.Create(ctx, proj))
	assert.NotEmpty(t, proj.ID, "UUID should be generated")

	fetched, err := svc.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apartment Renovation", fetched.Name)
	assert.Equal(t, "#8B5CF6", fetched.Color)
}

func TestProjectService_Create_FreePlanCapsAtOneProject(t *testing.T) {
	projects, nodes, statuses, tasks, _, profiles, _ := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile("ana", domain.PlanFree)))

	svc := NewProjectService(projects, nodes, statuses, tasks, profiles)

	first := &domain.Project{Name: "First", UserID: "ana"}
	require.NoError(t, svc.Create(ctx, first))

	second := &domain.Project{Name: "Second", UserID: "ana"}
	err := svc.Create(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraint)

	// The limit counts per user, not globally.
	other := &domain.Project{Name: "Unrelated", UserID: "bruno"}
	require.NoError(t, svc.Create(ctx, other))
}

func TestProjectService_Create_MissingProfileTreatedAsFree(t *testing.T) {
	projects, nodes, statuses, tasks, _, profiles, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewProjectService(projects, nodes, statuses, tasks, profiles)

	require.NoError(t, svc.Create(ctx, &domain.Project{Name: "First", UserID: "ghost"}))
	err := svc.Create(ctx, &domain.Project{Name: "Second", UserID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestProjectService_Create_PremiumPlanIsUnlimited(t *testing.T) {
	projects, nodes, statuses, tasks, _, profiles, _ := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile("ana", domain.PlanPremium)))

	svc := NewProjectService(projects, nodes, statuses, tasks, profiles)

	for _, name := range []string{"One", "Two", "Three"} {
		require.NoError(t, svc.Create(ctx, &domain.Project{Name: name, UserID: "ana"}))
	}

	all, err := svc.ListByUser(ctx, "ana")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// projectTree is a seeded project with a folder, two task containers, two
// statuses, and three tasks spread across the containers.
type projectTree struct {
	proj   *domain.Project
	list   *domain.Node
	sprint *domain.Node
	todo   *domain.Status
	done   *domain.Status
}

func seedProjectTree(t *testing.T, ctx context.Context,
	projects repository.ProjectRepo, nodes repository.NodeRepo,
	statuses repository.StatusRepo, tasks repository.TaskRepo,
) projectTree {
	t.Helper()

	proj := testutil.NewTestProject("Launch")
	require.NoError(t, projects.Create(ctx, proj))

	folder := testutil.NewTestNode(proj.ID, "Marketing", testutil.WithNodeType(domain.NodeFolder))
	require.NoError(t, nodes.Create(ctx, folder))
	list := testutil.NewTestNode(proj.ID, "Content", testutil.WithFolderID(folder.ID))
	require.NoError(t, nodes.Create(ctx, list))
	sprint := testutil.NewTestNode(proj.ID, "Sprint 1", testutil.WithNodeType(domain.NodeSprint))
	require.NoError(t, nodes.Create(ctx, sprint))

	todo := testutil.NewTestStatus(proj.ID, "To Do")
	done := testutil.NewTestStatus(proj.ID, "Done", testutil.WithStatusOrder(1))
	require.NoError(t, statuses.Create(ctx, todo))
	require.NoError(t, statuses.Create(ctx, done))

	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(list.ID, todo.ID, "Write post")))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(list.ID, done.ID, "Draft outline")))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(sprint.ID, todo.ID, "Set up CI")))

	return projectTree{proj: proj, list: list, sprint: sprint, todo: todo, done: done}
}

func assertTreeFullyDeleted(t *testing.T, ctx context.Context, tree projectTree,
	projects repository.ProjectRepo, nodes repository.NodeRepo,
	statuses repository.StatusRepo, tasks repository.TaskRepo,
) {
	t.Helper()

	_, err := projects.GetByID(ctx, tree.proj.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	remainingNodes, err := nodes.ListByProject(ctx, tree.proj.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingNodes)

	remainingStatuses, err := statuses.ListByProject(ctx, tree.proj.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingStatuses)

	for _, node := range []*domain.Node{tree.list, tree.sprint} {
		remainingTasks, err := tasks.ListByNode(ctx, node.ID)
		require.NoError(t, err)
		assert.Empty(t, remainingTasks)
	}
}

func TestProjectService_Delete_CascadeLeavesNothingBehind(t *testing.T) {
	projects, nodes, statuses, tasks, _, profiles, _ := setupRepos(t)
	ctx := context.Background()

	tree := seedProjectTree(t, ctx, projects, nodes, statuses, tasks)

	svc := NewProjectService(projects, nodes, statuses, tasks, profiles)
	require.NoError(t, svc.Delete(ctx, tree.proj.ID))

	assertTreeFullyDeleted(t, ctx, tree, projects, nodes, statuses, tasks)
}

func TestProjectService_Delete_RetryAfterMidCascadeFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := repository.NewSQLiteProjectRepo(database)
	nodes := repository.NewSQLiteNodeRepo(database)
	statuses := repository.NewSQLiteStatusRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)

	tree := seedProjectTree(t, ctx, projects, nodes, statuses, tasks)

	// Let the first write through (one node's tasks), then fail.
	boom := errors.New("disk full")
	failing := testutil.NewFailOnNthExecDB(database, 2, boom)
	flakySvc := NewProjectService(
		projects,
		repository.NewSQLiteNodeRepo(failing),
		repository.NewSQLiteStatusRepo(failing),
		repository.NewSQLiteTaskRepo(failing),
		profiles,
	)

	err := flakySvc.Delete(ctx, tree.proj.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// The project row survives a partial cascade.
	_, err = projects.GetByID(ctx, tree.proj.ID)
	require.NoError(t, err)

	// Retrying against a healthy store finishes the cleanup.
	svc := NewProjectService(projects, nodes, statuses, tasks, profiles)
	require.NoError(t, svc.Delete(ctx, tree.proj.ID))

	assertTreeFullyDeleted(t, ctx, tree, projects, nodes, statuses, tasks)
}
