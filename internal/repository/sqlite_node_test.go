package repository

import (
	"context"
	"testing"
	"time"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeRepo_CreateAndGetByID_SprintFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNodeRepo(db)
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	sprint := testutil.NewTestNode("proj-1", "Sprint 12",
		testutil.WithNodeType(domain.NodeSprint),
		testutil.WithSprintDates(start, end),
		testutil.WithNodeColor("#EF4444", "red"))
	require.NoError(t, repo.Create(ctx, sprint))

	fetched, err := repo.GetByID(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeSprint, fetched.Type)
	assert.Equal(t, "#EF4444", fetched.Color)
	assert.Equal(t, "red", fetched.ColorName)
	require.NotNil(t, fetched.StartDate)
	require.NotNil(t, fetched.EndDate)
	assert.Equal(t, start, fetched.StartDate.UTC())
	assert.Equal(t, end, fetched.EndDate.UTC())
	assert.Nil(t, fetched.FolderID)
	assert.Nil(t, fetched.CustomEffort)
}

func TestNodeRepo_RootsVersusChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNodeRepo(db)
	ctx := context.Background()

	folder := testutil.NewTestNode("proj-1", "Folder", testutil.WithNodeType(domain.NodeFolder))
	require.NoError(t, repo.Create(ctx, folder))
	rootList := testutil.NewTestNode("proj-1", "Root list")
	require.NoError(t, repo.Create(ctx, rootList))
	nested := testutil.NewTestNode("proj-1", "Nested", testutil.WithFolderID(folder.ID))
	require.NoError(t, repo.Create(ctx, nested))
	foreign := testutil.NewTestNode("proj-2", "Other project")
	require.NoError(t, repo.Create(ctx, foreign))

	roots, err := repo.ListRoots(ctx, "proj-1")
	require.NoError(t, err)
	assert.Len(t, roots, 2, "nested nodes are not roots")

	children, err := repo.ListChildren(ctx, folder.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, nested.ID, children[0].ID)
	require.NotNil(t, children[0].FolderID)
	assert.Equal(t, folder.ID, *children[0].FolderID)

	all, err := repo.ListByProject(ctx, "proj-1")
	require.NoError(t, err)
	assert.Len(t, all, 3, "flat project listing ignores nesting")
}

func TestNodeRepo_Update_MovesNodeBetweenFolders(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNodeRepo(db)
	ctx := context.Background()

	folder := testutil.NewTestNode("proj-1", "Folder", testutil.WithNodeType(domain.NodeFolder))
	require.NoError(t, repo.Create(ctx, folder))
	list := testutil.NewTestNode("proj-1", "Loose list")
	require.NoError(t, repo.Create(ctx, list))

	list.FolderID = &folder.ID
	list.Name = "Filed list"
	require.NoError(t, repo.Update(ctx, list))

	fetched, err := repo.GetByID(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Filed list", fetched.Name)
	require.NotNil(t, fetched.FolderID)
	assert.Equal(t, folder.ID, *fetched.FolderID)

	// And back to the root.
	list.FolderID = nil
	require.NoError(t, repo.Update(ctx, list))
	fetched, err = repo.GetByID(ctx, list.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.FolderID)
}

func TestNodeRepo_DeleteByProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNodeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestNode("proj-1", "A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestNode("proj-1", "B")))
	survivor := testutil.NewTestNode("proj-2", "C")
	require.NoError(t, repo.Create(ctx, survivor))

	require.NoError(t, repo.DeleteByProject(ctx, "proj-1"))

	remaining, err := repo.ListByProject(ctx, "proj-1")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = repo.GetByID(ctx, survivor.ID)
	require.NoError(t, err)
}
