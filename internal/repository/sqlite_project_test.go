package repository

import (
	"context"
	"testing"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Wedding Planning", testutil.WithProjectColor("#F59E0B"))
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Wedding Planning", fetched.Name)
	assert.Equal(t, "#F59E0B", fetched.Color)
	assert.Equal(t, "test-user", fetched.UserID)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectRepo_ListByUser_IsPerUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("A", testutil.WithProjectUser("ana"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("B", testutil.WithProjectUser("ana"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("C", testutil.WithProjectUser("bruno"))))

	anas, err := repo.ListByUser(ctx, "ana")
	require.NoError(t, err)
	assert.Len(t, anas, 2)

	count, err := repo.CountByUser(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountByUser(ctx, "carla")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestProjectRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Old Name")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Name = "New Name"
	proj.Color = "#10B981"
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", fetched.Name)
	assert.Equal(t, "#10B981", fetched.Color)
}

func TestProjectRepo_Delete_IsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, repo.Create(ctx, proj))

	require.NoError(t, repo.Delete(ctx, proj.ID))
	_, err := repo.GetByID(ctx, proj.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is a no-op, not an error.
	require.NoError(t, repo.Delete(ctx, proj.ID))
}
