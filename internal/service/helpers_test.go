package service

import (
	"testing"

	"github.com/brunovale/prancheta/internal/db"
	"github.com/brunovale/prancheta/internal/repository"
	"github.com/brunovale/prancheta/internal/testutil"
)

// helper to set up all repos from a test DB
func setupRepos(t *testing.T) (
	repository.ProjectRepo,
	repository.NodeRepo,
	repository.StatusRepo,
	repository.TaskRepo,
	repository.ChecklistRepo,
	repository.ProfileRepo,
	db.UnitOfWork,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteNodeRepo(database),
		repository.NewSQLiteStatusRepo(database),
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteChecklistRepo(database),
		repository.NewSQLiteProfileRepo(database),
		testutil.NewTestUoW(database)
}
