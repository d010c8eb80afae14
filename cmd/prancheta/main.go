package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brunovale/prancheta/internal/board"
	"github.com/brunovale/prancheta/internal/cli"
	"github.com/brunovale/prancheta/internal/db"
	"github.com/brunovale/prancheta/internal/repository"
	"github.com/brunovale/prancheta/internal/service"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.prancheta/prancheta.db
	dbPath := os.Getenv("PRANCHETA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".prancheta", "prancheta.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	nodeRepo := repository.NewSQLiteNodeRepo(database)
	statusRepo := repository.NewSQLiteStatusRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	checklistRepo := repository.NewSQLiteChecklistRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Unit of work for the transactional reorder snapshot
	uow := db.NewSQLiteUnitOfWork(database)

	// Cascade telemetry goes to stderr when asked for; quiet by default.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("PRANCHETA_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}
	sorter := board.NewSorter(boardLocale())

	app := &cli.App{
		Projects:   service.NewProjectService(projectRepo, nodeRepo, statusRepo, taskRepo, profileRepo, observer),
		Nodes:      service.NewNodeService(nodeRepo, taskRepo, observer),
		Statuses:   service.NewStatusService(statusRepo, taskRepo, uow, observer),
		Tasks:      service.NewTaskService(taskRepo, nodeRepo, statusRepo),
		Checklists: service.NewChecklistService(checklistRepo, taskRepo),
		Profiles:   service.NewProfileService(profileRepo),
		Boards:     service.NewBoardService(nodeRepo, statusRepo, taskRepo, sorter),
	}

	// Detect interactive terminal for confirmation prompts and the board view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// boardLocale picks the collation locale for Kanban task ordering.
func boardLocale() language.Tag {
	if l := os.Getenv("PRANCHETA_LOCALE"); l != "" {
		if tag, err := language.Parse(l); err == nil {
			return tag
		}
	}
	return language.BrazilianPortuguese
}
