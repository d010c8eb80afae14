package cli

import (
	"os"

	"github.com/brunovale/prancheta/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects   service.ProjectService
	Nodes      service.NodeService
	Statuses   service.StatusService
	Tasks      service.TaskService
	Checklists service.ChecklistService
	Profiles   service.ProfileService
	Boards     service.BoardService

	// IsInteractive reports whether stdin is a terminal; confirmation
	// prompts are skipped when it is not.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// currentUser resolves the acting user for commands that scope by owner.
func currentUser() string {
	if u := os.Getenv("PRANCHETA_USER"); u != "" {
		return u
	}
	return "local"
}

// NewRootCmd creates the top-level "prancheta" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "prancheta",
		Short: "Project boards with folders, sprints and Kanban views",
	}

	root.AddCommand(
		newProjectCmd(app),
		newNodeCmd(app),
		newStatusCmd(app),
		newTaskCmd(app),
		newChecklistCmd(app),
		newBoardCmd(app),
		newProfileCmd(app),
	)

	return root
}
