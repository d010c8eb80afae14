package cli

import (
	"context"
	"fmt"

	"github.com/brunovale/prancheta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var project, node string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the Kanban board of a list or sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, nodeID, err := taskNodeFlags(ctx, app, project, node)
			if err != nil {
				return err
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				return runBoardTUI(app, nodeID)
			}

			b, err := app.Boards.Board(ctx, nodeID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatBoard(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the board in an interactive view")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}
