package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/brunovale/prancheta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func resolveStatusID(ctx context.Context, app *App, projectID, input string) (string, error) {
	statuses, err := app.Statuses.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	for _, s := range statuses {
		if strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
	}
	ids := make([]string, len(statuses))
	for i, s := range statuses {
		ids[i] = s.ID
	}
	return resolveID("status", input, ids)
}

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Manage a project's status columns",
	}

	cmd.AddCommand(
		newStatusEnsureCmd(app),
		newStatusListCmd(app),
		newStatusUpdateCmd(app),
		newStatusMoveCmd(app),
		newStatusRemoveCmd(app),
	)

	return cmd
}

func newStatusEnsureCmd(app *App) *cobra.Command {
	var project, name, color string

	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Create a status, or return the existing one with that name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			st, err := app.Statuses.Ensure(ctx, projectID, name, color)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", formatter.StatusDot(st), formatter.ShortID(st.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Status name")
	cmd.Flags().StringVar(&color, "color", "", "Column color (hex); ignored when the status already exists")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStatusListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List statuses in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			statuses, err := app.Statuses.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(statuses) == 0 {
				fmt.Println("No statuses yet. Create one with status ensure.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatStatusList(statuses))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStatusUpdateCmd(app *App) *cobra.Command {
	var project, name, color string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename or recolor a status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			statusID, err := resolveStatusID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			st, err := app.Statuses.GetByID(ctx, statusID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				st.Name = name
			}
			if cmd.Flags().Changed("color") {
				st.ColorHex = color
			}

			if err := app.Statuses.Update(ctx, st); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", formatter.StatusDot(st))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "New color (hex)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStatusMoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "move DRAGGED TARGET",
		Short: "Move a status to another column's position",
		Long: `Move a status to the position currently held by another status,
shifting the columns in between. Works like dragging a column in a
Kanban view.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			draggedID, err := resolveStatusID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			targetID, err := resolveStatusID(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}

			if err := app.Statuses.Reorder(ctx, projectID, draggedID, targetID); err != nil {
				return err
			}

			statuses, err := app.Statuses.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatStatusList(statuses))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStatusRemoveCmd(app *App) *cobra.Command {
	var project string
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a status, moving its tasks to the first remaining column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			statusID, err := resolveStatusID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			st, err := app.Statuses.GetByID(ctx, statusID)
			if err != nil {
				return err
			}

			ok, err := app.confirmDestructive(
				fmt.Sprintf("Delete status %q? Its tasks move to the first remaining column.", st.Name),
				force)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := app.Statuses.Delete(ctx, statusID); err != nil {
				return err
			}
			fmt.Printf("Removed status %s\n", st.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
