package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/brunovale/prancheta/internal/cli/formatter"
	"github.com/brunovale/prancheta/internal/domain"
	"github.com/spf13/cobra"
)

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.ListByUser(ctx, currentUser())
	if err != nil {
		return "", err
	}

	// Exact name match first (case-insensitive), then id or prefix.
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return resolveID("project", input, ids)
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:   name,
				Color:  color,
				UserID: currentUser(),
			}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s (%s)\n", p.Name, formatter.ShortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex, e.g. #8B5CF6)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.ListByUser(context.Background(), currentUser())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a project's node tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			roots, err := app.Nodes.ListChildren(ctx, projectID, nil)
			if err != nil {
				return err
			}

			children := make(map[string][]*domain.Node)
			tasks := make(map[string][]*domain.Task)
			var walk func(nodes []*domain.Node)
			walk = func(nodes []*domain.Node) {
				for _, n := range nodes {
					if n.IsFolder() {
						kids, err := app.Nodes.ListChildren(ctx, projectID, &n.ID)
						if err == nil && len(kids) > 0 {
							children[n.ID] = kids
							walk(kids)
						}
						continue
					}
					if items, err := app.Tasks.ListByNode(ctx, n.ID); err == nil && len(items) > 0 {
						tasks[n.ID] = items
					}
				}
			}
			walk(roots)

			fmt.Printf("%s\n", formatter.FormatProjectInspect(formatter.ProjectInspectData{
				Project:  p,
				Roots:    roots,
				Children: children,
				Tasks:    tasks,
			}))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("color") {
				p.Color = color
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			ok, err := app.confirmDestructive(
				fmt.Sprintf("Delete project %q with all its folders, lists, sprints and tasks?", p.Name),
				force)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
