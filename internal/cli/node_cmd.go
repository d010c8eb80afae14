package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brunovale/prancheta/internal/cli/formatter"
	"github.com/brunovale/prancheta/internal/domain"
	"github.com/spf13/cobra"
)

func resolveNodeID(ctx context.Context, app *App, projectID, input string) (string, error) {
	nodes, err := app.Nodes.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	for _, n := range nodes {
		if strings.EqualFold(n.Name, input) {
			return n.ID, nil
		}
	}
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return resolveID("node", input, ids)
}

func newNodeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage folders, lists and sprints",
	}

	cmd.AddCommand(
		newNodeAddCmd(app),
		newNodeListCmd(app),
		newNodeMoveCmd(app),
		newNodeRenameCmd(app),
		newNodeRemoveCmd(app),
	)

	return cmd
}

func newNodeAddCmd(app *App) *cobra.Command {
	var project, name, kind, folder, color, colorName, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a folder, list or sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			n := &domain.Node{
				ProjectID: projectID,
				Name:      name,
				Type:      domain.NodeType(kind),
				Color:     color,
				ColorName: colorName,
			}
			if folder != "" {
				folderID, err := resolveNodeID(ctx, app, projectID, folder)
				if err != nil {
					return err
				}
				n.FolderID = &folderID
			}
			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				n.StartDate = &startDate
			}
			if end != "" {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				n.EndDate = &endDate
			}

			if err := app.Nodes.Create(ctx, n); err != nil {
				return err
			}
			fmt.Printf("Created %s %s (%s)\n", n.Type, n.Name, formatter.ShortID(n.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Node name")
	cmd.Flags().StringVar(&kind, "type", "lista", "Node type (pasta|lista|sprint)")
	cmd.Flags().StringVar(&folder, "folder", "", "Parent folder name or ID")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().StringVar(&colorName, "color-name", "", "Display color name")
	cmd.Flags().StringVar(&start, "start", "", "Sprint start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Sprint end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newNodeListCmd(app *App) *cobra.Command {
	var project, folder, kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List nodes at one level of the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			var folderID *string
			if folder != "" {
				id, err := resolveNodeID(ctx, app, projectID, folder)
				if err != nil {
					return err
				}
				folderID = &id
			}

			var nodes []*domain.Node
			if kind == "" {
				nodes, err = app.Nodes.ListChildren(ctx, projectID, folderID)
			} else {
				nodes, err = app.Nodes.ListKind(ctx, projectID, domain.NodeType(kind), folderID)
			}
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				fmt.Println("Nothing here.")
				return nil
			}

			rows := make([][]string, 0, len(nodes))
			for _, n := range nodes {
				rows = append(rows, []string{
					formatter.Dim(formatter.ShortID(n.ID)),
					formatter.NodeKindLabel(n.Type),
					formatter.Bold(n.Name),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "TYPE", "NAME"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&folder, "folder", "", "Folder to list (omit for the project root)")
	cmd.Flags().StringVar(&kind, "type", "", "Only show this node type (pasta|lista|sprint)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newNodeMoveCmd(app *App) *cobra.Command {
	var project, folder string
	var toRoot bool

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move a node into a folder or back to the root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			nodeID, err := resolveNodeID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			n, err := app.Nodes.GetByID(ctx, nodeID)
			if err != nil {
				return err
			}

			switch {
			case toRoot:
				n.FolderID = nil
			case folder != "":
				folderID, err := resolveNodeID(ctx, app, projectID, folder)
				if err != nil {
					return err
				}
				n.FolderID = &folderID
			default:
				return fmt.Errorf("pass --folder or --root")
			}

			if err := app.Nodes.Update(ctx, n); err != nil {
				return err
			}
			fmt.Printf("Moved %s\n", n.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&folder, "folder", "", "Destination folder name or ID")
	cmd.Flags().BoolVar(&toRoot, "root", false, "Move to the project root")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newNodeRenameCmd(app *App) *cobra.Command {
	var project, name string

	cmd := &cobra.Command{
		Use:   "rename ID",
		Short: "Rename a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			nodeID, err := resolveNodeID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			n, err := app.Nodes.GetByID(ctx, nodeID)
			if err != nil {
				return err
			}

			n.Name = name
			if err := app.Nodes.Update(ctx, n); err != nil {
				return err
			}
			fmt.Printf("Renamed node to %s\n", n.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&name, "name", "", "New name")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newNodeRemoveCmd(app *App) *cobra.Command {
	var project string
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a node (folders cascade through their contents)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			nodeID, err := resolveNodeID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			n, err := app.Nodes.GetByID(ctx, nodeID)
			if err != nil {
				return err
			}

			prompt := fmt.Sprintf("Delete %s %q?", n.Type, n.Name)
			if n.IsFolder() {
				prompt = fmt.Sprintf("Delete folder %q and everything inside it?", n.Name)
			}
			ok, err := app.confirmDestructive(prompt, force)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := app.Nodes.Delete(ctx, nodeID); err != nil {
				return err
			}
			fmt.Printf("Removed %s %s\n", n.Type, n.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
