package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/brunovale/prancheta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func resolveChecklistItemID(ctx context.Context, app *App, taskID, input string) (string, error) {
	items, err := app.Checklists.ListByTask(ctx, taskID)
	if err != nil {
		return "", err
	}
	for _, item := range items {
		if strings.EqualFold(item.Content, input) {
			return item.ID, nil
		}
	}
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return resolveID("checklist item", input, ids)
}

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Manage a task's checklist",
	}

	cmd.AddCommand(
		newChecklistAddCmd(app),
		newChecklistToggleCmd(app),
		newChecklistRemoveCmd(app),
	)

	return cmd
}

// checklistTaskFlags resolves the --project/--node/--task flag trio down
// to a task id.
func checklistTaskFlags(ctx context.Context, app *App, project, node, task string) (string, error) {
	_, nodeID, err := taskNodeFlags(ctx, app, project, node)
	if err != nil {
		return "", err
	}
	return resolveTaskID(ctx, app, nodeID, task)
}

func newChecklistAddCmd(app *App) *cobra.Command {
	var project, node, task, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a checklist item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := checklistTaskFlags(ctx, app, project, node, task)
			if err != nil {
				return err
			}

			item, err := app.Checklists.Add(ctx, taskID, content)
			if err != nil {
				return err
			}
			fmt.Printf("Added item %s (%s)\n", item.Content, formatter.ShortID(item.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	cmd.Flags().StringVar(&task, "task", "", "Task name or ID")
	cmd.Flags().StringVar(&content, "content", "", "Item text")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newChecklistToggleCmd(app *App) *cobra.Command {
	var project, node, task string

	cmd := &cobra.Command{
		Use:   "toggle ITEM",
		Short: "Check or uncheck an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := checklistTaskFlags(ctx, app, project, node, task)
			if err != nil {
				return err
			}
			itemID, err := resolveChecklistItemID(ctx, app, taskID, args[0])
			if err != nil {
				return err
			}

			if err := app.Checklists.Toggle(ctx, itemID); err != nil {
				return err
			}
			fmt.Println("Toggled.")
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	cmd.Flags().StringVar(&task, "task", "", "Task name or ID")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

func newChecklistRemoveCmd(app *App) *cobra.Command {
	var project, node, task string

	cmd := &cobra.Command{
		Use:   "remove ITEM",
		Short: "Delete a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := checklistTaskFlags(ctx, app, project, node, task)
			if err != nil {
				return err
			}
			itemID, err := resolveChecklistItemID(ctx, app, taskID, args[0])
			if err != nil {
				return err
			}

			if err := app.Checklists.Remove(ctx, itemID); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	cmd.Flags().StringVar(&task, "task", "", "Task name or ID")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}
