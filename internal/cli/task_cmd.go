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

func resolveTaskID(ctx context.Context, app *App, nodeID, input string) (string, error) {
	tasks, err := app.Tasks.ListByNode(ctx, nodeID)
	if err != nil {
		return "", err
	}
	for _, t := range tasks {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolveID("task", input, ids)
}

func statusLookup(ctx context.Context, app *App, projectID string) (map[string]*domain.Status, error) {
	statuses, err := app.Statuses.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Status, len(statuses))
	for _, s := range statuses {
		byID[s.ID] = s
	}
	return byID, nil
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks inside a list or sprint",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskInspectCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

// taskNodeFlags resolves the common --project/--node flag pair.
func taskNodeFlags(ctx context.Context, app *App, project, node string) (projectID, nodeID string, err error) {
	projectID, err = resolveProjectID(ctx, app, project)
	if err != nil {
		return "", "", err
	}
	nodeID, err = resolveNodeID(ctx, app, projectID, node)
	if err != nil {
		return "", "", err
	}
	return projectID, nodeID, nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var project, node, name, description, status, assignee, priority, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, nodeID, err := taskNodeFlags(ctx, app, project, node)
			if err != nil {
				return err
			}
			statusID, err := resolveStatusID(ctx, app, projectID, status)
			if err != nil {
				return err
			}

			t := &domain.Task{
				ListID:      nodeID,
				StatusID:    statusID,
				UserID:      currentUser(),
				Name:        name,
				Description: description,
				Assignee:    assignee,
				Priority:    domain.Priority(priority),
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &dueDate
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Created task %s (%s)\n", t.Name, formatter.ShortID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&status, "status", "", "Status name or ID")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var project, node string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a node's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, nodeID, err := taskNodeFlags(ctx, app, project, node)
			if err != nil {
				return err
			}

			tasks, err := app.Tasks.ListByNode(ctx, nodeID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks here.")
				return nil
			}

			byID, err := statusLookup(ctx, app, projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatTaskList(tasks, byID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func newTaskInspectCmd(app *App) *cobra.Command {
	var project, node string

	cmd := &cobra.Command{
		Use:   "inspect ID",
		Short: "Show task details and checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, nodeID, err := taskNodeFlags(ctx, app, project, node)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(ctx, app, nodeID, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			status, err := app.Statuses.GetByID(ctx, t.StatusID)
			if err != nil {
				return err
			}
			items, err := app.Checklists.ListByTask(ctx, taskID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTaskInspect(t, status, items))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var project, node, name, description, status, assignee, priority, due string
	var progress int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, nodeID, err := taskNodeFlags(ctx, app, project, node)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(ctx, app, nodeID, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("description") {
				t.Description = description
			}
			if cmd.Flags().Changed("status") {
				statusID, err := resolveStatusID(ctx, app, projectID, status)
				if err != nil {
					return err
				}
				t.StatusID = statusID
			}
			if cmd.Flags().Changed("assignee") {
				t.Assignee = assignee
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("progress") {
				p := progress
				t.Progress = &p
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &dueDate
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&status, "status", "", "Status name or ID")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress (0-100)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var project, node string
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task and its checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, nodeID, err := taskNodeFlags(ctx, app, project, node)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(ctx, app, nodeID, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}

			ok, err := app.confirmDestructive(fmt.Sprintf("Delete task %q?", t.Name), force)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := app.Tasks.Delete(ctx, taskID); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&node, "node", "", "List or sprint name or ID")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}
