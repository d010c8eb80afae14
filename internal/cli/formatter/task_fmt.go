package formatter

import (
	"fmt"
	"strings"

	"github.com/brunovale/prancheta/internal/domain"
)

// FormatTaskList renders a node's tasks as a table, resolving each task's
// status through the given lookup.
func FormatTaskList(tasks []*domain.Task, statusByID map[string]*domain.Status) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		statusCell := Dim("?")
		if st, ok := statusByID[t.StatusID]; ok {
			statusCell = StatusDot(st)
		}
		due := Dim("-")
		if t.DueDate != nil {
			due = RelativeDate(*t.DueDate)
		}
		rows = append(rows, []string{
			Dim(ShortID(t.ID)),
			StyleFg.Render(t.Name),
			statusCell,
			PriorityBadge(t.Priority),
			ProgressBar(t.ProgressValue(), 10),
			due,
		})
	}
	return RenderTable([]string{"ID", "TASK", "STATUS", "PRIORITY", "PROGRESS", "DUE"}, rows)
}

// FormatTaskInspect renders one task in detail with its checklist.
func FormatTaskInspect(t *domain.Task, status *domain.Status, items []*domain.ChecklistItem) string {
	var b strings.Builder

	b.WriteString(Bold(t.Name) + "\n")
	if t.Description != "" {
		b.WriteString(StyleFg.Render(t.Description) + "\n")
	}
	b.WriteString("\n")

	if status != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("status"), StatusDot(status)))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("priority"), PriorityBadge(t.Priority)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("progress"), ProgressBar(t.ProgressValue(), 10)))
	if t.Assignee != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("assignee"), StyleFg.Render(t.Assignee)))
	}
	if t.DueDate != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("due"), RelativeDate(*t.DueDate)))
	}

	if len(items) > 0 {
		b.WriteString("\n" + Header("checklist") + "\n")
		for _, item := range items {
			mark := StyleDim.Render("[ ]")
			text := StyleFg.Render(item.Content)
			if item.Checked {
				mark = StyleGreen.Render("[x]")
				text = Dim(item.Content)
			}
			b.WriteString(fmt.Sprintf("%s %s  %s\n", mark, text, Dim(ShortID(item.ID))))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatStatusList renders a project's status columns in display order.
func FormatStatusList(statuses []*domain.Status) string {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.OrderIndex),
			Dim(ShortID(s.ID)),
			StatusDot(s),
			Dim(s.ColorHex),
		})
	}
	return RenderTable([]string{"#", "ID", "STATUS", "COLOR"}, rows)
}
