package formatter

import (
	"fmt"
	"strings"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatProjectList renders projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("■")
		if p.Color == "" {
			swatch = StyleDim.Render("■")
		}
		rows = append(rows, []string{
			Dim(ShortID(p.ID)),
			swatch + " " + Bold(p.Name),
			Dim(RelativeDate(p.CreatedAt)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "CREATED"}, rows)
}

// ProjectInspectData bundles everything the inspect view shows.
type ProjectInspectData struct {
	Project  *domain.Project
	Roots    []*domain.Node
	Children map[string][]*domain.Node
	Tasks    map[string][]*domain.Task
}

// FormatProjectInspect renders a project header followed by its node tree
// with per-container task counts.
func FormatProjectInspect(d ProjectInspectData) string {
	var b strings.Builder

	b.WriteString(Header(d.Project.Name))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("id %s · created %s", d.Project.ID, RelativeDate(d.Project.CreatedAt))))
	b.WriteString("\n\n")

	if len(d.Roots) == 0 {
		b.WriteString(Dim("No folders, lists or sprints yet."))
		return b.String()
	}

	var renderNode func(n *domain.Node, indent int)
	renderNode = func(n *domain.Node, indent int) {
		pad := strings.Repeat("  ", indent)
		line := pad + NodeKindLabel(n.Type) + " " + StyleFg.Render(n.Name)
		if tasks := d.Tasks[n.ID]; len(tasks) > 0 {
			line += Dim(fmt.Sprintf("  (%d task(s))", len(tasks)))
		}
		b.WriteString(line + "\n")
		for _, child := range d.Children[n.ID] {
			renderNode(child, indent+1)
		}
	}
	for _, root := range d.Roots {
		renderNode(root, 0)
	}

	return strings.TrimRight(b.String(), "\n")
}
