package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// Messages shown when the project grid has nothing to list.
const (
	EmptyProjectsText = "No projects match the current filters."
	EmptyProjectsHint = "Try adjusting your filter selection."
)

const cardProgressWidth = 24

// FormatEmptyProjects renders the empty-grid message.
func FormatEmptyProjects() string {
	return StyleFg.Render(EmptyProjectsText) + "\n" + Dim(EmptyProjectsHint)
}

// FormatTabs renders the tab row with the active tab highlighted.
func FormatTabs(active domain.Tab) string {
	parts := make([]string, 0, len(domain.Tabs()))
	for _, t := range domain.Tabs() {
		if t == active {
			parts = append(parts, StyleHeader.Underline(true).Render(t.Label()))
			continue
		}
		parts = append(parts, Dim(t.Label()))
	}
	return strings.Join(parts, "  ")
}

// FormatProjectCard renders one project card: name, department, stage
// badge, status pill, manager and planned vs. actual progress.
func FormatProjectCard(p domain.Project, selected bool, width int) string {
	width = max(cardProgressWidth+4, width)
	inner := width - 4

	pill := StatusPill(p.Status)
	name := Truncate(domain.CoalesceStr(p.Name, domain.Placeholder), inner-lipgloss.Width(pill)-1)
	title := Bold(name) + lipgloss.PlaceHorizontal(inner-lipgloss.Width(name), lipgloss.Right, pill)

	lines := []string{
		title,
		Dim(domain.CoalesceStr(p.Department, domain.Placeholder)) + " " + StageBadge(p.Lifecycle),
		Dim("Project Manager ") + StyleFg.Render(domain.FormatManagerName(p.Manager)),
		ProgressLabels(p.PlannedProgress, p.ActualProgress),
		RenderProgress(p.PlannedProgress, p.ActualProgress, min(inner, cardProgressWidth), p.Status.Meta().Tone),
	}

	border := ColorDim
	if selected {
		border = ColorHeader
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// FormatProjectTable renders projects as a table for non-interactive output.
func FormatProjectTable(projects []domain.Project) string {
	if len(projects) == 0 {
		return FormatEmptyProjects() + "\n"
	}
	headers := []string{"ID", "NAME", "DEPARTMENT", "STAGE", "STATUS", "MANAGER", "PLANNED", "ACTUAL"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			Dim(p.ID),
			Bold(p.Name),
			p.Department,
			string(p.Lifecycle),
			StatusPill(p.Status),
			domain.FormatManagerName(p.Manager),
			fmt.Sprintf("%d%%", domain.Percent(p.PlannedProgress)),
			fmt.Sprintf("%d%%", domain.Percent(p.ActualProgress)),
		})
	}
	return RenderTable(headers, rows)
}
