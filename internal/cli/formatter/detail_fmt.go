package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// FormatProjectDetail renders the full detail view of one project.
func FormatProjectDetail(d domain.Detail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Dim(d.DisplayID), StatusPill(d.Status))
	fmt.Fprintf(&b, "%s\n", Bold(d.Name))
	fmt.Fprintf(&b, "%s %s\n\n", Dim("Created"), d.Created)

	fields := [][2]string{
		{"Stage", d.Stage},
		{"SBU", d.SBU},
		{"Beneficiary", d.Beneficiary},
		{"Portfolio", d.Portfolio},
		{"Sponsor", d.Sponsor},
		{"Business Focal Point", d.BusinessFocalPoint},
		{"IT Project Manager", d.ITProjectManager},
		{"Milestone", d.Milestone},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-21s", f[0])), f[1])
	}

	b.WriteString("\n" + Header("Progress") + "\n")
	b.WriteString(ProgressLabels(float64(d.PlannedPercent)/100, float64(d.ActualPercent)/100) + "\n")
	b.WriteString(RenderProgress(float64(d.PlannedPercent)/100, float64(d.ActualPercent)/100, 40, d.Tone) + "\n")

	b.WriteString("\n" + Header("Demand Description") + "\n")
	b.WriteString(d.DemandDescription + "\n")

	sections := []struct {
		title string
		items []string
	}{
		{"Added Values", d.AddedValues},
		{"Updates", d.Updates},
		{"Challenges & Risks", d.Challenges},
		{"Planned Activities", d.PlannedActivities},
	}
	for _, s := range sections {
		b.WriteString("\n" + Header(s.title) + "\n")
		b.WriteString(bulletList(s.items))
	}

	b.WriteString("\n" + Header("Timeline") + "\n")
	b.WriteString(FormatTimeline(d.Timeline))
	return b.String()
}

func bulletList(items []string) string {
	if len(items) == 1 && items[0] == domain.Placeholder {
		return domain.Placeholder + "\n"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("• " + item + "\n")
	}
	return b.String()
}

// FormatTimeline renders the phase grid: a month header row and one bar
// row per phase, each bar placed by its start column and span.
func FormatTimeline(tl domain.Timeline) string {
	colW := 3
	for _, m := range tl.Months {
		colW = max(colW, lipgloss.Width(m)+1)
	}
	labelW := 0
	for _, bar := range tl.Bars {
		labelW = max(labelW, lipgloss.Width(bar.Label))
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelW+1))
	for _, m := range tl.Months {
		b.WriteString(Dim(fmt.Sprintf("%-*s", colW, m)))
	}
	b.WriteString("\n")

	for _, bar := range tl.Bars {
		b.WriteString(fmt.Sprintf("%-*s ", labelW, bar.Label))
		if bar.StartCol > len(tl.Months) {
			b.WriteString(Dim("→ "+bar.MonthsLabel()) + "\n")
			continue
		}
		b.WriteString(strings.Repeat(" ", (bar.StartCol-1)*colW))
		cells := bar.Span * colW
		text := Truncate(bar.MonthsLabel(), cells-1)
		fill := lipgloss.NewStyle().Background(ColorStage).Foreground(lipgloss.Color("#282828"))
		b.WriteString(fill.Render(text + strings.Repeat(" ", max(0, cells-1-lipgloss.Width(text)))))
		b.WriteString("\n")
	}
	return b.String()
}
