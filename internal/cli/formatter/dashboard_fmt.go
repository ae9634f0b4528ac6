package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
)

const defaultChartWidth = 40

// FormatDashboard renders the whole dashboard for plain terminal output.
func FormatDashboard(v app.DashboardView, now time.Time) string {
	var b strings.Builder

	b.WriteString(FormatFilterChips(v.Filters) + "\n\n")
	b.WriteString(FormatKPICards(v.Metrics.KPIs, 0) + "\n\n")
	b.WriteString(FormatStatusOverview(v.Metrics.StatusOverview, defaultChartWidth) + "\n")
	b.WriteString(FormatLifecycleChart(v.Metrics.LifecycleStages, defaultChartWidth) + "\n")
	b.WriteString(Header("Projects") + "\n")
	b.WriteString(FormatTabs(v.Tab) + "\n\n")
	b.WriteString(FormatProjectTable(v.TabProjects))

	if len(v.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range v.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}
	b.WriteString("\n" + FormatFooter(v, now) + "\n")
	return b.String()
}

// FormatFooter shows where the data came from and when it was loaded.
func FormatFooter(v app.DashboardView, now time.Time) string {
	if !v.Loaded {
		return Dim(fmt.Sprintf("%s · no data loaded", v.Source))
	}
	return Dim(fmt.Sprintf("%s · %d projects · loaded %s · ", v.Source, v.TotalProjects, HumanTimestamp(v.LoadedAt, now))) +
		ShortID(v.LoadID)
}
