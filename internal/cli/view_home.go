package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli/formatter"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

const (
	// projectListRows is how many projects the list shows at once.
	projectListRows = 10
	listPaneWidth   = 44
	splitMinWidth   = 90
)

// homeView is the dashboard: filter chips, KPI cards, charts, tab row and
// a selectable project list with the selected project's card beside it.
type homeView struct {
	state  *SharedState
	view   app.DashboardView
	cursor int
	offset int
}

func newHomeView(state *SharedState, view app.DashboardView) *homeView {
	return &homeView{state: state, view: view}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "Dashboard" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

// selected returns the project under the cursor, if any.
func (v *homeView) selected() (domain.Project, bool) {
	if v.cursor < 0 || v.cursor >= len(v.view.TabProjects) {
		return domain.Project{}, false
	}
	return v.view.TabProjects[v.cursor], true
}

func (v *homeView) clampCursor() {
	n := len(v.view.TabProjects)
	v.cursor = max(0, min(v.cursor, n-1))
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+projectListRows {
		v.offset = v.cursor - projectListRows + 1
	}
	v.offset = max(0, min(v.offset, n-projectListRows))
}

// cycleTab returns the tab step positions away from the current one.
func (v *homeView) cycleTab(step int) domain.Tab {
	tabs := domain.Tabs()
	i := max(0, slices.Index(tabs, v.view.Tab))
	return tabs[(i+step+len(tabs))%len(tabs)]
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardUpdatedMsg:
		if msg.err == nil || msg.view.Loaded {
			v.view = msg.view
		}
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
				v.clampCursor()
			}
		case "down", "j":
			if v.cursor < len(v.view.TabProjects)-1 {
				v.cursor++
				v.clampCursor()
			}
		case "tab":
			v.cursor = 0
			return v, setTabCmd(v.state, string(v.cycleTab(1)))
		case "shift+tab":
			v.cursor = 0
			return v, setTabCmd(v.state, string(v.cycleTab(-1)))
		case "c":
			return v, resetFiltersCmd(v.state)
		case "f":
			if len(v.view.Filters) == 0 {
				return v, nil
			}
			return v, startFilterPicker(v.state, v.view)
		case "r":
			return v, reloadCmd(v.state)
		case "enter":
			if p, ok := v.selected(); ok {
				return v, pushView(newDetailView(v.state, p))
			}
		}
	}
	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *homeView) View() string {
	var b strings.Builder

	if v.state.Err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+v.state.Err.Error()) + "\n\n")
	}

	b.WriteString(formatter.FormatFilterChips(v.view.Filters) + "\n\n")
	b.WriteString(formatter.FormatKPICards(v.view.Metrics.KPIs, v.state.Width) + "\n\n")
	b.WriteString(v.renderCharts() + "\n")
	b.WriteString(formatter.FormatTabs(v.view.Tab) + "\n\n")
	b.WriteString(v.renderProjects() + "\n\n")
	b.WriteString(formatter.FormatFooter(v.view, v.state.App.now()))

	return b.String()
}

func (v *homeView) renderCharts() string {
	status := formatter.FormatStatusOverview(v.view.Metrics.StatusOverview, chartWidth)
	stages := formatter.FormatLifecycleChart(v.view.Metrics.LifecycleStages, chartWidth)
	if v.state.Width < splitMinWidth {
		return status + "\n" + stages
	}
	left := lipgloss.NewStyle().Width(chartWidth + 8).Render(status)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, stages)
}

func (v *homeView) renderProjects() string {
	projects := v.view.TabProjects
	if len(projects) == 0 {
		return formatter.FormatEmptyProjects()
	}

	list := v.renderList(projects)
	p, ok := v.selected()
	if !ok || v.state.Width < splitMinWidth {
		return list
	}
	card := formatter.FormatProjectCard(p, true, max(36, v.state.Width-listPaneWidth-3))
	left := lipgloss.NewStyle().Width(listPaneWidth).Render(list)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", card)
}

func (v *homeView) renderList(projects []domain.Project) string {
	var b strings.Builder
	end := min(len(projects), v.offset+projectListRows)
	for i := v.offset; i < end; i++ {
		p := projects[i]
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		name := formatter.Truncate(domain.CoalesceStr(p.Name, domain.Placeholder), 24)
		fmt.Fprintf(&b, "%s%s %s\n", cursor, nameStyle.Render(padRight(name, 24)), formatter.StatusPill(p.Status))
	}
	if len(projects) > projectListRows {
		b.WriteString(formatter.Dim(fmt.Sprintf("  %d–%d of %d", v.offset+1, end, len(projects))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
