package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli/formatter"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// detailView shows one project's full detail in a scrollable viewport.
type detailView struct {
	state   *SharedState
	project domain.Project
	detail  domain.Detail
	vp      viewport.Model
}

func newDetailView(state *SharedState, p domain.Project) *detailView {
	v := &detailView{
		state:   state,
		project: p,
		detail:  domain.ProjectDetail(p),
		vp:      viewport.New(max(state.Width, 20), state.ContentHeight()),
	}
	v.vp.MouseWheelEnabled = true
	v.vp.MouseWheelDelta = 3
	v.vp.SetContent(formatter.FormatProjectDetail(v.detail))
	return v
}

func (v *detailView) ID() ViewID    { return ViewDetail }
func (v *detailView) Title() string { return v.detail.DisplayID }

func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = max(msg.Width, 20)
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case dashboardUpdatedMsg:
		// A reload may have changed the project; the detail follows it.
		if msg.reloaded && msg.err == nil {
			if p, err := v.state.App.Dashboard.Project(v.project.ID); err == nil {
				v.project = *p
				v.detail = domain.ProjectDetail(*p)
				v.vp.SetContent(formatter.FormatProjectDetail(v.detail))
			}
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *detailView) View() string {
	return v.vp.View()
}
