package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/source"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// dashboardUpdatedMsg carries a freshly derived view after a filter, tab
// or reload. It is broadcast to every view on the stack.
type dashboardUpdatedMsg struct {
	view     app.DashboardView
	err      error
	reloaded bool
}

// sourceChangedMsg reports a change to the watched data source.
type sourceChangedMsg struct {
	change source.Change
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func reloadCmd(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		view, err := state.App.Dashboard.Reload(state.Ctx)
		return dashboardUpdatedMsg{view: view, err: err, reloaded: true}
	}
}

func setFilterCmd(state *SharedState, key, value string) tea.Cmd {
	return func() tea.Msg {
		view, err := state.App.Dashboard.SetFilter(state.Ctx, key, value)
		return dashboardUpdatedMsg{view: view, err: err}
	}
}

func setTabCmd(state *SharedState, tab string) tea.Cmd {
	return func() tea.Msg {
		view, err := state.App.Dashboard.SetTab(state.Ctx, tab)
		return dashboardUpdatedMsg{view: view, err: err}
	}
}

func resetFiltersCmd(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		return dashboardUpdatedMsg{view: state.App.Dashboard.ResetFilters(state.Ctx)}
	}
}

// waitForChange blocks until the watcher reports a change. It returns nil
// once the channel is closed, which ends the watch loop.
func waitForChange(ch <-chan source.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return sourceChangedMsg{change: c}
	}
}
