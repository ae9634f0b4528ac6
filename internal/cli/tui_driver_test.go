package cli

import (
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/teatest"
)

// TestDriver wraps teatest.Driver with tracker-specific inspection
// methods: the view stack, the shared state and the home view.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App at 120x40 and drains
// Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return newSizedDriver(t, app, 120, 40)
}

func newSizedDriver(t *testing.T, app *App, w, h int) *TestDriver {
	t.Helper()
	m := newAppModel(t.Context(), app, app.Dashboard.View())
	d := teatest.New(t, m, teatest.WithSize(w, h))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.Title()
	}
	return ""
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Home returns the dashboard view at the bottom of the stack.
func (d *TestDriver) Home() *homeView {
	return d.appModel().viewStack[0].(*homeView)
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Plain returns the rendered screen without ANSI escapes.
func (d *TestDriver) Plain() string {
	return ansiPattern.ReplaceAllString(d.View(), "")
}
