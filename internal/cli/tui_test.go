package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/source"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileApp returns an App over a JSON document the test can rewrite.
func fileApp(t *testing.T, projects []domain.Project) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	path := testutil.WriteDocument(t, dir, "dashboard-data.json", projects, nil)
	return newTestApp(t, source.NewJSONFile(path)), path
}

func TestTUI_HomeShowsDashboard(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.Plain()
	assert.Contains(t, view, "Projects Tracker")
	assert.Contains(t, view, "STATUS OVERVIEW")
	assert.Contains(t, view, "LIFECYCLE STAGES")
	assert.Contains(t, view, "Total Projects")
	assert.Contains(t, view, "ERP Upgrade")
	assert.Contains(t, view, "5 projects")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_TabCyclesProjectTabs(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressTab()
	assert.Equal(t, domain.TabOnHold, d.Home().view.Tab)
	require.Len(t, d.Home().view.TabProjects, 1)
	assert.Equal(t, "Mine Safety", d.Home().view.TabProjects[0].Name)

	d.PressTab()
	assert.Equal(t, domain.TabDelayed, d.Home().view.Tab)
	assert.Len(t, d.Home().view.TabProjects, 2)

	// Metrics follow the filters, not the tab.
	assert.Len(t, d.Home().view.Projects, 5)
}

func TestTUI_ShiftTabWrapsAround(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressShiftTab()
	assert.Equal(t, domain.TabClosing, d.Home().view.Tab)
	assert.Contains(t, d.Plain(), "Legacy Sunset")
}

func TestTUI_EnterOpensDetailAndEscReturns(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressDown()
	d.PressEnter()

	assert.Equal(t, ViewDetail, d.ActiveViewID())
	assert.Equal(t, "PRJ-2024-002", d.ActiveViewTitle())
	assert.Contains(t, d.Plain(), "Data Lake")
	assert.Contains(t, d.Plain(), "DEMAND DESCRIPTION")

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
}

func TestTUI_CursorStaysInRange(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	for range 10 {
		d.PressDown()
	}
	assert.Equal(t, 4, d.Home().cursor)

	for range 10 {
		d.PressUp()
	}
	assert.Equal(t, 0, d.Home().cursor)
}

func TestTUI_FilterPickerOpensAndCancels(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('f')
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.Plain(), "Which Filter?")

	// q goes to the form, not the global quit.
	d.PressKey('q')
	assert.False(t, d.IsQuitting())

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_FilterValueFormStartsOnSelection(t *testing.T) {
	a := testApp(t)
	_, err := a.Dashboard.SetFilter(t.Context(), string(domain.FilterBusinessUnit), "HR")
	require.NoError(t, err)
	d := NewTestDriver(t, a)

	f, ok := d.Home().view.Filter(domain.FilterBusinessUnit)
	require.True(t, ok)
	value := f.Selected
	form := filterValueForm(f, &value)
	require.NotNil(t, form)
	assert.Equal(t, "HR", value)
}

func TestTUI_SetFilterUpdatesHome(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(setFilterCmd(d.State(), string(domain.FilterBusinessUnit), "HR")())

	home := d.Home()
	require.Len(t, home.view.TabProjects, 1)
	assert.Equal(t, "HR Portal", home.view.TabProjects[0].Name)
	assert.Contains(t, d.Plain(), "Business Unit: HR")

	d.PressKey('c')
	assert.Len(t, d.Home().view.TabProjects, 5)
	assert.Contains(t, d.Plain(), "Business Unit: All")
}

func TestTUI_NoMatchesShowsEmptyMessage(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(setFilterCmd(d.State(), string(domain.FilterProjectStatus), "Blocked")())

	view := d.Plain()
	assert.Contains(t, view, "No projects match the current filters.")
	assert.Contains(t, view, "Try adjusting your filter selection.")

	// Enter on an empty list does nothing.
	d.PressEnter()
	assert.Equal(t, ViewHome, d.ActiveViewID())
}

func TestTUI_ReloadPicksUpChanges(t *testing.T) {
	a, path := fileApp(t, testutil.SamplePortfolio())
	d := NewTestDriver(t, a)
	firstLoad := d.Home().view.LoadID

	testutil.WriteDocument(t, filepath.Dir(path), filepath.Base(path), testutil.SamplePortfolio()[:2], nil)
	d.PressKey('r')

	home := d.Home()
	assert.Equal(t, 2, home.view.TotalProjects)
	assert.NotEqual(t, firstLoad, home.view.LoadID)
	assert.Contains(t, d.Plain(), "Reloaded")
}

func TestTUI_FailedReloadKeepsSnapshot(t *testing.T) {
	a, path := fileApp(t, testutil.SamplePortfolio())
	d := NewTestDriver(t, a)

	require.NoError(t, os.Remove(path))
	d.PressKey('r')

	assert.Error(t, d.State().Err)
	assert.Equal(t, 5, d.Home().view.TotalProjects)
	view := d.Plain()
	assert.Contains(t, view, "Error:")
	assert.Contains(t, view, "ERP Upgrade")
}

func TestTUI_InitialLoadFailureShowsEmptyLayout(t *testing.T) {
	a := newTestApp(t, source.NewJSONFile(filepath.Join(t.TempDir(), "missing.json")))
	d := NewTestDriver(t, a)

	view := d.Plain()
	assert.Contains(t, view, "Error:")
	assert.Contains(t, view, "NOT_FOUND")
	assert.Contains(t, view, "No projects match the current filters.")
	assert.Contains(t, view, "no data loaded")
}

func TestTUI_WatchChangeReloads(t *testing.T) {
	a, path := fileApp(t, testutil.SamplePortfolio())
	changes := make(chan source.Change, 1)
	a.Changes = changes

	testutil.WriteDocument(t, filepath.Dir(path), filepath.Base(path), testutil.SamplePortfolio()[:3], nil)
	changes <- source.Change{Paths: []string{path}}

	d := NewTestDriver(t, a)
	assert.Equal(t, 3, d.Home().view.TotalProjects)
}

func TestTUI_NarrowLayoutDropsCard(t *testing.T) {
	d := newSizedDriver(t, testApp(t), 60, 60)

	view := d.Plain()
	assert.Contains(t, view, "ERP Upgrade")
	assert.NotContains(t, view, "Project Manager Inayatullah M")

	wide := NewTestDriver(t, testApp(t))
	assert.Contains(t, wide.Plain(), "Project Manager Inayatullah M")
}

func TestTUI_DetailFollowsReload(t *testing.T) {
	a, path := fileApp(t, testutil.SamplePortfolio())
	d := NewTestDriver(t, a)
	d.PressEnter()
	require.Equal(t, ViewDetail, d.ActiveViewID())

	renamed := testutil.SamplePortfolio()
	renamed[0].Name = "ERP Upgrade Phase 2"
	testutil.WriteDocument(t, filepath.Dir(path), filepath.Base(path), renamed, nil)
	d.Send(reloadCmd(d.State())())

	assert.Contains(t, d.Plain(), "ERP Upgrade Phase 2")
}
