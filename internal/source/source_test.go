package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PicksLoader(t *testing.T) {
	tests := []struct {
		spec string
		want any
	}{
		{"data/dashboard.json", &JSONFile{}},
		{"data/DASHBOARD.JSON", &JSONFile{}},
		{"exports/tracker.csv", &CSVFile{}},
		{"snap.db", &SQLite{}},
		{"snap.sqlite3", &SQLite{}},
		{"data/**/*.json", &Glob{}},
		{"data/part-?.json", &Glob{}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			l, err := Open(tt.spec)
			require.NoError(t, err)
			assert.IsType(t, tt.want, l)
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open("  ")
	assert.ErrorIs(t, err, ErrNoSource)

	_, err = Open("dashboard.xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestJSONFile_Load(t *testing.T) {
	dir := t.TempDir()
	opts := &domain.FilterOptions{Portfolios: []string{"All", "Core"}}
	path := testutil.WriteDocument(t, dir, "dashboard.json", testutil.SamplePortfolio(), opts)

	pf, err := NewJSONFile(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, path, pf.Source)
	require.Len(t, pf.Projects, 5)
	assert.Equal(t, "Data Lake", pf.Projects[1].Name)
	assert.InDelta(t, 0.5, pf.Projects[0].PlannedProgress, 1e-9)
	assert.Equal(t, []string{"All", "Core"}, pf.Filters.Portfolios)
	assert.Equal(t, []string{"All"}, pf.Filters.BusinessUnits)
	assert.Empty(t, pf.Warnings)
}

func TestJSONFile_Warnings(t *testing.T) {
	dir := t.TempDir()
	projects := []domain.Project{
		testutil.NewTestProject("A", testutil.WithID("1")),
		testutil.NewTestProject("B", testutil.WithID("1"), testutil.WithStatus("Blocked")),
	}
	path := testutil.WriteDocument(t, dir, "dashboard.json", projects, nil)

	pf, err := NewJSONFile(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, pf.Projects, 2)
	assert.Len(t, pf.Warnings, 2)
}

func TestJSONFile_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewJSONFile(filepath.Join(dir, "missing.json")).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))

	bad := testutil.WriteFile(t, dir, "bad.json", []byte("{not json"))
	_, err = NewJSONFile(bad).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, CodeMalformed, CodeOf(err))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, bad, le.Path)
	assert.Contains(t, err.Error(), "MALFORMED")
}

func TestJSONFile_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteDocument(t, dir, "dashboard.json", nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewJSONFile(path).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVFile_Load(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "tracker.csv", []byte(
		"ListSchema={}\n"+
			"Title,SBU/Function,Stage,Portfolio,Status,Project Manager,Demand Number,Challenges\n"+
			"ERP Upgrade,IT,Execution,Core,On Track,a@x.com,DMD-1,Budget\n"+
			"HR Portal,HR,Closing,Core,OnHold,b@x.com,DMD-2,\n"))

	pf, err := NewCSVFile(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, pf.Projects, 2)
	assert.Equal(t, domain.StatusOnHold, pf.Projects[1].Status)
	assert.Equal(t, []string{"All", "HR", "IT"}, pf.Filters.BusinessUnits)

	_, err = NewCSVFile(filepath.Join(dir, "nope.csv")).Load(context.Background())
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestGlob_MergesInPathOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDocument(t, dir, "b/part.json",
		[]domain.Project{testutil.NewTestProject("Second", testutil.WithID("2"))},
		&domain.FilterOptions{Portfolios: []string{"All", "Digital", "Core"}})
	testutil.WriteDocument(t, dir, "a/part.json",
		[]domain.Project{testutil.NewTestProject("First", testutil.WithID("1"))},
		&domain.FilterOptions{Portfolios: []string{"All", "Core"}})
	testutil.WriteFile(t, dir, "a/notes.txt", []byte("ignored"))

	pattern := filepath.Join(dir, "**", "*.json")
	pf, err := NewGlob(pattern).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, pf.Projects, 2)
	assert.Equal(t, "First", pf.Projects[0].Name)
	assert.Equal(t, "Second", pf.Projects[1].Name)
	assert.Equal(t, []string{"All", "Core", "Digital"}, pf.Filters.Portfolios)
	assert.Equal(t, filepath.Clean(pattern), pf.Source)
}

func TestGlob_WarningsArePrefixed(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteDocument(t, dir, "one.json",
		[]domain.Project{testutil.NewTestProject("X", testutil.WithID(""))}, nil)

	pf, err := NewGlob(filepath.Join(dir, "*.json")).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, pf.Warnings, 1)
	assert.Contains(t, pf.Warnings[0], path+": ")
}

func TestGlob_NoMatches(t *testing.T) {
	_, err := NewGlob(filepath.Join(t.TempDir(), "*.json")).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestGlob_MalformedMember(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDocument(t, dir, "ok.json", nil, nil)
	testutil.WriteFile(t, dir, "zz.json", []byte("[1,"))

	_, err := NewGlob(filepath.Join(dir, "*.json")).Load(context.Background())
	assert.Equal(t, CodeMalformed, CodeOf(err))
}

func TestGlob_WatchRootsAndMatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deeper"), 0o755))
	g := NewGlob(filepath.Join(dir, "**", "*.json"))

	roots := g.WatchRoots()
	assert.Contains(t, roots, dir)
	assert.Contains(t, roots, filepath.Join(dir, "nested"))
	assert.Contains(t, roots, filepath.Join(dir, "nested", "deeper"))

	assert.True(t, g.Matches(filepath.Join(dir, "nested", "x.json")))
	assert.False(t, g.Matches(filepath.Join(dir, "nested", "x.txt")))
}

func TestSQLite_Load(t *testing.T) {
	path := testutil.NewSnapshotFile(t, testutil.SamplePortfolio()...)

	pf, err := NewSQLite(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, pf.Projects, 5)
	assert.Equal(t, "ERP Upgrade", pf.Projects[0].Name)
	assert.InDelta(t, 0.4, pf.Projects[0].ActualProgress, 1e-9)
	assert.Equal(t, []string{"All", "HR", "IT", "Operations"}, pf.Filters.BusinessUnits)
	assert.Equal(t, []string{"All", "Core"}, pf.Filters.Portfolios)
}

func TestSQLite_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := NewSQLite(filepath.Join(dir, "missing.db")).Load(context.Background())
	assert.Equal(t, CodeNotFound, CodeOf(err))

	junk := testutil.WriteFile(t, dir, "junk.db", []byte("not a database at all, just text"))
	_, err = NewSQLite(junk).Load(context.Background())
	assert.Equal(t, CodeMalformed, CodeOf(err))
}

func TestSQLite_MatchesJournalFiles(t *testing.T) {
	s := NewSQLite("/data/snap.db")
	assert.True(t, s.Matches("/data/snap.db"))
	assert.True(t, s.Matches("/data/snap.db-wal"))
	assert.True(t, s.Matches("/data/snap.db-journal"))
	assert.False(t, s.Matches("/data/other.db"))
}
