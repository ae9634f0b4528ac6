package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/repository"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/source"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportCSV = "ListSchema={}\n" +
	"Title,SBU/Function,Stage,Portfolio,Status,Project Manager,Demand Number,Challenges\n" +
	"ERP Upgrade,IT,Execution,Core,On Track,inayatullahm@x.com,DMD-1,Budget • Scope\n" +
	"HR Portal,HR,Initiation,Core,Slightly Delay,ChakraborttyG@x.com,DMD-2,\n" +
	"Mine Safety,Operations,Closing,,OnHold,a@x.com,DMD-3,\n"

func writeExport(t *testing.T) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "tracker.csv", []byte(exportCSV))
}

func TestConvert_ToJSONDefaultOutput(t *testing.T) {
	input := writeExport(t)
	obs := &recordingObserver{}
	svc := NewConvertService(obs)

	res, err := svc.Convert(context.Background(), app.ConvertRequest{Input: input})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(input), "tracker.json"), res.Output)
	assert.Equal(t, FormatJSON, res.Format)
	assert.Equal(t, 3, res.Projects)

	pf, err := source.NewJSONFile(res.Output).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, pf.Projects, 3)
	assert.Equal(t, domain.StatusSlightlyDelayed, pf.Projects[1].Status)
	assert.Equal(t, []string{"Budget", "Scope"}, pf.Projects[0].Challenges)
	assert.Equal(t, []string{domain.All, "HR", "IT", "Operations"}, pf.Filters.BusinessUnits)

	events := obs.named(UseCaseConvert)
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, FormatJSON, events[0].Fields["format"])
}

func TestConvert_ToSQLite(t *testing.T) {
	input := writeExport(t)
	output := filepath.Join(t.TempDir(), "out", "snapshot.db")

	res, err := NewConvertService().Convert(context.Background(), app.ConvertRequest{Input: input, Output: output})
	require.NoError(t, err)
	assert.Equal(t, FormatSQLite, res.Format)

	pf, err := source.NewSQLite(output).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, pf.Projects, 3)
	assert.Equal(t, "ERP Upgrade", pf.Projects[0].Name)
	assert.Equal(t, "", pf.Projects[2].Portfolio)
	assert.InDelta(t, 0.75, pf.Projects[0].PlannedProgress, 1e-9)

	// Converting again replaces rather than appends.
	_, err = NewConvertService().Convert(context.Background(), app.ConvertRequest{Input: input, Output: output})
	require.NoError(t, err)
	pf, err = source.NewSQLite(output).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, pf.Projects, 3)
}

func TestConvert_Errors(t *testing.T) {
	input := writeExport(t)
	svc := NewConvertService()

	_, err := svc.Convert(context.Background(), app.ConvertRequest{Input: input, Output: "out.xlsx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output")

	_, err = svc.Convert(context.Background(), app.ConvertRequest{Input: filepath.Join(t.TempDir(), "none.csv")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening csv")

	empty := testutil.WriteFile(t, t.TempDir(), "empty.csv", []byte("ListSchema={}\n"))
	_, err = svc.Convert(context.Background(), app.ConvertRequest{Input: empty})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converting csv")
}

func TestWriteSnapshot_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := repository.NewSQLiteProjectRepo(database)

	original := testutil.SamplePortfolio()[:2]
	require.NoError(t, WriteSnapshot(ctx, testutil.NewTestUoW(database), original))

	// Exec #1 clears the table, #2 inserts the first project, #3 fails.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected insert failure"),
	}
	err := WriteSnapshot(ctx, failUoW, testutil.SamplePortfolio())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "ERP Upgrade", stored[0].Name)
	assert.Equal(t, "Data Lake", stored[1].Name)
}
