package repository_test

import (
	"context"
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/db"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/repository"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_InsertAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	proj := testutil.NewTestProject("ERP Upgrade",
		testutil.WithID("42"),
		testutil.WithProgress(0.75, 0.5),
		testutil.WithPhase("2024-01-01", "2024-06-30"),
		testutil.WithDetail("ChakraborttyG@x.com", "UAT", "Budget", "Scope"),
	)
	require.NoError(t, repo.Insert(ctx, &proj, 0))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	fetched := projects[0]
	assert.Equal(t, "42", fetched.ID)
	assert.Equal(t, "ERP Upgrade", fetched.Name)
	assert.Equal(t, domain.StatusOnTrack, fetched.Status)
	assert.Equal(t, domain.StageExecution, fetched.Lifecycle)
	assert.InDelta(t, 0.75, fetched.PlannedProgress, 1e-9)
	assert.InDelta(t, 0.5, fetched.ActualProgress, 1e-9)
	assert.Equal(t, []string{"Budget", "Scope"}, fetched.Challenges)
	assert.Nil(t, fetched.Risks)
	require.NotNil(t, fetched.PhaseDates.Execution)
	assert.Equal(t, "2024-06-30", fetched.PhaseDates.Execution.End)
	assert.Nil(t, fetched.PhaseDates.Initiation)
}

func TestProjectRepo_ListKeepsPositionOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	for i, name := range []string{"C", "A", "B"} {
		p := testutil.NewTestProject(name, testutil.WithID(name))
		require.NoError(t, repo.Insert(ctx, &p, i))
	}

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "C", projects[0].Name)
	assert.Equal(t, "A", projects[1].Name)
	assert.Equal(t, "B", projects[2].Name)
}

func TestProjectRepo_ListToleratesNullsAndPlainText(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, err := database.Exec(`INSERT INTO projects (id, name, challenges, planned_progress) VALUES ('1', 'Raw', 'not json', NULL)`)
	require.NoError(t, err)

	projects, err := repository.NewSQLiteProjectRepo(database).List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 0.0, projects[0].PlannedProgress)
	assert.Equal(t, []string{"not json"}, projects[0].Challenges)
	assert.Equal(t, domain.Stage(""), projects[0].Lifecycle)
}

func TestProjectRepo_InsertDuplicateFails(t *testing.T) {
	repo := repository.NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("Dup", testutil.WithID("1"))
	require.NoError(t, repo.Insert(ctx, &p, 0))
	err := repo.Insert(ctx, &p, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting project 1")
}

func TestProjectRepo_ReadOnlySnapshot(t *testing.T) {
	path := testutil.NewSnapshotFile(t,
		testutil.NewTestProject("One", testutil.WithID("1")),
		testutil.NewTestProject("Two", testutil.WithID("2"), testutil.WithStatus(domain.StatusOnHold)),
	)
	ro, err := db.OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	repo := repository.NewSQLiteProjectRepo(ro)
	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, domain.StatusOnHold, projects[1].Status)

	p := testutil.NewTestProject("Three")
	assert.Error(t, repo.Insert(context.Background(), &p, 2))
}
