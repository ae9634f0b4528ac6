package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/db"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// NewTestDB creates an in-memory SQLite database with the snapshot schema.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewSnapshotFile writes projects into a fresh snapshot database under a
// temp dir and returns its path. Rows are inserted with plain SQL so the
// fixture does not depend on the repository under test.
func NewSnapshotFile(t *testing.T, projects ...domain.Project) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.db")
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("creating snapshot: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	for i, p := range projects {
		_, err := database.ExecContext(ctx,
			`INSERT INTO projects (id, position, name, department, portfolio, status, lifecycle_stage,
				project_manager, planned_progress, actual_progress, challenges)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Name, p.Department, p.Portfolio, string(p.Status), string(p.Lifecycle),
			p.Manager, p.PlannedProgress*100, p.ActualProgress*100, jsonList(p.Challenges),
		)
		if err != nil {
			t.Fatalf("inserting snapshot row %d: %v", i, err)
		}
	}
	return path
}

func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}
