package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// WriteDocument writes projects as a dashboard JSON document into dir and
// returns its path. Progress is written on the export's 0–100 scale and
// filter options are taken from opts, or omitted when opts is nil.
func WriteDocument(t *testing.T, dir, name string, projects []domain.Project, opts *domain.FilterOptions) string {
	t.Helper()
	raw := make([]map[string]any, 0, len(projects))
	for _, p := range projects {
		raw = append(raw, map[string]any{
			"id":              p.ID,
			"name":            p.Name,
			"department":      p.Department,
			"portfolio":       p.Portfolio,
			"status":          string(p.Status),
			"lifecycleStage":  string(p.Lifecycle),
			"projectManager":  p.Manager,
			"plannedProgress": p.PlannedProgress * 100,
			"actualProgress":  p.ActualProgress * 100,
			"sponsor":         p.Sponsor,
			"milestone":       p.Milestone,
			"challenges":      p.Challenges,
		})
	}
	doc := map[string]any{"projects": raw}
	if opts != nil {
		doc["filters"] = map[string]any{
			"businessUnits":   opts.BusinessUnits,
			"portfolios":      opts.Portfolios,
			"projectManagers": opts.ProjectManagers,
			"projectStatus":   opts.ProjectStatus,
			"lifecycleStage":  opts.LifecycleStage,
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("encoding document: %v", err)
	}
	return WriteFile(t, dir, name, data)
}

// WriteFile writes data to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating fixture dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}
