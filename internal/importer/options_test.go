package importer

import (
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveFilterOptions(t *testing.T) {
	projects := []domain.Project{
		{Department: "IT", Portfolio: "", Manager: "—", Status: domain.StatusOnHold, Lifecycle: domain.StageClosing},
		{Department: "HR", Portfolio: "Core", Manager: "b@x.com", Status: domain.StatusOnTrack},
		{Department: "IT", Portfolio: "Core", Manager: "a@x.com", Status: domain.StatusOnHold, Lifecycle: domain.StageExecution},
	}
	opts := DeriveFilterOptions(projects)

	assert.Equal(t, []string{"All", "HR", "IT"}, opts.BusinessUnits)
	assert.Equal(t, []string{"All", "Core"}, opts.Portfolios)
	assert.Equal(t, []string{"All", "a@x.com", "b@x.com"}, opts.ProjectManagers)
	assert.Equal(t, []string{"All", "On Hold", "On Track"}, opts.ProjectStatus)
	assert.Equal(t, []string{"All", "Closing", "Execution"}, opts.LifecycleStage)
}

func TestDeriveFilterOptions_Empty(t *testing.T) {
	opts := DeriveFilterOptions(nil)
	for _, k := range domain.FilterKeys() {
		assert.Equal(t, []string{"All"}, opts.For(k))
	}
}

func TestMergeFilterOptions_FirstSeenOrder(t *testing.T) {
	a := domain.FilterOptions{BusinessUnits: []string{"All", "IT", "HR"}}
	b := domain.FilterOptions{BusinessUnits: []string{"All", "Finance", "IT"}, Portfolios: []string{"All", "Core"}}

	merged := MergeFilterOptions(a, b)
	assert.Equal(t, []string{"All", "IT", "HR", "Finance"}, merged.BusinessUnits)
	assert.Equal(t, []string{"All", "Core"}, merged.Portfolios)
	assert.Equal(t, []string{"All"}, merged.ProjectManagers)
}
