package metrics

import (
	"math/rand"
	"testing"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	propDepartments = []string{"IT", "HR", "Finance"}
	propPortfolios  = []string{"", "Core", "Digital"}
	propManagers    = []string{"inayatullahm@x.com", "ChakraborttyG@x.com", "Jane Doe"}
	propStages      = []domain.Stage{"", domain.StageInitiation, domain.StageExecution, "Foo"}
)

func randomProjects(rng *rand.Rand, n int) []domain.Project {
	statuses := append(domain.Statuses(), "Blocked")
	out := make([]domain.Project, n)
	for i := range out {
		out[i] = domain.Project{
			ID:         string(rune('A' + i%26)),
			Department: propDepartments[rng.Intn(len(propDepartments))],
			Portfolio:  propPortfolios[rng.Intn(len(propPortfolios))],
			Manager:    propManagers[rng.Intn(len(propManagers))],
			Status:     statuses[rng.Intn(len(statuses))],
			Lifecycle:  propStages[rng.Intn(len(propStages))],
		}
	}
	return out
}

func randomValue(rng *rand.Rand, key domain.FilterKey) string {
	switch key {
	case domain.FilterBusinessUnit:
		return propDepartments[rng.Intn(len(propDepartments))]
	case domain.FilterPortfolio:
		return propPortfolios[rng.Intn(len(propPortfolios))]
	case domain.FilterProjectManager:
		return propManagers[rng.Intn(len(propManagers))]
	case domain.FilterProjectStatus:
		s := domain.Statuses()
		return string(s[rng.Intn(len(s))])
	default:
		return string(propStages[rng.Intn(len(propStages))])
	}
}

// TestFilter_Invariants_SubsetAndMonotonic checks that filtering only ever
// removes projects and that adding a constraint never grows the result.
func TestFilter_Invariants_SubsetAndMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		projects := randomProjects(rng, rng.Intn(40))
		state := domain.NewFilterState()
		prev := Filter(projects, state)
		require.Len(t, prev, len(projects), "trial %d: empty state must keep everything", trial)

		keys := domain.FilterKeys()
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

		for _, k := range keys[:rng.Intn(len(keys))+1] {
			var err error
			state, err = state.With(k, randomValue(rng, k))
			require.NoError(t, err)

			got := Filter(projects, state)
			assert.LessOrEqual(t, len(got), len(prev),
				"trial %d: adding %s must not grow the result", trial, k)

			ids := make(map[string]int)
			for _, p := range projects {
				ids[p.ID]++
			}
			for _, p := range got {
				assert.Positive(t, ids[p.ID], "trial %d: %s not in input", trial, p.ID)
				for _, ak := range state.Active() {
					assert.Equal(t, state.Get(ak), ak.Field(&p), "trial %d: key %s", trial, ak)
				}
			}
			prev = got
		}
	}
}

// TestAggregate_Invariants checks totals and drift bounds over random sets.
func TestAggregate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		projects := randomProjects(rng, rng.Intn(60))
		d := Aggregate(projects)

		require.Len(t, d.KPIs, 4)
		assert.Equal(t, float64(len(projects)), d.KPIs[3].Value)
		for _, k := range d.KPIs[:3] {
			assert.GreaterOrEqual(t, k.Value, 0.0)
			assert.LessOrEqual(t, k.Value, 1.0)
		}

		stageTotal := 0
		for _, s := range d.LifecycleStages {
			assert.Positive(t, s.Value)
			stageTotal += s.Value
		}
		assert.Equal(t, len(projects), stageTotal, "trial %d: every project lands in one stage", trial)

		if len(projects) > 0 {
			sum := 0
			for _, s := range d.StatusOverview {
				sum += s.Value
			}
			assert.LessOrEqual(t, abs(100-sum), len(d.StatusOverview),
				"trial %d: drift %d exceeds segment count", trial, 100-sum)
		}

		tabbed := ApplyTab(projects, domain.TabDelayed)
		for _, p := range tabbed {
			assert.True(t, p.Status.IsDelayed())
		}
	}
}
