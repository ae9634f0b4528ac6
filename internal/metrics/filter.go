package metrics

import "github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"

// Filter keeps the projects whose fields equal every constrained value in
// state. Keys set to domain.All are ignored, so the zero FilterState keeps
// every project. The match is exact and
// case-sensitive; an empty selected value only matches an empty field.
// The input slice is never modified.
func Filter(projects []domain.Project, state domain.FilterState) []domain.Project {
	active := state.Active()
	out := make([]domain.Project, 0, len(projects))
	for i := range projects {
		if matchesAll(&projects[i], state, active) {
			out = append(out, projects[i])
		}
	}
	return out
}

func matchesAll(p *domain.Project, state domain.FilterState, keys []domain.FilterKey) bool {
	for _, k := range keys {
		if k.Field(p) != state.Get(k) {
			return false
		}
	}
	return true
}

// ApplyTab narrows an already filtered set to one project tab. TabAll
// returns a copy of the input; TabDelayed matches both delay statuses.
func ApplyTab(projects []domain.Project, tab domain.Tab) []domain.Project {
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if tab.Matches(p.Status) {
			out = append(out, p)
		}
	}
	return out
}
