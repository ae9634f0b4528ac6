package importer

import (
	"slices"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// DeriveFilterOptions builds filter options from the projects themselves,
// for sources that carry no option lists. Each list is sorted, deduplicated
// and led by All. Empty values are left out, as are placeholder managers.
func DeriveFilterOptions(projects []domain.Project) domain.FilterOptions {
	collect := func(field func(*domain.Project) string) []string {
		set := make(map[string]struct{})
		for i := range projects {
			v := field(&projects[i])
			if v == "" || v == domain.Placeholder || v == domain.All {
				continue
			}
			set[v] = struct{}{}
		}
		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		slices.Sort(values)
		return append([]string{domain.All}, values...)
	}
	return domain.FilterOptions{
		BusinessUnits:   collect(domain.FilterBusinessUnit.Field),
		Portfolios:      collect(domain.FilterPortfolio.Field),
		ProjectManagers: collect(domain.FilterProjectManager.Field),
		ProjectStatus:   collect(domain.FilterProjectStatus.Field),
		LifecycleStage:  collect(domain.FilterLifecycleStage.Field),
	}
}

// MergeFilterOptions unions option lists, keeping first-seen order.
func MergeFilterOptions(all ...domain.FilterOptions) domain.FilterOptions {
	var merged domain.FilterOptions
	dest := map[domain.FilterKey]*[]string{
		domain.FilterBusinessUnit:   &merged.BusinessUnits,
		domain.FilterPortfolio:      &merged.Portfolios,
		domain.FilterProjectManager: &merged.ProjectManagers,
		domain.FilterProjectStatus:  &merged.ProjectStatus,
		domain.FilterLifecycleStage: &merged.LifecycleStage,
	}
	for _, k := range domain.FilterKeys() {
		seen := make(map[string]bool)
		out := dest[k]
		for _, opts := range all {
			for _, v := range opts.For(k) {
				if !seen[v] {
					seen[v] = true
					*out = append(*out, v)
				}
			}
		}
		if len(*out) == 0 {
			*out = []string{domain.All}
		}
	}
	return merged
}
