package domain

import "fmt"

// FilterKey names one of the five dashboard filters.
type FilterKey string

const (
	FilterBusinessUnit   FilterKey = "businessUnit"
	FilterPortfolio      FilterKey = "portfolio"
	FilterProjectManager FilterKey = "projectManager"
	FilterProjectStatus  FilterKey = "projectStatus"
	FilterLifecycleStage FilterKey = "lifecycleStage"
)

// FilterKeys returns the filter keys in display order.
func FilterKeys() []FilterKey {
	return []FilterKey{
		FilterBusinessUnit,
		FilterPortfolio,
		FilterProjectManager,
		FilterProjectStatus,
		FilterLifecycleStage,
	}
}

// ParseFilterKey validates a filter key string.
func ParseFilterKey(s string) (FilterKey, error) {
	for _, k := range FilterKeys() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown filter key %q", s)
}

// Label returns the human label shown on the filter chip.
func (k FilterKey) Label() string {
	switch k {
	case FilterBusinessUnit:
		return "Business Unit"
	case FilterPortfolio:
		return "Portfolio"
	case FilterProjectManager:
		return "Project Manager"
	case FilterProjectStatus:
		return "Project Status"
	case FilterLifecycleStage:
		return "Lifecycle Stage"
	default:
		return string(k)
	}
}

// Field returns the project field the key constrains.
func (k FilterKey) Field(p *Project) string {
	switch k {
	case FilterBusinessUnit:
		return p.Department
	case FilterPortfolio:
		return p.Portfolio
	case FilterProjectManager:
		return p.Manager
	case FilterProjectStatus:
		return string(p.Status)
	case FilterLifecycleStage:
		return string(p.Lifecycle)
	default:
		return ""
	}
}

// FilterState holds exactly one selected value per filter key. The zero
// value selects All for every key; With is the only way to change a key,
// so an explicit "" selection stays distinct from an untouched key.
type FilterState struct {
	values [filterKeyCount]string
	set    [filterKeyCount]bool
}

const filterKeyCount = 5

// NewFilterState returns a state with every key set to All.
func NewFilterState() FilterState {
	return FilterState{}
}

func (k FilterKey) index() int {
	switch k {
	case FilterBusinessUnit:
		return 0
	case FilterPortfolio:
		return 1
	case FilterProjectManager:
		return 2
	case FilterProjectStatus:
		return 3
	case FilterLifecycleStage:
		return 4
	default:
		return -1
	}
}

// Get returns the selected value for key.
func (f FilterState) Get(key FilterKey) string {
	i := key.index()
	if i < 0 || !f.set[i] {
		return All
	}
	return f.values[i]
}

// With returns a copy of f with key set to value. Setting All clears the
// key back to its zero state.
func (f FilterState) With(key FilterKey, value string) (FilterState, error) {
	i := key.index()
	if i < 0 {
		return f, fmt.Errorf("unknown filter key %q", key)
	}
	if value == All {
		f.values[i], f.set[i] = "", false
		return f, nil
	}
	f.values[i], f.set[i] = value, true
	return f, nil
}

// Active returns the keys whose value is not All, in display order.
func (f FilterState) Active() []FilterKey {
	var keys []FilterKey
	for _, k := range FilterKeys() {
		if f.Get(k) != All {
			keys = append(keys, k)
		}
	}
	return keys
}

// Map returns the state keyed by filter key.
func (f FilterState) Map() map[FilterKey]string {
	m := make(map[FilterKey]string, len(FilterKeys()))
	for _, k := range FilterKeys() {
		m[k] = f.Get(k)
	}
	return m
}
