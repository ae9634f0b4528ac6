package app

import (
	"time"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/metrics"
)

// DashboardView is one fully derived rendering of the dashboard for the
// current snapshot, filter selection and tab.
type DashboardView struct {
	LoadID        string          `json:"loadId" yaml:"loadId"`
	Source        string          `json:"source" yaml:"source"`
	LoadedAt      time.Time       `json:"loadedAt" yaml:"loadedAt"`
	Loaded        bool            `json:"loaded" yaml:"loaded"`
	Filters       []FilterView    `json:"filters" yaml:"filters"`
	Tab           domain.Tab      `json:"tab" yaml:"tab"`
	TotalProjects int             `json:"totalProjects" yaml:"totalProjects"`
	Metrics       metrics.Derived `json:"metrics" yaml:"metrics"`
	Warnings      []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Projects is the filtered set the metrics were derived from.
	Projects []domain.Project `json:"-" yaml:"-"`
	// TabProjects is Projects narrowed by the active tab.
	TabProjects []domain.Project `json:"-" yaml:"-"`
}

// Filter returns the view of one filter key.
func (v DashboardView) Filter(key domain.FilterKey) (FilterView, bool) {
	for _, f := range v.Filters {
		if f.Key == key {
			return f, true
		}
	}
	return FilterView{}, false
}

// ActiveFilters returns the filters with a non-All selection.
func (v DashboardView) ActiveFilters() []FilterView {
	var active []FilterView
	for _, f := range v.Filters {
		if f.Active() {
			active = append(active, f)
		}
	}
	return active
}

type DashboardErrorCode string

const (
	DashboardErrUnknownFilterKey DashboardErrorCode = "UNKNOWN_FILTER_KEY"
	DashboardErrUnknownTab       DashboardErrorCode = "UNKNOWN_TAB"
	DashboardErrProjectNotFound  DashboardErrorCode = "PROJECT_NOT_FOUND"
	DashboardErrNotLoaded        DashboardErrorCode = "NOT_LOADED"
)

type DashboardError struct {
	Code    DashboardErrorCode
	Message string
}

func (e *DashboardError) Error() string {
	return string(e.Code) + ": " + e.Message
}
