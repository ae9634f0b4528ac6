package metrics

import (
	"slices"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// KPI is one headline figure. Rate KPIs carry a 0–1 fraction and the
// percent unit; the total carries a raw count and no unit.
type KPI struct {
	ID          domain.KPIID `json:"id" yaml:"id"`
	Label       string       `json:"label" yaml:"label"`
	Value       float64      `json:"value" yaml:"value"`
	Unit        string       `json:"unit" yaml:"unit"`
	Description string       `json:"description" yaml:"description"`
}

// StatusSegment is one slice of the status overview, as a whole percentage.
type StatusSegment struct {
	Status domain.Status `json:"status" yaml:"status"`
	Value  int           `json:"value" yaml:"value"`
}

// StageCount is one bar of the lifecycle histogram.
type StageCount struct {
	Stage domain.Stage `json:"stage" yaml:"stage"`
	Value int          `json:"value" yaml:"value"`
}

// Derived is everything the dashboard computes from a project set.
type Derived struct {
	KPIs            []KPI           `json:"kpis" yaml:"kpis"`
	StatusOverview  []StatusSegment `json:"statusOverview" yaml:"statusOverview"`
	LifecycleStages []StageCount    `json:"lifecycleStages" yaml:"lifecycleStages"`
}

// KPI returns the KPI with the given ID.
func (d Derived) KPI(id domain.KPIID) (KPI, bool) {
	for _, k := range d.KPIs {
		if k.ID == id {
			return k, true
		}
	}
	return KPI{}, false
}

// Aggregate computes KPIs, the status overview and the lifecycle histogram
// for projects. An empty set yields zero rates and a zero total.
func Aggregate(projects []domain.Project) Derived {
	total := max(1, len(projects))

	statusCounts := make(map[domain.Status]int)
	var unknownStatuses []domain.Status
	stageCounts := make(map[domain.Stage]int)
	var unknownStages []domain.Stage
	known := domain.Stages()

	for i := range projects {
		p := &projects[i]

		if statusCounts[p.Status] == 0 && !p.Status.Known() {
			unknownStatuses = append(unknownStatuses, p.Status)
		}
		statusCounts[p.Status]++

		st := p.StageOrDefault()
		if stageCounts[st] == 0 && !slices.Contains(known, st) {
			unknownStages = append(unknownStages, st)
		}
		stageCounts[st]++
	}

	rate := func(s domain.Status) float64 {
		return float64(statusCounts[s]) / float64(total)
	}

	kpis := []KPI{
		{ID: domain.KPIOnTrackRate, Label: "OnTrack Rate", Value: rate(domain.StatusOnTrack), Unit: domain.UnitPercent, Description: "Projects currently on track"},
		{ID: domain.KPIMajorDelayRate, Label: "Major Delay Rate", Value: rate(domain.StatusDelayed), Unit: domain.UnitPercent, Description: "Projects significantly delayed"},
		{ID: domain.KPISlightlyDelayRate, Label: "Slightly Delay Rate", Value: rate(domain.StatusSlightlyDelayed), Unit: domain.UnitPercent, Description: "Projects with minor delays"},
		{ID: domain.KPITotalProjects, Label: "Total Projects", Value: float64(len(projects)), Unit: "", Description: "Total active projects"},
	}

	// Segments are rounded independently and are not reconciled to 100.
	var overview []StatusSegment
	for _, s := range append(domain.Statuses(), unknownStatuses...) {
		if n := statusCounts[s]; n > 0 {
			overview = append(overview, StatusSegment{
				Status: s,
				Value:  domain.RoundHalfUp(float64(100*n) / float64(total)),
			})
		}
	}

	var stages []StageCount
	for _, st := range append(known, unknownStages...) {
		if n := stageCounts[st]; n > 0 {
			stages = append(stages, StageCount{Stage: st, Value: n})
		}
	}

	return Derived{
		KPIs:            kpis,
		StatusOverview:  overview,
		LifecycleStages: stages,
	}
}
