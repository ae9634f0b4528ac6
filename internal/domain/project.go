package domain

// Project is one read-only record of the portfolio snapshot. Progress
// values are fractions in [0,1] after import; detail fields are carried
// through for the detail view and play no part in aggregation.
type Project struct {
	ID              string
	Name            string
	Department      string
	Portfolio       string
	Status          Status
	Lifecycle       Stage
	Manager         string
	PlannedProgress float64
	ActualProgress  float64

	// Detail-only fields.
	DemandNumber          string
	DemandCreationDate    string
	Modified              string
	BeneficiaryDepartment string
	Sponsor               string
	BusinessFocalPoint    string
	Milestone             string
	DemandDescription     string
	Update                string
	AddedValues           []string
	Challenges            []string
	Risks                 []string
	PlannedActivities     []string
	PhaseDates            PhaseDates
}

// PhaseRange is a raw start/end pair as found in the export. Either side
// may be empty or unparsable.
type PhaseRange struct {
	Start string
	End   string
}

// PhaseDates holds the optional date range of each delivery phase.
type PhaseDates struct {
	Initiation  *PhaseRange
	Procurement *PhaseRange
	Execution   *PhaseRange
	Closure     *PhaseRange
}

// StageOrDefault returns the project's lifecycle stage, or DefaultStage
// when none was recorded.
func (p *Project) StageOrDefault() Stage {
	if p.Lifecycle == "" {
		return DefaultStage
	}
	return p.Lifecycle
}

// FilterOptions lists the selectable values for each filter key, in the
// order the source supplied them.
type FilterOptions struct {
	BusinessUnits   []string
	Portfolios      []string
	ProjectManagers []string
	ProjectStatus   []string
	LifecycleStage  []string
}

// For returns the option list for key.
func (o FilterOptions) For(key FilterKey) []string {
	switch key {
	case FilterBusinessUnit:
		return o.BusinessUnits
	case FilterPortfolio:
		return o.Portfolios
	case FilterProjectManager:
		return o.ProjectManagers
	case FilterProjectStatus:
		return o.ProjectStatus
	case FilterLifecycleStage:
		return o.LifecycleStage
	default:
		return nil
	}
}

// Portfolio is an immutable snapshot produced by one load of the source.
type Portfolio struct {
	LoadID   string
	Source   string
	Projects []Project
	Filters  FilterOptions
	Warnings []string
}

// FindProject returns the project with the given ID.
func (p *Portfolio) FindProject(id string) (*Project, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], true
		}
	}
	return nil, false
}
