package importer

import (
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// Adapt maps a parsed document onto the domain model: export field names
// are renamed, progress is rescaled from 0–100 to 0–1, and absent filter
// lists fall back to a lone All option.
func Adapt(doc *Document) domain.Portfolio {
	if doc == nil {
		return domain.Portfolio{Filters: AdaptFilters(nil)}
	}
	projects := make([]domain.Project, 0, len(doc.Projects))
	for i := range doc.Projects {
		projects = append(projects, AdaptProject(&doc.Projects[i]))
	}
	return domain.Portfolio{
		Projects: projects,
		Filters:  AdaptFilters(doc.Filters),
	}
}

// AdaptProject converts one exported project.
func AdaptProject(raw *ProjectDoc) domain.Project {
	portfolio := ""
	if raw.Portfolio != nil {
		portfolio = string(*raw.Portfolio)
	}
	return domain.Project{
		ID:                    string(raw.ID),
		Name:                  string(raw.Name),
		Department:            string(raw.Department),
		Portfolio:             portfolio,
		Status:                domain.Status(raw.Status),
		Lifecycle:             domain.Stage(raw.LifecycleStage),
		Manager:               string(raw.ProjectManager),
		PlannedProgress:       domain.Float64FromPtrWithDefault(0, raw.PlannedProgress.Value) / 100,
		ActualProgress:        domain.Float64FromPtrWithDefault(0, raw.ActualProgress.Value) / 100,
		DemandNumber:          string(raw.DemandNumber),
		DemandCreationDate:    string(raw.DemandCreationDate),
		Modified:              string(raw.Modified),
		BeneficiaryDepartment: string(raw.BeneficiaryDepartment),
		Sponsor:               string(raw.Sponsor),
		BusinessFocalPoint:    string(raw.BusinessFocalPoint),
		Milestone:             string(raw.Milestone),
		DemandDescription:     string(raw.DemandDescription),
		Update:                string(raw.Update),
		AddedValues:           []string(raw.AddedValues),
		Challenges:            []string(raw.Challenges),
		Risks:                 []string(raw.Risks),
		PlannedActivities:     []string(raw.PlannedActivities),
		PhaseDates:            adaptPhaseDates(raw.PhaseDates),
	}
}

// AdaptFilters applies the lone-All default to every absent option list.
func AdaptFilters(f *FiltersDoc) domain.FilterOptions {
	if f == nil {
		f = &FiltersDoc{}
	}
	return domain.FilterOptions{
		BusinessUnits:   optionsOrAll(f.BusinessUnits),
		Portfolios:      optionsOrAll(f.Portfolios),
		ProjectManagers: optionsOrAll(f.ProjectManagers),
		ProjectStatus:   optionsOrAll(f.ProjectStatus),
		LifecycleStage:  optionsOrAll(f.LifecycleStage),
	}
}

func optionsOrAll(opts []string) []string {
	if opts == nil {
		return []string{domain.All}
	}
	return opts
}

func adaptPhaseDates(d *PhaseDatesDoc) domain.PhaseDates {
	if d == nil {
		return domain.PhaseDates{}
	}
	return domain.PhaseDates{
		Initiation:  adaptRange(d.Initiation),
		Procurement: adaptRange(d.Procurement),
		Execution:   adaptRange(d.Execution),
		Closure:     adaptRange(d.Closure),
	}
}

func adaptRange(r *RangeDoc) *domain.PhaseRange {
	if r == nil {
		return nil
	}
	return &domain.PhaseRange{Start: string(r.Start), End: string(r.End)}
}
