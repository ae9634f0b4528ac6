package app

import "github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"

// ProjectRow is the flat, display-ready projection of a project used by
// list output.
type ProjectRow struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Department     string `json:"department" yaml:"department"`
	Portfolio      string `json:"portfolio" yaml:"portfolio"`
	Status         string `json:"status" yaml:"status"`
	Stage          string `json:"lifecycleStage" yaml:"lifecycleStage"`
	Manager        string `json:"projectManager" yaml:"projectManager"`
	ManagerName    string `json:"managerName" yaml:"managerName"`
	PlannedPercent int    `json:"plannedProgress" yaml:"plannedProgress"`
	ActualPercent  int    `json:"actualProgress" yaml:"actualProgress"`
}

func NewProjectRow(p domain.Project) ProjectRow {
	return ProjectRow{
		ID:             p.ID,
		Name:           p.Name,
		Department:     p.Department,
		Portfolio:      p.Portfolio,
		Status:         string(p.Status),
		Stage:          string(p.Lifecycle),
		Manager:        p.Manager,
		ManagerName:    domain.FormatManagerName(p.Manager),
		PlannedPercent: domain.Percent(domain.Clamp01(p.PlannedProgress)),
		ActualPercent:  domain.Percent(domain.Clamp01(p.ActualProgress)),
	}
}

func NewProjectRows(projects []domain.Project) []ProjectRow {
	rows := make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, NewProjectRow(p))
	}
	return rows
}

// FilterView describes one filter control: its label, current selection
// and the selectable options.
type FilterView struct {
	Key      domain.FilterKey `json:"key" yaml:"key"`
	Label    string           `json:"label" yaml:"label"`
	Selected string           `json:"selected" yaml:"selected"`
	Options  []string         `json:"options" yaml:"options"`
}

// Active reports whether the filter constrains the project set.
func (f FilterView) Active() bool { return f.Selected != domain.All }

// OptionLabel returns how an option is shown. Manager identifiers go
// through the name formatter; everything else is verbatim.
func (f FilterView) OptionLabel(option string) string {
	if f.Key == domain.FilterProjectManager && option != domain.All {
		return domain.FormatManagerName(option)
	}
	return option
}
