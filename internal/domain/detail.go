package domain

import (
	"fmt"
	"math"
	"strings"
)

// Detail is the display-ready form of one project, with every missing
// value replaced by the placeholder.
type Detail struct {
	DisplayID          string     `json:"displayId" yaml:"displayId"`
	Created            string     `json:"created" yaml:"created"`
	Name               string     `json:"name" yaml:"name"`
	Status             Status     `json:"status" yaml:"status"`
	Tone               StatusTone `json:"tone" yaml:"tone"`
	Stage              string     `json:"stage" yaml:"stage"`
	SBU                string     `json:"sbu" yaml:"sbu"`
	Beneficiary        string     `json:"beneficiary" yaml:"beneficiary"`
	Portfolio          string     `json:"portfolio" yaml:"portfolio"`
	Sponsor            string     `json:"sponsor" yaml:"sponsor"`
	BusinessFocalPoint string     `json:"businessFocalPoint" yaml:"businessFocalPoint"`
	ITProjectManager   string     `json:"itProjectManager" yaml:"itProjectManager"`
	Milestone          string     `json:"milestone" yaml:"milestone"`
	DemandDescription  string     `json:"demandDescription" yaml:"demandDescription"`
	AddedValues        []string   `json:"addedValues" yaml:"addedValues"`
	Updates            []string   `json:"updates" yaml:"updates"`
	Challenges         []string   `json:"challenges" yaml:"challenges"`
	PlannedActivities  []string   `json:"plannedActivities" yaml:"plannedActivities"`
	PlannedPercent     int        `json:"plannedPercent" yaml:"plannedPercent"`
	ActualPercent      int        `json:"actualPercent" yaml:"actualPercent"`
	Timeline           Timeline   `json:"timeline" yaml:"timeline"`
}

// ProjectDetail builds the detail view of p.
func ProjectDetail(p Project) Detail {
	return Detail{
		DisplayID:          DisplayID(p),
		Created:            FormatDate(CoalesceStr(p.DemandCreationDate, p.Modified)),
		Name:               orPlaceholder(p.Name),
		Status:             p.Status,
		Tone:               p.Status.Meta().Tone,
		Stage:              orPlaceholder(string(p.Lifecycle)),
		SBU:                orPlaceholder(p.Department),
		Beneficiary:        orPlaceholder(p.BeneficiaryDepartment),
		Portfolio:          orPlaceholder(p.Portfolio),
		Sponsor:            FormatManagerName(orPlaceholder(p.Sponsor)),
		BusinessFocalPoint: FormatManagerName(orPlaceholder(p.BusinessFocalPoint)),
		ITProjectManager:   FormatManagerName(orPlaceholder(p.Manager)),
		Milestone:          orPlaceholder(p.Milestone),
		DemandDescription:  orPlaceholder(p.DemandDescription),
		AddedValues:        listOrPlaceholder(p.AddedValues),
		Updates:            listOrPlaceholder(SplitUpdates(p.Update)),
		Challenges:         listOrPlaceholder(append(append([]string(nil), p.Challenges...), p.Risks...)),
		PlannedActivities:  listOrPlaceholder(p.PlannedActivities),
		PlannedPercent:     Percent(p.PlannedProgress),
		ActualPercent:      Percent(p.ActualProgress),
		Timeline:           BuildTimeline(p.PhaseDates),
	}
}

// DisplayID returns the demand number, or a generated PRJ-2024-NNN code.
func DisplayID(p Project) string {
	if p.DemandNumber != "" {
		return p.DemandNumber
	}
	id := p.ID
	if len(id) < 3 {
		id = strings.Repeat("0", 3-len(id)) + id
	}
	return fmt.Sprintf("PRJ-2024-%s", id)
}

// SplitUpdates breaks a free-text update into bullet lines on newlines and
// '•' characters.
func SplitUpdates(update string) []string {
	parts := strings.FieldsFunc(update, func(r rune) bool { return r == '\n' || r == '•' })
	out := parts[:0]
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Percent converts a 0–1 fraction to a whole percentage, rounding half up.
func Percent(fraction float64) int {
	return RoundHalfUp(fraction * 100)
}

// RoundHalfUp rounds x to the nearest integer with halves going up, so
// 12.5 becomes 13 and -0.5 becomes 0. NaN and infinities become 0.
func RoundHalfUp(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Floor(x + 0.5))
}

// Clamp01 limits v to [0,1]; NaN becomes 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func listOrPlaceholder(items []string) []string {
	if len(items) == 0 {
		return []string{Placeholder}
	}
	return items
}
