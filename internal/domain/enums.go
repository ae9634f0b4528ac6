package domain

import (
	"slices"
	"strings"
)

// All is the filter sentinel meaning "no constraint".
const All = "All"

// Status is a project's delivery status as reported by the portfolio export.
type Status string

const (
	StatusOnTrack         Status = "On Track"
	StatusSlightlyDelayed Status = "Slightly Delayed"
	// StatusDelayed is the legacy major-delay status. It is distinct from
	// StatusSlightlyDelayed and feeds the major delay KPI.
	StatusDelayed   Status = "Delayed"
	StatusOnHold    Status = "On Hold"
	StatusClosing   Status = "Closing"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// StatusTone groups statuses that share a pill style.
type StatusTone string

const (
	ToneOnTrack StatusTone = "ontrack"
	ToneDelayed StatusTone = "delayed"
	ToneOnHold  StatusTone = "onhold"
	ToneClosing StatusTone = "closing"
)

// StatusMeta is the lookup data attached to each known status.
type StatusMeta struct {
	Label string // short label used in pills and legends
	Color string // hex color used by charts
	Tone  StatusTone
	Order int // position in the status vocabulary
}

// statusTable is ordered by vocabulary position. The order fixes the
// status overview segment order and the legend order.
var statusTable = []struct {
	status Status
	meta   StatusMeta
}{
	{StatusOnTrack, StatusMeta{Label: "OnTrack", Color: "#D6C087", Tone: ToneOnTrack}},
	{StatusSlightlyDelayed, StatusMeta{Label: "Slightly Del", Color: "#5D5D5D", Tone: ToneDelayed}},
	{StatusDelayed, StatusMeta{Label: "Delayed", Color: "#5D5D5D", Tone: ToneDelayed}},
	{StatusOnHold, StatusMeta{Label: "OnHold", Color: "#E0E0E0", Tone: ToneOnHold}},
	{StatusClosing, StatusMeta{Label: "Closing", Color: "#403F3B", Tone: ToneClosing}},
	{StatusCompleted, StatusMeta{Label: "Completed", Color: "#403F3B", Tone: ToneOnTrack}},
	{StatusCancelled, StatusMeta{Label: "Cancelled", Color: "#6F6F6F", Tone: ToneOnTrack}},
}

// UnknownStatusColor is used for statuses outside the vocabulary.
const UnknownStatusColor = "#666666"

var statusIndex = func() map[Status]StatusMeta {
	m := make(map[Status]StatusMeta, len(statusTable))
	for i, row := range statusTable {
		meta := row.meta
		meta.Order = i
		m[row.status] = meta
	}
	return m
}()

// Statuses returns the status vocabulary in display order.
func Statuses() []Status {
	out := make([]Status, len(statusTable))
	for i, row := range statusTable {
		out[i] = row.status
	}
	return out
}

// Known reports whether s is part of the status vocabulary.
func (s Status) Known() bool {
	_, ok := statusIndex[s]
	return ok
}

// Meta returns the lookup data for s. Unknown statuses keep their raw
// string as label, sort after every known status and use the on-track tone.
func (s Status) Meta() StatusMeta {
	if meta, ok := statusIndex[s]; ok {
		return meta
	}
	return StatusMeta{
		Label: string(s),
		Color: UnknownStatusColor,
		Tone:  ToneOnTrack,
		Order: len(statusTable),
	}
}

// Label returns the short display label for s.
func (s Status) Label() string { return s.Meta().Label }

// IsDelayed reports whether s is either delay status.
func (s Status) IsDelayed() bool {
	return s == StatusDelayed || s == StatusSlightlyDelayed
}

// Stage is a lifecycle stage name.
type Stage string

const (
	StageInitiation  Stage = "Initiation"
	StageSolutioning Stage = "Solutioning"
	StageProcurement Stage = "Procurement"
	StageExecution   Stage = "Execution"
	StageClosing     Stage = "Closing"
)

// DefaultStage stands in for projects that carry no lifecycle stage.
const DefaultStage = StageExecution

// Stages returns the preferred lifecycle ordering.
func Stages() []Stage {
	return []Stage{StageInitiation, StageSolutioning, StageProcurement, StageExecution, StageClosing}
}

// Known reports whether s is one of the preferred lifecycle stages.
func (s Stage) Known() bool {
	return slices.Contains(Stages(), s)
}

// Tab is a project-grid tab. Tabs narrow an already filtered project set.
type Tab string

const (
	TabAll     Tab = "All"
	TabOnHold  Tab = "On Hold"
	TabDelayed Tab = "Delayed"
	TabOnTrack Tab = "On Track"
	TabClosing Tab = "Closing"
)

// Tabs returns the project tabs in display order.
func Tabs() []Tab {
	return []Tab{TabAll, TabOnHold, TabDelayed, TabOnTrack, TabClosing}
}

// ParseTab resolves a tab by its value or display label, case-insensitively.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs() {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.Label()) {
			return t, true
		}
	}
	return "", false
}

// Label returns the display label for t.
func (t Tab) Label() string {
	switch t {
	case TabOnHold:
		return "OnHold"
	case TabOnTrack:
		return "OnTrack"
	default:
		return string(t)
	}
}

// Matches reports whether a project status belongs under tab t.
func (t Tab) Matches(s Status) bool {
	switch t {
	case TabAll, "":
		return true
	case TabDelayed:
		return s.IsDelayed()
	default:
		return s == Status(t)
	}
}

// KPIID identifies one of the fixed dashboard KPIs.
type KPIID string

const (
	KPIOnTrackRate       KPIID = "onTrackRate"
	KPIMajorDelayRate    KPIID = "majorDelayRate"
	KPISlightlyDelayRate KPIID = "slightlyDelayRate"
	KPITotalProjects     KPIID = "totalProjects"
)

// UnitPercent marks a KPI whose value is a 0–1 fraction.
const UnitPercent = "%"
