package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// csvStatusMap maps tracker export statuses onto the dashboard vocabulary.
var csvStatusMap = map[string]domain.Status{
	"On Track":       domain.StatusOnTrack,
	"Slightly Delay": domain.StatusSlightlyDelayed,
	"Major Delay":    domain.StatusDelayed,
	"OnHold":         domain.StatusOnHold,
	"Completed":      domain.StatusClosing,
	"Cancelled":      domain.StatusCancelled,
	"Not Started":    domain.StatusOnTrack,
	"":               domain.StatusOnTrack,
}

// csvDefaultProgress seeds planned/actual progress by status, since the
// tracker export has no progress columns.
var csvDefaultProgress = map[domain.Status][2]float64{
	domain.StatusClosing:         {90, 95},
	domain.StatusOnTrack:         {75, 75},
	domain.StatusSlightlyDelayed: {60, 55},
	domain.StatusDelayed:         {55, 50},
	domain.StatusOnHold:          {50, 48},
	domain.StatusCancelled:       {25, 25},
}

// minCSVColumns skips rows too short to describe a project.
const minCSVColumns = 8

var sbuList = regexp.MustCompile(`\[.*\]`)

// FromCSV converts a SharePoint "BE Projects Tracker" export into a
// dashboard document. The first line of the export is a list schema and
// is skipped; the second line holds the headers. Filter options are
// derived from the converted projects.
func FromCSV(r io.Reader) (*Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading schema line: %w", err)
	}
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header line: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	get := func(row []string, keys ...string) string {
		for _, k := range keys {
			i, ok := idx[strings.TrimSpace(k)]
			if !ok || i >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[i]); v != "" {
				return v
			}
		}
		return ""
	}

	doc := &Document{}
	rowNum := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if len(row) < minCSVColumns {
			continue
		}
		rowNum++

		name := get(row, "Project Name", "Title")
		if name == "" {
			continue
		}
		status, ok := csvStatusMap[get(row, "Status")]
		if !ok {
			status = domain.StatusOnTrack
		}
		progress, ok := csvDefaultProgress[status]
		if !ok {
			progress = [2]float64{50, 50}
		}
		portfolio := FlexString(get(row, "Portfolio"))

		doc.Projects = append(doc.Projects, ProjectDoc{
			ID:                    FlexString(fmt.Sprint(rowNum)),
			Name:                  FlexString(name),
			DemandNumber:          FlexString(domain.CoalesceStr(get(row, "Demand Number", "DemandName"), fmt.Sprintf("PRJ-2024-%03d", rowNum))),
			Department:            FlexString(parseSBU(get(row, "SBU/Function", "BU"))),
			Portfolio:             &portfolio,
			Status:                FlexString(status),
			LifecycleStage:        FlexString(domain.CoalesceStr(get(row, "Stage"), string(domain.DefaultStage))),
			ProjectManager:        FlexString(domain.CoalesceStr(get(row, "Project Manager", "AssignedPerson"), domain.Placeholder)),
			BusinessFocalPoint:    FlexString(get(row, "Business Focal Point", "BusinessFocalPoint")),
			Sponsor:               FlexString(get(row, "Sponsor", "Sponsor0")),
			PlannedProgress:       Float(progress[0]),
			ActualProgress:        Float(progress[1]),
			Milestone:             FlexString(get(row, "Milestone")),
			DemandCreationDate:    FlexString(get(row, "Demand Creation date", "DemandAssignmentdate")),
			GoLiveDate:            FlexString(get(row, "Go-Live date", "Go_x002d_Livedate")),
			Modified:              FlexString(get(row, "Modified")),
			DemandDescription:     FlexString(get(row, "Summery")),
			Update:                FlexString(get(row, "ProgressSummery")),
			Challenges:            splitBullets(get(row, "Challenges")),
			Risks:                 splitBullets(get(row, "Risks")),
			PlannedActivities:     splitBullets(get(row, "Planned Activities", "PlannedActivities")),
			AddedValues:           splitBullets(get(row, "Added Values", "AddedValues")),
			BeneficiaryDepartment: FlexString(get(row, "Beneficiary Department", "BeneficiaryDepartment")),
			PhaseDates: &PhaseDatesDoc{
				Initiation:  &RangeDoc{Start: FlexString(get(row, "Initiation Start Date", "InitiationStartDate")), End: FlexString(get(row, "Initiation End Date"))},
				Procurement: &RangeDoc{Start: FlexString(get(row, "Procurement Start Date", "ProcurementStart")), End: FlexString(get(row, "Procurement End Date"))},
				Execution:   &RangeDoc{Start: FlexString(get(row, "Execution Start Date", "ExecutionStartDate")), End: FlexString(get(row, "Execution End Date"))},
				Closure:     &RangeDoc{Start: FlexString(get(row, "Closure Start Date", "ClosureStartDate")), End: FlexString(get(row, "Closure End Date"))},
			},
		})
	}

	opts := DeriveFilterOptions(Adapt(doc).Projects)
	doc.Filters = &FiltersDoc{
		BusinessUnits:   opts.BusinessUnits,
		Portfolios:      opts.Portfolios,
		ProjectManagers: opts.ProjectManagers,
		ProjectStatus:   opts.ProjectStatus,
		LifecycleStage:  opts.LifecycleStage,
	}
	return doc, nil
}

// parseSBU returns the first business unit of an "SBU/Function" cell,
// which holds either a JSON-ish array like ["IT","HR"] or a plain value.
func parseSBU(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "Other"
	}
	m := sbuList.FindString(s)
	if m == "" {
		return s
	}
	var arr []string
	if err := json.Unmarshal([]byte(strings.ReplaceAll(m, `""`, `"`)), &arr); err == nil {
		if len(arr) == 0 {
			return "Other"
		}
		return arr[0]
	}
	inner := strings.Trim(m, "[]")
	if first := strings.Trim(strings.TrimSpace(strings.Split(inner, ",")[0]), `"`); first != "" {
		return first
	}
	return "Other"
}

func splitBullets(s string) FlexList {
	var out FlexList
	for _, part := range strings.Split(strings.ReplaceAll(s, "•", "\n"), "\n") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
