package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Document is the top-level JSON structure of a dashboard data file.
// Precomputed sections some exports carry (kpis, overviews) are ignored;
// the dashboard always derives them from projects.
type Document struct {
	Filters  *FiltersDoc  `json:"filters,omitempty"`
	Projects []ProjectDoc `json:"projects"`
}

// UnmarshalJSON requires an object but treats a projects value that is not
// an array as an empty list.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Filters  *FiltersDoc     `json:"filters"`
		Projects json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = Document{Filters: raw.Filters}
	if projects := bytes.TrimSpace(raw.Projects); len(projects) > 0 && projects[0] == '[' {
		return json.Unmarshal(projects, &d.Projects)
	}
	return nil
}

// FiltersDoc lists the selectable values of each filter. A nil list means
// the key was absent from the document.
type FiltersDoc struct {
	BusinessUnits   []string `json:"businessUnits,omitempty"`
	Portfolios      []string `json:"portfolios,omitempty"`
	ProjectManagers []string `json:"projectManagers,omitempty"`
	ProjectStatus   []string `json:"projectStatus,omitempty"`
	LifecycleStage  []string `json:"lifecycleStage,omitempty"`
}

// UnmarshalJSON ignores a filters value that is not an object and option
// lists that are not arrays.
func (f *FiltersDoc) UnmarshalJSON(data []byte) error {
	var raw struct {
		BusinessUnits   optionList `json:"businessUnits"`
		Portfolios      optionList `json:"portfolios"`
		ProjectManagers optionList `json:"projectManagers"`
		ProjectStatus   optionList `json:"projectStatus"`
		LifecycleStage  optionList `json:"lifecycleStage"`
	}
	if err := decodeObject(data, &raw); err != nil {
		return err
	}
	*f = FiltersDoc{
		BusinessUnits:   raw.BusinessUnits,
		Portfolios:      raw.Portfolios,
		ProjectManagers: raw.ProjectManagers,
		ProjectStatus:   raw.ProjectStatus,
		LifecycleStage:  raw.LifecycleStage,
	}
	return nil
}

// ProjectDoc is one project as exported. Field names follow the export,
// not the domain model. Every field tolerates a wrong JSON type and decodes
// it to its zero value, so one bad project never fails the document.
type ProjectDoc struct {
	ID                    FlexString     `json:"id"`
	Name                  FlexString     `json:"name"`
	DemandNumber          FlexString     `json:"demandNumber,omitempty"`
	Department            FlexString     `json:"department"`
	Portfolio             *FlexString    `json:"portfolio,omitempty"`
	Status                FlexString     `json:"status"`
	LifecycleStage        FlexString     `json:"lifecycleStage"`
	ProjectManager        FlexString     `json:"projectManager"`
	BusinessFocalPoint    FlexString     `json:"businessFocalPoint,omitempty"`
	Sponsor               FlexString     `json:"sponsor,omitempty"`
	PlannedProgress       FlexFloat      `json:"plannedProgress"`
	ActualProgress        FlexFloat      `json:"actualProgress"`
	Milestone             FlexString     `json:"milestone,omitempty"`
	DemandCreationDate    FlexString     `json:"demandCreationDate,omitempty"`
	GoLiveDate            FlexString     `json:"goLiveDate,omitempty"`
	Modified              FlexString     `json:"modified,omitempty"`
	DemandDescription     FlexString     `json:"demandDescription,omitempty"`
	Update                FlexString     `json:"update,omitempty"`
	Challenges            FlexList       `json:"challenges,omitempty"`
	Risks                 FlexList       `json:"risks,omitempty"`
	PlannedActivities     FlexList       `json:"plannedActivities,omitempty"`
	AddedValues           FlexList       `json:"addedValues,omitempty"`
	BeneficiaryDepartment FlexString     `json:"beneficiaryDepartment,omitempty"`
	PhaseDates            *PhaseDatesDoc `json:"phaseDates,omitempty"`
}

// UnmarshalJSON decodes a non-object project entry as an empty project.
func (p *ProjectDoc) UnmarshalJSON(data []byte) error {
	type plain ProjectDoc
	*p = ProjectDoc{}
	return decodeObject(data, (*plain)(p))
}

// PhaseDatesDoc holds the optional phase ranges of a project.
type PhaseDatesDoc struct {
	Initiation  *RangeDoc `json:"initiation,omitempty"`
	Procurement *RangeDoc `json:"procurement,omitempty"`
	Execution   *RangeDoc `json:"execution,omitempty"`
	Closure     *RangeDoc `json:"closure,omitempty"`
}

func (d *PhaseDatesDoc) UnmarshalJSON(data []byte) error {
	type plain PhaseDatesDoc
	*d = PhaseDatesDoc{}
	return decodeObject(data, (*plain)(d))
}

// RangeDoc is a raw start/end pair.
type RangeDoc struct {
	Start FlexString `json:"start"`
	End   FlexString `json:"end"`
}

func (r *RangeDoc) UnmarshalJSON(data []byte) error {
	type plain RangeDoc
	*r = RangeDoc{}
	return decodeObject(data, (*plain)(r))
}

// decodeObject decodes data into v when it is a JSON object and leaves v
// untouched otherwise.
func decodeObject(data []byte, v any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	return json.Unmarshal(data, v)
}

// FlexString accepts a JSON string or number. Anything else decodes to "".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case '{', '[', 't', 'f':
		*f = ""
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decoding %s as string or number: %w", data, err)
		}
		*f = FlexString(n.String())
	}
	return nil
}

// FlexFloat accepts a JSON number, a numeric string or null. Missing,
// null and unparsable values decode to nil.
type FlexFloat struct {
	Value *float64
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	f.Value = nil
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	f.Value = &v
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// Float returns a FlexFloat holding v.
func Float(v float64) FlexFloat { return FlexFloat{Value: &v} }

// FlexList accepts an array of strings or numbers, or a single string.
type FlexList []string

func (l *FlexList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = nil
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s != "" {
			*l = FlexList{s}
		}
		return nil
	}
	if data[0] != '[' {
		return nil
	}
	var items []FlexString
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decoding list: %w", err)
	}
	for _, it := range items {
		if it != "" {
			*l = append(*l, string(it))
		}
	}
	return nil
}

// optionList is a filter option list. Unlike FlexList it keeps empty
// strings, which are selectable options. Non-scalar items are skipped.
type optionList []string

func (l *optionList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = nil
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decoding options: %w", err)
	}
	*l = make(optionList, 0, len(items))
	for _, raw := range items {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			continue
		}
		switch raw[0] {
		case '{', '[', 't', 'f', 'n':
			continue
		}
		var s FlexString
		if err := s.UnmarshalJSON(raw); err != nil {
			return err
		}
		*l = append(*l, string(s))
	}
	return nil
}

// ParseDocument decodes a dashboard document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing dashboard data: %w", err)
	}
	return &doc, nil
}

// LoadDocument reads and parses a dashboard data file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}
