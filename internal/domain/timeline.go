package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// TimelineBar is one phase row of a project timeline. Months are counted
// as year*12+month so that bars from different years line up.
type TimelineBar struct {
	Label      string `json:"label" yaml:"label"`
	StartMonth int    `json:"startMonth" yaml:"startMonth"`
	EndMonth   int    `json:"endMonth" yaml:"endMonth"`
	Months     int    `json:"months" yaml:"months"`
	// StartCol is the 1-based column the bar starts in; Span is how many
	// columns it covers, clipped to the visible grid.
	StartCol int `json:"startCol" yaml:"startCol"`
	Span     int `json:"span" yaml:"span"`
}

// MonthsLabel returns "1 month" or "N months".
func (b TimelineBar) MonthsLabel() string {
	if b.Months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", b.Months)
}

// Timeline is the phase grid shown in the project detail.
type Timeline struct {
	MinMonth int           `json:"minMonth" yaml:"minMonth"`
	Span     int           `json:"span" yaml:"span"`
	Cols     int           `json:"cols" yaml:"cols"`
	Months   []string      `json:"months" yaml:"months"`
	Bars     []TimelineBar `json:"bars" yaml:"bars"`
}

type phaseSpec struct {
	label        string
	defaultStart int
	defaultLen   int
	pick         func(PhaseDates) *PhaseRange
}

var phaseSpecs = []phaseSpec{
	{"Initiation (Planning & Setup)", 0, 2, func(d PhaseDates) *PhaseRange { return d.Initiation }},
	{"Procurement (Resource Acquisition)", 2, 4, func(d PhaseDates) *PhaseRange { return d.Procurement }},
	{"Execution (Implementation Phase)", 5, 7, func(d PhaseDates) *PhaseRange { return d.Execution }},
	{"Go-Live - Closing (Launch & Finalization)", 9, 2, func(d PhaseDates) *PhaseRange { return d.Closure }},
}

// BuildTimeline lays out the four delivery phases. A phase whose start and
// end both parse uses its real months; any other phase falls back to its
// default position in a generic twelve-month plan.
func BuildTimeline(dates PhaseDates) Timeline {
	bars := make([]TimelineBar, 0, len(phaseSpecs))
	for _, ps := range phaseSpecs {
		start, months := ps.defaultStart, ps.defaultLen
		if r := ps.pick(dates); r != nil && r.Start != "" && r.End != "" {
			s, okS := ParseDate(r.Start)
			e, okE := ParseDate(r.End)
			if okS && okE {
				start = absMonth(s)
				months = max(1, absMonth(e)-start+1)
			}
		}
		bars = append(bars, TimelineBar{
			Label:      ps.label,
			StartMonth: start,
			EndMonth:   start + months - 1,
			Months:     months,
		})
	}

	minMonth, maxMonth := bars[0].StartMonth, bars[0].EndMonth
	for _, b := range bars[1:] {
		minMonth = min(minMonth, b.StartMonth)
		maxMonth = max(maxMonth, b.EndMonth)
	}
	span := max(12, maxMonth-minMonth+1)
	cols := min(12, max(6, span))

	for i := range bars {
		startCol := max(1, bars[i].StartMonth-minMonth+1)
		bars[i].StartCol = startCol
		bars[i].Span = max(1, min(bars[i].Months, cols-startCol+1))
	}

	labels := make([]string, cols)
	for i := range labels {
		abs := minMonth + i
		label := monthNames[((abs%12)+12)%12]
		if year := abs / 12; year > 0 {
			y := strconv.Itoa(year)
			label += " '" + y[max(0, len(y)-2):]
		}
		labels[i] = label
	}

	return Timeline{
		MinMonth: minMonth,
		Span:     span,
		Cols:     cols,
		Months:   labels,
		Bars:     bars,
	}
}

func absMonth(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// ParseDate accepts the date shapes seen in portfolio exports. Values
// without a zone are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders s as "January 2, 2006". Unparsable input is returned
// as-is; empty input and the placeholder become the placeholder.
func FormatDate(s string) string {
	if s == "" || s == Placeholder {
		return Placeholder
	}
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("January 2, 2006")
}
