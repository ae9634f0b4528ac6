package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDetail_Placeholders(t *testing.T) {
	d := ProjectDetail(Project{ID: "7"})

	assert.Equal(t, "PRJ-2024-007", d.DisplayID)
	assert.Equal(t, Placeholder, d.Created)
	assert.Equal(t, Placeholder, d.Name)
	assert.Equal(t, Placeholder, d.Stage)
	assert.Equal(t, Placeholder, d.Sponsor)
	assert.Equal(t, Placeholder, d.ITProjectManager)
	assert.Equal(t, []string{Placeholder}, d.AddedValues)
	assert.Equal(t, []string{Placeholder}, d.Updates)
	assert.Equal(t, []string{Placeholder}, d.Challenges)
	assert.Equal(t, []string{Placeholder}, d.PlannedActivities)
	assert.Equal(t, 0, d.PlannedPercent)
	assert.Equal(t, ToneOnTrack, d.Tone)
}

func TestProjectDetail_Populated(t *testing.T) {
	p := Project{
		ID:                 "12",
		Name:               "ERP Upgrade",
		Status:             StatusSlightlyDelayed,
		Lifecycle:          StageExecution,
		Department:         "Finance",
		Manager:            "inayatullahm@Maaden.com.sa",
		Sponsor:            "ChakraborttyG@x.com",
		DemandNumber:       "DMD-0042",
		DemandCreationDate: "2024-03-05",
		PlannedProgress:    0.625,
		ActualProgress:     0.3,
		Update:             "• Vendor onboarded\n• UAT started  \n\n",
		Challenges:         []string{"Budget"},
		Risks:              []string{"Staffing"},
	}
	d := ProjectDetail(p)

	assert.Equal(t, "DMD-0042", d.DisplayID)
	assert.Equal(t, "March 5, 2024", d.Created)
	assert.Equal(t, "Inayatullah M", d.ITProjectManager)
	assert.Equal(t, "Chakrabortty G", d.Sponsor)
	assert.Equal(t, ToneDelayed, d.Tone)
	assert.Equal(t, []string{"Vendor onboarded", "UAT started"}, d.Updates)
	assert.Equal(t, []string{"Budget", "Staffing"}, d.Challenges)
	assert.Equal(t, 63, d.PlannedPercent)
	assert.Equal(t, 30, d.ActualPercent)
}

func TestProjectDetail_CreatedFallsBackToModified(t *testing.T) {
	d := ProjectDetail(Project{Modified: "not a date"})
	assert.Equal(t, "not a date", d.Created)
}

func TestProjectDetail_DoesNotAliasChallenges(t *testing.T) {
	challenges := make([]string, 1, 4)
	challenges[0] = "A"
	p := Project{Challenges: challenges, Risks: []string{"B"}}
	_ = ProjectDetail(p)
	assert.Equal(t, []string{"A"}, p.Challenges)
	assert.Equal(t, "", challenges[:2][1])
}

func TestDisplayID(t *testing.T) {
	assert.Equal(t, "PRJ-2024-123", DisplayID(Project{ID: "123"}))
	assert.Equal(t, "PRJ-2024-1234", DisplayID(Project{ID: "1234"}))
	assert.Equal(t, "PRJ-2024-0ab", DisplayID(Project{ID: "ab"}))
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, 13, Percent(0.125))
	assert.Equal(t, 38, Percent(0.375))
	assert.Equal(t, 100, Percent(1))
	assert.Equal(t, 0, Percent(0))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 13, RoundHalfUp(12.5))
	assert.Equal(t, 12, RoundHalfUp(12.49))
	assert.Equal(t, 0, RoundHalfUp(-0.5))
	assert.Equal(t, 0, RoundHalfUp(math.NaN()))
	assert.Equal(t, 0, RoundHalfUp(math.Inf(1)))
	assert.Equal(t, Percent(0.125), RoundHalfUp(12.5))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.4, Clamp01(0.4))
}

func TestBuildTimeline_Defaults(t *testing.T) {
	tl := BuildTimeline(PhaseDates{})

	assert.Equal(t, 0, tl.MinMonth)
	assert.Equal(t, 12, tl.Span)
	assert.Equal(t, 12, tl.Cols)
	require.Len(t, tl.Months, 12)
	assert.Equal(t, "Jan", tl.Months[0])
	assert.Equal(t, "Dec", tl.Months[11])

	require.Len(t, tl.Bars, 4)
	assert.Equal(t, 1, tl.Bars[0].StartCol)
	assert.Equal(t, 2, tl.Bars[0].Span)
	assert.Equal(t, 6, tl.Bars[2].StartCol)
	assert.Equal(t, 7, tl.Bars[2].Span)
	assert.Equal(t, 10, tl.Bars[3].StartCol)
	assert.Equal(t, "2 months", tl.Bars[3].MonthsLabel())
}

func TestBuildTimeline_RealDates(t *testing.T) {
	tl := BuildTimeline(PhaseDates{
		Initiation: &PhaseRange{Start: "2024-01-10", End: "2024-01-31"},
		Execution:  &PhaseRange{Start: "2024-03-01", End: "garbage"},
	})

	init := tl.Bars[0]
	assert.Equal(t, 1, init.Months)
	assert.Equal(t, "1 month", init.MonthsLabel())
	// Unparsable end keeps the default slot.
	assert.Equal(t, 5, tl.Bars[2].StartMonth)

	// Real dates sit far after the default months, so the span is wide and
	// the grid is capped at twelve columns starting from month zero.
	assert.Equal(t, 0, tl.MinMonth)
	assert.Equal(t, 12, tl.Cols)
	assert.Greater(t, tl.Span, 12)
	assert.Equal(t, 1, init.Span)
}

func TestBuildTimeline_AllRealDates(t *testing.T) {
	tl := BuildTimeline(PhaseDates{
		Initiation:  &PhaseRange{Start: "2024-01-01", End: "2024-02-15"},
		Procurement: &PhaseRange{Start: "2024-03-01", End: "2024-04-30"},
		Execution:   &PhaseRange{Start: "2024-05-01", End: "2024-09-30"},
		Closure:     &PhaseRange{Start: "2024-10-01", End: "2024-10-31"},
	})

	assert.Equal(t, 2024*12, tl.MinMonth)
	assert.Equal(t, 12, tl.Span)
	assert.Equal(t, 12, tl.Cols)
	assert.Equal(t, "Jan '24", tl.Months[0])
	assert.Equal(t, 2, tl.Bars[0].Months)
	assert.Equal(t, 3, tl.Bars[1].StartCol)
	assert.Equal(t, 5, tl.Bars[2].Months)
	assert.Equal(t, 10, tl.Bars[3].StartCol)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, Placeholder, FormatDate(""))
	assert.Equal(t, Placeholder, FormatDate(Placeholder))
	assert.Equal(t, "January 15, 2024", FormatDate("2024-01-15T10:00:00Z"))
	assert.Equal(t, "someday", FormatDate("someday"))
}
