package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/metrics"
)

// DonutGapDeg separates adjacent donut segments.
const DonutGapDeg = 2.0

// DonutSegment is the angular placement of one status segment, clockwise
// from 12 o'clock.
type DonutSegment struct {
	Status   domain.Status
	Value    int
	StartDeg float64
	EndDeg   float64
	MidDeg   float64
}

// AngleDeg is the segment's sweep.
func (s DonutSegment) AngleDeg() float64 { return s.EndDeg - s.StartDeg }

// DonutGeometry lays the overview out on a circle. Each segment is preceded
// by a gap and takes its share of the degrees left after all gaps. Shares
// are relative to the sum of values, so rounding drift never overflows the
// circle.
func DonutGeometry(overview []metrics.StatusSegment) []DonutSegment {
	sum := 0
	for _, s := range overview {
		sum += s.Value
	}
	if sum == 0 {
		sum = 1
	}
	available := 360 - DonutGapDeg*float64(len(overview))

	segments := make([]DonutSegment, 0, len(overview))
	cur := 0.0
	for _, s := range overview {
		angle := float64(s.Value) / float64(sum) * available
		start := cur + DonutGapDeg
		segments = append(segments, DonutSegment{
			Status:   s.Status,
			Value:    s.Value,
			StartDeg: start,
			EndDeg:   start + angle,
			MidDeg:   start + angle/2,
		})
		cur = start + angle
	}
	return segments
}

// FormatStatusBar renders the donut unrolled into a stacked bar of width
// cells, each segment as wide as its sweep.
func FormatStatusBar(overview []metrics.StatusSegment, width int) string {
	if len(overview) == 0 {
		return Dim(strings.Repeat("·", max(1, width)))
	}
	segments := DonutGeometry(overview)
	var b strings.Builder
	used := 0
	for i, s := range segments {
		cells := int(math.Round(s.EndDeg / 360 * float64(width)))
		if i == len(segments)-1 {
			cells = width
		}
		n := cells - used
		if n <= 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Status.Meta().Color))
		b.WriteString(style.Render(strings.Repeat(filledBlock, n)))
		used = cells
	}
	return b.String()
}

// FormatStatusLegend lists the segments in overview order with swatch,
// short label and percentage.
func FormatStatusLegend(overview []metrics.StatusSegment) string {
	lines := make([]string, 0, len(overview))
	for _, s := range overview {
		lines = append(lines, fmt.Sprintf("%s %-14s %3d%%", StatusSwatch(s.Status), s.Status.Label(), s.Value))
	}
	return strings.Join(lines, "\n")
}

// FormatStatusOverview combines the stacked bar and its legend.
func FormatStatusOverview(overview []metrics.StatusSegment, width int) string {
	var b strings.Builder
	b.WriteString(Header("Status Overview") + "\n")
	b.WriteString(FormatStatusBar(overview, width) + "\n")
	if legend := FormatStatusLegend(overview); legend != "" {
		b.WriteString(legend + "\n")
	}
	return b.String()
}
