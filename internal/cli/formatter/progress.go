package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

const (
	filledBlock   = "█"
	emptyBlock    = "░"
	plannedMarker = "┃"
)

// ProgressGeometry places actual progress and the planned marker on a bar
// of width cells. Both fractions are clamped to [0,1].
type ProgressGeometry struct {
	Filled     int
	PlannedCol int
}

func ProgressLayout(planned, actual float64, width int) ProgressGeometry {
	if width < 2 {
		width = 2
	}
	filled := int(math.Round(domain.Clamp01(actual) * float64(width)))
	col := int(math.Round(domain.Clamp01(planned) * float64(width)))
	if col >= width {
		col = width - 1
	}
	return ProgressGeometry{Filled: filled, PlannedCol: col}
}

// RenderProgress renders actual progress as a filled bar with the planned
// position marked, colored by the project's status tone.
func RenderProgress(planned, actual float64, width int, tone domain.StatusTone) string {
	if width < 2 {
		width = 2
	}
	g := ProgressLayout(planned, actual, width)
	style := ToneStyle(tone)

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == g.PlannedCol:
			b.WriteString(StyleYellow.Render(plannedMarker))
		case i < g.Filled:
			b.WriteString(style.Render(filledBlock))
		default:
			b.WriteString(StyleDim.Render(emptyBlock))
		}
	}
	return b.String()
}

// ProgressLabels renders "Planned 63%  Actual 30%".
func ProgressLabels(planned, actual float64) string {
	return fmt.Sprintf("%s %s  %s %s",
		Dim("Planned"), StyleYellow.Render(fmt.Sprintf("%d%%", domain.Percent(planned))),
		Dim("Actual"), Bold(fmt.Sprintf("%d%%", domain.Percent(actual))),
	)
}
