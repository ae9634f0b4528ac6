package formatter

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/metrics"
)

// minBarFraction keeps a non-empty stage visible on the chart.
const minBarFraction = 0.02

// LifecycleScale returns the chart's axis maximum, rounded up to a
// multiple of 20 and never below 20, and its de-duplicated ascending ticks.
func LifecycleScale(stages []metrics.StageCount) (yMax int, ticks []int) {
	dataMax := 1
	for _, s := range stages {
		dataMax = max(dataMax, s.Value)
	}
	yMax = max(20, int(math.Ceil(float64(dataMax)/20))*20)
	ticks = []int{
		0,
		domain.RoundHalfUp(float64(yMax) / 3),
		domain.RoundHalfUp(2 * float64(yMax) / 3),
		yMax,
	}
	slices.Sort(ticks)
	return yMax, slices.Compact(ticks)
}

// BarFraction is the bar length of value relative to yMax.
func BarFraction(value, yMax int) float64 {
	if yMax <= 0 {
		return minBarFraction
	}
	return max(minBarFraction, float64(value)/float64(yMax))
}

// FormatLifecycleChart renders the stage histogram as horizontal bars on a
// shared axis of width cells.
func FormatLifecycleChart(stages []metrics.StageCount, width int) string {
	width = max(10, width)
	yMax, ticks := LifecycleScale(stages)

	labelW := 0
	for _, s := range stages {
		labelW = max(labelW, len(s.Stage))
	}

	var b strings.Builder
	b.WriteString(Header("Lifecycle Stages") + "\n")
	for _, s := range stages {
		n := max(1, int(math.Round(BarFraction(s.Value, yMax)*float64(width))))
		fmt.Fprintf(&b, "%-*s %s %s\n", labelW, s.Stage,
			StyleStage.Render(strings.Repeat(filledBlock, n)), Dim(fmt.Sprint(s.Value)))
	}

	axis := []rune(strings.Repeat(" ", width+6))
	for _, t := range ticks {
		pos := int(math.Round(float64(t) / float64(yMax) * float64(width-1)))
		label := []rune(fmt.Sprintf("%d.", t))
		if pos+len(label) > len(axis) {
			pos = len(axis) - len(label)
		}
		copy(axis[pos:], label)
	}
	fmt.Fprintf(&b, "%*s %s\n", labelW, "", Dim(strings.TrimRight(string(axis), " ")))
	return b.String()
}
