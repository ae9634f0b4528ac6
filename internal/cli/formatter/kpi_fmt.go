package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/metrics"
)

const kpiCardWidth = 24

var kpiIcons = map[domain.KPIID]string{
	domain.KPIOnTrackRate:       "✔",
	domain.KPIMajorDelayRate:    "▲",
	domain.KPISlightlyDelayRate: "◷",
	domain.KPITotalProjects:     "▣",
}

func kpiStyle(id domain.KPIID) lipgloss.Style {
	switch id {
	case domain.KPIOnTrackRate:
		return StyleGreen
	case domain.KPIMajorDelayRate:
		return StyleRed
	case domain.KPISlightlyDelayRate:
		return StyleYellow
	default:
		return StyleBlue
	}
}

// FormatKPICard renders one KPI as a bordered card.
func FormatKPICard(k metrics.KPI) string {
	icon, ok := kpiIcons[k.ID]
	if !ok {
		icon = kpiIcons[domain.KPITotalProjects]
	}
	inner := kpiCardWidth - 4
	head := Truncate(k.Label, inner-2)
	head += lipgloss.PlaceHorizontal(inner-lipgloss.Width(head), lipgloss.Right, Dim(icon))
	body := head + "\n" +
		kpiStyle(k.ID).Bold(true).Render(FormatKPIValue(k)) + "\n" +
		Dim(Truncate(k.Description, inner))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(kpiCardWidth - 2).
		Render(body)
}

// FormatKPICards lays the KPI cards out in one row, or stacked when width
// cannot hold them all. A width of 0 means unlimited.
func FormatKPICards(kpis []metrics.KPI, width int) string {
	cards := make([]string, 0, len(kpis))
	for _, k := range kpis {
		cards = append(cards, FormatKPICard(k))
	}
	if len(cards) == 0 {
		return ""
	}
	perRow := len(cards)
	if width > 0 {
		perRow = max(1, min(len(cards), width/kpiCardWidth))
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(len(cards), i+perRow)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
