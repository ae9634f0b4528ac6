package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	// ColorStage is the lifecycle bar color.
	ColorStage = lipgloss.Color("#B4A56F")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleStage  = lipgloss.NewStyle().Foreground(ColorStage)
)

// ToneStyle returns the pill style for a status tone.
func ToneStyle(tone domain.StatusTone) lipgloss.Style {
	switch tone {
	case domain.ToneDelayed:
		return StyleRed
	case domain.ToneOnHold:
		return StyleYellow
	case domain.ToneClosing:
		return StyleBlue
	default:
		return StyleGreen
	}
}

// StatusPill returns a colored status indicator such as "● OnTrack".
func StatusPill(status domain.Status) string {
	if status == "" {
		return StyleDim.Render("● " + domain.Placeholder)
	}
	return ToneStyle(status.Meta().Tone).Render("● " + status.Label())
}

// StatusSwatch renders a square in the chart color of status.
func StatusSwatch(status domain.Status) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(status.Meta().Color)).Render("■")
}

// StageBadge returns a bracketed, purple stage label.
func StageBadge(stage domain.Stage) string {
	if stage == "" {
		return StyleDim.Render("[" + domain.Placeholder + "]")
	}
	return StylePurple.Render("[" + string(stage) + "]")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
