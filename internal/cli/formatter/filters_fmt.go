package formatter

import (
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// ChipValue is the value shown on a filter chip: empty for All, the
// formatted name for managers, the raw value otherwise.
func ChipValue(f app.FilterView) string {
	if !f.Active() {
		return ""
	}
	return f.OptionLabel(f.Selected)
}

// FormatFilterChips renders one chip per filter, "Label: value".
func FormatFilterChips(filters []app.FilterView) string {
	chips := make([]string, 0, len(filters))
	for _, f := range filters {
		value := ChipValue(f)
		switch {
		case !f.Active():
			value = Dim(domain.All)
		case value == "":
			value = StyleYellow.Render(`""`)
		default:
			value = StyleYellow.Render(value)
		}
		chips = append(chips, Dim(f.Label+":")+" "+value)
	}
	return strings.Join(chips, Dim("  │  "))
}

// FormatFilterOptions lists every filter with its options, marking the
// current selection.
func FormatFilterOptions(filters []app.FilterView) string {
	var b strings.Builder
	for i, f := range filters {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(f.Label) + "  " + Dim(string(f.Key)) + "\n")
		for _, opt := range f.Options {
			label := f.OptionLabel(opt)
			if label != opt {
				label += " " + Dim("("+opt+")")
			}
			if opt == f.Selected {
				b.WriteString(StyleGreen.Render("● ") + Bold(label) + "\n")
				continue
			}
			b.WriteString("  " + label + "\n")
		}
	}
	return b.String()
}
