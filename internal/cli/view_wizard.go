package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli/formatter"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// wizardView wraps a huh.Form as a View on the navigation stack.
// When the form completes, it sends a wizardCompleteMsg with the
// done callback's result, allowing chained multi-step wizards.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newWizardView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the wizard.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return wizardCompleteMsg{} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: tea.Batch(cmd, doneCmd)}
		}
	}

	return v, cmd
}

func (v *wizardView) View() string {
	return v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// startWizardCmd pushes a wizardView. If form is nil (no options
// available), it calls done() directly.
func startWizardCmd(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) tea.Cmd {
	if form == nil {
		if done != nil {
			return done()
		}
		return nil
	}
	return pushView(newWizardView(state, title, form, done))
}

// trackerHuhTheme styles forms with the dashboard palette.
func trackerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// filterKeyForm asks which filter to change. The description shows the
// current selection of each.
func filterKeyForm(filters []app.FilterView, result *string) *huh.Form {
	if len(filters) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(filters))
	for _, f := range filters {
		label := f.Label
		if f.Active() {
			label += " (" + optionLabel(f, f.Selected) + ")"
		}
		options = append(options, huh.NewOption(label, string(f.Key)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Filter?").
				Options(options...).
				Value(result),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

// filterValueForm lists the options of one filter, starting on the
// current selection.
func filterValueForm(f app.FilterView, result *string) *huh.Form {
	if len(f.Options) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(f.Options))
	for _, opt := range f.Options {
		options = append(options, huh.NewOption(optionLabel(f, opt), opt).Selected(opt == f.Selected))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(f.Label).
				Options(options...).
				Value(result),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

// optionLabel is how a filter option reads in the picker. The empty
// portfolio value gets a visible stand-in.
func optionLabel(f app.FilterView, option string) string {
	if option == "" {
		return "(none)"
	}
	return f.OptionLabel(option)
}

// startFilterPicker runs the two-step filter picker: choose a filter, then
// one of its options. The choice goes through SetFilter.
func startFilterPicker(state *SharedState, view app.DashboardView) tea.Cmd {
	var filterKey string
	return startWizardCmd(state, "Filter", filterKeyForm(view.Filters, &filterKey), func() tea.Cmd {
		f, ok := view.Filter(domain.FilterKey(filterKey))
		if !ok {
			return nil
		}
		value := f.Selected
		return startWizardCmd(state, f.Label, filterValueForm(f, &value), func() tea.Cmd {
			return setFilterCmd(state, filterKey, value)
		})
	})
}
