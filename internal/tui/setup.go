package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	Unit    string
	Theme   string
	Compare bool
}

func defaultSetupValues(unit cli.Unit) setupValues {
	return setupValues{
		Unit:    string(unit),
		Theme:   theme.Active.Name,
		Compare: true,
	}
}

// newSetupForm builds the first-run setup wizard.
func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fiscboard").
				Description("Financial statements of the Government of Barbados,\nyear ended March 31, 2023. A few display preferences first."),

			huh.NewSelect[string]().
				Title("Currency unit").
				Options(
					huh.NewOption("Millions ($3,209.9M)", string(cli.UnitMillions)),
					huh.NewOption("Billions ($3.21B)", string(cli.UnitBillions)),
					huh.NewOption("Full ($3,209,934,907)", string(cli.UnitFull)),
				).
				Value(&vals.Unit),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),

			huh.NewConfirm().
				Title("Show prior-year comparison columns?").
				Value(&vals.Compare),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) applySetup() {
	if u, err := cli.ParseUnit(a.setupVals.Unit); err == nil {
		a.unit = u
	}
	theme.SetActive(a.setupVals.Theme)
	a.showComparison = a.setupVals.Compare
	a.saveDisplayConfig()
}
