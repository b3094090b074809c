// Package tui provides the interactive wizard for `breakdown init`.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/breakdown/internal/app"
	"github.com/wexinc/breakdown/internal/tui/styles"
)

// step is the wizard's current screen.
type step int

const (
	// stepDir asks for the project directory.
	stepDir step = iota
	// stepConfirm asks whether to overwrite an existing workspace.
	stepConfirm
	// stepRunning is shown while setup executes.
	stepRunning
	// stepDone shows the result.
	stepDone
)

// setupDoneMsg carries the setup outcome back into the update loop.
type setupDoneMsg struct {
	result *app.SetupResult
	err    error
}

// Wizard is the bubbletea model for the init flow.
type Wizard struct {
	input    textinput.Model
	step     step
	force    bool
	statuses []string

	result    *app.SetupResult
	err       error
	cancelled bool
}

// NewWizard creates the wizard, pre-filling the directory input.
func NewWizard(projectDir string) *Wizard {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 48
	ti.SetValue(projectDir)
	ti.Focus()

	return &Wizard{input: ti}
}

// Result returns the setup outcome after the program exits.
// Cancelled runs return (nil, nil).
func (w *Wizard) Result() (*app.SetupResult, error) {
	if w.cancelled {
		return nil, nil
	}
	return w.result, w.err
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return w.updateKey(msg)
	case setupDoneMsg:
		w.result = msg.result
		w.err = msg.err
		w.step = stepDone
		return w, nil
	}

	if w.step == stepDir {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *Wizard) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if w.step != stepRunning {
			w.cancelled = true
			return w, tea.Quit
		}
		return w, nil
	}

	switch w.step {
	case stepDir:
		if msg.String() == "enter" {
			dir := strings.TrimSpace(w.input.Value())
			if dir == "" {
				dir = "."
			}
			w.input.SetValue(dir)
			if app.NeedsSetup(dir) {
				return w.startSetup()
			}
			w.step = stepConfirm
			return w, nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd

	case stepConfirm:
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			w.force = true
			return w.startSetup()
		case "n":
			w.cancelled = true
			return w, tea.Quit
		}

	case stepDone:
		return w, tea.Quit
	}
	return w, nil
}

// startSetup kicks off workspace creation in a command.
func (w *Wizard) startSetup() (tea.Model, tea.Cmd) {
	w.step = stepRunning
	dir := w.input.Value()
	force := w.force

	return w, func() tea.Msg {
		s := app.NewSetup(dir)
		s.Force = force
		res, err := s.Run()
		return setupDoneMsg{result: res, err: err}
	}
}

// View implements tea.Model.
func (w *Wizard) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(" breakdown init "))
	b.WriteString("\n\n")

	switch w.step {
	case stepDir:
		b.WriteString(styles.LabelFocusedStyle.Render("Project directory: "))
		b.WriteString(w.input.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("enter: continue • esc: cancel"))

	case stepConfirm:
		b.WriteString(styles.WarningTextStyle.Render("A breakdown workspace already exists here."))
		b.WriteString("\n")
		b.WriteString("Overwrite config and starter templates?\n\n")
		b.WriteString(styles.ButtonPrimaryStyle.Render("[Y]es"))
		b.WriteString("  ")
		b.WriteString(styles.ButtonSecondaryStyle.Render("[N]o"))

	case stepRunning:
		b.WriteString(styles.MutedTextStyle.Render("Creating workspace..."))

	case stepDone:
		if w.err != nil {
			b.WriteString(styles.ErrorTextStyle.Render("Setup failed: " + w.err.Error()))
		} else if w.result != nil {
			b.WriteString(styles.SuccessTextStyle.Render("Workspace ready: " + w.result.WorkingDir))
			b.WriteString("\n")
			b.WriteString(styles.MutedTextStyle.Render("Config: " + w.result.ConfigPath))
		}
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("press any key to exit"))
	}

	b.WriteString("\n")
	return styles.BoxStyle.Render(b.String())
}

// RunWizard runs the interactive init flow and returns its outcome.
// A cancelled run returns (nil, nil).
func RunWizard(projectDir string) (*app.SetupResult, error) {
	w := NewWizard(projectDir)
	if _, err := tea.NewProgram(w).Run(); err != nil {
		return nil, err
	}
	return w.Result()
}
