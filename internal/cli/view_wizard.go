package cli

import (
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizard describes one planner prompt: the huh form, a line of context
// drawn above it, and the mutation to run once the form completes.
type wizard struct {
	title   string
	context string
	form    *huh.Form
	done    func() tea.Cmd
}

// wizardView hosts a wizard on the navigation stack. done runs at most
// once, then the view asks to be popped with done's follow-up Cmd.
type wizardView struct {
	state    *SharedState
	wizard   wizard
	finished bool
}

func newWizardView(state *SharedState, w wizard) *wizardView {
	return &wizardView{state: state, wizard: w}
}

func (v *wizardView) Init() tea.Cmd {
	return v.wizard.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.finished {
		return v, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, v.cancel()
	}

	form, cmd := v.wizard.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.wizard.form = f
	}

	switch v.wizard.form.State {
	case huh.StateAborted:
		return v, v.cancel()
	case huh.StateCompleted:
		v.finished = true
		var next tea.Cmd
		if v.wizard.done != nil {
			next = v.wizard.done()
		}
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: tea.Batch(cmd, next)}
		}
	}
	return v, cmd
}

func (v *wizardView) cancel() tea.Cmd {
	v.finished = true
	return func() tea.Msg {
		return wizardCompleteMsg{nextCmd: statusCmd(formatter.Dim("Cancelled."), false)}
	}
}

func (v *wizardView) View() string {
	out := "\n"
	if v.wizard.context != "" {
		out += "  " + v.wizard.context + "\n\n"
	}
	return out + v.wizard.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.wizard.title }

func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// startWizard pushes w. A wizard without a form (nothing to ask) runs
// its done callback immediately.
func startWizard(state *SharedState, w wizard) tea.Cmd {
	if w.form == nil {
		if w.done != nil {
			return w.done()
		}
		return nil
	}
	return pushView(newWizardView(state, w))
}
