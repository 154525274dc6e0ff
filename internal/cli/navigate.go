package cli

import (
	"strings"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages views send to appModel. Views never touch the stack directly.
type (
	pushViewMsg struct{ view View }
	popViewMsg  struct{}

	// refreshViewMsg is broadcast to every view on the stack after the
	// schedule or concentration changes.
	refreshViewMsg struct{}

	statusMsg struct {
		text    string
		isError bool
	}

	// wizardCompleteMsg pops the wizard, then runs nextCmd and a refresh.
	wizardCompleteMsg struct{ nextCmd tea.Cmd }
)

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

// rejectionStatus shows a failed planner call on the status line. The
// session always continues.
func rejectionStatus(err error) tea.Cmd {
	return statusCmd(strings.TrimSpace(formatter.FormatRejection(err)), true)
}

// changedStatus reports a successful schedule change and refreshes every
// view that renders the schedule.
func changedStatus(text string) tea.Cmd {
	return tea.Batch(statusCmd(strings.TrimSpace(text), false), refreshCmd())
}
