package cli

import (
	"strings"

	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the planner TUI. The course list is the bottom of the view
// stack and is never popped.
type appModel struct {
	state    *SharedState
	stack    []View
	quitting bool
}

func newAppModel(app *App, cat *catalog.Catalog, planner service.PlannerService) appModel {
	state := &SharedState{App: app, Catalog: cat, Planner: planner}
	return appModel{
		state: state,
		stack: []View{newCourseListView(state)},
	}
}

func (m *appModel) top() View {
	return m.stack[len(m.stack)-1]
}

// updateTop sends msg to the active view only.
func (m *appModel) updateTop(msg tea.Msg) tea.Cmd {
	updated, cmd := m.top().Update(msg)
	m.stack[len(m.stack)-1] = updated.(View)
	return cmd
}

// broadcast sends msg to every view, bottom first.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.stack))
	for i, v := range m.stack {
		updated, cmd := v.Update(msg)
		m.stack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *appModel) pop() {
	if len(m.stack) > 1 {
		m.stack = m.stack[:len(m.stack)-1]
	}
}

func (m appModel) Init() tea.Cmd {
	return m.top().Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		// Views under a wizard must fit when they resurface.
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.stack = append(m.stack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.pop()
		return m, nil

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case statusMsg:
		m.state.SetStatus(msg.text, msg.isError)
		return m, nil

	case wizardCompleteMsg:
		m.pop()
		return m, tea.Batch(msg.nextCmd, refreshCmd())
	}

	return m, m.updateTop(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A focused search box or an open wizard takes q and esc as input.
	if viewCapturesInput(m.top()) {
		return m, m.updateTop(msg)
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit
	case msg.Type == tea.KeyEsc:
		m.pop()
		return m, nil
	}
	return m, m.updateTop(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	out := m.renderHeader() + "\n" + m.top().View() + "\n" + m.renderStatusBar()

	// Pad to the terminal height so the alt-screen renderer never leaves
	// lines from a taller previous frame behind.
	if lines := strings.Count(out, "\n") + 1; lines < m.state.Height {
		out += strings.Repeat("\n", m.state.Height-lines)
	}
	return out
}

func (m *appModel) rule() string {
	return lipgloss.NewStyle().Foreground(formatter.ColorDim).Render(strings.Repeat("─", max(m.state.Width, 20)))
}

// renderHeader shows the breadcrumb, the active concentration and how
// many courses are planned.
func (m *appModel) renderHeader() string {
	crumbs := make([]string, 0, len(m.stack))
	for _, v := range m.stack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}

	sched := m.state.Planner.View()
	header := formatter.StylePurple.Render("courseplan") +
		" " + formatter.Dim("› "+strings.Join(crumbs, " › ")) +
		"  " + formatter.Dim("[") + formatter.StyleGreen.Render(sched.ConcentrationLabel()) + formatter.Dim("]") +
		"  " + formatter.Dim(formatter.Plural(sched.AssignedCount, "course", "courses")+" planned")
	return header + "\n" + m.rule()
}

// renderStatusBar shows the last planner result, already styled by the
// formatter, over the key hints of the active view.
func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.top().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if len(m.stack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	return m.rule() + "\n" + m.state.Status + "\n" + strings.Join(hints, "  ")
}
