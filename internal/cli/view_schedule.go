package cli

import (
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// scheduleView shows the full schedule in a scrollable viewport.
type scheduleView struct {
	state *SharedState
	vp    viewport.Model
}

func newScheduleView(state *SharedState) *scheduleView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.KeyMap = scheduleViewportKeyMap()
	return &scheduleView{state: state, vp: vp}
}

func (v *scheduleView) ID() ViewID    { return ViewSchedule }
func (v *scheduleView) Title() string { return "Schedule" }

func (v *scheduleView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "courses")),
	}
}

func (v *scheduleView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *scheduleView) reload() {
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(formatter.FormatSchedule(v.state.Planner.View()))
}

func (v *scheduleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg, tea.WindowSizeMsg:
		v.reload()
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "s" {
			return v, popView()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *scheduleView) View() string {
	return v.vp.View()
}

// scheduleViewportKeyMap leaves letter keys free for global shortcuts.
func scheduleViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
