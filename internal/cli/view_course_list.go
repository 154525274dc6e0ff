package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// sidePanelMinWidth is the terminal width at which the schedule is
	// drawn next to the list instead of on its own view.
	sidePanelMinWidth = 110
	listNameWidth     = 34
	// Lines of list chrome: tag bar, search line, blank, footer.
	listChromeLines = 4
)

// courseListView shows the filterable catalog and drives assignment.
type courseListView struct {
	state *SharedState

	tags    []domain.Tag
	search  textinput.Model
	visible []domain.Course
	cursor  int
	offset  int
}

func newCourseListView(state *SharedState) *courseListView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "number, name or tag"
	ti.CharLimit = 64

	v := &courseListView{state: state, search: ti}
	v.refilter()
	return v
}

func (v *courseListView) ID() ViewID    { return ViewCourses }
func (v *courseListView) Title() string { return "Courses" }

// CapturesInput is true while the search box has focus.
func (v *courseListView) CapturesInput() bool { return v.search.Focused() }

func (v *courseListView) ShortHelp() []key.Binding {
	if v.search.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("1-9"), key.WithHelp("1-9", "tags")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "concentration")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "schedule")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
	}
}

func (v *courseListView) Init() tea.Cmd { return nil }

func (v *courseListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.refilter()
		return v, nil

	case tea.KeyMsg:
		if v.search.Focused() {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}

	// Cursor blink and other textinput messages.
	if v.search.Focused() {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *courseListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := msg.String(); s {
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)
	case "pgup":
		v.moveCursor(-v.pageSize())
	case "pgdown":
		v.moveCursor(v.pageSize())
	case "home", "g":
		v.moveCursor(-len(v.visible))
	case "end", "G":
		v.moveCursor(len(v.visible))
	case "/":
		return v, v.search.Focus()
	case "0":
		v.tags = nil
		v.refilter()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(s[0] - '1')
		if i < len(domain.FilterTags) {
			v.tags = catalog.ToggleTag(v.tags, domain.FilterTags[i])
			v.refilter()
		}
	case "enter":
		if course, ok := v.selected(); ok {
			return v, v.startDesignationWizard(course)
		}
	case "a":
		if course, ok := v.selected(); ok {
			return v, v.autoAssign(course)
		}
	case "c":
		return v, v.startConcentrationWizard()
	case "x":
		return v, v.startClearWizard()
	case "s":
		return v, pushView(newScheduleView(v.state))
	}
	return v, nil
}

func (v *courseListView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.search.Blur()
		v.search.SetValue("")
		v.refilter()
		return v, nil
	case tea.KeyEnter:
		v.search.Blur()
		return v, nil
	}

	before := v.search.Value()
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if v.search.Value() != before {
		v.refilter()
	}
	return v, cmd
}

// ── actions ──────────────────────────────────────────────────────────────────

func (v *courseListView) autoAssign(course domain.Course) tea.Cmd {
	resp, err := v.state.Planner.AutoAssign(context.Background(), course.Number)
	return assignStatus(resp, err)
}

func (v *courseListView) startDesignationWizard(course domain.Course) tea.Cmd {
	planner := v.state.Planner
	offered, err := planner.Offered(course.Number)
	if err != nil {
		return rejectionStatus(err)
	}

	choice := autoDesignation
	form := wizardSelectDesignation(course, offered, planner.View(), &choice)
	return startWizard(v.state, wizard{
		title:   "Add " + course.Number,
		context: formatter.Bold(course.Label()) + "  " + formatter.TagBadges(course.Tags),
		form:    form,
		done: func() tea.Cmd {
			ctx := context.Background()
			if choice == autoDesignation {
				return assignStatus(planner.AutoAssign(ctx, course.Number))
			}
			return assignStatus(planner.Assign(ctx, app.AssignRequest{
				CourseNumber: course.Number,
				Designation:  choice,
			}))
		},
	})
}

func (v *courseListView) startConcentrationWizard() tea.Cmd {
	planner := v.state.Planner
	choice := ""
	if c := planner.View().Concentration; c != nil {
		choice = string(*c)
	}

	return startWizard(v.state, wizard{
		title:   "Concentration",
		context: formatter.Dim("Current: " + planner.View().ConcentrationLabel() + ". A placed CORE course stays put."),
		form:    wizardSelectConcentration(&choice),
		done: func() tea.Cmd {
			c, err := planner.SetConcentration(context.Background(), choice)
			if err != nil {
				return rejectionStatus(err)
			}
			return statusCmd(formatter.StyleGreen.Render("✔")+" Concentration set to "+formatter.Bold(c.Label()), false)
		},
	})
}

func (v *courseListView) startClearWizard() tea.Cmd {
	planner := v.state.Planner
	n := planner.View().AssignedCount
	confirmed := false

	return startWizard(v.state, wizard{
		title:   "Clear",
		context: formatter.Dim(formatter.Plural(n, "course", "courses") + " will be removed. The concentration is kept."),
		form:    wizardConfirmClear(n, &confirmed),
		done: func() tea.Cmd {
			switch {
			case n == 0:
				return statusCmd(formatter.Dim("Schedule is already empty."), false)
			case !confirmed:
				return statusCmd(formatter.Dim("Kept the schedule."), false)
			}
			planner.Clear(context.Background())
			return changedStatus(formatter.StyleGreen.Render("✔") + " Cleared " + formatter.Plural(n, "course", "courses"))
		},
	})
}

// assignStatus turns an assignment outcome into a status line. Rejections
// are shown inline and never stop the session.
func assignStatus(resp *app.AssignResponse, err error) tea.Cmd {
	if err != nil {
		return rejectionStatus(err)
	}
	return changedStatus(formatter.FormatAssignResult(resp))
}

// ── list state ───────────────────────────────────────────────────────────────

func (v *courseListView) query() catalog.Query {
	return catalog.Query{Tags: v.tags, Text: v.search.Value()}
}

func (v *courseListView) refilter() {
	v.visible = v.state.Catalog.Collect(v.query())
	v.cursor = min(v.cursor, max(len(v.visible)-1, 0))
	v.clampOffset()
}

func (v *courseListView) selected() (domain.Course, bool) {
	if v.cursor < 0 || v.cursor >= len(v.visible) {
		return domain.Course{}, false
	}
	return v.visible[v.cursor], true
}

func (v *courseListView) moveCursor(delta int) {
	if len(v.visible) == 0 {
		return
	}
	v.cursor = min(max(v.cursor+delta, 0), len(v.visible)-1)
	v.clampOffset()
}

func (v *courseListView) pageSize() int {
	return max(v.state.ContentHeight()-listChromeLines, 1)
}

// clampOffset scrolls so the cursor row stays visible.
func (v *courseListView) clampOffset() {
	page := v.pageSize()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+page {
		v.offset = v.cursor - page + 1
	}
	v.offset = max(v.offset, 0)
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *courseListView) View() string {
	list := v.renderList()
	if v.state.Width < sidePanelMinWidth {
		return list
	}
	panel := formatter.FormatSchedule(v.state.Planner.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", panel)
}

func (v *courseListView) renderList() string {
	var b strings.Builder

	b.WriteString(v.renderTagBar() + "\n")
	if v.search.Focused() || v.search.Value() != "" {
		b.WriteString(v.search.View() + "\n")
	} else {
		b.WriteString(formatter.Dim("/ search") + "\n")
	}
	b.WriteString("\n")

	if len(v.visible) == 0 {
		b.WriteString("  " + formatter.Dim("No courses match.") + "\n")
		return b.String()
	}

	end := min(v.offset+v.pageSize(), len(v.visible))
	for i := v.offset; i < end; i++ {
		c := v.visible[i]

		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		mark := " "
		if v.state.Planner.IsAssigned(c.Number) {
			mark = formatter.StyleGreen.Render("✔")
		}

		name := formatter.Truncate(c.Name, listNameWidth)
		b.WriteString(fmt.Sprintf("%s%s %-8s %s  %s\n",
			cursor,
			mark,
			c.Number,
			nameStyle.Render(padRight(name, listNameWidth)),
			formatter.TagBadges(c.Tags),
		))
	}

	b.WriteString(formatter.Dim(fmt.Sprintf("%d of %d", len(v.visible), v.state.Catalog.Len())))
	return b.String()
}

func (v *courseListView) renderTagBar() string {
	parts := make([]string, 0, len(domain.FilterTags))
	for i, tag := range domain.FilterTags {
		label := fmt.Sprintf("%d %s", i+1, tag)
		if slices.Contains(v.tags, tag) {
			parts = append(parts, formatter.TagStyle(tag).Bold(true).Render("["+label+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
