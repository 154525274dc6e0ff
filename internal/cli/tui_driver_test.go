package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/courseplan/internal/teatest"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver loads the app's catalog, starts a session, and drives a
// 120x40 planner over it.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	ctx := context.Background()
	cat, err := app.Catalog.Catalog(ctx)
	require.NoError(t, err)
	planner, err := app.NewPlanner(ctx)
	require.NoError(t, err)

	d := teatest.New(t, newAppModel(app, cat, planner), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.top().ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().stack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// CourseList returns the home view.
func (d *TestDriver) CourseList() *courseListView {
	d.T.Helper()
	v, ok := d.appModel().stack[0].(*courseListView)
	require.True(d.T, ok, "bottom view is not the course list")
	return v
}

// VisibleNumbers lists the course numbers the list currently shows.
func (d *TestDriver) VisibleNumbers() []string {
	var out []string
	for _, c := range d.CourseList().visible {
		out = append(out, c.Number)
	}
	return out
}

// Screen is the rendered view without styling.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}

// IsQuitting reports whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// CursorTo moves the list cursor onto number.
func (d *TestDriver) CursorTo(number string) {
	d.T.Helper()
	for range len(d.CourseList().visible) {
		if c, ok := d.CourseList().selected(); ok && c.Number == number {
			return
		}
		d.PressDown()
	}
	d.T.Fatalf("course %s is not in the list", number)
}
