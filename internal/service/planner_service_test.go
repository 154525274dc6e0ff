package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/engine"
	"github.com/alexanderramin/courseplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanner(t *testing.T) (PlannerService, *recordingObserver) {
	t.Helper()
	rec := &recordingObserver{}
	return NewPlannerService(sampleCatalog(t), rec), rec
}

func TestPlanner_AssignIntelCore(t *testing.T) {
	p, rec := newPlanner(t)
	ctx := context.Background()

	c, err := p.SetConcentration(ctx, "intel")
	require.NoError(t, err)
	assert.Equal(t, domain.ConcentrationIntel, c)

	resp, err := p.Assign(ctx, app.AssignRequest{CourseNumber: "NS3041", Designation: "core"})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotCore, resp.Slot)
	assert.Equal(t, domain.DesignateCore, resp.Designation)
	assert.Equal(t, "Intelligence Basics", resp.Course.Name)
	assert.Equal(t, 1, resp.Schedule.AssignedCount)
	assert.Equal(t, "Intel", resp.Schedule.ConcentrationLabel())
	assert.True(t, p.IsAssigned("NS3041"))

	ev := rec.last(t)
	assert.Equal(t, "assign", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "core", ev.Fields["slot"])
}

func TestPlanner_AssignUnknownCourse(t *testing.T) {
	p, rec := newPlanner(t)

	_, err := p.Assign(context.Background(), app.AssignRequest{CourseNumber: "XX9999", Designation: "AREA"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.False(t, rec.last(t).Success)
}

func TestPlanner_AssignRejectionIsReportedAndStateUnchanged(t *testing.T) {
	p, rec := newPlanner(t)
	ctx := context.Background()

	_, err := p.Assign(ctx, app.AssignRequest{CourseNumber: "NS3041", Designation: "CORE"})
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrNoConcentrationSelected)
	assert.True(t, p.View().IsEmpty())
	assert.Equal(t, string(engine.CodeNoConcentrationSelected), rec.last(t).Fields["rejection"])
}

func TestPlanner_AssignBadDesignationNamesCourse(t *testing.T) {
	p, _ := newPlanner(t)

	_, err := p.Assign(context.Background(), app.AssignRequest{CourseNumber: "NS3000", Designation: "HISTORY"})
	require.Error(t, err)
	rej, ok := engine.Rejection(err)
	require.True(t, ok)
	assert.Equal(t, engine.CodeUnassignableDesignation, rej.Code)
	assert.Equal(t, `cannot add NS3000: "HISTORY" is not an assignable designation`, err.Error())
}

func TestPlanner_DuplicateAcrossDesignations(t *testing.T) {
	p, _ := newPlanner(t)
	ctx := context.Background()

	_, err := p.Assign(ctx, app.AssignRequest{CourseNumber: "NS3001", Designation: "AREA"})
	require.NoError(t, err)

	_, err = p.Assign(ctx, app.AssignRequest{CourseNumber: "NS3001", Designation: "ELECT"})
	assert.ErrorIs(t, err, engine.ErrDuplicateCourse)
}

func TestPlanner_TechConcentrationElectives(t *testing.T) {
	var courses []domain.Course
	for _, n := range []string{"T1", "T2", "T3", "T4", "T5"} {
		courses = append(courses, testutil.NewTestCourse(n, testutil.WithTags(domain.TagTech)))
	}
	cat, err := catalog.New(courses)
	require.NoError(t, err)
	p := NewPlannerService(cat)
	ctx := context.Background()

	_, err = p.SetConcentration(ctx, "tech")
	require.NoError(t, err)

	for _, n := range []string{"T1", "T2", "T3"} {
		resp, err := p.Assign(ctx, app.AssignRequest{CourseNumber: n, Designation: "CONC"})
		require.NoError(t, err)
		assert.Equal(t, domain.SlotConcentrationElectives, resp.Slot)
	}

	_, err = p.Assign(ctx, app.AssignRequest{CourseNumber: "T4", Designation: "CONC"})
	require.ErrorIs(t, err, engine.ErrSlotFull)
	assert.False(t, p.IsAssigned("T4"))

	// A raw TECH still names the required slot, which is open.
	resp, err := p.Assign(ctx, app.AssignRequest{CourseNumber: "T5", Designation: "TECH"})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotTech, resp.Slot)
	assert.Equal(t, 4, p.View().AssignedCount)
}

func TestPlanner_AutoAssignCascade(t *testing.T) {
	p, rec := newPlanner(t)
	ctx := context.Background()

	resp, err := p.AutoAssign(ctx, "NS3001")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotArea, resp.Slot)

	resp, err = p.AutoAssign(ctx, "NS3000")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotGeneralElectives, resp.Slot, "area is taken so the course falls through")
	assert.Equal(t, "ELECT", rec.last(t).Fields["designation"])
}

func TestPlanner_Offered(t *testing.T) {
	p, _ := newPlanner(t)
	ctx := context.Background()

	offered, err := p.Offered("IS3010")
	require.NoError(t, err)
	assert.Equal(t, []domain.Designation{domain.DesignateGeneralElective}, offered)

	_, err = p.SetConcentration(ctx, "IS")
	require.NoError(t, err)
	offered, err = p.Offered("IS3010")
	require.NoError(t, err)
	assert.Equal(t, []domain.Designation{
		domain.DesignateCore, domain.DesignateConcentrationElective, domain.DesignateGeneralElective,
	}, offered)

	_, err = p.Offered("NOPE")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestPlanner_ClearKeepsConcentration(t *testing.T) {
	p, rec := newPlanner(t)
	ctx := context.Background()

	_, err := p.SetConcentration(ctx, "IS")
	require.NoError(t, err)
	_, err = p.Assign(ctx, app.AssignRequest{CourseNumber: "IS3020", Designation: "IS"})
	require.NoError(t, err)

	p.Clear(ctx)

	v := p.View()
	assert.True(t, v.IsEmpty())
	require.NotNil(t, v.Concentration)
	assert.Equal(t, domain.ConcentrationIS, *v.Concentration)
	assert.Equal(t, 1, rec.last(t).Fields["cleared"])
	assert.False(t, p.IsAssigned("IS3020"))
}

func TestPlanner_SetConcentrationUnknown(t *testing.T) {
	p, rec := newPlanner(t)

	_, err := p.SetConcentration(context.Background(), "astro")
	assert.True(t, errors.Is(err, domain.ErrUnknownConcentration))
	assert.False(t, rec.last(t).Success)
}

func TestPlanner_IsAssignedUnknownCourse(t *testing.T) {
	p, _ := newPlanner(t)
	assert.False(t, p.IsAssigned("NOPE"))
}
