package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/engine"
)

// ErrCourseNotFound is returned when a course number is not in the catalog.
var ErrCourseNotFound = errors.New("course not found")

type plannerService struct {
	catalog  *catalog.Catalog
	engine   *engine.Engine
	observer UseCaseObserver
}

// NewPlannerService starts an empty session over cat.
func NewPlannerService(cat *catalog.Catalog, observers ...UseCaseObserver) PlannerService {
	return &plannerService{
		catalog:  cat,
		engine:   engine.New(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *plannerService) SetConcentration(ctx context.Context, raw string) (c domain.Concentration, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"concentration": raw}
	defer func() { observe(ctx, s.observer, "set-concentration", startedAt, err, fields) }()

	c, err = domain.ParseConcentration(raw)
	if err != nil {
		return "", err
	}
	s.engine.SetConcentration(c)
	return c, nil
}

func (s *plannerService) Assign(ctx context.Context, req app.AssignRequest) (resp *app.AssignResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"course":      req.CourseNumber,
		"designation": req.Designation,
	}
	defer func() {
		annotateRejection(fields, err)
		observe(ctx, s.observer, "assign", startedAt, err, fields)
	}()

	course, err := s.lookup(req.CourseNumber)
	if err != nil {
		return nil, err
	}
	d, err := s.engine.Resolve(req.Designation)
	if err != nil {
		if rej, ok := engine.Rejection(err); ok {
			rej.CourseNumber = course.Number
		}
		return nil, err
	}
	slot, err := s.engine.Assign(course, d)
	if err != nil {
		return nil, err
	}
	fields["slot"] = string(slot)
	return s.response(course, d, slot), nil
}

func (s *plannerService) AutoAssign(ctx context.Context, courseNumber string) (resp *app.AssignResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"course": courseNumber}
	defer func() {
		annotateRejection(fields, err)
		observe(ctx, s.observer, "auto-assign", startedAt, err, fields)
	}()

	course, err := s.lookup(courseNumber)
	if err != nil {
		return nil, err
	}
	slot, d, err := s.engine.AutoAssign(course)
	if err != nil {
		return nil, err
	}
	fields["slot"] = string(slot)
	fields["designation"] = d.String()
	return s.response(course, d, slot), nil
}

func (s *plannerService) Clear(ctx context.Context) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"cleared": s.View().AssignedCount}
	s.engine.Clear()
	observe(ctx, s.observer, "clear", startedAt, nil, fields)
}

func (s *plannerService) IsAssigned(courseNumber string) bool {
	course, ok := s.catalog.Lookup(courseNumber)
	return ok && s.engine.IsAssigned(course)
}

func (s *plannerService) View() app.ScheduleView {
	active, ok := s.engine.ActiveConcentration()
	return app.NewScheduleView(s.engine.Schedule(), active, ok)
}

func (s *plannerService) Offered(courseNumber string) ([]domain.Designation, error) {
	course, err := s.lookup(courseNumber)
	if err != nil {
		return nil, err
	}
	return s.engine.OfferedDesignations(course), nil
}

func (s *plannerService) lookup(number string) (domain.Course, error) {
	course, ok := s.catalog.Lookup(number)
	if !ok {
		return domain.Course{}, fmt.Errorf("%w: %s", ErrCourseNotFound, number)
	}
	return course, nil
}

func (s *plannerService) response(course domain.Course, d domain.Designation, slot domain.SlotName) *app.AssignResponse {
	return &app.AssignResponse{
		Course:      course,
		Designation: d,
		Slot:        slot,
		Schedule:    s.View(),
	}
}

func annotateRejection(fields map[string]any, err error) {
	if rej, ok := engine.Rejection(err); ok {
		fields["rejection"] = string(rej.Code)
	}
}
