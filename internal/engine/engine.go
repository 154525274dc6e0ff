// Package engine owns the schedule state and decides whether a course may be
// placed into a slot. It is the only writer of domain.Schedule.
package engine

import (
	"github.com/alexanderramin/courseplan/internal/domain"
)

// Engine holds one planning session: the schedule and the active
// concentration. It is not safe for concurrent use; callers dispatch events
// to it one at a time.
type Engine struct {
	schedule      domain.Schedule
	concentration *domain.Concentration
}

// New returns an engine with an empty schedule and no concentration.
func New() *Engine {
	return &Engine{}
}

// SetConcentration changes the active concentration. Courses already placed
// in core or the concentration electives are not re-checked.
func (e *Engine) SetConcentration(c domain.Concentration) {
	e.concentration = &c
}

// ActiveConcentration returns the active concentration and whether one is set.
func (e *Engine) ActiveConcentration() (domain.Concentration, bool) {
	if e.concentration == nil {
		return "", false
	}
	return *e.concentration, true
}

// Schedule returns a deep copy of the current schedule.
func (e *Engine) Schedule() domain.Schedule {
	return e.schedule.Clone()
}

// IsAssigned reports whether the course number occupies any slot.
func (e *Engine) IsAssigned(course domain.Course) bool {
	return e.schedule.Contains(course.Number)
}

// Clear resets all seven fields at once.
func (e *Engine) Clear() {
	e.schedule = domain.Schedule{}
}

// Assign places course according to designation and returns the slot it now
// occupies. Rules are evaluated in a fixed order: the duplicate check is
// global and runs first, then the designation selects exactly one branch.
// A rejection is returned as *AssignmentError and never mutates state.
func (e *Engine) Assign(course domain.Course, d domain.Designation) (domain.SlotName, error) {
	if err := e.Check(course, d); err != nil {
		return "", err
	}
	return e.place(course, d), nil
}

// Check evaluates every rule for (course, d) without mutating state. It
// returns the error Assign would return, or nil if Assign would succeed.
func (e *Engine) Check(course domain.Course, d domain.Designation) error {
	if slot, ok := e.schedule.Locate(course.Number); ok {
		return e.reject(CodeDuplicateCourse, course, d, func(ae *AssignmentError) { ae.Slot = slot })
	}

	switch d {
	case domain.DesignateArea, domain.DesignateTech, domain.DesignateEcon:
		return e.checkSingleton(course, d, requiredTag(d))

	case domain.DesignateCore:
		if err := e.requireConcentration(course, d); err != nil {
			return err
		}
		return e.checkSingleton(course, d, domain.TagCore)

	case domain.DesignateConcentrationElective:
		if err := e.requireConcentration(course, d); err != nil {
			return err
		}
		return e.checkCapacity(course, d, len(e.schedule.ConcentrationElectives), domain.MaxConcentrationElectives)

	case domain.DesignateGeneralElective:
		return e.checkCapacity(course, d, len(e.schedule.GeneralElectives), domain.MaxGeneralElectives)

	default:
		return e.reject(CodeUnassignableDesignation, course, d)
	}
}

// requireConcentration enforces the concentration gates shared by the CORE
// and concentration-elective branches.
func (e *Engine) requireConcentration(course domain.Course, d domain.Designation) error {
	active, ok := e.ActiveConcentration()
	if !ok {
		return e.reject(CodeNoConcentrationSelected, course, d)
	}
	if !course.HasTag(active.Tag()) {
		return e.reject(CodeConcentrationMismatch, course, d, func(ae *AssignmentError) { ae.Tag = active.Tag() })
	}
	return nil
}

func (e *Engine) checkSingleton(course domain.Course, d domain.Designation, tag domain.Tag) error {
	if !course.HasTag(tag) {
		return e.reject(CodeMissingTag, course, d, func(ae *AssignmentError) { ae.Tag = tag })
	}
	if *e.schedule.Singleton(d.Slot()) != nil {
		return e.reject(CodeSlotFull, course, d)
	}
	return nil
}

func (e *Engine) checkCapacity(course domain.Course, d domain.Designation, used, capacity int) error {
	if used >= capacity {
		return e.reject(CodeSlotFull, course, d)
	}
	return nil
}

// place mutates the schedule; callers must have run Check first.
func (e *Engine) place(course domain.Course, d domain.Designation) domain.SlotName {
	slot := d.Slot()
	placed := domain.Course{
		Number: course.Number,
		Name:   course.Name,
		Tags:   append([]domain.Tag(nil), course.Tags...),
		Notes:  course.Notes,
	}
	switch slot {
	case domain.SlotConcentrationElectives:
		e.schedule.ConcentrationElectives = append(e.schedule.ConcentrationElectives, placed)
	case domain.SlotGeneralElectives:
		e.schedule.GeneralElectives = append(e.schedule.GeneralElectives, placed)
	default:
		*e.schedule.Singleton(slot) = &placed
	}
	return slot
}

func (e *Engine) reject(code RejectionCode, course domain.Course, d domain.Designation, opts ...func(*AssignmentError)) *AssignmentError {
	ae := &AssignmentError{
		Code:         code,
		CourseNumber: course.Number,
		Designation:  d.String(),
		Slot:         d.Slot(),
	}
	for _, opt := range opts {
		opt(ae)
	}
	return ae
}

func requiredTag(d domain.Designation) domain.Tag {
	switch d {
	case domain.DesignateArea:
		return domain.TagArea
	case domain.DesignateTech:
		return domain.TagTech
	case domain.DesignateEcon:
		return domain.TagEcon
	case domain.DesignateCore:
		return domain.TagCore
	default:
		return ""
	}
}
