package app

import (
	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/domain"
)

type AssignRequest struct {
	CourseNumber string
	// Designation is the raw tag the user chose, e.g. "AREA", "CORE", the
	// active concentration, or "ELECT".
	Designation string
}

type AssignResponse struct {
	Course      domain.Course
	Designation domain.Designation
	Slot        domain.SlotName
	Schedule    ScheduleView
}

// SlotView is one slot of the schedule as the presentation layer shows it.
type SlotView struct {
	Slot     domain.SlotName
	Label    string
	Courses  []domain.Course
	Capacity int
}

func (v SlotView) Full() bool { return len(v.Courses) >= v.Capacity }

// ScheduleView is a read-only snapshot of the session.
type ScheduleView struct {
	Concentration *domain.Concentration
	Slots         []SlotView
	AssignedCount int
}

// NewScheduleView snapshots s with slots in display order.
func NewScheduleView(s domain.Schedule, active domain.Concentration, ok bool) ScheduleView {
	v := ScheduleView{Slots: make([]SlotView, 0, len(domain.SlotNames))}
	if ok {
		c := active
		v.Concentration = &c
	}
	for _, slot := range domain.SlotNames {
		courses := s.InSlot(slot)
		v.Slots = append(v.Slots, SlotView{
			Slot:     slot,
			Label:    slot.Label(),
			Courses:  courses,
			Capacity: domain.SlotCapacity(slot),
		})
		v.AssignedCount += len(courses)
	}
	return v
}

// ConcentrationLabel returns the active concentration's label, or "None".
func (v ScheduleView) ConcentrationLabel() string {
	if v.Concentration == nil {
		return "None"
	}
	return v.Concentration.Label()
}

func (v ScheduleView) IsEmpty() bool { return v.AssignedCount == 0 }

type IndexResult struct {
	Input   string
	Output  string
	Courses int
	Tags    []catalog.TagCount
}

type ImportResult struct {
	Source  string
	Courses int
}
