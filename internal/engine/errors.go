package engine

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// RejectionCode classifies why an assignment was refused.
type RejectionCode string

const (
	CodeDuplicateCourse         RejectionCode = "DUPLICATE_COURSE"
	CodeSlotFull                RejectionCode = "SLOT_FULL"
	CodeNoConcentrationSelected RejectionCode = "NO_CONCENTRATION_SELECTED"
	CodeConcentrationMismatch   RejectionCode = "CONCENTRATION_MISMATCH"
	CodeMissingTag              RejectionCode = "MISSING_TAG"
	CodeUnassignableDesignation RejectionCode = "UNASSIGNABLE_DESIGNATION"
)

var (
	// ErrDuplicateCourse indicates the course already occupies a slot.
	ErrDuplicateCourse = errors.New("course already in schedule")

	// ErrSlotFull indicates the target slot has no remaining capacity.
	ErrSlotFull = errors.New("slot is full")

	// ErrNoConcentrationSelected indicates a concentration-gated slot was
	// targeted before any concentration was chosen.
	ErrNoConcentrationSelected = errors.New("no concentration selected")

	// ErrConcentrationMismatch indicates the course is not tagged with the
	// active concentration.
	ErrConcentrationMismatch = errors.New("course does not match active concentration")

	// ErrMissingTag indicates the course lacks the tag the slot requires.
	ErrMissingTag = errors.New("course lacks required tag")

	// ErrUnassignableDesignation indicates the designation names no slot.
	ErrUnassignableDesignation = errors.New("designation cannot be assigned")
)

var codeSentinels = map[RejectionCode]error{
	CodeDuplicateCourse:         ErrDuplicateCourse,
	CodeSlotFull:                ErrSlotFull,
	CodeNoConcentrationSelected: ErrNoConcentrationSelected,
	CodeConcentrationMismatch:   ErrConcentrationMismatch,
	CodeMissingTag:              ErrMissingTag,
	CodeUnassignableDesignation: ErrUnassignableDesignation,
}

// AssignmentError is the rejection value returned by Assign. It always
// leaves the schedule untouched.
type AssignmentError struct {
	Code         RejectionCode
	CourseNumber string
	Designation  string
	Slot         domain.SlotName // the slot involved, if any
	Tag          domain.Tag      // the tag that was missing or mismatched, if any
}

func (e *AssignmentError) Error() string {
	switch e.Code {
	case CodeDuplicateCourse:
		return fmt.Sprintf("%s is already assigned to %s", e.CourseNumber, e.Slot.Label())
	case CodeSlotFull:
		return fmt.Sprintf("cannot add %s: %s is full", e.CourseNumber, e.Slot.Label())
	case CodeNoConcentrationSelected:
		return fmt.Sprintf("cannot add %s as %s: select a concentration first", e.CourseNumber, e.Designation)
	case CodeConcentrationMismatch:
		return fmt.Sprintf("cannot add %s as %s: course is not tagged %s", e.CourseNumber, e.Designation, e.Tag)
	case CodeMissingTag:
		return fmt.Sprintf("cannot add %s as %s: course is not tagged %s", e.CourseNumber, e.Designation, e.Tag)
	case CodeUnassignableDesignation:
		if e.CourseNumber == "" {
			return fmt.Sprintf("%q is not an assignable designation", e.Designation)
		}
		return fmt.Sprintf("cannot add %s: %q is not an assignable designation", e.CourseNumber, e.Designation)
	default:
		return fmt.Sprintf("cannot add %s: %s", e.CourseNumber, e.Code)
	}
}

// Is lets errors.Is match an AssignmentError against the sentinel for its code.
func (e *AssignmentError) Is(target error) bool {
	return codeSentinels[e.Code] == target
}

// Rejection extracts the AssignmentError from err, if any.
func Rejection(err error) (*AssignmentError, bool) {
	var ae *AssignmentError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
