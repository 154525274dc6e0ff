package engine

import (
	"github.com/alexanderramin/courseplan/internal/domain"
)

// ResolveDesignation maps a raw tag string chosen in the presentation layer
// to a Designation. A raw value equal to the active concentration selects the
// concentration-elective branch, except TECH, which always names the required
// TECH slot; use CONC to route a TECH course into the concentration electives.
// Pass an empty active concentration when none is selected.
func ResolveDesignation(raw string, active domain.Concentration) (domain.Designation, error) {
	tag := domain.NormalizeTag(raw)
	switch tag {
	case domain.TagArea:
		return domain.DesignateArea, nil
	case domain.TagTech:
		return domain.DesignateTech, nil
	case domain.TagEcon:
		return domain.DesignateEcon, nil
	case domain.TagCore:
		return domain.DesignateCore, nil
	case "ELECT", "ELECTIVE":
		return domain.DesignateGeneralElective, nil
	case "CONC", "CONCENTRATION":
		return domain.DesignateConcentrationElective, nil
	}
	if active != "" && tag == active.Tag() {
		return domain.DesignateConcentrationElective, nil
	}
	return 0, &AssignmentError{Code: CodeUnassignableDesignation, Designation: raw}
}

// Resolve is ResolveDesignation against the engine's active concentration.
func (e *Engine) Resolve(raw string) (domain.Designation, error) {
	active, _ := e.ActiveConcentration()
	return ResolveDesignation(raw, active)
}

// OfferedDesignations returns the designations whose tag requirements the
// course satisfies under the active concentration, in rule order. It ignores
// occupancy; the general elective is always offered.
func (e *Engine) OfferedDesignations(course domain.Course) []domain.Designation {
	var out []domain.Designation
	for _, d := range []domain.Designation{domain.DesignateArea, domain.DesignateTech, domain.DesignateEcon} {
		if course.HasTag(requiredTag(d)) {
			out = append(out, d)
		}
	}
	if active, ok := e.ActiveConcentration(); ok && course.HasTag(active.Tag()) {
		if course.HasTag(domain.TagCore) {
			out = append(out, domain.DesignateCore)
		}
		out = append(out, domain.DesignateConcentrationElective)
	}
	return append(out, domain.DesignateGeneralElective)
}

// AutoAssign tries each designation in rule priority order and keeps the
// first that succeeds, so a course lands in the most specific open slot it
// qualifies for and falls back to a general elective. The duplicate check
// still runs first. When nothing fits, the last rejection is returned.
func (e *Engine) AutoAssign(course domain.Course) (domain.SlotName, domain.Designation, error) {
	var lastErr error
	for _, d := range domain.Designations {
		err := e.Check(course, d)
		if err == nil {
			return e.place(course, d), d, nil
		}
		if ae, ok := Rejection(err); ok && ae.Code == CodeDuplicateCourse {
			return "", d, err
		}
		lastErr = err
	}
	return "", domain.DesignateGeneralElective, lastErr
}
