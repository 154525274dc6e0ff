package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Tag is a normalized category label carried by a course.
type Tag string

const (
	TagArea   Tag = "AREA"
	TagEcon   Tag = "ECON"
	TagTech   Tag = "TECH"
	TagIntel  Tag = "INTEL"
	TagIS     Tag = "IS"
	TagMilOps Tag = "MILOPS"
	TagTSV    Tag = "TSV"
	TagUSNP   Tag = "USNP"
	TagOther  Tag = "OTHER"
	TagCore   Tag = "CORE"
)

// FilterTags is the ordered set of tags offered as catalog filters.
var FilterTags = []Tag{TagArea, TagEcon, TagTech, TagIntel, TagIS, TagMilOps, TagTSV, TagUSNP, TagCore}

// NormalizeTag upper-cases a raw label and strips its spaces, so that
// "Mil Ops", "mil ops" and "MILOPS" all compare equal.
func NormalizeTag(raw string) Tag {
	return Tag(strings.ToUpper(strings.Join(strings.Fields(raw), "")))
}

type Concentration string

const (
	ConcentrationTech   Concentration = "TECH"
	ConcentrationIntel  Concentration = "INTEL"
	ConcentrationIS     Concentration = "IS"
	ConcentrationMilOps Concentration = "MILOPS"
	ConcentrationTSV    Concentration = "TSV"
	ConcentrationUSNP   Concentration = "USNP"
)

// Concentrations is the canonical, display-ordered set of concentrations.
var Concentrations = []Concentration{
	ConcentrationTech, ConcentrationIntel, ConcentrationIS,
	ConcentrationMilOps, ConcentrationTSV, ConcentrationUSNP,
}

var ErrUnknownConcentration = errors.New("unknown concentration")

// ParseConcentration accepts any casing or spacing of a concentration name.
func ParseConcentration(raw string) (Concentration, error) {
	tag := NormalizeTag(raw)
	for _, c := range Concentrations {
		if Tag(c) == tag {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownConcentration, raw, joinConcentrations())
}

// Tag returns the course tag that marks membership in this concentration.
func (c Concentration) Tag() Tag { return Tag(c) }

// Label returns the human display name, e.g. "Mil Ops".
func (c Concentration) Label() string {
	switch c {
	case ConcentrationTech:
		return "Tech"
	case ConcentrationIntel:
		return "Intel"
	case ConcentrationMilOps:
		return "Mil Ops"
	default:
		return string(c)
	}
}

func joinConcentrations() string {
	names := make([]string, len(Concentrations))
	for i, c := range Concentrations {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Designation selects which rule branch an assignment takes. The zero value
// is not a valid designation.
type Designation int

const (
	DesignateArea Designation = iota + 1
	DesignateTech
	DesignateEcon
	DesignateCore
	DesignateConcentrationElective
	DesignateGeneralElective
)

// Designations lists every valid designation in rule priority order.
var Designations = []Designation{
	DesignateArea, DesignateTech, DesignateEcon, DesignateCore,
	DesignateConcentrationElective, DesignateGeneralElective,
}

func (d Designation) String() string {
	switch d {
	case DesignateArea:
		return "AREA"
	case DesignateTech:
		return "TECH"
	case DesignateEcon:
		return "ECON"
	case DesignateCore:
		return "CORE"
	case DesignateConcentrationElective:
		return "CONC"
	case DesignateGeneralElective:
		return "ELECT"
	default:
		return fmt.Sprintf("Designation(%d)", int(d))
	}
}

// Valid reports whether d is one of the known variants.
func (d Designation) Valid() bool {
	return d >= DesignateArea && d <= DesignateGeneralElective
}

// Slot returns the schedule slot a designation targets.
func (d Designation) Slot() SlotName {
	switch d {
	case DesignateArea:
		return SlotArea
	case DesignateTech:
		return SlotTech
	case DesignateEcon:
		return SlotEcon
	case DesignateCore:
		return SlotCore
	case DesignateConcentrationElective:
		return SlotConcentrationElectives
	case DesignateGeneralElective:
		return SlotGeneralElectives
	default:
		return ""
	}
}

// SlotName identifies one of the seven schedule fields.
type SlotName string

const (
	SlotArea                   SlotName = "area"
	SlotTech                   SlotName = "tech"
	SlotEcon                   SlotName = "econ"
	SlotCore                   SlotName = "core"
	SlotConcentrationElectives SlotName = "concentrationElectives"
	SlotGeneralElectives       SlotName = "generalElectives"
)

// SlotNames lists the slots in display order.
var SlotNames = []SlotName{
	SlotArea, SlotTech, SlotEcon, SlotCore,
	SlotConcentrationElectives, SlotGeneralElectives,
}

// Label returns the display title for a slot.
func (s SlotName) Label() string {
	switch s {
	case SlotArea:
		return "Area"
	case SlotTech:
		return "Tech"
	case SlotEcon:
		return "Econ"
	case SlotCore:
		return "Core"
	case SlotConcentrationElectives:
		return "Concentration Electives"
	case SlotGeneralElectives:
		return "General Electives"
	default:
		return string(s)
	}
}
