package domain

const (
	MaxConcentrationElectives = 3
	MaxGeneralElectives       = 3
)

// Schedule holds the seven curriculum fields. The engine is its only writer;
// everyone else reads a Clone.
type Schedule struct {
	Area *Course
	Tech *Course
	Econ *Course
	Core *Course

	ConcentrationElectives []Course
	GeneralElectives       []Course
}

// SlotOccupancy is a count/capacity pair for one slot.
type SlotOccupancy struct {
	Slot     SlotName
	Used     int
	Capacity int
}

// Full reports whether no more courses fit in the slot.
func (o SlotOccupancy) Full() bool { return o.Used >= o.Capacity }

// Singleton returns the pointer field for a single-course slot, or nil for
// the bounded-list slots.
func (s *Schedule) Singleton(slot SlotName) **Course {
	switch slot {
	case SlotArea:
		return &s.Area
	case SlotTech:
		return &s.Tech
	case SlotEcon:
		return &s.Econ
	case SlotCore:
		return &s.Core
	default:
		return nil
	}
}

// Locate returns the slot holding the course with the given number.
func (s Schedule) Locate(number string) (SlotName, bool) {
	for _, slot := range []SlotName{SlotArea, SlotTech, SlotEcon, SlotCore} {
		if c := *s.Singleton(slot); c != nil && c.Number == number {
			return slot, true
		}
	}
	for _, c := range s.ConcentrationElectives {
		if c.Number == number {
			return SlotConcentrationElectives, true
		}
	}
	for _, c := range s.GeneralElectives {
		if c.Number == number {
			return SlotGeneralElectives, true
		}
	}
	return "", false
}

// Contains reports whether the course number occupies any slot.
func (s Schedule) Contains(number string) bool {
	_, ok := s.Locate(number)
	return ok
}

// IsEmpty reports whether all seven fields are empty.
func (s Schedule) IsEmpty() bool {
	return s.Area == nil && s.Tech == nil && s.Econ == nil && s.Core == nil &&
		len(s.ConcentrationElectives) == 0 && len(s.GeneralElectives) == 0
}

// Assigned returns every placed course in slot display order.
func (s Schedule) Assigned() []Course {
	var out []Course
	for _, slot := range []SlotName{SlotArea, SlotTech, SlotEcon, SlotCore} {
		if c := *s.Singleton(slot); c != nil {
			out = append(out, *c)
		}
	}
	out = append(out, s.ConcentrationElectives...)
	out = append(out, s.GeneralElectives...)
	return out
}

// InSlot returns the courses currently held by slot.
func (s Schedule) InSlot(slot SlotName) []Course {
	switch slot {
	case SlotConcentrationElectives:
		return s.ConcentrationElectives
	case SlotGeneralElectives:
		return s.GeneralElectives
	}
	if p := s.Singleton(slot); p != nil && *p != nil {
		return []Course{**p}
	}
	return nil
}

// Occupancy reports used/capacity for every slot in display order.
func (s Schedule) Occupancy() []SlotOccupancy {
	out := make([]SlotOccupancy, 0, len(SlotNames))
	for _, slot := range SlotNames {
		out = append(out, SlotOccupancy{Slot: slot, Used: len(s.InSlot(slot)), Capacity: SlotCapacity(slot)})
	}
	return out
}

// SlotCapacity returns how many courses a slot can hold.
func SlotCapacity(slot SlotName) int {
	switch slot {
	case SlotConcentrationElectives:
		return MaxConcentrationElectives
	case SlotGeneralElectives:
		return MaxGeneralElectives
	case SlotArea, SlotTech, SlotEcon, SlotCore:
		return 1
	default:
		return 0
	}
}

// Clone returns a deep copy that shares no memory with s.
func (s Schedule) Clone() Schedule {
	out := Schedule{
		Area: clonePtr(s.Area),
		Tech: clonePtr(s.Tech),
		Econ: clonePtr(s.Econ),
		Core: clonePtr(s.Core),
	}
	out.ConcentrationElectives = cloneList(s.ConcentrationElectives)
	out.GeneralElectives = cloneList(s.GeneralElectives)
	return out
}

func clonePtr(c *Course) *Course {
	if c == nil {
		return nil
	}
	cp := c.clone()
	return &cp
}

func cloneList(in []Course) []Course {
	if len(in) == 0 {
		return nil
	}
	out := make([]Course, len(in))
	for i, c := range in {
		out[i] = c.clone()
	}
	return out
}
