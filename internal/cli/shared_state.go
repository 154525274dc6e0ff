package cli

import (
	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/service"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Catalog *catalog.Catalog
	Planner service.PlannerService

	// Last action result, shown under the content area.
	Status      string
	StatusError bool

	// Terminal dimensions
	Width  int
	Height int
}

func (s *SharedState) SetStatus(text string, isError bool) {
	s.Status = text
	s.StatusError = isError
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (3 lines: separator + status + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
