package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCatalogLoad matches any *LoadError via errors.Is.
var ErrCatalogLoad = errors.New("catalog load failed")

// LoadError reports that the catalog source was unreachable or malformed.
// Errs holds every underlying problem.
type LoadError struct {
	Source string
	Errs   []error
}

func (e *LoadError) Error() string {
	if len(e.Errs) == 1 {
		return fmt.Sprintf("loading catalog %s: %v", e.Source, e.Errs[0])
	}
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = "  - " + err.Error()
	}
	return fmt.Sprintf("loading catalog %s: %d problems:\n%s", e.Source, len(e.Errs), strings.Join(msgs, "\n"))
}

func (e *LoadError) Unwrap() []error { return e.Errs }

func (e *LoadError) Is(target error) bool { return target == ErrCatalogLoad }

func newLoadError(source string, errs ...error) *LoadError {
	return &LoadError{Source: source, Errs: errs}
}
