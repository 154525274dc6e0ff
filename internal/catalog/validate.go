package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// ValidateSchema checks the catalog schema for errors before conversion.
// Returns every problem found rather than stopping at the first.
func ValidateSchema(schema *Schema) []error {
	if schema.Courses == nil {
		return []error{errors.New("courses field is required")}
	}

	var errs []error
	seen := make(map[string]int)
	for i, r := range schema.Courses {
		prefix := fmt.Sprintf("courses[%d]", i)

		number := strings.TrimSpace(r.Number)
		if number == "" {
			errs = append(errs, fmt.Errorf("%s.number is required", prefix))
		} else if first, dup := seen[number]; dup {
			errs = append(errs, fmt.Errorf("%s.number: duplicate number %q (first at courses[%d])", prefix, number, first))
		} else {
			seen[number] = i
		}

		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if r.Tags == nil {
			errs = append(errs, fmt.Errorf("%s.tags is required", prefix))
		}
		for j, t := range r.Tags {
			if domain.NormalizeTag(t) == "" {
				errs = append(errs, fmt.Errorf("%s.tags[%d]: blank tag", prefix, j))
			}
		}
	}
	return errs
}

// validateCourses applies the record rules to already-converted courses.
func validateCourses(courses []domain.Course) []error {
	records := make([]CourseRecord, len(courses))
	for i, c := range courses {
		tags := c.TagStrings()
		if c.Tags == nil {
			tags = nil
		}
		records[i] = CourseRecord{Number: c.Number, Name: c.Name, Tags: tags}
	}
	return ValidateSchema(&Schema{Courses: records})
}
