package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Course options
type CourseOption func(*domain.Course)

func WithName(name string) CourseOption {
	return func(c *domain.Course) {
		c.Name = name
	}
}

func WithTags(tags ...domain.Tag) CourseOption {
	return func(c *domain.Course) {
		c.Tags = append([]domain.Tag{}, tags...)
	}
}

func WithNotes(notes string) CourseOption {
	return func(c *domain.Course) {
		c.Notes = notes
	}
}

// NewTestCourse returns an untagged course named after its number.
func NewTestCourse(number string, opts ...CourseOption) domain.Course {
	c := domain.Course{
		Number: number,
		Name:   "Course " + number,
		Tags:   []domain.Tag{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// SampleCourses is a small catalog covering every slot and concentration
// gate.
func SampleCourses() []domain.Course {
	return []domain.Course{
		NewTestCourse("NS3000", WithName("Regional Security"), WithTags(domain.TagArea)),
		NewTestCourse("NS3001", WithName("Middle East Politics"), WithTags(domain.TagArea, domain.TagIntel)),
		NewTestCourse("CS3600", WithName("Information Assurance"), WithTags(domain.TagTech, domain.TagIS)),
		NewTestCourse("NS3900", WithName("Economics of Security"), WithTags(domain.TagEcon), WithNotes("fall only")),
		NewTestCourse("NS3041", WithName("Intelligence Basics"), WithTags(domain.TagIntel, domain.TagCore)),
		NewTestCourse("NS3042", WithName("Intelligence Analysis"), WithTags(domain.TagIntel)),
		NewTestCourse("IS3010", WithName("Networks"), WithTags(domain.TagIS, domain.TagCore)),
		NewTestCourse("IS3020", WithName("Systems"), WithTags(domain.TagIS)),
		NewTestCourse("NS4000", WithName("Capstone")),
	}
}

// WriteCatalogFile writes courses as catalog JSON into a temp dir and
// returns the path.
func WriteCatalogFile(t *testing.T, courses []domain.Course) string {
	t.Helper()
	type record struct {
		Number string   `json:"number"`
		Name   string   `json:"name"`
		Tags   []string `json:"tags"`
		Notes  *string  `json:"notes"`
	}
	doc := struct {
		Courses []record `json:"courses"`
	}{Courses: make([]record, 0, len(courses))}
	for _, c := range courses {
		r := record{Number: c.Number, Name: c.Name, Tags: c.TagStrings()}
		if c.Notes != "" {
			notes := c.Notes
			r.Notes = &notes
		}
		doc.Courses = append(doc.Courses, r)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("encoding catalog: %v", err)
	}
	path := filepath.Join(t.TempDir(), "courses.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	return path
}
