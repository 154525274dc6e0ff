package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Schema is the top-level JSON structure of an indexed course catalog.
type Schema struct {
	Courses []CourseRecord         `json:"courses"`
	ByTag   map[string][]IndexEntry `json:"byTag,omitempty"`
}

// CourseRecord is one course in the catalog file. Tags is nil when the field
// is absent, which is a validation error; an empty list is allowed.
type CourseRecord struct {
	Number string   `json:"number"`
	Name   string   `json:"name"`
	Tags   []string `json:"tags"`
	Notes  *string  `json:"notes"`
}

// IndexEntry is a course summary listed under each of its tags in ByTag.
type IndexEntry struct {
	Number string   `json:"number"`
	Name   string   `json:"name"`
	Tags   []string `json:"tags"`
}

// DecodeSchema parses catalog JSON without validating it.
func DecodeSchema(r io.Reader) (*Schema, error) {
	var schema Schema
	if err := json.NewDecoder(r).Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &schema, nil
}

// WriteSchema writes schema as indented JSON.
func WriteSchema(w io.Writer, schema *Schema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schema); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return nil
}

// BuildSchema produces a Schema, including the ByTag index, from courses.
func BuildSchema(courses []domain.Course) *Schema {
	schema := &Schema{
		Courses: make([]CourseRecord, 0, len(courses)),
		ByTag:   make(map[string][]IndexEntry),
	}
	for _, c := range courses {
		tags := c.TagStrings()
		rec := CourseRecord{Number: c.Number, Name: c.Name, Tags: tags}
		if c.Notes != "" {
			notes := c.Notes
			rec.Notes = &notes
		}
		schema.Courses = append(schema.Courses, rec)
		for _, t := range tags {
			schema.ByTag[t] = append(schema.ByTag[t], IndexEntry{Number: c.Number, Name: c.Name, Tags: tags})
		}
	}
	return schema
}

// TagCounts returns the number of courses per tag, sorted by tag.
func (s *Schema) TagCounts() []TagCount {
	counts := make([]TagCount, 0, len(s.ByTag))
	for tag, entries := range s.ByTag {
		counts = append(counts, TagCount{Tag: domain.Tag(tag), Count: len(entries)})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Tag < counts[j].Tag })
	return counts
}

// TagCount pairs a tag with how many courses carry it.
type TagCount struct {
	Tag   domain.Tag
	Count int
}

// convertRecords maps validated records onto domain courses, normalizing tags.
func convertRecords(records []CourseRecord) []domain.Course {
	courses := make([]domain.Course, 0, len(records))
	for _, r := range records {
		c := domain.Course{
			Number: strings.TrimSpace(r.Number),
			Name:   strings.TrimSpace(r.Name),
			Tags:   make([]domain.Tag, 0, len(r.Tags)),
		}
		for _, t := range r.Tags {
			c.Tags = append(c.Tags, domain.NormalizeTag(t))
		}
		if r.Notes != nil {
			c.Notes = *r.Notes
		}
		courses = append(courses, c)
	}
	return courses
}
