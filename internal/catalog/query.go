package catalog

import (
	"iter"
	"slices"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Query selects courses by tag and free text. The zero Query matches all.
type Query struct {
	// Tags is OR-matched: a course needs at least one of them.
	Tags []domain.Tag
	// Text is a case-insensitive substring matched against the course
	// number, name and tags joined by spaces.
	Text string
}

// Matches reports whether course satisfies q.
func (q Query) Matches(course domain.Course) bool {
	if len(q.Tags) > 0 && !course.HasAnyTag(q.Tags) {
		return false
	}
	// A blank box filters nothing; otherwise spaces are part of the needle.
	if strings.TrimSpace(q.Text) != "" && !strings.Contains(course.SearchText(), strings.ToLower(q.Text)) {
		return false
	}
	return true
}

// Search lazily yields the courses matching q in catalog order.
func (c *Catalog) Search(q Query) iter.Seq[domain.Course] {
	return c.Filter(q.Matches)
}

// Collect runs q and gathers the results.
func (c *Catalog) Collect(q Query) []domain.Course {
	return slices.Collect(c.Search(q))
}

// ToggleTag returns a copy of tags with tag added, or removed if present.
func ToggleTag(tags []domain.Tag, tag domain.Tag) []domain.Tag {
	tag = domain.NormalizeTag(string(tag))
	if i := slices.Index(tags, tag); i >= 0 {
		return slices.Delete(slices.Clone(tags), i, i+1)
	}
	return append(slices.Clone(tags), tag)
}
