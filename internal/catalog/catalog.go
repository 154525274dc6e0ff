// Package catalog loads the static course list and answers read-only queries
// over it. A Catalog is immutable once built.
package catalog

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"os"
	"slices"
	"sort"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Catalog is an immutable, ordered set of courses keyed by number.
type Catalog struct {
	courses  []domain.Course
	byNumber map[string]int
	byTag    map[domain.Tag][]int
}

// New builds a catalog from courses, applying the same record validation as
// Parse. The input slice is copied.
func New(courses []domain.Course) (*Catalog, error) {
	if errs := validateCourses(courses); len(errs) > 0 {
		return nil, newLoadError("records", errs...)
	}
	return build(courses), nil
}

func build(courses []domain.Course) *Catalog {
	c := &Catalog{
		courses:  make([]domain.Course, len(courses)),
		byNumber: make(map[string]int, len(courses)),
		byTag:    make(map[domain.Tag][]int),
	}
	for i, course := range courses {
		course.Tags = slices.Clone(course.Tags)
		c.courses[i] = course
		c.byNumber[course.Number] = i
		for _, t := range course.Tags {
			t = domain.NormalizeTag(string(t))
			c.byTag[t] = append(c.byTag[t], i)
		}
	}
	return c
}

// Parse decodes, validates and converts catalog JSON.
func Parse(r io.Reader) (*Catalog, error) {
	return parse("input", r)
}

func parse(source string, r io.Reader) (*Catalog, error) {
	schema, err := DecodeSchema(r)
	if err != nil {
		return nil, newLoadError(source, err)
	}
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, newLoadError(source, errs...)
	}
	return build(convertRecords(schema.Courses)), nil
}

// LoadFile reads and parses a catalog JSON file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newLoadError(path, err)
	}
	defer f.Close()
	return parse(path, f)
}

// LoadURL fetches catalog JSON with a single GET. There is no retry; the
// caller bounds the request through ctx.
func LoadURL(ctx context.Context, client *http.Client, url string) (*Catalog, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newLoadError(url, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, newLoadError(url, fmt.Errorf("fetching catalog: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newLoadError(url, fmt.Errorf("fetching catalog: unexpected status %d", resp.StatusCode))
	}
	return parse(url, resp.Body)
}

// Len returns the number of courses.
func (c *Catalog) Len() int { return len(c.courses) }

// All returns a copy of every course in catalog order.
func (c *Catalog) All() []domain.Course {
	return append([]domain.Course(nil), c.courses...)
}

// Lookup returns the course with the given number.
func (c *Catalog) Lookup(number string) (domain.Course, bool) {
	i, ok := c.byNumber[number]
	if !ok {
		return domain.Course{}, false
	}
	return c.courses[i], true
}

// Filter yields, lazily and in catalog order, the courses for which pred
// returns true.
func (c *Catalog) Filter(pred func(domain.Course) bool) iter.Seq[domain.Course] {
	return func(yield func(domain.Course) bool) {
		for _, course := range c.courses {
			if pred != nil && !pred(course) {
				continue
			}
			if !yield(course) {
				return
			}
		}
	}
}

// ByTag returns the courses carrying tag, in catalog order.
func (c *Catalog) ByTag(tag domain.Tag) []domain.Course {
	idx := c.byTag[domain.NormalizeTag(string(tag))]
	out := make([]domain.Course, len(idx))
	for i, j := range idx {
		out[i] = c.courses[j]
	}
	return out
}

// Tags returns the distinct tags present in the catalog, sorted.
func (c *Catalog) Tags() []domain.Tag {
	tags := make([]domain.Tag, 0, len(c.byTag))
	for t := range c.byTag {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Schema renders the catalog back into its file format, ByTag included.
func (c *Catalog) Schema() *Schema {
	return BuildSchema(c.courses)
}
