package domain

import "strings"

// Course is an immutable catalog record. Tags are stored normalized.
type Course struct {
	Number string
	Name   string
	Tags   []Tag
	Notes  string
}

// HasTag reports whether the course carries t, ignoring case and spacing.
func (c Course) HasTag(t Tag) bool {
	want := NormalizeTag(string(t))
	for _, have := range c.Tags {
		if NormalizeTag(string(have)) == want {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the course carries at least one of tags.
// An empty tag list matches nothing.
func (c Course) HasAnyTag(tags []Tag) bool {
	for _, t := range tags {
		if c.HasTag(t) {
			return true
		}
	}
	return false
}

// TagStrings returns the tags as plain strings.
func (c Course) TagStrings() []string {
	out := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		out[i] = string(t)
	}
	return out
}

// SearchText is the lower-cased haystack used by free-text search:
// number, name and tags joined by spaces.
func (c Course) SearchText() string {
	parts := append([]string{c.Number, c.Name}, c.TagStrings()...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Label returns "NUMBER: Name".
func (c Course) Label() string {
	return c.Number + ": " + c.Name
}

func (c Course) clone() Course {
	out := c
	if c.Tags != nil {
		out.Tags = append([]Tag(nil), c.Tags...)
	}
	return out
}
