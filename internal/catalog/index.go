package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// masterRow is one line of the master course list spreadsheet. A non-blank
// cell in a tag column marks the course with that tag.
type masterRow struct {
	Number string `csv:"Course Number"`
	Name   string `csv:"Course Name"`
	Area   string `csv:"Area"`
	Econ   string `csv:"Econ"`
	Tech   string `csv:"Tech"`
	Intel  string `csv:"Intel"`
	IS     string `csv:"IS"`
	MilOps string `csv:"Mil Ops"`
	TSV    string `csv:"TSV"`
	USNP   string `csv:"USNP"`
	Other  string `csv:"Other"`
	Notes  string `csv:"Notes"`
}

// tagCells pairs each tag column with its cell, in column order.
func (r masterRow) tagCells() []struct {
	Tag  domain.Tag
	Cell string
} {
	return []struct {
		Tag  domain.Tag
		Cell string
	}{
		{domain.TagArea, r.Area},
		{domain.TagEcon, r.Econ},
		{domain.TagTech, r.Tech},
		{domain.TagIntel, r.Intel},
		{domain.TagIS, r.IS},
		{domain.TagMilOps, r.MilOps},
		{domain.TagTSV, r.TSV},
		{domain.TagUSNP, r.USNP},
		{domain.TagOther, r.Other},
	}
}

func (r masterRow) course() domain.Course {
	c := domain.Course{
		Number: strings.TrimSpace(r.Number),
		Name:   strings.TrimSpace(r.Name),
		Tags:   []domain.Tag{},
		Notes:  strings.TrimSpace(r.Notes),
	}
	for _, tc := range r.tagCells() {
		if strings.TrimSpace(tc.Cell) != "" {
			c.Tags = append(c.Tags, tc.Tag)
		}
	}
	return c
}

// IndexCSV converts the master course list CSV into a catalog Schema with
// its ByTag index. The CORE tag has no column and must be added by hand.
func IndexCSV(r io.Reader) (*Schema, error) {
	var rows []masterRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading course list: %w", err)
	}

	courses := make([]domain.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.course())
	}
	if errs := validateCourses(courses); len(errs) > 0 {
		return nil, newLoadError("course list", errs...)
	}
	return BuildSchema(courses), nil
}

// ExportCSV writes courses back out in the master course list layout. Tags
// without a column, such as CORE, are dropped.
func ExportCSV(w io.Writer, courses []domain.Course) error {
	rows := make([]masterRow, 0, len(courses))
	for _, c := range courses {
		row := masterRow{Number: c.Number, Name: c.Name, Notes: c.Notes}
		mark := func(t domain.Tag) string {
			if c.HasTag(t) {
				return "x"
			}
			return ""
		}
		row.Area = mark(domain.TagArea)
		row.Econ = mark(domain.TagEcon)
		row.Tech = mark(domain.TagTech)
		row.Intel = mark(domain.TagIntel)
		row.IS = mark(domain.TagIS)
		row.MilOps = mark(domain.TagMilOps)
		row.TSV = mark(domain.TagTSV)
		row.USNP = mark(domain.TagUSNP)
		row.Other = mark(domain.TagOther)
		rows = append(rows, row)
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing course list: %w", err)
	}
	return nil
}
