package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/domain"
)

const courseNameWidth = 48

// FormatCourseTable renders courses as a table. assigned, when non-nil,
// marks courses already in the schedule.
func FormatCourseTable(courses []domain.Course, assigned func(number string) bool) string {
	if len(courses) == 0 {
		return Dim("No courses match.") + "\n"
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		mark := " "
		if assigned != nil && assigned(c.Number) {
			mark = StyleGreen.Render("✔")
		}
		rows = append(rows, []string{
			mark,
			Bold(c.Number),
			Truncate(c.Name, courseNameWidth),
			TagBadges(c.Tags),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"", "NUMBER", "NAME", "TAGS"}, rows))
	b.WriteString(Dim(Plural(len(courses), "course", "courses")) + "\n")
	return b.String()
}

// FormatCourseDetail renders one course with its notes.
func FormatCourseDetail(c domain.Course) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(c.Number), c.Name))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Tags:"), TagBadges(c.Tags)))
	if c.Notes != "" {
		b.WriteString(Dim("Notes:") + "\n")
		b.WriteString(indent(wrapText(c.Notes, 60), 2) + "\n")
	}
	return b.String()
}

// FormatTagCounts renders how many courses carry each tag.
func FormatTagCounts(counts []catalog.TagCount) string {
	if len(counts) == 0 {
		return Dim("No tags.") + "\n"
	}
	rows := make([][]string, len(counts))
	for i, tc := range counts {
		rows[i] = []string{TagStyle(tc.Tag).Render(string(tc.Tag)), fmt.Sprintf("%d", tc.Count)}
	}
	return RenderTable([]string{"TAG", "COURSES"}, rows)
}
