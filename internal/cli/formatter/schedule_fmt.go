package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/engine"
)

// FormatSchedule renders every slot with its occupancy and courses.
func FormatSchedule(v app.ScheduleView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Concentration:"), Bold(v.ConcentrationLabel())))

	labelWidth := 0
	for _, s := range v.Slots {
		labelWidth = max(labelWidth, len(s.Label))
	}

	for _, s := range v.Slots {
		label := s.Label + strings.Repeat(" ", labelWidth-len(s.Label))
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleHeader.Render(label), RenderSlotMeter(len(s.Courses), s.Capacity)))
		if len(s.Courses) == 0 {
			b.WriteString("  " + Dim("(empty)") + "\n")
			continue
		}
		for _, c := range s.Courses {
			b.WriteString(fmt.Sprintf("  %s  %s\n", Bold(c.Number), c.Name))
		}
	}

	return RenderBox("Schedule", strings.TrimRight(b.String(), "\n"))
}

// FormatAssignResult renders a one-line confirmation of a placement.
func FormatAssignResult(resp *app.AssignResponse) string {
	return fmt.Sprintf("%s %s added to %s %s\n",
		StyleGreen.Render("✔"),
		Bold(resp.Course.Number),
		resp.Slot.Label(),
		Dim("("+DesignationLabel(resp.Designation)+")"),
	)
}

// FormatRejection renders an assignment failure. Rejections get their code;
// any other error is shown as-is.
func FormatRejection(err error) string {
	if rej, ok := engine.Rejection(err); ok {
		return fmt.Sprintf("%s %s %s\n", StyleRed.Render("✖"), rej.Error(), Dim("["+string(rej.Code)+"]"))
	}
	return fmt.Sprintf("%s %s\n", StyleRed.Render("✖"), err.Error())
}

// DesignationLabel names a designation the way tag buttons show it.
func DesignationLabel(d domain.Designation) string {
	switch d {
	case domain.DesignateConcentrationElective:
		return "Concentration Elective"
	case domain.DesignateGeneralElective:
		return "General Elective"
	default:
		return d.String()
	}
}

// FormatIndexResult summarizes a CSV indexing run.
func FormatIndexResult(res *app.IndexResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Indexed %s from %s into %s\n",
		StyleGreen.Render("✔"),
		Plural(res.Courses, "course", "courses"),
		res.Input,
		Bold(res.Output),
	))
	b.WriteString(FormatTagCounts(res.Tags))
	return b.String()
}

// FormatImportResult summarizes a catalog import into the store.
func FormatImportResult(res *app.ImportResult, dbPath string) string {
	return fmt.Sprintf("%s Imported %s from %s into %s\n",
		StyleGreen.Render("✔"),
		Plural(res.Courses, "course", "courses"),
		res.Source,
		Bold(dbPath),
	)
}

// IsRejection reports whether err is an assignment rejection rather than
// an operational failure.
func IsRejection(err error) bool {
	var rej *engine.AssignmentError
	return errors.As(err, &rej)
}
