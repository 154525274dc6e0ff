package cli

import (
	"fmt"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// autoDesignation is the designation picker value for auto-assignment.
const autoDesignation = ""

// courseplanHuhTheme returns a huh theme using the formatter palette.
func courseplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newWizardForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(courseplanHuhTheme()).
		WithShowHelp(false)
}

// wizardSelectConcentration creates a form choosing the session's
// concentration. result starts at the current choice, if any.
func wizardSelectConcentration(result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.Concentrations))
	for _, c := range domain.Concentrations {
		options = append(options, huh.NewOption(c.Label(), string(c)))
	}

	return newWizardForm(
		huh.NewSelect[string]().
			Title("Which concentration?").
			Description("Concentration electives and the Core slot follow this choice.").
			Options(options...).
			Value(result),
	)
}

// wizardSelectDesignation creates a form choosing how to count course. The
// first option auto-assigns; the rest are the designations the course
// qualifies for, with the target slot's occupancy.
func wizardSelectDesignation(course domain.Course, offered []domain.Designation, sched app.ScheduleView, result *string) *huh.Form {
	if len(offered) == 0 {
		return nil
	}

	used := make(map[domain.SlotName]app.SlotView, len(sched.Slots))
	for _, s := range sched.Slots {
		used[s.Slot] = s
	}

	options := make([]huh.Option[string], 0, len(offered)+1)
	options = append(options, huh.NewOption("Auto (best open slot)", autoDesignation))
	for _, d := range offered {
		label := formatter.DesignationLabel(d)
		if s, ok := used[d.Slot()]; ok {
			label = fmt.Sprintf("%s  %d/%d", label, len(s.Courses), s.Capacity)
		}
		options = append(options, huh.NewOption(label, d.String()))
	}

	return newWizardForm(
		huh.NewSelect[string]().
			Title("Add "+course.Number+" as").
			Description(course.Name).
			Options(options...).
			Value(result),
	)
}

// wizardConfirmClear asks before emptying every slot.
func wizardConfirmClear(assigned int, result *bool) *huh.Form {
	if assigned == 0 {
		return nil
	}
	return newWizardForm(
		huh.NewConfirm().
			Title("Clear the schedule?").
			Description(formatter.Plural(assigned, "course", "courses")+" will be removed. The concentration is kept.").
			Affirmative("Clear").
			Negative("Keep").
			Value(result),
	)
}
