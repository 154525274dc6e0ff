package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// planStep is one assignment requested on the command line. An empty
// Designation asks for auto-assignment.
type planStep struct {
	Course      string
	Designation string
}

func (s planStep) String() string {
	if s.Designation == "" {
		return s.Course
	}
	return s.Course + ":" + s.Designation
}

// stepFlag appends to a step list shared by --assign and --auto, so steps
// run in the order they were given.
type stepFlag struct {
	steps *[]planStep
	auto  bool
}

var _ pflag.Value = (*stepFlag)(nil)

func (f *stepFlag) String() string {
	if f.steps == nil {
		return ""
	}
	var parts []string
	for _, s := range *f.steps {
		if (s.Designation == "") == f.auto {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, ",")
}

func (f *stepFlag) Set(raw string) error {
	raw = strings.TrimSpace(raw)
	if f.auto {
		if raw == "" {
			return errors.New("course number is required")
		}
		*f.steps = append(*f.steps, planStep{Course: raw})
		return nil
	}
	number, tag, ok := strings.Cut(raw, ":")
	number, tag = strings.TrimSpace(number), strings.TrimSpace(tag)
	if !ok || number == "" || tag == "" {
		return fmt.Errorf("expected NUMBER:TAG, got %q", raw)
	}
	*f.steps = append(*f.steps, planStep{Course: number, Designation: tag})
	return nil
}

func (f *stepFlag) Type() string {
	if f.auto {
		return "number"
	}
	return "number:tag"
}

// addStepFlags registers --assign and --auto against one ordered step list.
func addStepFlags(fs *pflag.FlagSet, steps *[]planStep) {
	fs.VarP(&stepFlag{steps: steps}, "assign", "a", "Assign a course under a tag, e.g. NS3041:INTEL (repeatable)")
	fs.Var(&stepFlag{steps: steps, auto: true}, "auto", "Auto-assign a course to its best open slot (repeatable)")
}

// addQueryFlags registers the catalog filter flags.
func addQueryFlags(fs *pflag.FlagSet, tags *[]string, text *string) {
	fs.StringArrayVarP(tags, "tag", "t", nil, "Only courses carrying this tag (repeatable, any tag matches)")
	fs.StringVarP(text, "query", "q", "", "Text matched against course number, name and tags")
}

func buildQuery(tags []string, text string) catalog.Query {
	q := catalog.Query{Text: text}
	for _, t := range tags {
		if tag := domain.NormalizeTag(t); tag != "" {
			q.Tags = append(q.Tags, tag)
		}
	}
	return q
}

// loadCatalog loads the session catalog, behind a spinner on a terminal.
func loadCatalog(cmd *cobra.Command, app *App) (*catalog.Catalog, error) {
	if !app.interactive() {
		return app.Catalog.Catalog(cmd.Context())
	}
	stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Loading catalog from "+app.Source)
	defer stop()
	return app.Catalog.Catalog(cmd.Context())
}
