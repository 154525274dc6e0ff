package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/repository"
	"github.com/alexanderramin/courseplan/internal/service"
	"github.com/alexanderramin/courseplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App over the sample catalog and an in-memory store.
func testApp(t *testing.T) *App {
	t.Helper()
	return testAppWith(t, testutil.SampleCourses())
}

func testAppWith(t *testing.T, courses []domain.Course) *App {
	t.Helper()
	cat, err := catalog.New(courses)
	require.NoError(t, err)

	load := func(context.Context) (*catalog.Catalog, error) { return cat, nil }
	return &App{
		Catalog: service.NewCatalogService(load, testutil.NewTestUoW(testutil.NewTestDB(t))),
		Source:  "sample",
		DBPath:  ":memory:",
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// --- root ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "courseplan")
	assert.Contains(t, out, "Available Commands")
	assert.Contains(t, out, "plan")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "NS3000")
	require.Error(t, err)
}

// --- courses ---

func TestCoursesCmd_ListAll(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "courses")
	require.NoError(t, err)
	assert.Contains(t, out, "NS3000")
	assert.Contains(t, out, "NS4000")
	assert.Contains(t, out, "9 courses")
}

func TestCoursesCmd_TagFilterIsOR(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "courses", "--tag", "econ", "-t", "tech")
	require.NoError(t, err)
	assert.Contains(t, out, "NS3900")
	assert.Contains(t, out, "CS3600")
	assert.NotContains(t, out, "NS3000")
	assert.Contains(t, out, "2 courses")
}

func TestCoursesCmd_QueryAndTags(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "courses", "--tag", "is", "-q", "is30")
	require.NoError(t, err)
	assert.Contains(t, out, "IS3010")
	assert.Contains(t, out, "IS3020")
	assert.NotContains(t, out, "CS3600")
}

func TestCoursesCmd_NoMatches(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "courses", "-q", "astronomy")
	require.NoError(t, err)
	assert.Contains(t, out, "No courses match.")
}

func TestCoursesCmd_Detail(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "courses", "NS3900")
	require.NoError(t, err)
	assert.Contains(t, out, "NS3900")
	assert.Contains(t, out, "ECON")
	assert.Contains(t, out, "fall only")
}

func TestCoursesCmd_UnknownCourse(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "courses", "XX9999")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrCourseNotFound)
}

func TestCoursesCmd_CatalogLoadFailure(t *testing.T) {
	boom := &catalog.LoadError{Source: "courses.json", Errs: []error{errors.New("no such file")}}
	app := &App{
		Catalog: service.NewCatalogService(func(context.Context) (*catalog.Catalog, error) {
			return nil, boom
		}, nil),
	}
	_, err := executeCmd(t, app, "courses")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrCatalogLoad)
}

// --- plan ---

func TestPlanCmd_RunsStepsInOrder(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan",
		"-c", "intel",
		"-a", "NS3000:AREA",
		"--auto", "NS3042",
		"-a", "NS3041:CORE",
		"-a", "NS3001:AREA",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "✔ NS3000 added to Area (AREA)")
	assert.Contains(t, out, "✔ NS3042 added to Concentration Electives (Concentration Elective)")
	assert.Contains(t, out, "✔ NS3041 added to Core (CORE)")
	assert.Contains(t, out, "✖ cannot add NS3001: Area is full [SLOT_FULL]")
	assert.Contains(t, out, "Concentration: Intel")

	area := strings.Index(out, "NS3000 added")
	auto := strings.Index(out, "NS3042 added")
	core := strings.Index(out, "NS3041 added")
	assert.Less(t, area, auto)
	assert.Less(t, auto, core)
}

func TestPlanCmd_RejectionsAreNotFatal(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan",
		"-a", "NS3041:CORE",
		"-a", "NS9999:AREA",
		"-a", "NS3000:AREA",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "[NO_CONCENTRATION_SELECTED]")
	assert.Contains(t, out, "course not found: NS9999")
	assert.Contains(t, out, "✔ NS3000 added to Area")
	assert.Contains(t, out, "Concentration: None")
}

func TestPlanCmd_TechConcentrationElectives(t *testing.T) {
	var courses []domain.Course
	for _, n := range []string{"T1", "T2", "T3", "T4"} {
		courses = append(courses, testutil.NewTestCourse(n, testutil.WithTags(domain.TagTech)))
	}

	out, err := executeCmd(t, testAppWith(t, courses), "plan",
		"-c", "tech",
		"-a", "T1:CONC",
		"-a", "T2:CONC",
		"-a", "T3:CONC",
		"-a", "T4:CONC",
	)
	require.NoError(t, err)
	for _, n := range []string{"T1", "T2", "T3"} {
		assert.Contains(t, out, "✔ "+n+" added to Concentration Electives")
	}
	assert.Contains(t, out, "✖ cannot add T4")
	assert.Contains(t, out, "[SLOT_FULL]")
	assert.Contains(t, out, "Concentration: Tech")
}

func TestPlanCmd_EmptySchedule(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "SCHEDULE")
	assert.Contains(t, out, "(empty)")
}

func TestPlanCmd_DefaultConcentrationFromApp(t *testing.T) {
	app := testApp(t)
	app.Concentration = "is"
	out, err := executeCmd(t, app, "plan", "-a", "IS3010:CORE")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ IS3010 added to Core (CORE)")
	assert.Contains(t, out, "Concentration: IS")
}

func TestPlanCmd_UnknownConcentration(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan", "-c", "astronomy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown concentration")
}

func TestPlanCmd_MalformedAssignFlag(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan", "-a", "NS3000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected NUMBER:TAG")
}

// --- catalog ---

const masterCSV = "Course Number,Course Name,Area,Econ,Tech,Intel,IS,Mil Ops,TSV,USNP,Other,Notes\n" +
	"NS3000,Regional Security,x,,,,,,,,,\n" +
	"NS3900,Economics of Security,,x,,,,,,,,fall only\n"

func TestCatalogIndexCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "master.csv")
	outPath := filepath.Join(dir, "courses_indexed.json")
	require.NoError(t, os.WriteFile(in, []byte(masterCSV), 0o644))

	out, err := executeCmd(t, testApp(t), "catalog", "index", in, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 2 courses")
	assert.Contains(t, out, "ECON")

	cat, err := catalog.LoadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
}

func TestCatalogImportCmd(t *testing.T) {
	database := testutil.NewTestDB(t)
	cat, err := catalog.New(testutil.SampleCourses())
	require.NoError(t, err)
	app := &App{
		Catalog: service.NewCatalogService(func(context.Context) (*catalog.Catalog, error) { return cat, nil },
			testutil.NewTestUoW(database)),
		DBPath: "store.db",
	}
	path := testutil.WriteCatalogFile(t, testutil.SampleCourses()[:3])

	out, err := executeCmd(t, app, "catalog", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 courses")
	assert.Contains(t, out, "store.db")

	n, err := repository.NewSQLiteCourseRepo(database).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCatalogTagsCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "catalog", "tags")
	require.NoError(t, err)
	assert.Contains(t, out, "TAG")
	assert.Contains(t, out, "INTEL")
	assert.Contains(t, out, "CORE")
}

func TestCatalogExportCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "catalog", "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Course Number,Course Name,Area"))
	assert.Contains(t, out, "NS3900,")

	path := filepath.Join(t.TempDir(), "out.csv")
	out, err = executeCmd(t, testApp(t), "catalog", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 9 courses")

	schema, err := catalog.IndexCSV(mustOpen(t, path))
	require.NoError(t, err)
	assert.Len(t, schema.Courses, 9)
}

func mustOpen(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}
