package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "courses": [
    {"number": "NS3041", "name": "Intel Basics", "tags": ["intel", "CORE"], "notes": null},
    {"number": "NS3900", "name": "Economics of Security", "tags": ["ECON"], "notes": "fall only"},
    {"number": "CS3000", "name": "Networks", "tags": ["TECH", "mil ops"]},
    {"number": "NS4000", "name": "Capstone", "tags": []}
  ]
}`

func mustParse(t *testing.T, doc string) *Catalog {
	t.Helper()
	c, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return c
}

func TestParse_NormalizesTagsAndNotes(t *testing.T) {
	c := mustParse(t, sampleJSON)

	require.Equal(t, 4, c.Len())
	ns, ok := c.Lookup("NS3041")
	require.True(t, ok)
	assert.Equal(t, []domain.Tag{domain.TagIntel, domain.TagCore}, ns.Tags)
	assert.Empty(t, ns.Notes)

	econ, _ := c.Lookup("NS3900")
	assert.Equal(t, "fall only", econ.Notes)

	cs, _ := c.Lookup("CS3000")
	assert.True(t, cs.HasTag(domain.TagMilOps))

	_, ok = c.Lookup("XX0000")
	assert.False(t, ok)
}

func TestParse_TrimsNumberAndName(t *testing.T) {
	c := mustParse(t, `{"courses": [{"number": " X1 ", "name": "  Padded  ", "tags": ["area"]}]}`)

	course, ok := c.Lookup("X1")
	require.True(t, ok)
	assert.Equal(t, "X1", course.Number)
	assert.Equal(t, "Padded", course.Name)
}

func TestParse_PreservesOrder(t *testing.T) {
	c := mustParse(t, sampleJSON)

	var numbers []string
	for _, course := range c.All() {
		numbers = append(numbers, course.Number)
	}
	assert.Equal(t, []string{"NS3041", "NS3900", "CS3000", "NS4000"}, numbers)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"courses": [`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogLoad))

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "input", le.Source)
}

func TestParse_ValidationCollectsEveryProblem(t *testing.T) {
	doc := `{"courses": [
		{"number": "A1", "name": "One", "tags": ["AREA"]},
		{"number": "A1", "name": "", "tags": [" "]},
		{"number": "", "name": "Three"}
	]}`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	msg := err.Error()
	assert.Contains(t, msg, `courses[1].number: duplicate number "A1" (first at courses[0])`)
	assert.Contains(t, msg, "courses[1].name is required")
	assert.Contains(t, msg, "courses[1].tags[0]: blank tag")
	assert.Contains(t, msg, "courses[2].number is required")
	assert.Contains(t, msg, "courses[2].tags is required")
	assert.Len(t, le.Errs, 5)
}

func TestParse_MissingCourses(t *testing.T) {
	_, err := Parse(strings.NewReader(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "courses field is required")
}

func TestNew_CopiesInput(t *testing.T) {
	in := []domain.Course{{Number: "A1", Name: "One", Tags: []domain.Tag{domain.TagArea}}}
	c, err := New(in)
	require.NoError(t, err)

	in[0].Name = "changed"
	in[0].Tags[0] = domain.TagEcon

	got, _ := c.Lookup("A1")
	assert.Equal(t, "One", got.Name)
	assert.Equal(t, []domain.Tag{domain.TagArea}, got.Tags)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]domain.Course{
		{Number: "A1", Name: "One", Tags: []domain.Tag{}},
		{Number: "A1", Name: "Two", Tags: []domain.Tag{}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogLoad)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/courses.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	c, err := LoadURL(context.Background(), srv.Client(), srv.URL+"/courses.json")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	_, err = LoadURL(context.Background(), srv.Client(), srv.URL+"/nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogLoad)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestLoadURL_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadURL(ctx, srv.Client(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestByTagAndTags(t *testing.T) {
	c := mustParse(t, sampleJSON)

	econ := c.ByTag("econ")
	require.Len(t, econ, 1)
	assert.Equal(t, "NS3900", econ[0].Number)

	assert.Empty(t, c.ByTag(domain.TagUSNP))
	assert.Equal(t,
		[]domain.Tag{domain.TagCore, domain.TagEcon, domain.TagIntel, domain.TagMilOps, domain.TagTech},
		c.Tags())
}

func TestSchema_RoundTripsByTag(t *testing.T) {
	c := mustParse(t, sampleJSON)
	schema := c.Schema()

	require.Len(t, schema.Courses, 4)
	require.NotNil(t, schema.Courses[1].Notes)
	assert.Equal(t, "fall only", *schema.Courses[1].Notes)
	assert.Nil(t, schema.Courses[0].Notes)
	require.Len(t, schema.ByTag["INTEL"], 1)
	assert.Equal(t, []string{"INTEL", "CORE"}, schema.ByTag["INTEL"][0].Tags)

	var buf strings.Builder
	require.NoError(t, WriteSchema(&buf, schema))
	again := mustParse(t, buf.String())
	assert.Equal(t, c.All(), again.All())
}

func TestTagCounts(t *testing.T) {
	schema := mustParse(t, sampleJSON).Schema()
	counts := schema.TagCounts()
	require.Len(t, counts, 5)
	assert.Equal(t, TagCount{Tag: domain.TagCore, Count: 1}, counts[0])
}
