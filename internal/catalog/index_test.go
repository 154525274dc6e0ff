package catalog

import (
	"strings"
	"testing"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const masterCSV = `Course Number,Course Name,Area,Econ,Tech,Intel,IS,Mil Ops,TSV,USNP,Other,Notes
NS3041, Intel Basics ,,,,x,,,,,,
NS3900,Economics of Security,x,x,,,,,,,, spring only
CS3000,Networks,,,X,,,yes,,,,
`

func TestIndexCSV(t *testing.T) {
	schema, err := IndexCSV(strings.NewReader(masterCSV))
	require.NoError(t, err)

	require.Len(t, schema.Courses, 3)
	assert.Equal(t, "Intel Basics", schema.Courses[0].Name)
	assert.Equal(t, []string{"INTEL"}, schema.Courses[0].Tags)
	assert.Nil(t, schema.Courses[0].Notes)

	assert.Equal(t, []string{"AREA", "ECON"}, schema.Courses[1].Tags)
	require.NotNil(t, schema.Courses[1].Notes)
	assert.Equal(t, "spring only", *schema.Courses[1].Notes)

	assert.Equal(t, []string{"TECH", "MILOPS"}, schema.Courses[2].Tags)

	require.Len(t, schema.ByTag["ECON"], 1)
	assert.Equal(t, "NS3900", schema.ByTag["ECON"][0].Number)
	assert.NotContains(t, schema.ByTag, "CORE")
}

func TestIndexCSV_OutputLoads(t *testing.T) {
	schema, err := IndexCSV(strings.NewReader(masterCSV))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteSchema(&buf, schema))

	c := mustParse(t, buf.String())
	cs, ok := c.Lookup("CS3000")
	require.True(t, ok)
	assert.True(t, cs.HasTag(domain.TagMilOps))
}

func TestIndexCSV_MissingNumber(t *testing.T) {
	doc := "Course Number,Course Name,Area,Econ,Tech,Intel,IS,Mil Ops,TSV,USNP,Other,Notes\n" +
		",Orphan,x,,,,,,,,,\n"
	_, err := IndexCSV(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogLoad)
	assert.Contains(t, err.Error(), "courses[0].number is required")
}

func TestExportCSV_RoundTrip(t *testing.T) {
	courses := []domain.Course{
		{Number: "A1", Name: "One", Tags: []domain.Tag{domain.TagArea, domain.TagCore}, Notes: "n"},
		{Number: "T1", Name: "Two", Tags: []domain.Tag{domain.TagTech}},
	}
	var buf strings.Builder
	require.NoError(t, ExportCSV(&buf, courses))
	assert.True(t, strings.HasPrefix(buf.String(), "Course Number,Course Name,Area"))

	schema, err := IndexCSV(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, schema.Courses, 2)
	assert.Equal(t, []string{"AREA"}, schema.Courses[0].Tags, "CORE has no column")
	assert.Equal(t, []string{"TECH"}, schema.Courses[1].Tags)
}
