package engine

import (
	"testing"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDesignation(t *testing.T) {
	tests := []struct {
		raw    string
		active domain.Concentration
		want   domain.Designation
	}{
		{"AREA", "", domain.DesignateArea},
		{"area", "", domain.DesignateArea},
		{"Tech", domain.ConcentrationTech, domain.DesignateTech},
		{"ECON", "", domain.DesignateEcon},
		{"CORE", "", domain.DesignateCore},
		{"ELECT", "", domain.DesignateGeneralElective},
		{"CONC", "", domain.DesignateConcentrationElective},
		{"IS", domain.ConcentrationIS, domain.DesignateConcentrationElective},
		{"Mil Ops", domain.ConcentrationMilOps, domain.DesignateConcentrationElective},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ResolveDesignation(tt.raw, tt.active)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDesignation_Unassignable(t *testing.T) {
	for _, tc := range []struct {
		raw    string
		active domain.Concentration
	}{
		{"INTEL", ""},
		{"INTEL", domain.ConcentrationIS},
		{"OTHER", domain.ConcentrationIS},
		{"", ""},
	} {
		_, err := ResolveDesignation(tc.raw, tc.active)
		assert.ErrorIs(t, err, ErrUnassignableDesignation, "raw %q", tc.raw)
	}
}

func TestEngineResolve_UsesActiveConcentration(t *testing.T) {
	e := New()
	_, err := e.Resolve("TSV")
	require.Error(t, err)

	e.SetConcentration(domain.ConcentrationTSV)
	d, err := e.Resolve("tsv")
	require.NoError(t, err)
	assert.Equal(t, domain.DesignateConcentrationElective, d)
}

func TestOfferedDesignations(t *testing.T) {
	e := New()
	c := course("NS1", domain.TagArea, domain.TagIntel, domain.TagCore)

	assert.Equal(t, []domain.Designation{domain.DesignateArea, domain.DesignateGeneralElective}, e.OfferedDesignations(c))

	e.SetConcentration(domain.ConcentrationIntel)
	assert.Equal(t, []domain.Designation{
		domain.DesignateArea, domain.DesignateCore,
		domain.DesignateConcentrationElective, domain.DesignateGeneralElective,
	}, e.OfferedDesignations(c))
}

func TestAutoAssign_Cascade(t *testing.T) {
	e := New()
	e.SetConcentration(domain.ConcentrationIS)

	// First AREA course takes the area slot, the second falls through.
	slot, d, err := e.AutoAssign(course("A1", domain.TagArea))
	require.NoError(t, err)
	assert.Equal(t, domain.SlotArea, slot)
	assert.Equal(t, domain.DesignateArea, d)

	slot, _, err = e.AutoAssign(course("A2", domain.TagArea))
	require.NoError(t, err)
	assert.Equal(t, domain.SlotGeneralElectives, slot)

	slot, _, err = e.AutoAssign(course("IS1", domain.TagIS, domain.TagCore))
	require.NoError(t, err)
	assert.Equal(t, domain.SlotCore, slot)

	slot, _, err = e.AutoAssign(course("IS2", domain.TagIS, domain.TagCore))
	require.NoError(t, err)
	assert.Equal(t, domain.SlotConcentrationElectives, slot)
}

func TestAutoAssign_DuplicateFirst(t *testing.T) {
	e := New()
	_, _, err := e.AutoAssign(course("X", domain.TagEcon))
	require.NoError(t, err)
	_, _, err = e.AutoAssign(course("X", domain.TagEcon))
	assert.ErrorIs(t, err, ErrDuplicateCourse)
}

func TestAutoAssign_NothingFits(t *testing.T) {
	e := New()
	for _, n := range []string{"G1", "G2", "G3"} {
		_, _, err := e.AutoAssign(course(n))
		require.NoError(t, err)
	}
	_, _, err := e.AutoAssign(course("G4"))
	ae := requireCode(t, err, CodeSlotFull)
	assert.Equal(t, domain.SlotGeneralElectives, ae.Slot)
}
