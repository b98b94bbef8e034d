// SPDX-License-Identifier: MIT
package catalog

import (
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feature(dept, muni interface{}, geom orb.Geometry) *geojson.Feature {
	f := geojson.NewFeature(geom)
	if dept != nil {
		f.Properties["Departamen"] = dept
	}
	if muni != nil {
		f.Properties["Municipio"] = muni
	}
	return f
}

func collection(features ...*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(f)
	}
	return fc
}

func TestBuildSingleFeature(t *testing.T) {
	f := feature("Quiché", "Joyabaj", nil)
	c := Build(collection(f), DefaultProperties)

	assert.Equal(t, map[string][]string{"Quiché": {"Joyabaj"}}, c.Snapshot())

	got, ok := c.Feature("Joyabaj")
	require.True(t, ok)
	assert.Same(t, f, got)
	assert.Equal(t, 1, c.Len())
}

func TestBuildDeduplicatesMunicipalities(t *testing.T) {
	c := Build(collection(
		feature("Quiché", "Joyabaj", nil),
		feature("Quiché", "Chichicastenango", nil),
		feature("Quiché", "Joyabaj", nil),
		feature("Quiché", "Joyabaj", nil),
	), DefaultProperties)

	munis, ok := c.Municipalities("Quiché")
	require.True(t, ok)
	assert.Equal(t, []string{"Chichicastenango", "Joyabaj"}, munis)
}

func TestMunicipalitiesSortedCopy(t *testing.T) {
	c := Build(collection(
		feature("Sololá", "Santiago Atitlán", nil),
		feature("Sololá", "Nahualá", nil),
		feature("Sololá", "Panajachel", nil),
	), DefaultProperties)

	first, _ := c.Municipalities("Sololá")
	if !sort.StringsAreSorted(first) {
		t.Fatalf("expected sorted municipalities, got %v", first)
	}

	first[0] = "modified"
	second, _ := c.Municipalities("Sololá")
	if second[0] == "modified" {
		t.Fatal("expected Municipalities to return independent copies")
	}
}

func TestMunicipalitiesUnknownDepartment(t *testing.T) {
	c := Build(collection(feature("Quiché", "Joyabaj", nil)), DefaultProperties)

	_, ok := c.Municipalities("Petén")
	assert.False(t, ok)
	assert.False(t, c.HasDepartment("Petén"))
}

func TestDepartmentsSorted(t *testing.T) {
	c := Build(collection(
		feature("Zacapa", "Gualán", nil),
		feature("Alta Verapaz", "Cobán", nil),
		feature("Quiché", "Joyabaj", nil),
	), DefaultProperties)

	assert.Equal(t, []string{"Alta Verapaz", "Quiché", "Zacapa"}, c.Departments())
}

func TestBuildSkipsAbsentFields(t *testing.T) {
	c := Build(collection(
		feature(nil, "Huérfano", nil),
		feature("Petén", nil, nil),
		feature(42.0, "Numérico", nil),
		feature("", "", nil),
	), DefaultProperties)

	assert.Equal(t, []string{"Petén"}, c.Departments())
	munis, ok := c.Municipalities("Petén")
	require.True(t, ok)
	assert.Empty(t, munis)

	// municipality without department is still indexed for lookup
	_, ok = c.Feature("Huérfano")
	assert.True(t, ok)
	_, ok = c.Feature("Numérico")
	assert.True(t, ok)
}

func TestBuildLastWriteWinsAndRecordsCollision(t *testing.T) {
	first := feature("Jalapa", "San Carlos Alzatate", nil)
	second := feature("Izabal", "San Carlos Alzatate", nil)
	c := Build(collection(first, second), DefaultProperties)

	got, _ := c.Feature("San Carlos Alzatate")
	assert.Same(t, second, got)

	collisions := c.Collisions()
	require.Len(t, collisions, 1)
	assert.Equal(t, Collision{
		Municipality:       "San Carlos Alzatate",
		PreviousDepartment: "Jalapa",
		Department:         "Izabal",
		Index:              1,
	}, collisions[0])
}

func TestBoundsFromGeometry(t *testing.T) {
	poly := orb.Polygon{{{-90.9, 14.9}, {-90.7, 14.9}, {-90.7, 15.1}, {-90.9, 14.9}}}
	c := Build(collection(
		feature("Quiché", "Joyabaj", poly),
		feature("Quiché", "Sin Geometría", nil),
	), DefaultProperties)

	b, ok := c.Bounds("Joyabaj")
	require.True(t, ok)
	assert.Equal(t, orb.Point{-90.9, 14.9}, b.Min)
	assert.Equal(t, orb.Point{-90.7, 15.1}, b.Max)

	_, ok = c.Bounds("Sin Geometría")
	assert.False(t, ok)
	_, ok = c.Bounds("Desconocido")
	assert.False(t, ok)
}

func TestBuildNilCollection(t *testing.T) {
	c := Build(nil, DefaultProperties)
	assert.Empty(t, c.Departments())
	assert.Equal(t, 0, c.Len())
}

func TestCustomProperties(t *testing.T) {
	f := geojson.NewFeature(nil)
	f.Properties["DEPTO"] = "Escuintla"
	f.Properties["MUNI"] = "Masagua"

	c := Build(collection(f), Properties{Department: "DEPTO", Municipality: "MUNI"})
	assert.Equal(t, map[string][]string{"Escuintla": {"Masagua"}}, c.Snapshot())
}
