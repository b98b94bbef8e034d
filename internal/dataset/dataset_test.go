// SPDX-License-Identifier: MIT
package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"Departamen": "Quiché", "Municipio": "Joyabaj"},
      "geometry": {"type": "Polygon", "coordinates": [[[-90.9, 14.9], [-90.7, 14.9], [-90.7, 15.1], [-90.9, 14.9]]]}
    }
  ]
}`

func TestParsePlainGeoJSON(t *testing.T) {
	fc, err := Parse([]byte(sampleCollection))
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Joyabaj", fc.Features[0].Properties["Municipio"])
	assert.Equal(t, "", VariableName([]byte(sampleCollection)))
}

func TestParseQGIS2WebScript(t *testing.T) {
	script := "var json_Precipitacin_13 = " + sampleCollection + ";\n"

	fc, err := Parse([]byte(script))
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "json_Precipitacin_13", VariableName([]byte(script)))
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte("   \n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseRejectsNonCollection(t *testing.T) {
	_, err := Parse([]byte(`{"type": "Feature", "properties": {}, "geometry": null}`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.geojson"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Precipitacin_13.js")
	require.NoError(t, os.WriteFile(path, []byte("var json_Precipitacin_13 = "+sampleCollection), 0644))

	fc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 1)
}
