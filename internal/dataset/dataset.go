// SPDX-License-Identifier: MIT
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/paulmach/orb/geojson"
)

// ErrNotFound is returned when the configured dataset file does not exist
var ErrNotFound = errors.New("dataset not found")

// ErrEmpty is returned when the file holds no JSON body
var ErrEmpty = errors.New("dataset is empty")

// Load reads a feature collection from disk. Both plain GeoJSON files and
// qgis2web data scripts (var json_Layer_13 = {...};) are accepted.
func Load(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	fc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return fc, nil
}

// Parse decodes a feature collection from raw bytes
func Parse(data []byte) (*geojson.FeatureCollection, error) {
	body, _ := unwrapScript(data)
	if len(body) == 0 {
		return nil, ErrEmpty
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// VariableName returns the JavaScript variable a qgis2web data script assigns
// the collection to, or "" for plain GeoJSON.
func VariableName(data []byte) string {
	_, name := unwrapScript(data)
	return name
}

// unwrapScript strips the "var name =" prefix and trailing semicolon that
// qgis2web puts around the GeoJSON object.
func unwrapScript(data []byte) ([]byte, string) {
	body := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(body) == 0 || body[0] == '{' {
		return body, ""
	}

	var name string
	for _, kw := range [][]byte{[]byte("var "), []byte("let "), []byte("const ")} {
		if !bytes.HasPrefix(body, kw) {
			continue
		}
		eq := bytes.IndexByte(body, '=')
		if eq < 0 {
			return nil, ""
		}
		name = string(bytes.TrimSpace(body[len(kw):eq]))
		body = bytes.TrimSpace(body[eq+1:])
		break
	}

	body = bytes.TrimSpace(bytes.TrimSuffix(body, []byte(";")))
	return body, name
}
