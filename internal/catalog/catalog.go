// SPDX-License-Identifier: MIT
package catalog

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Properties names the feature properties the catalog is keyed on
type Properties struct {
	Department   string
	Municipality string
}

// DefaultProperties matches the attribute names of the generated
// precipitation layer.
var DefaultProperties = Properties{
	Department:   "Departamen",
	Municipality: "Municipio",
}

// Collision records a municipality name that appeared on more than one
// feature. The later feature replaces the earlier one in the geo index.
type Collision struct {
	Municipality       string
	PreviousDepartment string
	Department         string
	Index              int // position of the overwriting feature in the collection
}

// Catalog indexes a feature collection by department and municipality
type Catalog struct {
	departments map[string][]string
	features    map[string]*geojson.Feature
	collisions  []Collision
}

// Build indexes every feature of fc. Absent or non-string properties are
// skipped silently.
func Build(fc *geojson.FeatureCollection, props Properties) *Catalog {
	c := &Catalog{
		departments: make(map[string][]string),
		features:    make(map[string]*geojson.Feature),
	}
	if fc == nil {
		return c
	}

	for i, f := range fc.Features {
		if f == nil {
			continue
		}
		dept := stringProperty(f, props.Department)
		muni := stringProperty(f, props.Municipality)

		if dept != "" {
			list, ok := c.departments[dept]
			if !ok {
				list = []string{}
			}
			if muni != "" && !contains(list, muni) {
				list = append(list, muni)
			}
			c.departments[dept] = list
		}

		if muni != "" {
			if prev, exists := c.features[muni]; exists {
				c.collisions = append(c.collisions, Collision{
					Municipality:       muni,
					PreviousDepartment: stringProperty(prev, props.Department),
					Department:         dept,
					Index:              i,
				})
			}
			c.features[muni] = f
		}
	}

	return c
}

// Departments returns all department names in ascending order
func (c *Catalog) Departments() []string {
	names := make([]string, 0, len(c.departments))
	for name := range c.departments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Municipalities returns a sorted copy of the municipalities listed under dept
func (c *Catalog) Municipalities(dept string) ([]string, bool) {
	list, ok := c.departments[dept]
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)
	sort.Strings(out)
	return out, true
}

// HasDepartment reports whether dept was seen in the collection
func (c *Catalog) HasDepartment(dept string) bool {
	_, ok := c.departments[dept]
	return ok
}

// Feature returns the feature indexed under a municipality name
func (c *Catalog) Feature(muni string) (*geojson.Feature, bool) {
	f, ok := c.features[muni]
	return f, ok
}

// Bounds returns the bounding box of a municipality's geometry. Features
// without geometry have no bounds.
func (c *Catalog) Bounds(muni string) (orb.Bound, bool) {
	f, ok := c.features[muni]
	if !ok || f.Geometry == nil {
		return orb.Bound{}, false
	}
	return f.Geometry.Bound(), true
}

// Len returns the number of indexed municipalities
func (c *Catalog) Len() int {
	return len(c.features)
}

// Collisions lists every overwrite that happened while building
func (c *Catalog) Collisions() []Collision {
	out := make([]Collision, len(c.collisions))
	copy(out, c.collisions)
	return out
}

// Snapshot returns the whole department table with sorted municipality lists
func (c *Catalog) Snapshot() map[string][]string {
	out := make(map[string][]string, len(c.departments))
	for dept := range c.departments {
		out[dept], _ = c.Municipalities(dept)
	}
	return out
}

func stringProperty(f *geojson.Feature, key string) string {
	if f.Properties == nil || key == "" {
		return ""
	}
	s, _ := f.Properties[key].(string)
	return s
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
