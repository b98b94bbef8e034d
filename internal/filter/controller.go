// SPDX-License-Identifier: MIT
package filter

import (
	"errors"
	"log"

	"github.com/thatcatcamp/focusmap/internal/catalog"
	"github.com/thatcatcamp/focusmap/internal/mapview"
)

// Element ids of the two selects in the page
const (
	DepartmentSelectID   = "department-select"
	MunicipalitySelectID = "municipality-select"
)

// Placeholder labels for the empty option of each select
const (
	DepartmentPlaceholder   = "Seleccione Departamento..."
	MunicipalityPlaceholder = "Seleccione Municipio..."
)

var (
	ErrNoCatalog = errors.New("catalog is required")
	ErrNoFocus   = errors.New("focus effect is required")
)

// Option is one entry of a select
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Select is the state of a dropdown
type Select struct {
	ID       string   `json:"id"`
	Options  []Option `json:"options"`
	Value    string   `json:"value"`
	Disabled bool     `json:"disabled"`
}

// Controller drives the department and municipality dropdowns and zooms
// the map to the chosen municipality.
type Controller struct {
	cat          *catalog.Catalog
	m            mapview.Map
	focus        *mapview.FocusEffect
	fit          mapview.FitOptions
	department   Select
	municipality Select
}

// New builds a controller. The department select starts filled and
// enabled; the municipality select starts empty and disabled.
func New(cat *catalog.Catalog, m mapview.Map, focus *mapview.FocusEffect, fit mapview.FitOptions) (*Controller, error) {
	if cat == nil {
		return nil, ErrNoCatalog
	}
	if m == nil {
		return nil, mapview.ErrNoMap
	}
	if focus == nil {
		return nil, ErrNoFocus
	}

	c := &Controller{
		cat:   cat,
		m:     m,
		focus: focus,
		fit:   fit,
		department: Select{
			ID:      DepartmentSelectID,
			Options: options(DepartmentPlaceholder, cat.Departments()),
		},
	}
	c.resetMunicipality()
	return c, nil
}

// SelectDepartment refills the municipality list for name and drops any
// active focus. An empty or unknown name leaves the municipality select
// cleared and disabled.
func (c *Controller) SelectDepartment(name string) {
	c.resetMunicipality()
	c.focus.Clear()

	munis, ok := c.cat.Municipalities(name)
	if name == "" || !ok {
		if name != "" {
			log.Printf("filter: unknown department %q", name)
		}
		c.department.Value = ""
		return
	}

	c.department.Value = name
	c.municipality.Options = options(MunicipalityPlaceholder, munis)
	c.municipality.Disabled = false
}

// SelectMunicipality zooms to name and applies the focus effect. The name
// must be one of the current options.
func (c *Controller) SelectMunicipality(name string) {
	c.focus.Clear()
	c.municipality.Value = ""

	if name == "" || c.municipality.Disabled {
		return
	}
	if !hasOption(c.municipality.Options, name) {
		log.Printf("filter: %q is not listed under department %q", name, c.department.Value)
		return
	}

	feature, ok := c.cat.Feature(name)
	if !ok {
		return
	}
	c.municipality.Value = name

	if bounds, ok := c.cat.Bounds(name); ok {
		c.m.FitBounds(bounds, c.fit)
	} else {
		log.Printf("filter: municipality %q has no geometry, not zooming", name)
	}
	c.focus.Apply(feature)
}

// Department returns a copy of the department select
func (c *Controller) Department() Select {
	return copySelect(c.department)
}

// Municipality returns a copy of the municipality select
func (c *Controller) Municipality() Select {
	return copySelect(c.municipality)
}

// Selection returns the chosen department and municipality
func (c *Controller) Selection() (string, string) {
	return c.department.Value, c.municipality.Value
}

func (c *Controller) resetMunicipality() {
	c.municipality = Select{
		ID:       MunicipalitySelectID,
		Options:  options(MunicipalityPlaceholder, nil),
		Disabled: true,
	}
}

func options(placeholder string, values []string) []Option {
	opts := make([]Option, 0, len(values)+1)
	opts = append(opts, Option{Value: "", Label: placeholder})
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: v})
	}
	return opts
}

func hasOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

func copySelect(s Select) Select {
	out := s
	out.Options = make([]Option, len(s.Options))
	copy(out.Options, s.Options)
	return out
}
