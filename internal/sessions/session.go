// SPDX-License-Identifier: MIT
package sessions

import (
	"errors"
	"fmt"
	"sync"

	"github.com/thatcatcamp/focusmap/internal/catalog"
	"github.com/thatcatcamp/focusmap/internal/filter"
	"github.com/thatcatcamp/focusmap/internal/mapview"
	"github.com/thatcatcamp/focusmap/internal/metrics"
	"github.com/thatcatcamp/focusmap/internal/models"
)

// Factory holds everything a new session map is built from
type Factory struct {
	Catalog     *catalog.Catalog
	OSM         *mapview.TileLayer
	Satellite   *mapview.TileLayer
	Focus       mapview.FocusStyle
	Fit         mapview.FitOptions
	DefaultBase mapview.Mode
}

// Session is one browser's map together with its controllers. All methods
// are safe for concurrent use; each event runs to completion under the lock.
type Session struct {
	ID string

	mu         sync.Mutex
	canvas     *mapview.Canvas
	focus      *mapview.FocusEffect
	filter     *filter.Controller
	base       *mapview.BaseLayers
	selections int
}

// View is what the browser needs to paint the page
type View struct {
	Department   filter.Select    `json:"department"`
	Municipality filter.Select    `json:"municipality"`
	BaseLayer    mapview.Mode     `json:"baseLayer"`
	Buttons      []mapview.Button `json:"buttons"`
	Focused      bool             `json:"focused"`
	Map          mapview.View     `json:"map"`
}

// New builds a fresh session showing the default base map
func (f *Factory) New(id string) (*Session, error) {
	if f == nil || f.Catalog == nil {
		return nil, errors.New("session factory needs a catalog")
	}

	canvas := mapview.NewCanvas()
	focus, err := mapview.NewFocusEffect(canvas, f.Focus)
	if err != nil {
		return nil, err
	}
	base, err := mapview.NewBaseLayers(canvas, f.OSM, f.Satellite)
	if err != nil {
		return nil, err
	}
	ctl, err := filter.New(f.Catalog, canvas, focus, f.Fit)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter controller: %w", err)
	}

	s := &Session{
		ID:     id,
		canvas: canvas,
		focus:  focus,
		filter: ctl,
		base:   base,
	}
	if !base.Switch(string(f.DefaultBase)) {
		base.Switch(string(mapview.ModeOSM))
	}
	return s, nil
}

// Restore rebuilds a session from its stored record by replaying the
// selection onto a fresh map.
func (f *Factory) Restore(rec models.MapSession) (*Session, error) {
	s, err := f.New(rec.ID)
	if err != nil {
		return nil, err
	}

	if rec.Department != "" {
		s.filter.SelectDepartment(rec.Department)
	}
	if rec.Municipality != "" {
		s.filter.SelectMunicipality(rec.Municipality)
	}
	if rec.BaseLayer != "" {
		s.base.Switch(rec.BaseLayer)
	}
	s.selections = rec.Selections
	return s, nil
}

// SelectDepartment handles a change of the department select
func (s *Session) SelectDepartment(name string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.SelectDepartment(name)
	s.selections++
	metrics.SelectionsTotal.WithLabelValues("department").Inc()
	return s.view()
}

// SelectMunicipality handles a change of the municipality select
func (s *Session) SelectMunicipality(name string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.SelectMunicipality(name)
	s.selections++
	metrics.SelectionsTotal.WithLabelValues("municipality").Inc()
	if s.focus.Active() {
		metrics.FocusAppliedTotal.Inc()
	}
	return s.view()
}

// SwitchBaseLayer shows the osm or sat base map. The bool is false for an
// unknown token, in which case nothing changed.
func (s *Session) SwitchBaseLayer(tipo string) (View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.base.Switch(tipo)
	if ok {
		metrics.BaseLayerSwitchesTotal.WithLabelValues(tipo).Inc()
	}
	return s.view(), ok
}

// View returns the current state
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// Record returns the persistable part of the session
func (s *Session) Record() models.MapSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	dept, muni := s.filter.Selection()
	return models.MapSession{
		ID:           s.ID,
		Department:   dept,
		Municipality: muni,
		BaseLayer:    string(s.base.Active()),
		Selections:   s.selections,
	}
}

func (s *Session) view() View {
	return View{
		Department:   s.filter.Department(),
		Municipality: s.filter.Municipality(),
		BaseLayer:    s.base.Active(),
		Buttons:      s.base.Buttons(),
		Focused:      s.focus.Active(),
		Map:          s.canvas.View(),
	}
}
