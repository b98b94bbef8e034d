// SPDX-License-Identifier: MIT
package mapview

// Mode selects one of the two base maps
type Mode string

const (
	ModeOSM       Mode = "osm"
	ModeSatellite Mode = "sat"
)

// Button ids in the page
const (
	ButtonOSM       = "btn-osm"
	ButtonSatellite = "btn-sat"
)

// ParseMode accepts the tokens used by the page buttons
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeOSM, ModeSatellite:
		return Mode(s), true
	}
	return "", false
}

// Button is the active-class state of a base map button
type Button struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// BaseLayers swaps the street and satellite tile layers
type BaseLayers struct {
	m       Map
	osm     *TileLayer
	sat     *TileLayer
	active  Mode
	buttons map[string]bool
}

// NewBaseLayers wires the two tile layers to a map. Either layer may be
// nil, in which case switching to or away from it skips that layer.
func NewBaseLayers(m Map, osm, sat *TileLayer) (*BaseLayers, error) {
	if m == nil {
		return nil, ErrNoMap
	}
	return &BaseLayers{
		m:   m,
		osm: osm,
		sat: sat,
		buttons: map[string]bool{
			ButtonOSM:       false,
			ButtonSatellite: false,
		},
	}, nil
}

// Switch shows the layer for tipo and hides the other one. Unknown tokens
// are ignored; the return value reports whether tipo was recognised.
func (b *BaseLayers) Switch(tipo string) bool {
	mode, ok := ParseMode(tipo)
	if !ok {
		return false
	}

	show, hide := b.osm, b.sat
	on, off := ButtonOSM, ButtonSatellite
	if mode == ModeSatellite {
		show, hide = b.sat, b.osm
		on, off = ButtonSatellite, ButtonOSM
	}

	if show != nil {
		b.m.AddLayer(show)
	}
	if hide != nil {
		b.m.RemoveLayer(hide)
	}

	b.buttons[on] = true
	b.buttons[off] = false
	b.active = mode
	return true
}

// Active returns the last selected mode, or "" before the first switch
func (b *BaseLayers) Active() Mode {
	return b.active
}

// Buttons returns the button states in page order
func (b *BaseLayers) Buttons() []Button {
	return []Button{
		{ID: ButtonOSM, Active: b.buttons[ButtonOSM]},
		{ID: ButtonSatellite, Active: b.buttons[ButtonSatellite]},
	}
}
