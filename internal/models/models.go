// SPDX-License-Identifier: MIT
package models

import (
	"time"
)

// MapSession is the persisted state of one browser's map: the filter
// selection and the chosen base layer. Overlays are rebuilt from it.
type MapSession struct {
	ID           string `gorm:"primaryKey;size:36"`
	Department   string `gorm:"size:128"`
	Municipality string `gorm:"size:128"`
	BaseLayer    string `gorm:"size:8;default:osm"`
	Selections   int    `gorm:"default:0"` // number of selection events handled
	CreatedAt    time.Time
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName overrides for consistent naming
func (MapSession) TableName() string {
	return "map_sessions"
}
