// SPDX-License-Identifier: MIT
package handlers

const (
	// Color Palette
	ColorPanel       = "#FFFFFF" // Filter panel background
	ColorPanelShadow = "rgba(0, 0, 0, 0.25)"
	ColorText        = "#2D2D2D" // Dark charcoal
	ColorMuted       = "#6B7280" // Disabled select text
	ColorAccent      = "#00B8C8" // Active base-map button, close to the highlight cyan
	ColorAccentText  = "#FFFFFF"
	ColorBorder      = "#E5E5E3" // Subtle border
)

// GetPageCSS returns the stylesheet for the map page
func GetPageCSS() string {
	return `
:root {
	--color-panel: ` + ColorPanel + `;
	--color-panel-shadow: ` + ColorPanelShadow + `;
	--color-text: ` + ColorText + `;
	--color-muted: ` + ColorMuted + `;
	--color-accent: ` + ColorAccent + `;
	--color-accent-text: ` + ColorAccentText + `;
	--color-border: ` + ColorBorder + `;
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--radius: 6px;
}

html, body {
	margin: 0;
	padding: 0;
	height: 100%;
	font-family: var(--font-family);
	color: var(--color-text);
}

#map {
	position: absolute;
	inset: 0;
}

.panel {
	position: absolute;
	z-index: 1000;
	background: var(--color-panel);
	box-shadow: 0 2px 8px var(--color-panel-shadow);
	border-radius: var(--radius);
	padding: 8px;
}

.filters {
	top: 10px;
	left: 50px;
	display: flex;
	gap: 8px;
}

.filters select {
	min-width: 180px;
	padding: 6px;
	border: 1px solid var(--color-border);
	border-radius: var(--radius);
	background: var(--color-panel);
}

.filters select:disabled {
	color: var(--color-muted);
}

.basemaps {
	bottom: 24px;
	left: 10px;
	display: flex;
	gap: 4px;
}

.basemaps button, #fullscreen-btn {
	border: 1px solid var(--color-border);
	border-radius: var(--radius);
	background: var(--color-panel);
	padding: 6px 12px;
	cursor: pointer;
}

.basemaps button.active {
	background: var(--color-accent);
	border-color: var(--color-accent);
	color: var(--color-accent-text);
}

#fullscreen-btn {
	position: absolute;
	z-index: 1000;
	top: 10px;
	right: 10px;
}
`
}
