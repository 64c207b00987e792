// Package app provides the map viewer loop, map generation and export.
package app

// View represents what the viewer is showing.
type View int

const (
	// ViewMap draws the generated tiles.
	ViewMap View = iota
	// ViewReport lists the placement report of the current map.
	ViewReport
)

// String returns a human-readable view name.
func (v View) String() string {
	switch v {
	case ViewMap:
		return "map"
	case ViewReport:
		return "report"
	default:
		return "unknown"
	}
}

// Toggle switches between the map and the report.
func (v View) Toggle() View {
	if v == ViewMap {
		return ViewReport
	}
	return ViewMap
}
