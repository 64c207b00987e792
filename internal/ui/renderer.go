package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rivermap/internal/tileset"
	"github.com/samdwyer/rivermap/internal/world"
)

// CellSize is the width and height in terminal cells of one drawn tile.
const CellSize = 3

// Renderer handles drawing maps to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMap clears the screen and draws every tile of the grid as a 3x3
// block. Edge glyphs come from the tile's rotated edges, so what is drawn
// is exactly what placement matched.
//
//	. N .
//	W c E
//	. S .
func (r *Renderer) RenderMap(grid *world.Grid, set *tileset.Set) {
	r.screen.Clear()

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			ox, oy := x*CellSize, y*CellSize

			tile, ok := grid.At(x, y)
			if !ok {
				r.drawGap(ox, oy)
				continue
			}
			spec := set.Catalog.Spec(tile.Spec)

			noneStyle := featureStyle(set.Palette, world.FeatureNone)
			for _, corner := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
				r.screen.SetContent(ox+corner[0], oy+corner[1], edgeGlyph(world.FeatureNone, world.North), noneStyle)
			}

			for _, d := range world.Directions {
				f := spec.Edge(d, tile.Rotation)
				dx, dy := d.Delta()
				r.screen.SetContent(ox+1+dx, oy+1+dy, edgeGlyph(f, d), featureStyle(set.Palette, f))
			}

			glyph, f := centerGlyph(spec, tile.Rotation)
			r.screen.SetContent(ox+1, oy+1, glyph, featureStyle(set.Palette, f).Bold(spec.Cloister || spec.Shield))
		}
	}
}

// drawGap marks a cell the fill phase could not place a tile on.
func (r *Renderer) drawGap(ox, oy int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	for dy := 0; dy < CellSize; dy++ {
		for dx := 0; dx < CellSize; dx++ {
			r.screen.SetContent(ox+dx, oy+dy, ' ', tcell.StyleDefault)
		}
	}
	r.screen.SetContent(ox+1, oy+1, '?', style)
}

// RenderReport clears the screen and draws one line of text per row.
func (r *Renderer) RenderReport(lines []string) {
	r.screen.Clear()
	for y, line := range lines {
		r.RenderMessage(line, y)
	}
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// Show flushes drawn content to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}

// edgeGlyph returns the glyph for a feature drawn on the edge facing d.
func edgeGlyph(f world.Feature, d world.Direction) rune {
	switch f {
	case world.FeatureCity:
		return '#'
	case world.FeatureRoad:
		if d == world.North || d == world.South {
			return '|'
		}
		return '-'
	case world.FeatureRiver:
		return '~'
	default:
		return '.'
	}
}

// centerGlyph picks the middle glyph of a tile and the feature it is
// colored as.
func centerGlyph(spec world.TileSpec, rotation int) (rune, world.Feature) {
	switch {
	case spec.Cloister:
		return 'C', world.FeatureNone
	case spec.Shield:
		return '*', world.FeatureCity
	}

	counts := make(map[world.Feature]int)
	for _, d := range world.Directions {
		counts[spec.Edge(d, rotation)]++
	}
	switch {
	case counts[world.FeatureRiver] > 0:
		return '~', world.FeatureRiver
	case counts[world.FeatureRoad] > 2:
		return '+', world.FeatureRoad
	case counts[world.FeatureRoad] > 0:
		return roadCenter(spec, rotation), world.FeatureRoad
	case counts[world.FeatureCity] > 0:
		return '#', world.FeatureCity
	default:
		return '.', world.FeatureNone
	}
}

// roadCenter continues a straight road through the middle of the tile.
func roadCenter(spec world.TileSpec, rotation int) rune {
	ns := spec.Edge(world.North, rotation) == world.FeatureRoad || spec.Edge(world.South, rotation) == world.FeatureRoad
	ew := spec.Edge(world.East, rotation) == world.FeatureRoad || spec.Edge(world.West, rotation) == world.FeatureRoad
	switch {
	case ns && ew:
		return '+'
	case ns:
		return '|'
	default:
		return '-'
	}
}

func featureStyle(p tileset.Palette, f world.Feature) tcell.Style {
	return tcell.StyleDefault.Foreground(p.Color(f))
}
