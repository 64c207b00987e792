package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rivermap/internal/tileset"
	"github.com/samdwyer/rivermap/internal/world"
)

func newTestRenderer(t *testing.T) (*Screen, *Renderer) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(40, 20)

	return screen, NewRenderer(screen)
}

func testSet(t *testing.T) *tileset.Set {
	t.Helper()

	set, err := tileset.Build(tileset.File{
		Palette: map[string]string{"river": "#3A8DDE"},
		Base: []tileset.TileDef{
			{Name: "roadns", Edges: []string{"road", "none", "road", "none"}, Count: 1},
			{Name: "cloister", Edges: []string{"none", "none", "none", "none"}, Count: 1, Cloister: true},
		},
		River: []tileset.TileDef{
			{Name: "riverew", Edges: []string{"none", "river", "none", "river"}, Count: 1},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return set
}

func TestRenderMap(t *testing.T) {
	screen, renderer := newTestRenderer(t)
	set := testSet(t)

	roadns, _ := set.Catalog.Index("roadns")
	cloister, _ := set.Catalog.Index("cloister")
	riverew, _ := set.Catalog.Index("riverew")

	grid := world.NewGrid(2, 2)
	grid.Set(0, 0, world.PlacedTile{Spec: roadns})
	// A quarter turn runs the river north to south.
	grid.Set(1, 0, world.PlacedTile{Spec: riverew, Rotation: 1})
	grid.Set(0, 1, world.PlacedTile{Spec: cloister})

	renderer.RenderMap(grid, set)
	renderer.Show()

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"road north edge", 1, 0, '|'},
		{"road center", 1, 1, '|'},
		{"road east edge", 2, 1, '.'},
		{"road south edge", 1, 2, '|'},
		{"corner", 0, 0, '.'},
		{"river north edge", 4, 0, '~'},
		{"river west edge", 3, 1, '.'},
		{"river center", 4, 1, '~'},
		{"river south edge", 4, 2, '~'},
		{"cloister center", 1, 4, 'C'},
		{"gap center", 4, 4, '?'},
		{"gap corner", 3, 3, ' '},
	}

	for _, tt := range tests {
		got, _ := screen.GetContent(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("%s at (%d,%d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	_, style := screen.GetContent(4, 0)
	fg, _, _ := style.Decompose()
	if fg != tileset.MustParseHexColor("#3A8DDE") {
		t.Errorf("River edge color = %v, want palette river color", fg)
	}
}

func TestEdgeGlyph(t *testing.T) {
	tests := []struct {
		f    world.Feature
		d    world.Direction
		want rune
	}{
		{world.FeatureCity, world.North, '#'},
		{world.FeatureRoad, world.North, '|'},
		{world.FeatureRoad, world.South, '|'},
		{world.FeatureRoad, world.East, '-'},
		{world.FeatureRoad, world.West, '-'},
		{world.FeatureRiver, world.West, '~'},
		{world.FeatureNone, world.East, '.'},
	}

	for _, tt := range tests {
		if got := edgeGlyph(tt.f, tt.d); got != tt.want {
			t.Errorf("edgeGlyph(%s, %s) = %q, want %q", tt.f, tt.d, got, tt.want)
		}
	}
}

func TestCenterGlyph(t *testing.T) {
	none, city, road := world.FeatureNone, world.FeatureCity, world.FeatureRoad

	tests := []struct {
		name     string
		spec     world.TileSpec
		rotation int
		want     rune
	}{
		{"shield", world.TileSpec{Edges: [4]world.Feature{city, city, none, none}, Shield: true}, 0, '*'},
		{"cloister with road", world.TileSpec{Edges: [4]world.Feature{none, none, road, none}, Cloister: true}, 0, 'C'},
		{"crossing", world.TileSpec{Edges: [4]world.Feature{road, road, road, road}}, 0, '+'},
		{"straight road", world.TileSpec{Edges: [4]world.Feature{road, none, road, none}}, 0, '|'},
		{"turned road", world.TileSpec{Edges: [4]world.Feature{road, none, road, none}}, 1, '-'},
		{"curve", world.TileSpec{Edges: [4]world.Feature{none, none, road, road}}, 0, '+'},
		{"city", world.TileSpec{Edges: [4]world.Feature{city, none, none, none}}, 0, '#'},
		{"field", world.TileSpec{}, 0, '.'},
	}

	for _, tt := range tests {
		if got, _ := centerGlyph(tt.spec, tt.rotation); got != tt.want {
			t.Errorf("%s: centerGlyph = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRenderReport(t *testing.T) {
	screen, renderer := newTestRenderer(t)

	renderer.RenderReport([]string{"outcome: complete", "gaps: 0"})
	renderer.Show()

	if got, _ := screen.GetContent(0, 0); got != 'o' {
		t.Errorf("First line starts with %q, want 'o'", got)
	}
	if got, _ := screen.GetContent(0, 1); got != 'g' {
		t.Errorf("Second line starts with %q, want 'g'", got)
	}
}
