package tileset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/samdwyer/rivermap/internal/world"
)

func TestLoadDefault(t *testing.T) {
	set, err := LoadDefault()
	if err != nil {
		t.Fatalf("Failed to load tile set: %v", err)
	}

	if set.Base.Len() != 24 {
		t.Errorf("Expected 24 base tiles, got %d", set.Base.Len())
	}
	if set.River.Len() != 10 {
		t.Errorf("Expected 10 river tiles, got %d", set.River.Len())
	}
	if set.River.Lo != set.Base.Hi {
		t.Errorf("River range %v should follow base range %v", set.River, set.Base)
	}

	// The first river tile seeds every river.
	first := set.Catalog.Spec(set.River.Lo)
	if first.Name != "riverew" {
		t.Errorf("Expected first river tile 'riverew', got %q", first.Name)
	}

	if n := set.Catalog.CountIn(set.Base); n != 71 {
		t.Errorf("Expected 71 base tiles in deck, got %d", n)
	}

	roadsw, ok := set.Catalog.Index("roadsw")
	if !ok {
		t.Fatal("roadsw not found")
	}
	spec := set.Catalog.Spec(roadsw)
	want := [4]world.Feature{world.FeatureNone, world.FeatureNone, world.FeatureRoad, world.FeatureRoad}
	if spec.Edges != want || spec.Count != 9 {
		t.Errorf("roadsw = %v x%d, want %v x9", spec.Edges, spec.Count, want)
	}
	if spec.Art != "base/roadsw.png" {
		t.Errorf("Expected art handle to be kept, got %q", spec.Art)
	}
}

func TestDefaultRiverTilesCarryRivers(t *testing.T) {
	set := MustLoadDefault()

	for i := set.River.Lo; i < set.River.Hi; i++ {
		spec := set.Catalog.Spec(i)
		rivers := 0
		for _, f := range spec.Edges {
			if f == world.FeatureRiver {
				rivers++
			}
		}
		if rivers == 0 {
			t.Errorf("River tile %q has no river edge", spec.Name)
		}
	}

	for i := set.Base.Lo; i < set.Base.Hi; i++ {
		spec := set.Catalog.Spec(i)
		for _, f := range spec.Edges {
			if f == world.FeatureRiver {
				t.Errorf("Base tile %q has a river edge", spec.Name)
			}
		}
	}
}

func TestBuildValidation(t *testing.T) {
	river := []TileDef{{Name: "riverew", Edges: []string{"none", "river", "none", "river"}, Count: 1}}
	base := []TileDef{{Name: "cloister", Edges: []string{"none", "none", "none", "none"}, Count: 4}}

	tests := []struct {
		name    string
		file    File
		wantErr string
	}{
		{
			name: "valid",
			file: File{Base: base, River: river},
		},
		{
			name:    "three edges",
			file:    File{Base: []TileDef{{Name: "x", Edges: []string{"none", "none", "none"}, Count: 1}}, River: river},
			wantErr: "expected 4 edges",
		},
		{
			name:    "bad feature",
			file:    File{Base: []TileDef{{Name: "x", Edges: []string{"none", "lake", "none", "none"}, Count: 1}}, River: river},
			wantErr: "unknown feature",
		},
		{
			name:    "negative count",
			file:    File{Base: []TileDef{{Name: "x", Edges: []string{"none", "none", "none", "none"}, Count: -1}}, River: river},
			wantErr: "negative count",
		},
		{
			name:    "duplicate",
			file:    File{Base: base, River: append([]TileDef{base[0]}, river...)},
			wantErr: "duplicate tile",
		},
		{
			name:    "missing name",
			file:    File{Base: []TileDef{{Edges: []string{"none", "none", "none", "none"}, Count: 1}}, River: river},
			wantErr: "without a name",
		},
		{
			name:    "bad palette",
			file:    File{Base: base, River: river, Palette: map[string]string{"city": "#FFF"}},
			wantErr: "invalid hex color",
		},
	}

	for _, tt := range tests {
		_, err := Build(tt.file)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: got error %v, want %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestBuildRejectsEmptyRanges(t *testing.T) {
	river := []TileDef{{Name: "riverew", Edges: []string{"none", "river", "none", "river"}, Count: 0}}
	base := []TileDef{{Name: "cloister", Edges: []string{"none", "none", "none", "none"}, Count: 4}}

	_, err := Build(File{Base: base, River: river})
	if !errors.Is(err, world.ErrEmptyDeck) {
		t.Errorf("Expected ErrEmptyDeck for a zero-count river range, got %v", err)
	}

	_, err = Build(File{River: []TileDef{{Name: "riverew", Edges: []string{"none", "river", "none", "river"}, Count: 1}}})
	if !errors.Is(err, world.ErrEmptyDeck) {
		t.Errorf("Expected ErrEmptyDeck for a missing base range, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"mini.json": {Data: []byte(`{
			"palette": {"river": "#0000FF"},
			"base": [{"name": "roadns", "edges": ["road", "none", "road", "none"], "count": 2}],
			"river": [{"name": "riverew", "edges": ["none", "river", "none", "river"], "count": 1}]
		}`)},
		"broken.json": {Data: []byte(`{"base": [`)},
	}

	file, err := LoadFS[File](fsys, "mini.json")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	set, err := Build(file)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := set.Names(set.Base); len(got) != 1 || got[0] != "roadns" {
		t.Errorf("Base names = %v", got)
	}
	if set.Palette.Color(world.FeatureRiver) != MustParseHexColor("#0000FF") {
		t.Error("River color not taken from palette")
	}

	if _, err := LoadFS[File](fsys, "broken.json"); err == nil {
		t.Error("Expected parse error for broken.json")
	}
	if _, err := LoadFS[File](fsys, "missing.json"); err == nil {
		t.Error("Expected read error for missing.json")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#3a8dde", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GG0000", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.json")
	data := `{
		"base": [{"name": "cloister", "edges": ["none", "none", "none", "none"], "count": 1, "cloister": true}],
		"river": [{"name": "riverew", "edges": ["none", "river", "none", "river"], "count": 1}]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !set.Catalog.Spec(set.Base.Lo).Cloister {
		t.Error("Expected cloister flag to be loaded")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
