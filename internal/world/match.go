package world

import "github.com/zyedidia/generic/mapset"

// CanPlace reports whether tile kind `tile` with the given rotation may be put
// at (x,y): every occupied neighbor must show the same feature on the shared
// edge. Empty and off-grid neighbors impose no constraint.
func CanPlace(g *Grid, c *Catalog, tile, x, y, rotation int) bool {
	spec := c.Spec(tile)
	for _, d := range Directions {
		dx, dy := d.Delta()
		other, ok := g.At(x+dx, y+dy)
		if !ok {
			continue
		}
		if spec.Edge(d, rotation) != FacingEdge(c, other, d.Opposite()) {
			return false
		}
	}
	return true
}

// FacingEdge returns the feature a placed tile shows toward absolute direction d.
func FacingEdge(c *Catalog, t PlacedTile, d Direction) Feature {
	return c.Spec(t.Spec).Edge(d, t.Rotation)
}

// Mismatches returns every occupied cell that disagrees with at least one
// occupied neighbor.
func Mismatches(g *Grid, c *Catalog) []Point {
	bad := make([]Point, 0)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t, ok := g.At(x, y)
			if !ok {
				continue
			}
			if !CanPlace(g, c, t.Spec, x, y, t.Rotation) {
				bad = append(bad, Point{x, y})
			}
		}
	}
	return bad
}

// DanglingRivers returns the occupied cells with a river edge that points at
// an empty in-bounds cell or at a neighbor edge that is not a river.
func DanglingRivers(g *Grid, c *Catalog) []Point {
	dangling := make([]Point, 0)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t, ok := g.At(x, y)
			if !ok {
				continue
			}
			p := Point{x, y}
			for _, d := range Directions {
				if FacingEdge(c, t, d) != FeatureRiver {
					continue
				}
				n := p.Add(d)
				if !g.InBounds(n.X, n.Y) {
					continue
				}
				other, ok := g.At(n.X, n.Y)
				if !ok || FacingEdge(c, other, d.Opposite()) != FeatureRiver {
					dangling = append(dangling, p)
					break
				}
			}
		}
	}
	return dangling
}

// RiverNetwork returns the cells reachable from start by crossing river edges
// shared by two placed tiles. The start cell is included when occupied.
func RiverNetwork(g *Grid, c *Catalog, start Point) mapset.Set[Point] {
	network := mapset.New[Point]()
	if _, ok := g.At(start.X, start.Y); !ok {
		return network
	}

	network.Put(start)
	stack := []Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t, _ := g.At(p.X, p.Y)
		for _, d := range Directions {
			if FacingEdge(c, t, d) != FeatureRiver {
				continue
			}
			n := p.Add(d)
			other, ok := g.At(n.X, n.Y)
			if !ok || network.Has(n) {
				continue
			}
			if FacingEdge(c, other, d.Opposite()) == FeatureRiver {
				network.Put(n)
				stack = append(stack, n)
			}
		}
	}
	return network
}
