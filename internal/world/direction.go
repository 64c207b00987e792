package world

// Direction is an absolute compass direction on the grid.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in edge order.
var Directions = [4]Direction{North, East, South, West}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the x,y offset of the neighbor in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	panic("world: invalid direction")
}

// Point is a cell coordinate on the grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the neighboring point in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{p.X + dx, p.Y + dy}
}
