package world

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDeck is returned when a range holds no tile with a positive count.
	ErrEmptyDeck = errors.New("world: range has no tiles to draw")
	// ErrRangeOutOfBounds is returned when a range does not fit the catalog.
	ErrRangeOutOfBounds = errors.New("world: range outside catalog")
)

// Catalog is the ordered, immutable list of tile kinds. Indices into the
// catalog identify a tile kind everywhere else.
type Catalog struct {
	specs  []TileSpec
	byName map[string]int
}

// NewCatalog creates a catalog from the given specs in order.
func NewCatalog(specs []TileSpec) *Catalog {
	c := &Catalog{
		specs:  make([]TileSpec, len(specs)),
		byName: make(map[string]int, len(specs)),
	}
	copy(c.specs, specs)
	for i, s := range c.specs {
		if s.Name != "" {
			c.byName[s.Name] = i
		}
	}
	return c
}

// Len returns the number of tile kinds.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// Spec returns the tile kind at index i.
func (c *Catalog) Spec(i int) TileSpec {
	return c.specs[i]
}

// Index returns the catalog index of the named tile kind.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// Range is a half-open interval [Lo, Hi) of catalog indices.
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// Contains returns true if index i falls in the range.
func (r Range) Contains(i int) bool {
	return i >= r.Lo && i < r.Hi
}

// Deck is a flat multiset of catalog indices. Drawing a uniform entry
// samples tile kinds in proportion to their counts.
type Deck []int

// Deck builds a draw deck holding each index in r repeated Count times.
func (c *Catalog) Deck(r Range) (Deck, error) {
	if r.Lo < 0 || r.Hi > len(c.specs) || r.Lo > r.Hi {
		return nil, fmt.Errorf("%w: [%d,%d) of %d", ErrRangeOutOfBounds, r.Lo, r.Hi, len(c.specs))
	}

	deck := make(Deck, 0, c.CountIn(r))
	for i := r.Lo; i < r.Hi; i++ {
		for n := 0; n < c.specs[i].Count; n++ {
			deck = append(deck, i)
		}
	}
	if len(deck) == 0 {
		return nil, fmt.Errorf("%w: [%d,%d)", ErrEmptyDeck, r.Lo, r.Hi)
	}
	return deck, nil
}

// CountIn returns the total number of physical tiles in the range.
func (c *Catalog) CountIn(r Range) int {
	total := 0
	for i := max(r.Lo, 0); i < min(r.Hi, len(c.specs)); i++ {
		if c.specs[i].Count > 0 {
			total += c.specs[i].Count
		}
	}
	return total
}
