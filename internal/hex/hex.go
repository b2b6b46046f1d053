// Package hex provides the hex grid coordinate algebra.
// Uses axial coordinates (q, r); the cubic triple (x, y, z) = (q, -q-r, r) is always
// derived, never stored, so x + y + z = 0 holds by construction.
package hex

import (
	"fmt"
	"iter"

	"github.com/talgya/hexgrid/internal/coord"
)

// Coord is an absolute position on the hex grid.
type Coord struct {
	q, r uint8
}

// Axial constructs an absolute coordinate.
func Axial(q, r uint8) Coord {
	return Coord{q: q, r: r}
}

// Q returns the column axis.
func (c Coord) Q() uint8 { return c.q }

// R returns the row axis.
func (c Coord) R() uint8 { return c.r }

// Axial returns the (q, r) pair.
func (c Coord) Axial() (q, r uint8) {
	return c.q, c.r
}

// X returns the first cube coordinate, equal to q.
func (c Coord) X() int16 { return int16(c.q) }

// Z returns the last cube coordinate, equal to r.
func (c Coord) Z() int16 { return int16(c.r) }

// Y returns the implicit third cube coordinate.
func (c Coord) Y() int16 {
	return -c.X() - c.Z()
}

// Cubic returns the (x, y, z) triple.
func (c Coord) Cubic() (x, y, z int16) {
	return c.X(), c.Y(), c.Z()
}

// Add moves the coordinate by a relative offset. Each axis wraps modulo 256.
func (c Coord) Add(d Relative) Coord {
	return Coord{q: c.q + uint8(d.dq), r: c.r + uint8(d.dr)}
}

// Sub moves the coordinate against a relative offset. Each axis wraps modulo 256.
func (c Coord) Sub(d Relative) Coord {
	return Coord{q: c.q - uint8(d.dq), r: c.r - uint8(d.dr)}
}

// Diff returns the offset leading from other to c, wrapped into int8.
func (c Coord) Diff(other Coord) Relative {
	return Relative{dq: int8(c.q - other.q), dr: int8(c.r - other.r)}
}

// RelativePosition is Diff; the map context plays no part for hexes.
func (c Coord) RelativePosition(other Coord, _ MapContext) Relative {
	return c.Diff(other)
}

// DistanceTo returns the hex step distance between two coordinates.
// The difference is taken in the wrapped relative domain, so the result is
// symmetric under 256-wraparound of either axis.
func (c Coord) DistanceTo(other Coord, _ MapContext) uint8 {
	return c.Diff(other).Length()
}

// NeighborsRing yields every coordinate exactly size steps from c.
// Results are not validated against m.
func (c Coord) NeighborsRing(size uint8, _ MapContext) iter.Seq[Coord] {
	return NewRingAround(c, size).All()
}

// NeighborsFull yields every coordinate within size steps of c, nearest first.
// Results are not validated against m.
func (c Coord) NeighborsFull(size uint8, _ MapContext) iter.Seq[Coord] {
	return NewDiskAround(c, size).All()
}

// String renders the coordinate as (q,r).
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.q, c.r)
}

// Grid is the hex Topology.
type Grid struct{}

// FromLinear returns the cell containing the pixel-space point (x, y).
func (Grid) FromLinear(x, y float64) Coord {
	return FromLinear(x, y)
}

func implements[C coord.Coord[C, R, M], R any, M coord.Context]() {}

var (
	_ = implements[Coord, Relative, MapContext]

	_ coord.Topology[Coord] = Grid{}
)
