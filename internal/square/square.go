// Package square is a square-cell topology with eight-way adjacency. It shares
// the hex package's validity, wrap and index rules, so storage and front ends can
// swap one grid for the other.
package square

import (
	"fmt"
	"iter"
	"math"

	"github.com/talgya/hexgrid/internal/coord"
)

// MaxDistance is the largest ring distance whose cells are all representable.
const MaxDistance = 127

// Coord is an absolute square cell.
type Coord struct {
	X, Y uint8
}

// Relative is a signed displacement between square cells.
type Relative struct {
	DX, DY int8
}

// MapContext has the same meaning as hex.MapContext.
type MapContext struct {
	Width  uint8
	Height uint8
	WrapX  bool
}

// Cells returns the storage length of a map built on this context.
func (m MapContext) Cells() int {
	return int(m.Width) * int(m.Height)
}

// Add moves the cell by d. Each axis wraps modulo 256.
func (c Coord) Add(d Relative) Coord {
	return Coord{X: c.X + uint8(d.DX), Y: c.Y + uint8(d.DY)}
}

// Diff returns the offset leading from o to c, wrapped into int8.
func (c Coord) Diff(o Coord) Relative {
	return Relative{DX: int8(c.X - o.X), DY: int8(c.Y - o.Y)}
}

// Scale multiplies both axes by k.
func (d Relative) Scale(k int8) Relative {
	return Relative{DX: d.DX * k, DY: d.DY * k}
}

// Length is the Chebyshev distance from the origin.
func (d Relative) Length() uint8 {
	return uint8(max(coord.Abs(d.DX), coord.Abs(d.DY)))
}

// ToLinear returns the cell centre; cells are one unit square.
func (c Coord) ToLinear() (x, y float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}

// RelativePosition is Diff.
func (c Coord) RelativePosition(other Coord, _ MapContext) Relative {
	return c.Diff(other)
}

// DistanceTo is the king-move distance between two cells.
func (c Coord) DistanceTo(other Coord, _ MapContext) uint8 {
	return c.Diff(other).Length()
}

// OffsetBy follows the same rules as hex.Coord.OffsetBy.
func (c Coord) OffsetBy(d Relative, m MapContext) (Coord, bool) {
	x := int(c.X) + int(d.DX)
	y := int(c.Y) + int(d.DY)
	if y < 0 || y > int(m.Height) {
		return Coord{}, false
	}
	if m.WrapX {
		n := int(m.Width) + 1
		x = ((x % n) + n) % n
	} else if x < 0 || x > int(m.Width) {
		return Coord{}, false
	}
	return Coord{X: uint8(x), Y: uint8(y)}, true
}

// IsTechnicallyValid reports whether Y is in range and X is in range or wraps.
func (c Coord) IsTechnicallyValid(m MapContext) bool {
	return c.Y <= m.Height && (c.X <= m.Width || m.WrapX)
}

// IsFullyValid reports whether the cell needs no repair.
func (c Coord) IsFullyValid(m MapContext) bool {
	return c.X <= m.Width && c.Y <= m.Height
}

// Revalidate wraps X when the map allows it.
func (c Coord) Revalidate(m MapContext) (Coord, bool) {
	if c.IsFullyValid(m) {
		return c, true
	}
	if !m.WrapX || !c.IsTechnicallyValid(m) {
		return Coord{}, false
	}
	return Coord{X: uint8(uint16(c.X) % (uint16(m.Width) + 1)), Y: c.Y}, true
}

// Idx revalidates the cell and returns X + Y*Width.
func (c Coord) Idx(m MapContext) (int, bool) {
	v, ok := c.Revalidate(m)
	if !ok {
		return 0, false
	}
	return int(v.X) + int(v.Y)*int(m.Width), true
}

// NeighborsRing yields the cells exactly size steps from c, unvalidated.
func (c Coord) NeighborsRing(size uint8, _ MapContext) iter.Seq[Coord] {
	return around(c, Ring(size))
}

// NeighborsFull yields the cells within size steps of c, unvalidated.
func (c Coord) NeighborsFull(size uint8, _ MapContext) iter.Seq[Coord] {
	return around(c, Disk(size))
}

// String renders the cell as [x,y].
func (c Coord) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Y)
}

// Ring yields the 8d offsets on the square ring at distance d, walking the
// four sides clockwise from the top-left corner. Distance 0 yields the origin.
// It panics if d > MaxDistance.
func Ring(d uint8) iter.Seq[Relative] {
	if d > MaxDistance {
		panic(fmt.Sprintf("square: ring distance %d exceeds %d", d, MaxDistance))
	}
	return func(yield func(Relative) bool) {
		if d == 0 {
			yield(Relative{})
			return
		}
		n := int8(d)
		corner := Relative{DX: -n, DY: -n}
		sides := [4]Relative{{DX: 1}, {DY: 1}, {DX: -1}, {DY: -1}}
		for _, step := range sides {
			for i := 0; i < 2*int(d); i++ {
				if !yield(corner) {
					return
				}
				corner = Relative{DX: corner.DX + step.DX, DY: corner.DY + step.DY}
			}
		}
	}
}

// Disk yields every offset within distance d, ring by ring.
func Disk(d uint8) iter.Seq[Relative] {
	return func(yield func(Relative) bool) {
		for k := 0; k <= int(d); k++ {
			for v := range Ring(uint8(k)) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func around(center Coord, offsets iter.Seq[Relative]) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for d := range offsets {
			if !yield(center.Add(d)) {
				return
			}
		}
	}
}

// Grid is the square Topology.
type Grid struct{}

// FromLinear returns the cell containing (x, y). Axes outside 0..255 wrap.
func (Grid) FromLinear(x, y float64) Coord {
	return Coord{X: uint8(int64(math.Floor(x))), Y: uint8(int64(math.Floor(y)))}
}

func implements[C coord.Coord[C, R, M], R any, M coord.Context]() {}

var (
	_ = implements[Coord, Relative, MapContext]

	_ coord.Topology[Coord] = Grid{}
)
