package hex

import (
	"fmt"

	"github.com/talgya/hexgrid/internal/coord"
)

// Relative is a signed axial displacement: a direction, an offset, or the
// result of a rotation. Arithmetic between relatives wraps modulo 256 per axis.
type Relative struct {
	dq, dr int8
}

// RelativeAxial constructs a relative coordinate.
func RelativeAxial(dq, dr int8) Relative {
	return Relative{dq: dq, dr: dr}
}

// Directions are the six unit offsets in the order a ring walk visits them.
var Directions = [6]Relative{
	{dq: 1, dr: 0},
	{dq: 0, dr: 1},
	{dq: -1, dr: 1},
	{dq: -1, dr: 0},
	{dq: 0, dr: -1},
	{dq: 1, dr: -1},
}

// Q returns the column offset.
func (d Relative) Q() int8 { return d.dq }

// R returns the row offset.
func (d Relative) R() int8 { return d.dr }

// Axial returns the (dq, dr) pair.
func (d Relative) Axial() (dq, dr int8) {
	return d.dq, d.dr
}

// X returns the first cube coordinate, equal to dq.
func (d Relative) X() int8 { return d.dq }

// Z returns the last cube coordinate, equal to dr.
func (d Relative) Z() int8 { return d.dr }

// Y returns the implicit third cube coordinate, wrapped into int8.
func (d Relative) Y() int8 {
	return -d.dq - d.dr
}

// Cubic returns the (x, y, z) triple.
func (d Relative) Cubic() (x, y, z int8) {
	return d.X(), d.Y(), d.Z()
}

// Add sums two offsets, wrapping each axis.
func (d Relative) Add(o Relative) Relative {
	return Relative{dq: d.dq + o.dq, dr: d.dr + o.dr}
}

// Sub subtracts o, wrapping each axis.
func (d Relative) Sub(o Relative) Relative {
	return Relative{dq: d.dq - o.dq, dr: d.dr - o.dr}
}

// Neg points the offset the opposite way.
func (d Relative) Neg() Relative {
	return Relative{dq: -d.dq, dr: -d.dr}
}

// Scale multiplies both axes by k.
func (d Relative) Scale(k int8) Relative {
	return Relative{dq: d.dq * k, dr: d.dr * k}
}

// AddTo applies the offset to an absolute coordinate; same as c.Add(d).
func (d Relative) AddTo(c Coord) Coord {
	return c.Add(d)
}

// SubFrom returns the offset reinterpreted as an absolute coordinate minus c.
func (d Relative) SubFrom(c Coord) Coord {
	return Coord{q: uint8(d.dq) - c.q, r: uint8(d.dr) - c.r}
}

// RotateCW rotates 60° clockwise about the origin: (x, y, z) -> (-z, -x, -y).
func (d Relative) RotateCW() Relative {
	_, y, z := d.Neg().Cubic()
	return Relative{dq: z, dr: y}
}

// RotateCCW rotates 60° counter-clockwise about the origin: (x, y, z) -> (-y, -z, -x).
func (d Relative) RotateCCW() Relative {
	x, y, _ := d.Neg().Cubic()
	return Relative{dq: y, dr: x}
}

// Length is the step distance from the origin: max(|x|, |y|, |z|).
func (d Relative) Length() uint8 {
	x, y, z := d.Cubic()
	return uint8(coord.Max3(coord.Abs(x), coord.Abs(y), coord.Abs(z)))
}

// DistanceTo returns the step distance between two relative coordinates.
func (d Relative) DistanceTo(o Relative) uint8 {
	return d.Sub(o).Length()
}

// ToLinear returns the pixel-space displacement of the offset.
func (d Relative) ToLinear() (x, y float64) {
	return toLinear(float64(d.dq), float64(d.dr))
}

// String renders the offset as Δ(dq,dr).
func (d Relative) String() string {
	return fmt.Sprintf("Δ(%d,%d)", d.dq, d.dr)
}
