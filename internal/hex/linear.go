package hex

import "math"

const (
	// Sqrt3 is √3; math has no constant for it.
	Sqrt3 = 1.73205080756887729352744634150587236694280525381038062805580697

	// CenterToPoint is the apothem-to-circumradius ratio 1/√3: the distance from a
	// cell centre to a corner when adjacent centres are one unit apart.
	CenterToPoint = 1 / Sqrt3
)

// FromLinear returns the cell whose tile contains the pixel-space point (x, y).
//
// The point is classified against the three families of hex edges with one floor
// each, then the three results are reconciled; ties on an edge always resolve the
// same way. Axes outside 0..255 wrap.
func FromLinear(x, y float64) Coord {
	q, r := AxialFromLinear(x, y)
	return Coord{q: uint8(q), r: uint8(r)}
}

// AxialFromLinear is FromLinear without the wrap: it returns the signed axial
// components of the cell containing (x, y).
func AxialFromLinear(x, y float64) (q, r int) {
	segment := math.Floor(x + Sqrt3*y + 1)
	fq := math.Floor((math.Floor(2*x+1) + segment) / 3)
	fr := math.Floor((segment + math.Floor(-x+Sqrt3*y+1)) / 3)
	return int(fq - fr), int(fr)
}

// ToLinear returns the pixel-space centre of the cell.
func (c Coord) ToLinear() (x, y float64) {
	return toLinear(float64(c.q), float64(c.r))
}

func toLinear(q, r float64) (x, y float64) {
	x = CenterToPoint * (Sqrt3*q + Sqrt3/2*r)
	y = CenterToPoint * (3.0 / 2.0 * r)
	return x, y
}
