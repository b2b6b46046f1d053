package tui

import (
	"math"

	"github.com/talgya/hexgrid/internal/hex"
)

// Viewport maps between terminal cells and hex pixel space.
type Viewport struct {
	OriginX, OriginY int     // Terminal cell of the hex origin
	ScaleX, ScaleY   float64 // Terminal cells per pixel-space unit
}

// DefaultViewport lays hex rows one terminal row apart with neighbouring
// columns two terminal columns apart, so odd rows sit half a hex to the right.
func DefaultViewport() Viewport {
	return Viewport{
		OriginX: 1,
		OriginY: 1,
		ScaleX:  2,
		ScaleY:  2 / hex.Sqrt3,
	}
}

// ScreenPos returns the terminal cell at the centre of c.
func (v Viewport) ScreenPos(c hex.Coord) (col, row int) {
	x, y := c.ToLinear()
	col = v.OriginX + int(math.Round(x*v.ScaleX))
	row = v.OriginY + int(math.Round(y*v.ScaleY))
	return col, row
}

// CellOn returns the map cell under a terminal cell. Columns left of q=0 wrap
// by the map's own width, not the integer's.
func (v Viewport) CellOn(col, row int, m hex.MapContext) (hex.Coord, bool) {
	return m.Resolve(hex.AxialFromLinear(v.linear(col, row)))
}

func (v Viewport) linear(col, row int) (x, y float64) {
	return float64(col-v.OriginX) / v.ScaleX, float64(row-v.OriginY) / v.ScaleY
}

// Pan moves the origin by (dx, dy) terminal cells.
func (v *Viewport) Pan(dx, dy int) {
	v.OriginX += dx
	v.OriginY += dy
}
