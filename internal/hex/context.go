package hex

import (
	"fmt"
	"iter"
)

// MapContext describes the bounded rectangle a coordinate is judged against.
// Width and Height are the largest valid axial index on each axis (inclusive).
type MapContext struct {
	Width  uint8
	Height uint8
	WrapX  bool // q is taken modulo Width+1, making the map cylindrical
}

// Cells returns the storage length of a map built on this context.
func (m MapContext) Cells() int {
	return int(m.Width) * int(m.Height)
}

// Coords yields, in index order, every coordinate whose index falls inside
// storage: q in [0, Width), r in [0, Height).
func (m MapContext) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for r := 0; r < int(m.Height); r++ {
			for q := 0; q < int(m.Width); q++ {
				if !yield(Coord{q: uint8(q), r: uint8(r)}) {
					return
				}
			}
		}
	}
}

// String returns a summary of the context.
func (m MapContext) String() string {
	return fmt.Sprintf("HexMap(width=%d, height=%d, wrap_x=%t)", m.Width, m.Height, m.WrapX)
}

// IsTechnicallyValid reports whether r is in range and q is either in range or
// repairable by wrapping.
func (c Coord) IsTechnicallyValid(m MapContext) bool {
	return c.r <= m.Height && (c.q <= m.Width || m.WrapX)
}

// IsFullyValid reports whether the coordinate needs no repair at all.
func (c Coord) IsFullyValid(m MapContext) bool {
	return c.q <= m.Width && c.r <= m.Height
}

// Revalidate returns c unchanged when fully valid, wraps q when the map allows
// it, and reports false when the address is unrecoverable.
func (c Coord) Revalidate(m MapContext) (Coord, bool) {
	if c.IsFullyValid(m) {
		return c, true
	}
	if !m.WrapX || !c.IsTechnicallyValid(m) {
		return Coord{}, false
	}
	q := uint16(c.q) % (uint16(m.Width) + 1)
	return Coord{q: uint8(q), r: c.r}, true
}

// OffsetBy applies a relative offset without 256-wraparound: r must stay in
// [0, Height], and q must stay in [0, Width] unless the map wraps, in which case
// it is reduced modulo Width+1.
func (c Coord) OffsetBy(d Relative, m MapContext) (Coord, bool) {
	return m.Resolve(int(c.q)+int(d.dq), int(c.r)+int(d.dr))
}

// Resolve turns signed axial components into a coordinate under the same rules
// as OffsetBy.
func (m MapContext) Resolve(q, r int) (Coord, bool) {
	if r < 0 || r > int(m.Height) {
		return Coord{}, false
	}
	if m.WrapX {
		q = euclidMod(q, int(m.Width)+1)
	} else if q < 0 || q > int(m.Width) {
		return Coord{}, false
	}
	return Coord{q: uint8(q), r: uint8(r)}, true
}

// Idx revalidates the coordinate and returns q + r*Width.
func (c Coord) Idx(m MapContext) (int, bool) {
	v, ok := c.Revalidate(m)
	if !ok {
		return 0, false
	}
	return int(v.q) + int(v.r)*int(m.Width), true
}

func euclidMod(a, n int) int {
	v := a % n
	if v < 0 {
		v += n
	}
	return v
}
