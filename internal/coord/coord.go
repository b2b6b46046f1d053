// Package coord defines the capability contract a grid topology implements so that
// map-level code (tile storage, terrain, front ends) never needs to know whether it is
// addressing hexes or squares.
package coord

import "iter"

// Coord is the capability set of an absolute grid address C with relative offset
// type R, evaluated against a map context M.
//
// Implementations are value types. Every fallible operation reports failure through
// its boolean result; none of them panic on out-of-range input.
type Coord[C any, R any, M any] interface {
	comparable

	// ToLinear returns the continuous position of the cell centre.
	ToLinear() (x, y float64)

	// RelativePosition returns the offset that leads from other to the receiver.
	RelativePosition(other C, m M) R
	DistanceTo(other C, m M) uint8
	OffsetBy(offset R, m M) (C, bool)

	IsTechnicallyValid(m M) bool
	IsFullyValid(m M) bool

	// Revalidate converts a technically valid coordinate into a fully valid one
	// (such as through wrapping).
	Revalidate(m M) (C, bool)

	// Idx converts a coordinate into an index into dense storage.
	Idx(m M) (int, bool)

	NeighborsRing(size uint8, m M) iter.Seq[C]
	NeighborsFull(size uint8, m M) iter.Seq[C]
}

// Topology supplies the operations that produce coordinates from nothing.
type Topology[C any] interface {
	FromLinear(x, y float64) C
}

// Context is what storage needs to know about a map context.
type Context interface {
	// Cells is the number of storage slots a map built on this context holds.
	Cells() int
}
