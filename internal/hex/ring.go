package hex

import (
	"fmt"
	"iter"
)

// MaxDistance is the largest ring distance whose cells are all representable as
// a Relative.
const MaxDistance = 127

// Ring walks every offset at exactly one distance from the origin.
//
// The walk starts at side vector (1,0)·d and steps d times along the
// perpendicular of each of the six sides, rotating the side vector clockwise
// after each one. Distance 0 yields the origin once.
type Ring struct {
	side      Relative
	sideCount uint8
	distance  uint8
	offset    uint8
}

// NewRing returns a ring walk for distance d. It panics if d > MaxDistance.
func NewRing(d uint8) *Ring {
	if d > MaxDistance {
		panic(fmt.Sprintf("hex: ring distance %d exceeds %d", d, MaxDistance))
	}
	r := &Ring{distance: d}
	r.Reset()
	return r
}

// Reset rewinds the walk to its first offset.
func (r *Ring) Reset() {
	r.offset = 0
	if r.distance == 0 {
		// One step left; the scaled side is the origin.
		r.side = Relative{}
		r.sideCount = 5
		return
	}
	r.side = Directions[0]
	r.sideCount = 0
}

// Len returns the total number of offsets the ring yields.
func (r *Ring) Len() int {
	if r.distance == 0 {
		return 1
	}
	return 6 * int(r.distance)
}

// HasNext reports whether Next has another offset.
func (r *Ring) HasNext() bool {
	return r.sideCount <= 5
}

// Next returns the next offset, or false once the ring is exhausted.
func (r *Ring) Next() (Relative, bool) {
	if !r.HasNext() {
		return Relative{}, false
	}
	side := r.side.Scale(int8(r.distance))
	along := r.side.Neg().RotateCCW().Scale(int8(r.offset))
	r.offset++
	if r.offset >= r.distance {
		r.offset = 0
		r.side = r.side.RotateCW()
		r.sideCount++
	}
	return side.Add(along), true
}

// All yields the remaining offsets.
func (r *Ring) All() iter.Seq[Relative] {
	return func(yield func(Relative) bool) {
		for {
			d, ok := r.Next()
			if !ok || !yield(d) {
				return
			}
		}
	}
}

// Disk walks every offset within a distance of the origin, ring by ring,
// starting with the origin itself.
type Disk struct {
	ring     *Ring
	distance uint8
}

// NewDisk returns a disk walk of radius d. It panics if d > MaxDistance.
func NewDisk(d uint8) *Disk {
	if d > MaxDistance {
		panic(fmt.Sprintf("hex: disk radius %d exceeds %d", d, MaxDistance))
	}
	return &Disk{ring: NewRing(0), distance: d}
}

// Reset rewinds the walk to the origin.
func (k *Disk) Reset() {
	k.ring = NewRing(0)
}

// Len returns the total number of offsets the disk yields: 3(d²+d)+1.
func (k *Disk) Len() int {
	d := int(k.distance)
	return 3*(d*d+d) + 1
}

// HasNext reports whether Next has another offset.
func (k *Disk) HasNext() bool {
	return k.ring.HasNext() || k.ring.distance < k.distance
}

// Next returns the next offset, or false once the disk is exhausted.
func (k *Disk) Next() (Relative, bool) {
	if d, ok := k.ring.Next(); ok {
		return d, true
	}
	if k.distance <= k.ring.distance {
		return Relative{}, false
	}
	k.ring = NewRing(k.ring.distance + 1)
	return k.ring.Next()
}

// All yields the remaining offsets.
func (k *Disk) All() iter.Seq[Relative] {
	return func(yield func(Relative) bool) {
		for {
			d, ok := k.Next()
			if !ok || !yield(d) {
				return
			}
		}
	}
}

// RingAround is a Ring translated to an absolute centre.
type RingAround struct {
	center Coord
	offset *Ring
}

// NewRingAround returns the coordinates exactly d steps from center, unvalidated.
func NewRingAround(center Coord, d uint8) *RingAround {
	return &RingAround{center: center, offset: NewRing(d)}
}

// Center returns the coordinate the ring is drawn around.
func (it *RingAround) Center() Coord { return it.center }

// Len returns the total number of coordinates the ring yields.
func (it *RingAround) Len() int { return it.offset.Len() }

// HasNext reports whether Next has another coordinate.
func (it *RingAround) HasNext() bool { return it.offset.HasNext() }

// Reset rewinds the walk to its first coordinate.
func (it *RingAround) Reset() { it.offset.Reset() }

// Next returns the next coordinate, or false once the walk is exhausted.
func (it *RingAround) Next() (Coord, bool) {
	d, ok := it.offset.Next()
	if !ok {
		return Coord{}, false
	}
	return it.center.Add(d), true
}

// All yields the remaining coordinates.
func (it *RingAround) All() iter.Seq[Coord] {
	return translate(it.center, it.offset.All())
}

// DiskAround is a Disk translated to an absolute centre.
type DiskAround struct {
	center Coord
	offset *Disk
}

// NewDiskAround returns the coordinates within d steps of center, unvalidated.
func NewDiskAround(center Coord, d uint8) *DiskAround {
	return &DiskAround{center: center, offset: NewDisk(d)}
}

// Center returns the coordinate the disk is drawn around.
func (it *DiskAround) Center() Coord { return it.center }

// Len returns the total number of coordinates the disk yields.
func (it *DiskAround) Len() int { return it.offset.Len() }

// HasNext reports whether Next has another coordinate.
func (it *DiskAround) HasNext() bool { return it.offset.HasNext() }

// Reset rewinds the walk to the centre.
func (it *DiskAround) Reset() { it.offset.Reset() }

// Next returns the next coordinate, or false once the walk is exhausted.
func (it *DiskAround) Next() (Coord, bool) {
	d, ok := it.offset.Next()
	if !ok {
		return Coord{}, false
	}
	return it.center.Add(d), true
}

// All yields the remaining coordinates.
func (it *DiskAround) All() iter.Seq[Coord] {
	return translate(it.center, it.offset.All())
}

func translate(center Coord, offsets iter.Seq[Relative]) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for d := range offsets {
			if !yield(center.Add(d)) {
				return
			}
		}
	}
}
