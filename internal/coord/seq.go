package coord

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Abs returns |v| widened to int so the minimum value of a signed type is safe.
func Abs[T constraints.Signed](v T) int {
	w := int(v)
	if w < 0 {
		return -w
	}
	return w
}

// Max3 returns the largest of three values.
func Max3[T constraints.Ordered](a, b, c T) T {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// Collect drains a sequence into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Count returns the number of elements a sequence yields.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Offset yields center.OffsetBy(d, m) for each offset that lands on the map.
// Unlike Valid it applies wraparound to the true signed sum.
func Offset[C Coord[C, R, M], R any, M any](center C, offsets iter.Seq[R], m M) iter.Seq[C] {
	return func(yield func(C) bool) {
		for d := range offsets {
			c, ok := center.OffsetBy(d, m)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Valid adapts a neighbour sequence so it only yields coordinates that can be
// repaired against m, already repaired. Neighbour iterators do no bounds work of
// their own; this is the usual way a caller applies the map's rules to them.
// Absolute coordinates have already wrapped at the integer width, so on a
// wrapping map prefer Offset for cells left of q=0.
func Valid[C Coord[C, R, M], R any, M any](seq iter.Seq[C], m M) iter.Seq[C] {
	return func(yield func(C) bool) {
		for c := range seq {
			fixed, ok := c.Revalidate(m)
			if !ok {
				continue
			}
			if !yield(fixed) {
				return
			}
		}
	}
}
