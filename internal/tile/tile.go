// Package tile provides per-cell occupant sets and the dense storage that holds
// one per grid cell, addressed through a coordinate's Idx.
package tile

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// Reader is shared, read-only access to a tile.
type Reader interface {
	Contains(id uuid.UUID) bool
	Len() int
	Empty() bool
	Occupants() []uuid.UUID
}

// Tile holds the identifiers of whatever occupies a cell. The identifiers are
// minted and owned elsewhere; a tile only records membership.
type Tile struct {
	occupants map[uuid.UUID]struct{}
}

// Add records an occupant. Returns false if it was already present.
func (t *Tile) Add(id uuid.UUID) bool {
	if t.occupants == nil {
		t.occupants = make(map[uuid.UUID]struct{})
	}
	if _, ok := t.occupants[id]; ok {
		return false
	}
	t.occupants[id] = struct{}{}
	return true
}

// Remove drops an occupant. Returns false if it was not present.
func (t *Tile) Remove(id uuid.UUID) bool {
	if _, ok := t.occupants[id]; !ok {
		return false
	}
	delete(t.occupants, id)
	return true
}

// Contains reports whether id occupies the tile.
func (t *Tile) Contains(id uuid.UUID) bool {
	_, ok := t.occupants[id]
	return ok
}

// Len returns the number of occupants.
func (t *Tile) Len() int { return len(t.occupants) }

// Empty reports whether the tile has no occupants.
func (t *Tile) Empty() bool { return len(t.occupants) == 0 }

// Occupants returns the identifiers in byte order.
func (t *Tile) Occupants() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.occupants))
	for id := range t.occupants {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return ids
}
