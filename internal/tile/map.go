package tile

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/hexgrid/internal/coord"
	"github.com/talgya/hexgrid/internal/hex"
)

// Map holds one Tile per storage cell of a map context. It never resizes; a
// different context needs a new Map.
type Map[C coord.Coord[C, R, M], R any, M coord.Context] struct {
	context M
	tiles   []Tile
}

// HexMap is tile storage addressed by hex coordinates.
type HexMap = Map[hex.Coord, hex.Relative, hex.MapContext]

// New creates empty storage sized to the context.
func New[C coord.Coord[C, R, M], R any, M coord.Context](m M) *Map[C, R, M] {
	return &Map[C, R, M]{
		context: m,
		tiles:   make([]Tile, m.Cells()),
	}
}

// NewHexMap creates empty hex storage of width*height tiles.
func NewHexMap(width, height uint8, wrapX bool) *HexMap {
	return New[hex.Coord, hex.Relative](hex.MapContext{
		Width:  width,
		Height: height,
		WrapX:  wrapX,
	})
}

// Context returns the map context the storage was built for.
func (s *Map[C, R, M]) Context() M {
	return s.context
}

// Len returns the number of tiles.
func (s *Map[C, R, M]) Len() int {
	return len(s.tiles)
}

func (s *Map[C, R, M]) index(c C) (int, bool) {
	i, ok := c.Idx(s.context)
	if !ok || i < 0 || i >= len(s.tiles) {
		return 0, false
	}
	return i, true
}

// GetTile returns read-only access to the tile at c, or false if c has no index
// or its index lies past the end of storage.
func (s *Map[C, R, M]) GetTile(c C) (Reader, bool) {
	i, ok := s.index(c)
	if !ok {
		return nil, false
	}
	return &s.tiles[i], true
}

// GetTileMut returns the tile at c for modification.
func (s *Map[C, R, M]) GetTileMut(c C) (*Tile, bool) {
	i, ok := s.index(c)
	if !ok {
		return nil, false
	}
	return &s.tiles[i], true
}

// Place adds an occupant to the tile at c. Returns false if c is not
// addressable or the occupant was already there.
func (s *Map[C, R, M]) Place(id uuid.UUID, c C) bool {
	t, ok := s.GetTileMut(c)
	return ok && t.Add(id)
}

// Evict removes an occupant from the tile at c.
func (s *Map[C, R, M]) Evict(id uuid.UUID, c C) bool {
	t, ok := s.GetTileMut(c)
	return ok && t.Remove(id)
}

// Occupied returns the number of tiles holding at least one occupant.
func (s *Map[C, R, M]) Occupied() int {
	n := 0
	for i := range s.tiles {
		if !s.tiles[i].Empty() {
			n++
		}
	}
	return n
}

// String returns a summary of the storage.
func (s *Map[C, R, M]) String() string {
	return fmt.Sprintf("TileMap(tiles=%d, occupied=%d)", s.Len(), s.Occupied())
}
