package tile

import (
	"sync"

	"github.com/talgya/hexgrid/internal/coord"
)

// Locked guards a Map for use from several goroutines: any number of readers
// of a tile, or one writer.
type Locked[C coord.Coord[C, R, M], R any, M coord.Context] struct {
	mu    sync.RWMutex
	tiles *Map[C, R, M]
}

// NewLocked wraps storage. The caller must stop using s directly.
func NewLocked[C coord.Coord[C, R, M], R any, M coord.Context](s *Map[C, R, M]) *Locked[C, R, M] {
	return &Locked[C, R, M]{tiles: s}
}

// View calls fn with shared access to the tile at c. Returns false, without
// calling fn, if c is not addressable.
func (l *Locked[C, R, M]) View(c C, fn func(Reader)) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.tiles.GetTile(c)
	if !ok {
		return false
	}
	fn(t)
	return true
}

// Update calls fn with exclusive access to the tile at c.
func (l *Locked[C, R, M]) Update(c C, fn func(*Tile)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.tiles.GetTileMut(c)
	if !ok {
		return false
	}
	fn(t)
	return true
}

// Context returns the wrapped storage's map context.
func (l *Locked[C, R, M]) Context() M {
	return l.tiles.Context()
}
