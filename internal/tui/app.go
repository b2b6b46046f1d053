package tui

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/hexgrid/internal/hex"
	"github.com/talgya/hexgrid/internal/input"
)

// Terminal cells the map scrolls by per Home/End and PageUp/PageDown press.
const (
	PanColumns = 8
	PanRows    = 4
)

// App is the interactive map explorer: it applies input to the cursor, ring
// radius and occupants, then redraws.
type App struct {
	View   *View
	Poller *Poller

	state State
	ctrl  bool // LControl held
}

// NewApp builds an explorer with the cursor on the origin and a ring of 1.
func NewApp(view *View, poller *Poller) *App {
	return &App{
		View:   view,
		Poller: poller,
		state:  State{Cursor: hex.Axial(0, 0), Radius: 1},
	}
}

// State returns the current cursor, radius and tick.
func (a *App) State() State {
	return a.state
}

// Frame handles pending input and draws. It returns false when the user asked
// to quit, which makes it usable as an engine tick callback.
func (a *App) Frame(tick uint64) bool {
	for _, ev := range a.Poller.Poll() {
		if !a.Handle(ev) {
			return false
		}
	}
	a.state.Tick = tick
	a.View.Draw(a.state)
	return true
}

// Handle applies one input event. It returns false on a quit request.
func (a *App) Handle(ev input.Event) bool {
	switch ev := ev.(type) {
	case input.ExitRequested:
		return false
	case input.KeyboardInput:
		return a.key(ev)
	case input.CursorMoved:
		ctx := a.View.Tiles.Context()
		if c, ok := a.View.Viewport.CellOn(ev.X, ev.Y, ctx); ok && inStorage(c, ctx) {
			a.state.Cursor = c
		}
	case input.MouseButtonInput:
		if ev.Button == input.MouseLeft && ev.State == input.Pressed {
			a.toggle()
		}
	case input.MouseWheel:
		switch {
		case ev.Y > 0:
			a.grow(1)
		case ev.Y < 0:
			a.grow(-1)
		}
	case input.WindowResized:
		a.View.Screen.Sync()
	}
	return true
}

func (a *App) key(ev input.KeyboardInput) bool {
	if ev.Key == input.KeyLControl {
		a.ctrl = ev.State == input.Pressed
		return true
	}
	if ev.State != input.Pressed {
		return true
	}

	switch ev.Key {
	case input.KeyQ:
		return false
	case input.KeyC:
		if a.ctrl {
			return false
		}
	case input.KeyRight:
		a.move(hex.Directions[0])
	case input.KeyDown:
		a.move(hex.Directions[1])
	case input.KeyLeft:
		a.move(hex.Directions[3])
	case input.KeyUp:
		a.move(hex.Directions[4])
	case input.KeyPlus:
		a.grow(1)
	case input.KeyMinus:
		a.grow(-1)
	case input.KeySpace, input.KeyReturn:
		a.toggle()
	case input.KeyHome:
		a.View.Viewport.Pan(PanColumns, 0)
	case input.KeyEnd:
		a.View.Viewport.Pan(-PanColumns, 0)
	case input.KeyPageUp:
		a.View.Viewport.Pan(0, PanRows)
	case input.KeyPageDown:
		a.View.Viewport.Pan(0, -PanRows)
	}
	return true
}

// move steps the cursor by d. On a wrapping map the column q=Width has no
// storage of its own, so the cursor steps over it.
func (a *App) move(d hex.Relative) {
	ctx := a.View.Tiles.Context()
	next, ok := a.state.Cursor.OffsetBy(d, ctx)
	if ok && ctx.WrapX && next.Q() == ctx.Width {
		next, ok = next.OffsetBy(d, ctx)
	}
	if ok && inStorage(next, ctx) {
		a.state.Cursor = next
	}
}

func (a *App) grow(delta int) {
	r := int(a.state.Radius) + delta
	if r < 0 || r > hex.MaxDistance {
		return
	}
	a.state.Radius = uint8(r)
}

// toggle places a new occupant on an empty cursor tile, or clears an occupied one.
func (a *App) toggle() {
	t, ok := a.View.Tiles.GetTileMut(a.state.Cursor)
	if !ok {
		return
	}
	if t.Empty() {
		id := uuid.New()
		t.Add(id)
		slog.Debug("occupant placed", "id", id, "at", a.state.Cursor)
		return
	}
	for _, id := range t.Occupants() {
		t.Remove(id)
	}
	slog.Debug("tile cleared", "at", a.state.Cursor)
}
