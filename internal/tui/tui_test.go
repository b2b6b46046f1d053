package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/talgya/hexgrid/internal/hex"
	"github.com/talgya/hexgrid/internal/input"
	"github.com/talgya/hexgrid/internal/terrain"
	"github.com/talgya/hexgrid/internal/tile"
)

func press(k input.KeyCode) input.Event {
	return input.KeyboardInput{Key: k, State: input.Pressed}
}

func release(k input.KeyCode) input.Event {
	return input.KeyboardInput{Key: k, State: input.Released}
}

func TestTranslateKeys(t *testing.T) {
	Convey("Given a translator", t, func() {
		tr := NewTranslator(0, 0)

		Convey("A plain key is pressed then released", func() {
			evs := tr.Translate(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
			So(evs, ShouldResemble, []input.Event{press(input.KeyLeft), release(input.KeyLeft)})
		})

		Convey("Letters ignore case", func() {
			evs := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone))
			So(evs, ShouldResemble, []input.Event{press(input.KeyQ), release(input.KeyQ)})
		})

		Convey("Modifiers bracket the key", func() {
			evs := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModShift|tcell.ModAlt))
			So(evs, ShouldResemble, []input.Event{
				press(input.KeyLShift), press(input.KeyLAlt),
				press(input.KeyX),
				release(input.KeyX),
				release(input.KeyLAlt), release(input.KeyLShift),
			})
		})

		Convey("Backtab becomes shift and tab", func() {
			evs := tr.Translate(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
			So(evs, ShouldResemble, []input.Event{
				press(input.KeyLShift), press(input.KeyTab),
				release(input.KeyTab), release(input.KeyLShift),
			})
		})

		Convey("Control chords report the letter with control held once", func() {
			evs := tr.Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
			So(evs, ShouldResemble, []input.Event{
				press(input.KeyLControl), press(input.KeyC),
				release(input.KeyC), release(input.KeyLControl),
			})
		})

		Convey("Function keys map by number", func() {
			evs := tr.Translate(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
			So(evs, ShouldResemble, []input.Event{press(input.KeyF5), release(input.KeyF5)})

			So(tr.Translate(tcell.NewEventKey(tcell.KeyF30, 0, tcell.ModNone)), ShouldBeEmpty)
		})

		Convey("Escape also asks to exit", func() {
			evs := tr.Translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
			So(evs, ShouldResemble, []input.Event{
				press(input.KeyEscape), release(input.KeyEscape), input.ExitRequested{},
			})
		})

		Convey("Unmapped characters produce nothing", func() {
			So(tr.Translate(tcell.NewEventKey(tcell.KeyRune, '§', tcell.ModNone)), ShouldBeEmpty)
		})
	})
}

func TestTranslateMouse(t *testing.T) {
	Convey("Given a translator with the cursor at (10, 5)", t, func() {
		tr := NewTranslator(10, 5)

		Convey("Motion reports the delta and the new position", func() {
			evs := tr.Translate(tcell.NewEventMouse(13, 4, tcell.ButtonNone, tcell.ModNone))
			So(evs, ShouldResemble, []input.Event{
				input.MouseMotion{DX: 3, DY: -1},
				input.CursorMoved{X: 13, Y: 4},
			})
			x, y := tr.Cursor()
			So(x, ShouldEqual, 13)
			So(y, ShouldEqual, 4)
		})

		Convey("Buttons report edges, not levels", func() {
			down := tr.Translate(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
			So(down[2:], ShouldResemble, []input.Event{
				input.MouseButtonInput{Button: input.MouseLeft, State: input.Pressed},
			})

			held := tr.Translate(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
			So(held, ShouldHaveLength, 2)

			up := tr.Translate(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))
			So(up[2:], ShouldResemble, []input.Event{
				input.MouseButtonInput{Button: input.MouseLeft, State: input.Released},
			})
		})

		Convey("Wheel steps are lines", func() {
			evs := tr.Translate(tcell.NewEventMouse(10, 5, tcell.WheelDown, tcell.ModNone))
			So(evs[2:], ShouldResemble, []input.Event{input.MouseWheel{Unit: input.ScrollLine, Y: -1}})
		})
	})

	Convey("Resizes carry the new size", t, func() {
		evs := NewTranslator(0, 0).Translate(tcell.NewEventResize(80, 24))
		So(evs, ShouldResemble, []input.Event{input.WindowResized{Width: 80, Height: 24}})
	})
}

func TestViewport(t *testing.T) {
	Convey("Every cell centre maps back to its own cell", t, func() {
		v := DefaultViewport()
		ctx := hex.MapContext{Width: 40, Height: 30}
		var bad []hex.Coord
		for c := range ctx.Coords() {
			col, row := v.ScreenPos(c)
			if got, ok := v.CellOn(col, row, ctx); !ok || got != c {
				bad = append(bad, c)
			}
		}
		So(bad, ShouldBeEmpty)
	})

	Convey("Rows are one line apart and odd rows are shifted", t, func() {
		v := DefaultViewport()
		col0, row0 := v.ScreenPos(hex.Axial(0, 0))
		col1, row1 := v.ScreenPos(hex.Axial(0, 1))
		So(row1-row0, ShouldEqual, 1)
		So(col1-col0, ShouldEqual, 1)

		c, ok := v.CellOn(col1, row1, hex.MapContext{Width: 4, Height: 4})
		So(ok, ShouldBeTrue)
		So(c, ShouldResemble, hex.Axial(0, 1))

		v.Pan(5, 2)
		col, row := v.ScreenPos(hex.Axial(0, 0))
		So(col, ShouldEqual, col0+5)
		So(row, ShouldEqual, row0+2)
	})
}

func newSimScreen(w, h int) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("UTF-8")
	So(s.Init(), ShouldBeNil)
	s.SetSize(w, h)
	return s
}

func TestPoller(t *testing.T) {
	Convey("Given a poller on a simulated screen", t, func() {
		s := newSimScreen(80, 24)
		ctx, cancel := context.WithCancel(context.Background())
		Reset(cancel)

		p := NewPoller(s, 0)
		p.Start(ctx)

		Convey("Poll does not block when nothing is waiting", func() {
			start := time.Now()
			p.Poll()
			So(time.Since(start), ShouldBeLessThan, time.Second)
		})

		Convey("Posted events arrive translated with resizes coalesced last", func() {
			So(s.PostEvent(tcell.NewEventResize(100, 30)), ShouldBeNil)
			So(s.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)), ShouldBeNil)
			So(s.PostEvent(tcell.NewEventResize(120, 40)), ShouldBeNil)

			var got []input.Event
			deadline := time.Now().Add(2 * time.Second)
			last := input.WindowResized{Width: 120, Height: 40}
			for (len(got) == 0 || got[len(got)-1] != input.Event(last)) && time.Now().Before(deadline) {
				got = append(got, p.Poll()...)
				time.Sleep(5 * time.Millisecond)
			}
			So(got, ShouldContain, press(input.KeyA))
			So(got, ShouldContain, release(input.KeyA))
			So(got[len(got)-1], ShouldResemble, input.Event(last))
			So(got, ShouldNotContain, input.Event(input.WindowResized{Width: 100, Height: 30}))
		})

		Convey("Finalizing the screen ends the stream with an exit", func() {
			s.Fini()
			var got []input.Event
			deadline := time.Now().Add(2 * time.Second)
			for !p.closed && time.Now().Before(deadline) {
				got = append(got, p.Poll()...)
				time.Sleep(5 * time.Millisecond)
			}
			So(got, ShouldContain, input.ExitRequested{})
			So(p.Poll(), ShouldResemble, []input.Event{input.ExitRequested{}})
		})
	})
}

func TestApp(t *testing.T) {
	Convey("Given an explorer over a wrapping 8x6 map", t, func() {
		s := newSimScreen(40, 12)
		defer s.Fini()

		tiles := tile.NewHexMap(8, 6, true)
		field := terrain.Generate(tiles.Context(), terrain.GenConfig{
			Seed: 3, SeaLevel: 0.3, HillLvl: 0.6, MountainLvl: 0.8, Octaves: 2, Frequency: 0.2,
		})
		view := &View{Screen: s, Viewport: DefaultViewport(), Tiles: tiles, Terrain: field}
		app := NewApp(view, NewPoller(s, 0))

		Convey("Arrow keys move the cursor and wrap across the seam", func() {
			So(app.Handle(press(input.KeyLeft)), ShouldBeTrue)
			So(app.State().Cursor, ShouldResemble, hex.Axial(7, 0))

			app.Handle(press(input.KeyRight))
			So(app.State().Cursor, ShouldResemble, hex.Axial(0, 0))

			app.Handle(press(input.KeyUp))
			So(app.State().Cursor, ShouldResemble, hex.Axial(0, 0))

			app.Handle(press(input.KeyDown))
			So(app.State().Cursor, ShouldResemble, hex.Axial(0, 1))
		})

		Convey("Radius stays within ring bounds", func() {
			app.Handle(press(input.KeyMinus))
			app.Handle(press(input.KeyMinus))
			So(app.State().Radius, ShouldEqual, 0)

			app.Handle(input.MouseWheel{Unit: input.ScrollLine, Y: 1})
			app.Handle(press(input.KeyPlus))
			So(app.State().Radius, ShouldEqual, 2)
		})

		Convey("Space toggles an occupant on the cursor tile", func() {
			app.Handle(press(input.KeySpace))
			So(tiles.Occupied(), ShouldEqual, 1)
			app.Handle(press(input.KeySpace))
			So(tiles.Occupied(), ShouldEqual, 0)
		})

		Convey("The mouse picks the cell under the pointer", func() {
			col, row := view.Viewport.ScreenPos(hex.Axial(3, 2))
			app.Handle(input.CursorMoved{X: col, Y: row})
			So(app.State().Cursor, ShouldResemble, hex.Axial(3, 2))

			app.Handle(input.MouseButtonInput{Button: input.MouseLeft, State: input.Pressed})
			tl, _ := tiles.GetTile(hex.Axial(3, 2))
			So(tl.Len(), ShouldEqual, 1)
		})

		Convey("Pointing left of column 0 wraps by the map width", func() {
			col, row := view.Viewport.ScreenPos(hex.Axial(0, 4))
			app.Handle(input.CursorMoved{X: col, Y: row})
			So(app.State().Cursor, ShouldResemble, hex.Axial(0, 4))

			// One hex left is q=-1, the storage-less column q=Width.
			app.Handle(input.CursorMoved{X: col - 2, Y: row})
			So(app.State().Cursor, ShouldResemble, hex.Axial(0, 4))

			app.Handle(input.CursorMoved{X: col - 4, Y: row})
			So(app.State().Cursor, ShouldResemble, hex.Axial(7, 4))
		})

		Convey("Pointing above the map leaves the cursor alone", func() {
			col, _ := view.Viewport.ScreenPos(hex.Axial(2, 0))
			app.Handle(input.CursorMoved{X: col, Y: 0})
			So(app.State().Cursor, ShouldResemble, hex.Axial(0, 0))
		})

		Convey("Scroll keys pan the viewport and the mouse follows", func() {
			col0, row0 := view.Viewport.ScreenPos(hex.Axial(3, 3))
			app.Handle(press(input.KeyHome))
			app.Handle(press(input.KeyPageUp))
			col, row := view.Viewport.ScreenPos(hex.Axial(3, 3))
			So(col, ShouldEqual, col0+PanColumns)
			So(row, ShouldEqual, row0+PanRows)

			app.Handle(input.CursorMoved{X: col, Y: row})
			So(app.State().Cursor, ShouldResemble, hex.Axial(3, 3))

			app.Handle(press(input.KeyEnd))
			app.Handle(press(input.KeyPageDown))
			col, row = view.Viewport.ScreenPos(hex.Axial(3, 3))
			So(col, ShouldEqual, col0)
			So(row, ShouldEqual, row0)
		})

		Convey("Quit requests stop the app", func() {
			So(app.Handle(press(input.KeyQ)), ShouldBeFalse)
			So(app.Handle(input.ExitRequested{}), ShouldBeFalse)
		})

		Convey("Ctrl+C quits but C alone does not", func() {
			So(app.Handle(press(input.KeyC)), ShouldBeTrue)
			app.Handle(press(input.KeyLControl))
			So(app.Handle(press(input.KeyC)), ShouldBeFalse)
		})

		Convey("A frame draws terrain, the cursor and the status line", func() {
			tiles.Place(uuid.New(), hex.Axial(2, 0))
			So(app.Frame(7), ShouldBeTrue)
			So(app.State().Tick, ShouldEqual, 7)

			col, row := view.Viewport.ScreenPos(hex.Axial(2, 0))
			r, _, _, _ := s.GetContent(col, row)
			So(r, ShouldEqual, occupantGlyph)

			col, row = view.Viewport.ScreenPos(hex.Axial(0, 0))
			_, _, style, _ := s.GetContent(col, row)
			So(style, ShouldResemble, styleCursor)

			col, row = view.Viewport.ScreenPos(hex.Axial(1, 0))
			_, _, style, _ = s.GetContent(col, row)
			So(style, ShouldResemble, styleRing)

			k, _ := field.At(hex.Axial(5, 3))
			col, row = view.Viewport.ScreenPos(hex.Axial(5, 3))
			r, _, _, _ = s.GetContent(col, row)
			So(r, ShouldEqual, k.Glyph())

			r, _, _, _ = s.GetContent(1, 11)
			So(r, ShouldEqual, '(')
		})
	})
}
