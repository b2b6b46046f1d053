package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/talgya/hexgrid/internal/coord"
	"github.com/talgya/hexgrid/internal/hex"
	"github.com/talgya/hexgrid/internal/terrain"
	"github.com/talgya/hexgrid/internal/tile"
)

const occupantGlyph = '@'

var (
	styleDefault  = tcell.StyleDefault
	styleRing     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleCursor   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	styleOccupant = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)

	kindStyles = map[terrain.Kind]tcell.Style{
		terrain.KindOcean:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
		terrain.KindPlains:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		terrain.KindHills:    tcell.StyleDefault.Foreground(tcell.ColorOlive),
		terrain.KindMountain: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
)

// State is what the view needs beyond the map itself.
type State struct {
	Cursor hex.Coord
	Radius uint8
	Tick   uint64
}

// View draws a hex map onto a tcell screen.
type View struct {
	Screen   tcell.Screen
	Viewport Viewport
	Tiles    *tile.HexMap
	Terrain  *terrain.Field // optional
}

// Draw renders one frame and shows it.
func (v *View) Draw(st State) {
	v.Screen.Clear()
	ctx := v.Tiles.Context()

	for c := range ctx.Coords() {
		glyph, style := v.glyph(c)
		v.setCell(c, glyph, style)
	}

	ring := coord.Offset[hex.Coord, hex.Relative, hex.MapContext](st.Cursor, hex.NewRing(st.Radius).All(), ctx)
	for c := range ring {
		if inStorage(c, ctx) {
			glyph, _ := v.glyph(c)
			v.setCell(c, glyph, styleRing)
		}
	}
	if inStorage(st.Cursor, ctx) {
		glyph, _ := v.glyph(st.Cursor)
		v.setCell(st.Cursor, glyph, styleCursor)
	}

	v.drawStatus(st)
	v.Screen.Show()
}

func (v *View) glyph(c hex.Coord) (rune, tcell.Style) {
	if t, ok := v.Tiles.GetTile(c); ok && !t.Empty() {
		return occupantGlyph, styleOccupant
	}
	if v.Terrain != nil {
		if k, ok := v.Terrain.At(c); ok {
			return k.Glyph(), kindStyles[k]
		}
	}
	return '.', styleDefault
}

func (v *View) setCell(c hex.Coord, glyph rune, style tcell.Style) {
	col, row := v.Viewport.ScreenPos(c)
	v.Screen.SetContent(col, row, glyph, nil, style)
}

func (v *View) drawStatus(st State) {
	w, h := v.Screen.Size()
	if h == 0 {
		return
	}
	occupants := 0
	if t, ok := v.Tiles.GetTile(st.Cursor); ok {
		occupants = t.Len()
	}
	line := fmt.Sprintf(" %s r=%d occupants=%d tick=%d | arrows/mouse move  +/- radius  space toggle  home/end/pgup/pgdn scroll  q quit",
		st.Cursor, st.Radius, occupants, st.Tick)
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		v.Screen.SetContent(col, h-1, r, nil, styleStatus)
		col++
	}
	for ; col < w; col++ {
		v.Screen.SetContent(col, h-1, ' ', nil, styleStatus)
	}
}

// inStorage reports whether c is one of the cells the map enumerates.
func inStorage(c hex.Coord, ctx hex.MapContext) bool {
	return c.Q() < ctx.Width && c.R() < ctx.Height
}
