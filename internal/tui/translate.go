// Package tui is the terminal front end: it turns raw tcell events into the
// generic input stream, maps terminal cells to hex cells, and draws the map.
package tui

import (
	"log/slog"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/talgya/hexgrid/internal/input"
)

// Translator converts tcell events into input events. It remembers the last
// cursor position and button mask so motion deltas and button edges can be
// derived from tcell's level-triggered mouse reports.
type Translator struct {
	cursorX, cursorY int
	buttons          tcell.ButtonMask
}

// NewTranslator starts tracking the cursor from (x, y).
func NewTranslator(x, y int) *Translator {
	return &Translator{cursorX: x, cursorY: y}
}

// Cursor returns the last seen cursor position.
func (t *Translator) Cursor() (x, y int) {
	return t.cursorX, t.cursorY
}

// Translate returns the input events for one tcell event, in order.
func (t *Translator) Translate(ev tcell.Event) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		slog.Debug("tui key event", "key", ev.Name())
		return t.key(ev)
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return []input.Event{input.WindowResized{Width: w, Height: h}}
	default:
		return nil
	}
}

// key brackets the key's own codes with its modifiers: modifier presses, key
// presses, key releases in reverse, modifier releases in reverse.
func (t *Translator) key(ev *tcell.EventKey) []input.Event {
	codes, ctrl := keyCodes(ev)
	mods := modifierCodes(ev.Modifiers(), ctrl)

	out := make([]input.Event, 0, 2*(len(codes)+len(mods))+1)
	for _, k := range mods {
		out = append(out, input.KeyboardInput{Key: k, State: input.Pressed})
	}
	for _, k := range codes {
		out = append(out, input.KeyboardInput{Key: k, State: input.Pressed})
	}
	for i := len(codes) - 1; i >= 0; i-- {
		out = append(out, input.KeyboardInput{Key: codes[i], State: input.Released})
	}
	for i := len(mods) - 1; i >= 0; i-- {
		out = append(out, input.KeyboardInput{Key: mods[i], State: input.Released})
	}

	if ev.Key() == tcell.KeyEscape {
		out = append(out, input.ExitRequested{})
	}
	return out
}

// keyCodes maps a tcell key to generic codes. ctrl reports that the key itself
// is a control chord (tcell folds Ctrl+letter into its own key values).
func keyCodes(ev *tcell.EventKey) (codes []input.KeyCode, ctrl bool) {
	switch k := ev.Key(); k {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []input.KeyCode{input.KeyBack}, false
	case tcell.KeyEnter:
		return []input.KeyCode{input.KeyReturn}, false
	case tcell.KeyLeft:
		return []input.KeyCode{input.KeyLeft}, false
	case tcell.KeyRight:
		return []input.KeyCode{input.KeyRight}, false
	case tcell.KeyUp:
		return []input.KeyCode{input.KeyUp}, false
	case tcell.KeyDown:
		return []input.KeyCode{input.KeyDown}, false
	case tcell.KeyHome:
		return []input.KeyCode{input.KeyHome}, false
	case tcell.KeyEnd:
		return []input.KeyCode{input.KeyEnd}, false
	case tcell.KeyPgUp:
		return []input.KeyCode{input.KeyPageUp}, false
	case tcell.KeyPgDn:
		return []input.KeyCode{input.KeyPageDown}, false
	case tcell.KeyTab:
		return []input.KeyCode{input.KeyTab}, false
	case tcell.KeyBacktab:
		return []input.KeyCode{input.KeyLShift, input.KeyTab}, false
	case tcell.KeyDelete:
		return []input.KeyCode{input.KeyDelete}, false
	case tcell.KeyInsert:
		return []input.KeyCode{input.KeyInsert}, false
	case tcell.KeyEscape:
		return []input.KeyCode{input.KeyEscape}, false
	case tcell.KeyRune:
		if code, ok := runeCode(ev.Rune()); ok {
			return []input.KeyCode{code}, false
		}
		slog.Warn("unhandled keyboard char code in TUI", "rune", string(ev.Rune()))
		return nil, false
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
			if code, ok := input.FunctionKey(int(k-tcell.KeyF1) + 1); ok {
				return []input.KeyCode{code}, false
			}
			slog.Warn("unhandled F# key ID", "id", int(k-tcell.KeyF1)+1)
			return nil, false
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return []input.KeyCode{input.KeyA + input.KeyCode(k-tcell.KeyCtrlA)}, true
		}
		slog.Debug("unhandled key in TUI", "key", ev.Name())
		return nil, false
	}
}

func runeCode(r rune) (input.KeyCode, bool) {
	r = unicode.ToLower(r)
	switch {
	case r >= 'a' && r <= 'z':
		return input.KeyA + input.KeyCode(r-'a'), true
	case r >= '0' && r <= '9':
		return input.Key0 + input.KeyCode(r-'0'), true
	}
	switch r {
	case ' ':
		return input.KeySpace, true
	case '+', '=':
		return input.KeyPlus, true
	case '-', '_':
		return input.KeyMinus, true
	}
	return input.KeyUnknown, false
}

func modifierCodes(mod tcell.ModMask, ctrl bool) []input.KeyCode {
	var out []input.KeyCode
	if mod&tcell.ModShift != 0 {
		out = append(out, input.KeyLShift)
	}
	if ctrl || mod&tcell.ModCtrl != 0 {
		out = append(out, input.KeyLControl)
	}
	if mod&tcell.ModAlt != 0 {
		out = append(out, input.KeyLAlt)
	}
	return out
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.Button1, input.MouseLeft},
	{tcell.Button2, input.MouseRight},
	{tcell.Button3, input.MouseMiddle},
}

func (t *Translator) mouse(ev *tcell.EventMouse) []input.Event {
	x, y := ev.Position()
	out := []input.Event{
		input.MouseMotion{DX: float64(x - t.cursorX), DY: float64(y - t.cursorY)},
		input.CursorMoved{X: x, Y: y},
	}
	t.cursorX, t.cursorY = x, y

	buttons := ev.Buttons()
	for _, b := range mouseButtons {
		was, is := t.buttons&b.mask != 0, buttons&b.mask != 0
		switch {
		case is && !was:
			out = append(out, input.MouseButtonInput{Button: b.button, State: input.Pressed})
		case was && !is:
			out = append(out, input.MouseButtonInput{Button: b.button, State: input.Released})
		}
	}
	if buttons&tcell.WheelUp != 0 {
		out = append(out, input.MouseWheel{Unit: input.ScrollLine, Y: 1})
	}
	if buttons&tcell.WheelDown != 0 {
		out = append(out, input.MouseWheel{Unit: input.ScrollLine, Y: -1})
	}
	t.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	return out
}
