// Package input defines a front-end independent stream of input events. Front
// ends translate their native events into these; the rest of the program only
// ever sees this package's types.
package input

import "fmt"

// KeyCode identifies a physical key.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyBack
	KeyReturn
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyDelete
	KeyInsert
	KeyEscape
	KeySpace
	KeyPlus
	KeyMinus
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyLShift
	KeyLControl
	KeyLAlt
)

var keyNames = map[KeyCode]string{
	KeyBack:     "Back",
	KeyReturn:   "Return",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyTab:      "Tab",
	KeyDelete:   "Delete",
	KeyInsert:   "Insert",
	KeyEscape:   "Escape",
	KeySpace:    "Space",
	KeyPlus:     "Plus",
	KeyMinus:    "Minus",
	KeyLShift:   "LShift",
	KeyLControl: "LControl",
	KeyLAlt:     "LAlt",
}

// String returns the key's name.
func (k KeyCode) String() string {
	switch {
	case k >= KeyF1 && k <= KeyF24:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return fmt.Sprintf("Key%d", k-Key0)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// FunctionKey returns the KeyCode for Fn, or false outside F1–F24.
func FunctionKey(n int) (KeyCode, bool) {
	if n < 1 || n > 24 {
		return KeyUnknown, false
	}
	return KeyF1 + KeyCode(n-1), true
}

// ElementState is whether a key or button went down or up.
type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Released {
		return "Released"
	}
	return "Pressed"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// ScrollUnit is the unit a wheel delta is measured in.
type ScrollUnit uint8

const (
	ScrollLine ScrollUnit = iota
	ScrollPixel
)

// Event is any input event.
type Event interface {
	isEvent()
}

// KeyboardInput is one key changing state.
type KeyboardInput struct {
	Key   KeyCode
	State ElementState
}

// MouseMotion is the cursor delta since the previous mouse event.
type MouseMotion struct {
	DX, DY float64
}

// CursorMoved is the absolute cursor position in front-end units.
type CursorMoved struct {
	X, Y int
}

// MouseButtonInput is one mouse button changing state.
type MouseButtonInput struct {
	Button MouseButton
	State  ElementState
}

// MouseWheel is a scroll; positive Y scrolls up.
type MouseWheel struct {
	Unit ScrollUnit
	X, Y float64
}

// WindowResized carries the new size in front-end units.
type WindowResized struct {
	Width, Height int
}

// ExitRequested asks the program to shut down.
type ExitRequested struct{}

func (KeyboardInput) isEvent()    {}
func (MouseMotion) isEvent()      {}
func (CursorMoved) isEvent()      {}
func (MouseButtonInput) isEvent() {}
func (MouseWheel) isEvent()       {}
func (WindowResized) isEvent()    {}
func (ExitRequested) isEvent()    {}
