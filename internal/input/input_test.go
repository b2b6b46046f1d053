package input

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKeyNames(t *testing.T) {
	Convey("Key codes render readable names", t, func() {
		So(KeyA.String(), ShouldEqual, "A")
		So(KeyZ.String(), ShouldEqual, "Z")
		So(Key7.String(), ShouldEqual, "Key7")
		So(KeyF12.String(), ShouldEqual, "F12")
		So(KeyLControl.String(), ShouldEqual, "LControl")
		So(KeyUnknown.String(), ShouldEqual, "Unknown")
	})

	Convey("Function keys are looked up by number", t, func() {
		k, ok := FunctionKey(24)
		So(ok, ShouldBeTrue)
		So(k, ShouldEqual, KeyF24)
		_, ok = FunctionKey(25)
		So(ok, ShouldBeFalse)
		_, ok = FunctionKey(0)
		So(ok, ShouldBeFalse)
	})

	Convey("States and buttons render readable names", t, func() {
		So(Pressed.String(), ShouldEqual, "Pressed")
		So(Released.String(), ShouldEqual, "Released")
		So(MouseMiddle.String(), ShouldEqual, "Middle")
	})
}
