package terrain

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talgya/hexgrid/internal/hex"
)

func TestGenerate(t *testing.T) {
	Convey("Generating terrain for a map", t, func() {
		ctx := hex.MapContext{Width: 24, Height: 12, WrapX: true}
		cfg := DefaultGenConfig()
		cfg.Seed = 42

		f := Generate(ctx, cfg)

		Convey("Covers every storage cell", func() {
			So(len(f.Elevation), ShouldEqual, ctx.Cells())
			So(len(f.Kinds), ShouldEqual, ctx.Cells())
			total := 0
			for _, n := range f.Counts() {
				total += n
			}
			So(total, ShouldEqual, ctx.Cells())
		})

		Convey("Keeps elevation normalised", func() {
			out := 0
			for _, e := range f.Elevation {
				if e < 0 || e > 1 {
					out++
				}
			}
			So(out, ShouldEqual, 0)
		})

		Convey("Is deterministic for a fixed seed", func() {
			again := Generate(ctx, cfg)
			So(again.Elevation, ShouldResemble, f.Elevation)
		})

		Convey("Answers lookups through the coordinate index", func() {
			k, ok := f.At(hex.Axial(3, 2))
			So(ok, ShouldBeTrue)
			idx, _ := hex.Axial(3, 2).Idx(ctx)
			So(k, ShouldEqual, f.Kinds[idx])

			wrapped, ok := f.At(hex.Axial(28, 2))
			So(ok, ShouldBeTrue)
			So(wrapped, ShouldEqual, f.Kinds[idx])

			_, ok = f.At(hex.Axial(3, 40))
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Flat maps are sampled in the plane", t, func() {
		ctx := hex.MapContext{Width: 10, Height: 10}
		f := Generate(ctx, GenConfig{Seed: 7, SeaLevel: 0.5, HillLvl: 0.7, MountainLvl: 0.9, Octaves: 2, Frequency: 0.1})
		So(len(f.Kinds), ShouldEqual, 100)
	})
}

func TestClassify(t *testing.T) {
	Convey("Elevation thresholds pick the kind", t, func() {
		cfg := DefaultGenConfig()
		So(classify(0.1, cfg), ShouldEqual, KindOcean)
		So(classify(0.5, cfg), ShouldEqual, KindPlains)
		So(classify(0.65, cfg), ShouldEqual, KindHills)
		So(classify(0.9, cfg), ShouldEqual, KindMountain)
		So(KindMountain.String(), ShouldEqual, "Mountain")
		So(KindOcean.Glyph(), ShouldEqual, '~')
	})
}
