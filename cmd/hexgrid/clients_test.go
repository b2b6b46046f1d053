package main

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talgya/hexgrid/internal/config"
	"github.com/talgya/hexgrid/internal/hex"
	"github.com/talgya/hexgrid/internal/terrain"
	"github.com/talgya/hexgrid/internal/tile"
)

func TestScatter(t *testing.T) {
	Convey("Given a generated map", t, func() {
		mapCtx := hex.MapContext{Width: 30, Height: 17, WrapX: true}
		gen := terrain.DefaultGenConfig()
		gen.Seed = 11
		field := terrain.Generate(mapCtx, gen)
		land := 0
		for kind, n := range field.Counts() {
			if kind != terrain.KindOcean {
				land += n
			}
		}

		Convey("Every land cell gets exactly one occupant", func() {
			tiles := tile.NewHexMap(mapCtx.Width, mapCtx.Height, mapCtx.WrapX)
			placed, err := scatter(context.Background(), tile.NewLocked(tiles), field, 4)
			So(err, ShouldBeNil)
			So(placed, ShouldEqual, int64(land))
			So(tiles.Occupied(), ShouldEqual, land)

			var wrong []hex.Coord
			for c := range mapCtx.Coords() {
				kind, _ := field.At(c)
				tl, _ := tiles.GetTile(c)
				if (kind == terrain.KindOcean) != tl.Empty() {
					wrong = append(wrong, c)
				}
			}
			So(wrong, ShouldBeEmpty)
		})

		Convey("A cancelled context stops the workers", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := scatter(ctx, tile.NewLocked(tile.NewHexMap(mapCtx.Width, mapCtx.Height, true)), field, 2)
			So(err, ShouldEqual, context.Canceled)
		})
	})
}

func TestRunLogger(t *testing.T) {
	Convey("The logger client runs to completion", t, func() {
		cfg := config.Default()
		cfg.Terrain.Seed = 5
		mapCtx := hex.MapContext{Width: 12, Height: 8}
		So(runLogger(context.Background(), &cfg, mapCtx), ShouldBeNil)
	})
}
