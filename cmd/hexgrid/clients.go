package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/talgya/hexgrid/internal/config"
	"github.com/talgya/hexgrid/internal/coord"
	"github.com/talgya/hexgrid/internal/engine"
	"github.com/talgya/hexgrid/internal/hex"
	"github.com/talgya/hexgrid/internal/terrain"
	"github.com/talgya/hexgrid/internal/tile"
	"github.com/talgya/hexgrid/internal/tui"
)

// runLogger builds the map, settles one occupant on every land cell and logs
// what it made.
func runLogger(ctx context.Context, cfg *config.Config, mapCtx hex.MapContext) error {
	field := terrain.Generate(mapCtx, cfg.Terrain.GenConfig())
	for kind, n := range field.Counts() {
		slog.Info("terrain", "kind", kind, "cells", humanize.Comma(int64(n)))
	}

	tiles := tile.NewLocked(tile.NewHexMap(mapCtx.Width, mapCtx.Height, mapCtx.WrapX))
	placed, err := scatter(ctx, tiles, field, runtime.GOMAXPROCS(0))
	if err != nil {
		return fmt.Errorf("scatter occupants: %w", err)
	}

	center := hex.Axial(mapCtx.Width/2, mapCtx.Height/2)
	ring := coord.Collect(coord.Offset[hex.Coord, hex.Relative, hex.MapContext](center, hex.NewRing(1).All(), mapCtx))
	disk := coord.Count(coord.Offset[hex.Coord, hex.Relative, hex.MapContext](center, hex.NewDisk(3).All(), mapCtx))
	slog.Info("neighbourhood", "center", center, "ring", fmt.Sprint(ring), "disk3_cells", disk)

	crowd := 0
	tiles.View(center, func(t tile.Reader) { crowd = t.Len() })
	slog.Info("map ready",
		"context", mapCtx,
		"cells", humanize.Comma(int64(mapCtx.Cells())),
		"occupants", humanize.Comma(placed),
		"center_occupants", crowd,
	)
	return nil
}

// scatter places a fresh occupant on every non-ocean cell, splitting rows
// between workers. It returns how many were placed.
func scatter(ctx context.Context, tiles *tile.Locked[hex.Coord, hex.Relative, hex.MapContext], field *terrain.Field, workers int) (int64, error) {
	if workers < 1 {
		workers = 1
	}
	mapCtx := tiles.Context()
	var placed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for r := w; r < int(mapCtx.Height); r += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				for q := 0; q < int(mapCtx.Width); q++ {
					c := hex.Axial(uint8(q), uint8(r))
					if kind, ok := field.At(c); !ok || kind == terrain.KindOcean {
						continue
					}
					tiles.Update(c, func(t *tile.Tile) {
						if t.Add(uuid.New()) {
							placed.Add(1)
						}
					})
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return placed.Load(), err
	}
	return placed.Load(), nil
}

// runTUI explores the map interactively until the user quits or ctx ends.
func runTUI(ctx context.Context, cfg *config.Config, mapCtx hex.MapContext) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	tiles := tile.NewHexMap(mapCtx.Width, mapCtx.Height, mapCtx.WrapX)
	view := &tui.View{
		Screen:   screen,
		Viewport: tui.DefaultViewport(),
		Tiles:    tiles,
		Terrain:  terrain.Generate(mapCtx, cfg.Terrain.GenConfig()),
	}
	poller := tui.NewPoller(screen, cfg.TUI.MaxEventsPerTick)
	poller.Start(ctx)
	app := tui.NewApp(view, poller)

	eng := engine.NewEngine()
	eng.Interval = cfg.TUI.Interval()
	eng.OnTick = app.Frame

	err = eng.Run(ctx)
	slog.Info("explorer closed", "tiles", tiles, "frames", eng.Tick)
	return err
}
