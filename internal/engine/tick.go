// Package engine provides the fixed-rate frame loop that drives a front end.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
)

// DefaultInterval is the frame period: 20 frames per second.
const DefaultInterval = time.Second / 20

// Engine calls OnTick once per Interval until OnTick declines, Stop is called
// or the context ends.
type Engine struct {
	Tick     uint64        // Frames run so far (monotonic, never resets)
	Interval time.Duration // Frame period (default 1/20 s)

	// OnTick runs every frame; returning false ends the loop.
	OnTick func(tick uint64) bool

	stop     chan struct{}
	stopOnce sync.Once
}

// NewEngine creates a frame loop with default settings.
func NewEngine() *Engine {
	return &Engine{
		Interval: DefaultInterval,
		stop:     make(chan struct{}),
	}
}

// Run blocks until the loop ends. Cancellation and Stop are normal shutdowns
// and return nil.
func (e *Engine) Run(ctx context.Context) error {
	if e.OnTick == nil {
		return errors.New("engine: no tick callback")
	}
	if e.Interval <= 0 {
		return errors.New("engine: interval must be positive")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ticker := channerics.NewTicker(runCtx.Done(), e.Interval)

	slog.Info("frame loop started", "tick", e.Tick, "interval", e.Interval)
	defer func() { slog.Info("frame loop stopped", "tick", e.Tick) }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.stop:
			return nil
		case _, ok := <-ticker:
			if !ok {
				return nil
			}
			e.Tick++
			if !e.OnTick(e.Tick) {
				return nil
			}
		}
	}
}

// Stop ends the loop after the current frame. It is safe to call more than once
// and from any goroutine.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stop) })
}
