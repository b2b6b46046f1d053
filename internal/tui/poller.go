package tui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/talgya/hexgrid/internal/input"
)

// MaxEventsPerTick bounds how many raw events one Poll call consumes.
const MaxEventsPerTick = 128

// Poller moves tcell's blocking event stream onto a buffered channel so the
// frame loop can drain it without blocking.
type Poller struct {
	screen     tcell.Screen
	events     chan tcell.Event
	translator *Translator
	max        int
	closed     bool
}

// NewPoller creates a poller for screen. maxEvents <= 0 uses MaxEventsPerTick.
func NewPoller(screen tcell.Screen, maxEvents int) *Poller {
	if maxEvents <= 0 {
		maxEvents = MaxEventsPerTick
	}
	return &Poller{
		screen:     screen,
		events:     make(chan tcell.Event, maxEvents),
		translator: NewTranslator(0, 0),
		max:        maxEvents,
	}
}

// Start pumps screen events until the screen is finalized or ctx is done.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		defer close(p.events)
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case p.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Poll translates whatever events are waiting, up to the per-tick limit.
// Consecutive resizes collapse into the last one, which is reported after the
// other events. Once the pump has stopped Poll reports ExitRequested.
func (p *Poller) Poll() []input.Event {
	if p.closed {
		return []input.Event{input.ExitRequested{}}
	}

	var (
		out     []input.Event
		resized *input.WindowResized
	)

drain:
	for n := 0; n < p.max; n++ {
		select {
		case ev, ok := <-p.events:
			if !ok {
				p.closed = true
				out = append(out, input.ExitRequested{})
				break drain
			}
			for _, e := range p.translator.Translate(ev) {
				if r, isResize := e.(input.WindowResized); isResize {
					resized = &r
					continue
				}
				out = append(out, e)
			}
		default:
			break drain
		}
	}

	if resized != nil {
		slog.Info("terminal resized", "width", resized.Width, "height", resized.Height)
		out = append(out, *resized)
	}
	return out
}
