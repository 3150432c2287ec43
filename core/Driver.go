package core

import (
	"context"
	"fmt"
	"time"

	"PowerPong/logger"
)

// Driver runs the fixed-rate loop for frontends that do not bring their own.
// State is only touched from the goroutine calling Run.
type Driver struct {
	State    *GameState
	Sim      *Simulation
	Renderer *Renderer
	Surface  Surface
	Interval time.Duration

	// Present flushes a finished frame, e.g. tcell's Screen.Show.
	Present func()
}

// TickInterval converts a rate in Hz to the loop period.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// Tick advances one frame and draws it.
func (d *Driver) Tick() {
	d.Sim.Step(d.State)
	d.Renderer.Render(d.State, d.Surface)
	if d.Present != nil {
		d.Present()
	}
}

// Dispatch applies one input event. It returns false when the event asks the loop to stop.
func (d *Driver) Dispatch(ev InputEvent) bool {
	switch e := ev.(type) {
	case PointerMoveEvent:
		d.State.PointerMove(e.Y)
	case ClickEvent:
		if d.State.Click() {
			logger.Log.Info(logger.RestartMsg)
		}
	case KeyPressEvent:
		if d.State.KeyPress(e.Key) {
			logger.Log.Debug(fmt.Sprintf(logger.ThemeToggleMsg, d.State.PaddleTint, d.State.BallTint))
		}
	case PaletteChangeEvent:
		d.Renderer.Palette = e.Palette
	case QuitEvent:
		return false
	}
	return true
}

// Run ticks every Interval and applies events between ticks until ctx is done,
// the events channel closes, or a QuitEvent arrives.
func (d *Driver) Run(ctx context.Context, events <-chan InputEvent) error {
	interval := d.Interval
	if interval <= 0 {
		interval = TickInterval(DefaultTickRate)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !d.Dispatch(ev) {
				return nil
			}
		case <-ticker.C:
			d.Tick()
		}
	}
}
