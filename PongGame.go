package main

import (
	"context"

	"PowerPong/core"
	"PowerPong/window"
)

const WindowTitle = "Pong"

func startWindow(ctx context.Context, d *core.Driver, events chan core.InputEvent, tickRate int) error {
	return window.Run(ctx, d, events, tickRate, WindowTitle)
}
