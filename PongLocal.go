package main

import (
	"context"
	"errors"

	"PowerPong/core"
	"PowerPong/terminal"
)

// startLocal plays in the current terminal until Escape, Ctrl-C or ctx is done.
func startLocal(ctx context.Context, d *core.Driver, events chan core.InputEvent) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	surface := terminal.NewSurface(screen, int(d.State.Width), int(d.State.Height))
	d.Surface = surface
	d.Present = screen.Show

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	//建立一個goroutine去監聽鍵盤與滑鼠的事件
	terminal.PollInput(ctx, screen, terminal.NewTranslator(surface), events)

	err = d.Run(ctx, events)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
