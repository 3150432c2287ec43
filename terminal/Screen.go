package terminal

import (
	"context"
	"fmt"

	"PowerPong/core"

	"github.com/gdamore/tcell"
)

var defaultStyle = tcell.StyleDefault.
	Background(tcell.ColorBlack).
	Foreground(tcell.ColorWhite)

func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(defaultStyle)
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// PollInput starts a goroutine that feeds translated screen events into out.
// It exits when the screen is finalized or ctx is done.
func PollInput(ctx context.Context, screen tcell.Screen, t *Translator, out chan<- core.InputEvent) {
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}

			for _, in := range t.Translate(ev) {
				select {
				case out <- in:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}
