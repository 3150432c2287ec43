package window

import (
	"context"
	"fmt"

	"PowerPong/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core.Driver to ebiten, which calls Update and Draw at its own tick rate.
type Game struct {
	Driver *core.Driver
	Events <-chan core.InputEvent

	ctx     context.Context
	lastY   int
	tracked bool
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	// 設定檔重新載入之類的事件
	for drained := false; !drained; {
		select {
		case ev := <-g.Events:
			if !g.Driver.Dispatch(ev) {
				return ebiten.Termination
			}
		default:
			drained = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 滑鼠還沒動之前不移動球拍
	_, y := ebiten.CursorPosition()
	if g.tracked && y != g.lastY {
		g.Driver.Dispatch(core.PointerMoveEvent{Y: float64(y)})
	}
	g.lastY, g.tracked = y, true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.Driver.Dispatch(core.ClickEvent{})
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.Driver.Dispatch(core.KeyPressEvent{Key: r})
	}

	g.Driver.Sim.Step(g.Driver.State)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Driver.Renderer.Render(g.Driver.State, Surface{Image: screen})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.Driver.State.Width), int(g.Driver.State.Height)
}

// Run opens a window and blocks until it is closed, Escape is pressed or ctx is done.
func Run(ctx context.Context, d *core.Driver, events <-chan core.InputEvent, tickRate int, title string) error {
	ebiten.SetWindowSize(int(d.State.Width), int(d.State.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tickRate)

	g := &Game{Driver: d, Events: events, ctx: ctx}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
