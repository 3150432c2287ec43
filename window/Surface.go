package window

import (
	"PowerPong/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Surface draws onto one ebiten frame.
type Surface struct {
	Image *ebiten.Image
}

func (s Surface) FillRect(x, y, w, h float64, c core.RGB) {
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s Surface) FillCircle(cx, cy, r float64, c core.RGB) {
	vector.DrawFilledCircle(s.Image, float32(cx), float32(cy), float32(r), c, true)
}

func (s Surface) DrawText(str string, x, y float64, c core.RGB) {
	text.Draw(s.Image, str, basicfont.Face7x13, int(x), int(y), c)
}
