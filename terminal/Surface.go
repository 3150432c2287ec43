package terminal

import (
	"math"

	"PowerPong/core"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

const FillSymbol = 0x2588 // 實心方塊

// FontSize is the glyph height, in surface units, text positions assume.
const FontSize = 30

// Surface draws onto a tcell screen, scaling the fixed-size canvas to
// whatever cell grid the terminal currently has.
type Surface struct {
	screen        tcell.Screen
	width, height float64
}

func NewSurface(screen tcell.Screen, width, height int) *Surface {
	return &Surface{screen: screen, width: float64(width), height: float64(height)}
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// toCell maps a surface point to the cell containing it.
func (s *Surface) toCell(x, y float64) (int, int) {
	cols, rows := s.screen.Size()
	col := int(math.Floor(x * float64(cols) / s.width))
	row := int(math.Floor(y * float64(rows) / s.height))
	return col, row
}

// cellCenter maps a cell back to the surface point at its center.
func (s *Surface) cellCenter(col, row int) (float64, float64) {
	cols, rows := s.screen.Size()
	x := (float64(col) + 0.5) * s.width / float64(cols)
	y := (float64(row) + 0.5) * s.height / float64(rows)
	return x, y
}

// CanvasY converts a terminal row into a surface Y coordinate.
func (s *Surface) CanvasY(row int) float64 {
	_, y := s.cellCenter(0, row)
	return y
}

func (s *Surface) fill(col, row int, c core.RGB) {
	color := toColor(c)
	s.screen.SetContent(col, row, FillSymbol, nil,
		tcell.StyleDefault.Foreground(color).Background(color))
}

// visible clips a cell range to the screen.
func (s *Surface) visible(c0, r0, c1, r1 int) (int, int, int, int) {
	cols, rows := s.screen.Size()
	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	if c1 > cols {
		c1 = cols
	}
	if r1 > rows {
		r1 = rows
	}
	return c0, r0, c1, r1
}

func (s *Surface) FillRect(x, y, w, h float64, c core.RGB) {
	c0, r0 := s.toCell(x, y)
	c1, r1 := s.toCell(x+w, y+h)
	// 太小的東西至少佔一格
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	c0, r0, c1, r1 = s.visible(c0, r0, c1, r1)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.fill(col, row, c)
		}
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c core.RGB) {
	c0, r0 := s.toCell(cx-r, cy-r)
	c1, r1 := s.toCell(cx+r, cy+r)
	centerCol, centerRow := s.toCell(cx, cy)

	c0, r0, c1, r1 = s.visible(c0, r0, c1+1, r1+1)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			x, y := s.cellCenter(col, row)
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r || (col == centerCol && row == centerRow) {
				s.fill(col, row, c)
			}
		}
	}
}

// DrawText writes text with its baseline at y, keeping whatever background is under it.
func (s *Surface) DrawText(text string, x, y float64, c core.RGB) {
	col, row := s.toCell(x, y-FontSize/2)
	fg := toColor(c)

	for _, r := range text {
		_, _, style, _ := s.screen.GetContent(col, row)
		_, bg, _ := style.Decompose()
		s.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		col += runewidth.RuneWidth(r)
	}
}
