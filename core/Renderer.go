package core

import "strconv"

// Surface is the drawing sink. Coordinates are in surface units with the
// origin at the top left; text uses the sink's fixed font size.
type Surface interface {
	FillRect(x, y, w, h float64, c RGB)
	FillCircle(cx, cy, r float64, c RGB)
	DrawText(text string, x, y float64, c RGB)
}

type Renderer struct {
	Palette Palette
}

func NewRenderer(p Palette) *Renderer {
	return &Renderer{Palette: p}
}

// Render paints s onto surf. It only reads s.
func (r *Renderer) Render(s *GameState, surf Surface) {
	p := r.Palette
	surf.FillRect(0, 0, s.Width, s.Height, p.Background)

	if s.IsGameOver {
		surf.DrawText(GameOverText, s.Width/2-100, s.Height/2, p.Text)
		surf.DrawText(RestartText, s.Width/2-120, s.Height/2+50, p.Text)
		return
	}

	paddle := p.PaddleColor(s.PaddleTint)
	surf.FillRect(s.Player.X, s.Player.Y, s.Player.Width, s.Player.Height, paddle)
	surf.FillRect(s.Computer.X, s.Computer.Y, s.Computer.Width, s.Computer.Height, paddle)
	surf.FillCircle(s.Ball.X, s.Ball.Y, BallRadius, p.BallColor(s.BallTint))

	surf.DrawText(strconv.Itoa(s.Player.CurrentScore), ScoreTextX, ScoreTextY, p.Text)
	surf.DrawText(strconv.Itoa(s.Computer.CurrentScore), s.Width-ScoreTextX, ScoreTextY, p.Text)

	if s.PowerUp.Active {
		surf.FillRect(s.PowerUp.X, s.PowerUp.Y, s.PowerUp.Width, s.PowerUp.Height, p.PowerUp)
	}
}
