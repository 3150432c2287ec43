package core

// GameState is every mutable value of one session. It is owned by a single
// goroutine: the Simulation, the Renderer and the input handlers all receive
// it by pointer and never share it across goroutines.
type GameState struct {
	Width, Height float64

	Player   Paddle
	Computer Paddle
	Ball     Ball
	PowerUp  PowerUp

	IsGameOver bool

	PaddleTint Tint
	BallTint   Tint
	ThemeKey   rune
}

func NewGameState(width, height int) *GameState {
	w, h := float64(width), float64(height)
	paddleStart := (h - PaddleHeight) / 2

	return &GameState{
		Width:  w,
		Height: h,
		Player: Paddle{
			GameObject: GameObject{X: 0, Y: paddleStart,
				Width: PaddleWidth, Height: PaddleHeight},
			NickName: "Player",
		},
		Computer: Paddle{
			GameObject: GameObject{X: w - PaddleWidth, Y: paddleStart,
				Width: PaddleWidth, Height: PaddleHeight},
			NickName: "Computer",
		},
		Ball: Ball{
			GameObject: GameObject{X: w / 2, Y: h / 2,
				VelX: BallVelocityX, VelY: BallVelocityY},
		},
		PowerUp: PowerUp{
			GameObject: GameObject{Width: PowerUpSize, Height: PowerUpSize},
		},
		PaddleTint: TintWhite,
		BallTint:   TintWhite,
		ThemeKey:   DefaultThemeKey,
	}
}

// resetBall serves from the center. The horizontal speed keeps whatever the
// rally accumulated and only flips direction.
func (s *GameState) resetBall() {
	s.Ball.X = s.Width / 2
	s.Ball.Y = s.Height / 2
	s.Ball.VelX = -s.Ball.VelX
	s.Ball.VelY = ServeVelocityY
}

// PaddleOf returns the paddle belonging to side.
func (s *GameState) PaddleOf(side Side) *Paddle {
	if side == SidePlayer {
		return &s.Player
	}
	return &s.Computer
}
