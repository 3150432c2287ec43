package core

// PointerMove centers the player paddle on y, given in surface coordinates.
func (s *GameState) PointerMove(y float64) {
	s.Player.Y = y - s.Player.Height/2
	s.Player.Clamp(s.Height)
}

// Click restarts the match when it is over. Ball and paddles stay where the
// last point left them.
func (s *GameState) Click() bool {
	if !s.IsGameOver {
		return false
	}
	s.Player.CurrentScore = 0
	s.Computer.CurrentScore = 0
	s.IsGameOver = false
	return true
}

// KeyPress flips the paddle and ball colors when key is the theme key.
func (s *GameState) KeyPress(key rune) bool {
	if key != s.ThemeKey {
		return false
	}
	s.PaddleTint = s.PaddleTint.Toggle()
	s.BallTint = s.BallTint.Toggle()
	return true
}

// InputEvent is anything a frontend hands to the Driver between ticks.
type InputEvent interface {
	isInputEvent()
}

type PointerMoveEvent struct {
	Y float64
}

type ClickEvent struct{}

type KeyPressEvent struct {
	Key rune
}

type QuitEvent struct{}

type PaletteChangeEvent struct {
	Palette Palette
}

func (PointerMoveEvent) isInputEvent()   {}
func (ClickEvent) isInputEvent()         {}
func (KeyPressEvent) isInputEvent()      {}
func (QuitEvent) isInputEvent()          {}
func (PaletteChangeEvent) isInputEvent() {}
