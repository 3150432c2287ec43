package core

type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventScore
	EventGameOver
	EventPowerUpSpawned
	EventPowerUpExpired
	EventPowerUpCollected
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle-hit"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game-over"
	case EventPowerUpSpawned:
		return "power-up-spawned"
	case EventPowerUpExpired:
		return "power-up-expired"
	case EventPowerUpCollected:
		return "power-up-collected"
	}
	return "unknown"
}

type Side int

const (
	SidePlayer Side = iota
	SideComputer
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "computer"
}

// Event reports something that happened during a Step. Side is the paddle
// that hit, scored or won; it is unused for power-up events.
type Event struct {
	Kind EventKind
	Side Side
}

// Simulation advances a GameState one fixed tick at a time.
type Simulation struct {
	Clock    Clock
	Rand     Rand
	Listener func(Event)
}

func NewSimulation(clock Clock, rnd Rand) *Simulation {
	return &Simulation{Clock: clock, Rand: rnd}
}

func (sim *Simulation) emit(kind EventKind, side Side) {
	if sim.Listener != nil {
		sim.Listener(Event{Kind: kind, Side: side})
	}
}

func (sim *Simulation) Step(s *GameState) {
	if s.IsGameOver {
		return
	}

	//球
	s.Ball.Move()

	//上下牆壁，位置不修正
	if s.Ball.Y <= 0 || s.Ball.Y >= s.Height {
		s.Ball.VelY = -s.Ball.VelY
	}

	//左邊：玩家
	if s.Ball.X <= s.Player.Width {
		if s.Player.Covers(s.Ball.Y) {
			sim.deflect(s)
			s.Ball.VelY = (s.Ball.Y - s.Player.Center()) * DeflectionFactor
			sim.emit(EventPaddleHit, SidePlayer)
		} else {
			sim.score(s, &s.Computer, SideComputer)
		}
	}

	//右邊：電腦，擊中時不重算垂直速度
	if s.Ball.X >= s.Width-s.Computer.Width {
		if s.Computer.Covers(s.Ball.Y) {
			sim.deflect(s)
			sim.emit(EventPaddleHit, SideComputer)
		} else {
			sim.score(s, &s.Player, SidePlayer)
		}
	}

	sim.moveComputer(s)
	sim.updatePowerUp(s)
}

// deflect reverses the ball horizontally and speeds it up along its new direction.
func (sim *Simulation) deflect(s *GameState) {
	s.Ball.VelX = -s.Ball.VelX
	if s.Ball.VelX > 0 {
		s.Ball.VelX += BallSpeedIncrease
	} else {
		s.Ball.VelX -= BallSpeedIncrease
	}
}

func (sim *Simulation) score(s *GameState, scorer *Paddle, side Side) {
	scorer.CurrentScore++
	sim.emit(EventScore, side)
	if scorer.CurrentScore >= WinningScore {
		s.IsGameOver = true
		sim.emit(EventGameOver, side)
	}
	s.resetBall()
}

func (sim *Simulation) moveComputer(s *GameState) {
	center := s.Computer.Center()
	if center < s.Ball.Y-ComputerDeadZone {
		s.Computer.MoveDown(ComputerPaddleSpeed)
	} else if center > s.Ball.Y+ComputerDeadZone {
		s.Computer.MoveUp(ComputerPaddleSpeed)
	}
	s.Computer.Clamp(s.Height)
}

func (sim *Simulation) updatePowerUp(s *GameState) {
	p := &s.PowerUp

	if !p.Active && sim.Rand.Float64() < PowerUpChance {
		p.Active = true
		p.X = sim.Rand.Float64()*(s.Width-2*PowerUpMargin) + PowerUpMargin
		p.Y = sim.Rand.Float64()*(s.Height-2*PowerUpMargin) + PowerUpMargin
		p.StartTime = sim.Clock.Now()
		sim.emit(EventPowerUpSpawned, 0)
	}

	if p.Active && sim.Clock.Now().Sub(p.StartTime) > PowerUpDuration {
		p.Active = false
		sim.emit(EventPowerUpExpired, 0)
	}

	if p.Active && p.Contains(s.Ball.X, s.Ball.Y) {
		s.Ball.SpeedUp(PowerUpBoost)
		p.Active = false
		sim.emit(EventPowerUpCollected, 0)
	}
}
