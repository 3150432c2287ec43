package core

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

// sequenceRand returns values in order, then Fallback forever.
type sequenceRand struct {
	values   []float64
	Fallback float64
}

func (r *sequenceRand) Float64() float64 {
	if len(r.values) == 0 {
		return r.Fallback
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// noSpawn never rolls under PowerUpChance.
func noSpawn() *sequenceRand {
	return &sequenceRand{Fallback: 0.99}
}

var startTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestSim(rnd Rand) (*Simulation, *ManualClock, *[]Event) {
	clock := NewManualClock(startTime)
	sim := NewSimulation(clock, rnd)
	events := &[]Event{}
	sim.Listener = func(ev Event) { *events = append(*events, ev) }
	return sim, clock, events
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// missLeft sets the ball up to pass the player's goal line on the next step, well above the paddle.
func missLeft(s *GameState) {
	s.Ball.X = 2
	s.Ball.Y = 20
	s.Ball.VelX = -4
	s.Ball.VelY = 4
}

func TestNewGameState(t *testing.T) {
	s := NewGameState(800, 600)

	if s.Player.Y != 250 || s.Computer.Y != 250 {
		t.Errorf("Expected paddles centered at 250, got %v and %v", s.Player.Y, s.Computer.Y)
	}
	if s.Ball.X != 400 || s.Ball.Y != 300 {
		t.Errorf("Expected ball at (400, 300), got (%v, %v)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.VelX != 4 || s.Ball.VelY != 4 {
		t.Errorf("Expected ball speed (4, 4), got (%v, %v)", s.Ball.VelX, s.Ball.VelY)
	}
	if s.Computer.X != 790 {
		t.Errorf("Expected computer paddle at x=790, got %v", s.Computer.X)
	}
	if s.IsGameOver || s.Player.CurrentScore != 0 || s.Computer.CurrentScore != 0 {
		t.Errorf("Expected a fresh round, got %+v", s)
	}
}

func TestMissOnLeftScoresForComputer(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, events := newTestSim(noSpawn())
	missLeft(s)

	sim.Step(s)

	if s.Computer.CurrentScore != 1 || s.Player.CurrentScore != 0 {
		t.Fatalf("Expected score 0:1, got %d:%d", s.Player.CurrentScore, s.Computer.CurrentScore)
	}
	if s.Ball.X != 400 || s.Ball.Y != 300 {
		t.Errorf("Expected ball re-centered, got (%v, %v)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.VelX != 4 {
		t.Errorf("Expected serve direction flipped to 4, got %v", s.Ball.VelX)
	}
	if s.Ball.VelY != ServeVelocityY {
		t.Errorf("Expected serve VelY %v, got %v", ServeVelocityY, s.Ball.VelY)
	}
	if s.IsGameOver {
		t.Error("Expected game to continue after one point")
	}
	if len(*events) != 1 || (*events)[0] != (Event{Kind: EventScore, Side: SideComputer}) {
		t.Errorf("Expected one computer score event, got %v", *events)
	}
}

func TestServeKeepsAccumulatedSpeed(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, _ := newTestSim(noSpawn())
	missLeft(s)
	s.Ball.VelX = -7.5

	sim.Step(s)

	if s.Ball.VelX != 7.5 {
		t.Errorf("Expected serve speed 7.5, got %v", s.Ball.VelX)
	}
}

func TestMissOnRightScoresForPlayer(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, events := newTestSim(noSpawn())
	s.Ball.X = 788
	s.Ball.Y = 500
	s.Ball.VelX = 4
	s.Ball.VelY = 4

	sim.Step(s)

	if s.Player.CurrentScore != 1 || s.Computer.CurrentScore != 0 {
		t.Fatalf("Expected score 1:0, got %d:%d", s.Player.CurrentScore, s.Computer.CurrentScore)
	}
	if s.Ball.VelX != -4 || s.Ball.VelY != 4 {
		t.Errorf("Expected serve (-4, 4), got (%v, %v)", s.Ball.VelX, s.Ball.VelY)
	}
	if (*events)[0].Side != SidePlayer {
		t.Errorf("Expected player score event, got %v", *events)
	}
}

func TestPlayerPaddleHit(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, events := newTestSim(noSpawn())
	s.Ball.X = 12
	s.Ball.Y = 290
	s.Ball.VelX = -4
	s.Ball.VelY = 4

	sim.Step(s)

	if s.Computer.CurrentScore != 0 {
		t.Fatalf("Expected a hit, computer scored")
	}
	if !almostEqual(s.Ball.VelX, 4.5) {
		t.Errorf("Expected VelX 4.5 after reflection and speed-up, got %v", s.Ball.VelX)
	}
	// ball is at y=294, paddle center at 300
	if !almostEqual(s.Ball.VelY, -6*DeflectionFactor) {
		t.Errorf("Expected VelY %v from hit offset, got %v", -6*DeflectionFactor, s.Ball.VelY)
	}
	if (*events)[0] != (Event{Kind: EventPaddleHit, Side: SidePlayer}) {
		t.Errorf("Expected player hit event, got %v", *events)
	}
}

// The computer side reflects without recomputing the vertical speed.
func TestComputerPaddleHitKeepsVerticalSpeed(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, _ := newTestSim(noSpawn())
	s.Ball.X = 786
	s.Ball.Y = 290
	s.Ball.VelX = 4
	s.Ball.VelY = 3

	sim.Step(s)

	if s.Player.CurrentScore != 0 {
		t.Fatalf("Expected a hit, player scored")
	}
	if !almostEqual(s.Ball.VelX, -4.5) {
		t.Errorf("Expected VelX -4.5, got %v", s.Ball.VelX)
	}
	if s.Ball.VelY != 3 {
		t.Errorf("Expected VelY unchanged at 3, got %v", s.Ball.VelY)
	}
}

func TestPaddleEdgeCountsAsMiss(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, _ := newTestSim(noSpawn())
	s.Ball.X = 12
	s.Ball.Y = 246 // lands exactly on the top edge at 250
	s.Ball.VelX = -4
	s.Ball.VelY = 4

	sim.Step(s)

	if s.Computer.CurrentScore != 1 {
		t.Errorf("Expected edge contact to score for the computer, got %d", s.Computer.CurrentScore)
	}
}

func TestWallBounceDoesNotClamp(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, _ := newTestSim(noSpawn())
	s.Ball.Y = 2
	s.Ball.VelY = -4

	sim.Step(s)

	if s.Ball.VelY != 4 {
		t.Errorf("Expected VelY flipped to 4, got %v", s.Ball.VelY)
	}
	if s.Ball.Y != -2 {
		t.Errorf("Expected overshoot to y=-2, got %v", s.Ball.Y)
	}

	s.Ball.Y = 598
	s.Ball.VelY = 4
	sim.Step(s)
	if s.Ball.VelY != -4 {
		t.Errorf("Expected VelY flipped to -4 at the bottom, got %v", s.Ball.VelY)
	}
}

func TestGameOverAfterThreeMisses(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, events := newTestSim(noSpawn())

	for i := 1; i <= WinningScore; i++ {
		missLeft(s)
		sim.Step(s)
		if s.Computer.CurrentScore != i {
			t.Fatalf("Expected computer score %d, got %d", i, s.Computer.CurrentScore)
		}
		if s.IsGameOver != (i == WinningScore) {
			t.Fatalf("After miss %d expected IsGameOver=%v", i, i == WinningScore)
		}
	}

	last := (*events)[len(*events)-1]
	if last != (Event{Kind: EventGameOver, Side: SideComputer}) {
		t.Errorf("Expected game over event for the computer, got %v", last)
	}

	before := *s
	count := len(*events)
	for i := 0; i < 10; i++ {
		sim.Step(s)
	}
	if *s != before {
		t.Errorf("Expected state frozen while game over, got %+v want %+v", *s, before)
	}
	if len(*events) != count {
		t.Errorf("Expected no events while game over, got %v", (*events)[count:])
	}
}

func TestGameOverFreezesPowerUpTimer(t *testing.T) {
	s := NewGameState(800, 600)
	sim, clock, _ := newTestSim(&sequenceRand{Fallback: 0})
	s.IsGameOver = true

	clock.Advance(time.Hour)
	sim.Step(s)

	if s.PowerUp.Active {
		t.Error("Expected no power-up spawn while game over")
	}
}

func TestComputerTracking(t *testing.T) {
	tests := []struct {
		name    string
		paddleY float64
		ballY   float64
		wantY   float64
	}{
		{"ball far below", 250, 400, 254},
		{"ball far above", 250, 200, 246},
		{"inside dead zone below", 250, 335, 250},
		{"inside dead zone above", 250, 265, 250},
		{"clamped at bottom", 498, 590, 500},
		{"clamped at top", 2, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGameState(800, 600)
			sim, _, _ := newTestSim(noSpawn())
			s.Computer.Y = tt.paddleY
			s.Ball.Y = tt.ballY
			s.Ball.VelX = 0
			s.Ball.VelY = 0

			sim.Step(s)

			if s.Computer.Y != tt.wantY {
				t.Errorf("Expected computer paddle at %v, got %v", tt.wantY, s.Computer.Y)
			}
		})
	}
}

func TestPaddlesStayInBounds(t *testing.T) {
	s := NewGameState(800, 600)
	sim := NewSimulation(NewManualClock(startTime), rand.New(rand.NewSource(7)))
	pointer := rand.New(rand.NewSource(11))
	limit := s.Height - PaddleHeight

	for i := 0; i < 5000; i++ {
		s.PointerMove(pointer.Float64()*900 - 150)
		sim.Step(s)
		if s.IsGameOver {
			s.Click()
		}
		for _, y := range []float64{s.Player.Y, s.Computer.Y} {
			if y < 0 || y > limit {
				t.Fatalf("Tick %d: paddle at %v outside [0, %v]", i, y, limit)
			}
		}
	}
}

func TestPowerUpSpawn(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, events := newTestSim(&sequenceRand{values: []float64{0.05, 0.5, 0.25}, Fallback: 0.99})
	s.Ball.X, s.Ball.Y = 100, 100
	s.Ball.VelX, s.Ball.VelY = 0, 0

	sim.Step(s)

	if !s.PowerUp.Active {
		t.Fatal("Expected a power-up to spawn")
	}
	if s.PowerUp.X != 0.5*760+20 || s.PowerUp.Y != 0.25*560+20 {
		t.Errorf("Expected power-up at (400, 160), got (%v, %v)", s.PowerUp.X, s.PowerUp.Y)
	}
	if !s.PowerUp.StartTime.Equal(startTime) {
		t.Errorf("Expected start time %v, got %v", startTime, s.PowerUp.StartTime)
	}
	if (*events)[0].Kind != EventPowerUpSpawned {
		t.Errorf("Expected spawn event, got %v", *events)
	}
}

func TestPowerUpNoSpawnAboveChance(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, _ := newTestSim(&sequenceRand{values: []float64{PowerUpChance}, Fallback: 0.99})
	s.Ball.VelX, s.Ball.VelY = 0, 0

	sim.Step(s)

	if s.PowerUp.Active {
		t.Error("Expected no spawn when the roll equals the chance")
	}
}

func TestAtMostOnePowerUp(t *testing.T) {
	s := NewGameState(800, 600)
	sim, _, _ := newTestSim(&sequenceRand{Fallback: 0})
	s.Ball.VelX, s.Ball.VelY = 0, 0

	sim.Step(s)
	first := s.PowerUp
	for i := 0; i < 20; i++ {
		sim.Step(s)
	}

	if s.PowerUp != first {
		t.Errorf("Expected the active power-up to stay put, got %+v want %+v", s.PowerUp, first)
	}
}

func TestPowerUpExpires(t *testing.T) {
	s := NewGameState(800, 600)
	sim, clock, events := newTestSim(&sequenceRand{values: []float64{0, 0.5, 0.5}, Fallback: 0.99})
	s.Ball.X, s.Ball.Y = 100, 100
	s.Ball.VelX, s.Ball.VelY = 0, 0

	sim.Step(s)
	clock.Advance(PowerUpDuration)
	sim.Step(s)
	if !s.PowerUp.Active {
		t.Fatal("Expected the power-up to survive exactly 5000ms")
	}

	clock.Advance(time.Millisecond)
	sim.Step(s)
	if s.PowerUp.Active {
		t.Fatal("Expected the power-up to expire after 5000ms")
	}
	last := (*events)[len(*events)-1]
	if last.Kind != EventPowerUpExpired {
		t.Errorf("Expected expiry event, got %v", last)
	}
}

func TestPowerUpCollision(t *testing.T) {
	s := NewGameState(800, 600)
	// token lands at (400, 300) on the same tick the ball moves into it
	sim, _, events := newTestSim(&sequenceRand{values: []float64{0, 0.5, 0.5}, Fallback: 0.99})
	s.Ball.X, s.Ball.Y = 398, 298
	s.Ball.VelX, s.Ball.VelY = 4, 4

	sim.Step(s)

	if s.PowerUp.Active {
		t.Error("Expected the power-up to be collected")
	}
	if s.Ball.VelX != 6 || s.Ball.VelY != 6 {
		t.Errorf("Expected ball speed (6, 6), got (%v, %v)", s.Ball.VelX, s.Ball.VelY)
	}
	last := (*events)[len(*events)-1]
	if last.Kind != EventPowerUpCollected {
		t.Errorf("Expected collected event, got %v", last)
	}
}

func TestPowerUpContainsEdges(t *testing.T) {
	p := PowerUp{GameObject: GameObject{X: 100, Y: 100, Width: PowerUpSize, Height: PowerUpSize}}

	tests := []struct {
		x, y float64
		want bool
	}{
		{100, 100, true},
		{115, 115, true},
		{107, 107, true},
		{99.9, 107, false},
		{107, 115.1, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
