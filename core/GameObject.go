package core

import "time"

type GameObject struct {
	X, Y          float64
	Width, Height float64
	VelX, VelY    float64
}

type Ball struct {
	GameObject
}

// Move advances the ball by one tick of its velocity.
func (b *Ball) Move() {
	b.X += b.VelX
	b.Y += b.VelY
}

func (b *Ball) SpeedUp(factor float64) {
	b.VelX *= factor
	b.VelY *= factor
}

type Paddle struct {
	GameObject
	NickName     string
	CurrentScore int
}

func (p *Paddle) MoveUp(step float64) {
	p.Y -= step
}

func (p *Paddle) MoveDown(step float64) {
	p.Y += step
}

// Center returns the vertical center of the paddle.
func (p *Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// Covers reports whether y lies strictly between the paddle's top and bottom edges.
func (p *Paddle) Covers(y float64) bool {
	return y > p.Y && y < p.Y+p.Height
}

// Clamp keeps the paddle inside [0, limit-Height].
func (p *Paddle) Clamp(limit float64) {
	p.Y = clamp(p.Y, 0, limit-p.Height)
}

type PowerUp struct {
	GameObject
	Active    bool
	StartTime time.Time
}

// Contains reports whether the point lies inside the token's bounding box, edges included.
func (p *PowerUp) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width &&
		y >= p.Y && y <= p.Y+p.Height
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
