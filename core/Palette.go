package core

// Tint selects one of the two colors a paddle or ball can take.
type Tint int

const (
	TintWhite Tint = iota
	TintAlternate
)

func (t Tint) Toggle() Tint {
	if t == TintWhite {
		return TintAlternate
	}
	return TintWhite
}

func (t Tint) String() string {
	if t == TintWhite {
		return "white"
	}
	return "alternate"
}

// RGB is an opaque color. It satisfies image/color.Color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

var (
	White  = RGB{0xff, 0xff, 0xff}
	Black  = RGB{0x00, 0x00, 0x00}
	Red    = RGB{0xff, 0x00, 0x00}
	Yellow = RGB{0xff, 0xff, 0x00}
	Green  = RGB{0x00, 0x80, 0x00}
)

type Palette struct {
	Paddle     [2]RGB // indexed by Tint
	Ball       [2]RGB
	PowerUp    RGB
	Text       RGB
	Background RGB
}

func DefaultPalette() Palette {
	return Palette{
		Paddle:     [2]RGB{White, Red},
		Ball:       [2]RGB{White, Yellow},
		PowerUp:    Green,
		Text:       White,
		Background: Black,
	}
}

func (p Palette) PaddleColor(t Tint) RGB {
	return p.Paddle[t&1]
}

func (p Palette) BallColor(t Tint) RGB {
	return p.Ball[t&1]
}
