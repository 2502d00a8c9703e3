package engine

import (
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
)

// FloatingText is a short-lived label anchored at a world position that rises and fades
type FloatingText struct {
	Text        string
	X, Y        float64 // World anchor
	OffsetY     float64 // Screen pixels risen so far
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64
}

func NewFloatingText(text string, x, y float64) FloatingText {
	return FloatingText{
		Text:        text,
		X:           x,
		Y:           y,
		Lifetime:    parameter.FloatingTextLifetime,
		MaxLifetime: parameter.FloatingTextLifetime,
	}
}

func (f *FloatingText) Update(dt float64) {
	f.Lifetime -= dt
	f.OffsetY += parameter.FloatingTextRiseSpeed * dt
}

func (f *FloatingText) Expired() bool {
	return f.Lifetime <= 0
}

// Fade is the remaining lifetime fraction in [0, 1]
func (f *FloatingText) Fade() float64 {
	if f.MaxLifetime <= 0 {
		return 0
	}
	return vmath.Clamp(f.Lifetime/f.MaxLifetime, 0, 1)
}
