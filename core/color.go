package core

// Color stores explicit 8-bit RGBA channels, decoupled from any backend
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with explicit alpha
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Predefined colors
var (
	Black     = RGB(0, 0, 0)
	White     = RGB(255, 255, 255)
	Gray      = RGB(130, 130, 130)
	LightGray = RGB(200, 200, 200)
	DarkGray  = RGB(80, 80, 80)
	Red       = RGB(230, 41, 55)
	Green     = RGB(0, 228, 48)
	Yellow    = RGB(253, 249, 0)
	Orange    = RGB(255, 161, 0)
	SkyBlue   = RGB(102, 191, 255)
)

// Lerp interpolates channels toward dst by t, clamped to [0, 1]; result is opaque
func (c Color) Lerp(dst Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return Color{
		R: uint8(float64(c.R)*inv + float64(dst.R)*t),
		G: uint8(float64(c.G)*inv + float64(dst.G)*t),
		B: uint8(float64(c.B)*inv + float64(dst.B)*t),
		A: 255,
	}
}

// WithAlpha returns the color with alpha replaced
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Blend performs alpha blending over dst using the source alpha: src*a + dst*(1-a)
func (c Color) Blend(dst Color) Color {
	if c.A == 255 {
		return c
	}
	if c.A == 0 {
		return dst
	}
	alpha := float64(c.A) / 255.0
	inv := 1.0 - alpha
	return Color{
		R: uint8(float64(c.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(c.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(c.B)*alpha + float64(dst.B)*inv),
		A: 255,
	}
}
