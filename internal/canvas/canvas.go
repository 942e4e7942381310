// Package canvas defines the boundary to the rendering collaborator: a
// cylindrical color model and a transformable drawing surface. The engine
// only ever talks to a Surface; the ebiten-backed implementation lives in
// internal/game.
package canvas

import (
	"image/color"
	"math"
)

// Color in a cylindrical model: hue in degrees [0,360), saturation,
// brightness and alpha in [0,100].
type Color struct {
	H, S, B, A float64
}

// WithAlpha returns a copy with the alpha channel replaced, clamped to [0,100].
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	}
	if a > 100 {
		a = 100
	}
	c.A = a
	return c
}

// RGBA converts to 8-bit RGBA (hue: 0-360, saturation/brightness/alpha: 0-100).
func (c Color) RGBA() color.RGBA {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := c.S / 100
	v := c.B / 100

	cc := v * s
	x := cc * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - cc

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = cc, x, 0
	case h < 120:
		r, g, b = x, cc, 0
	case h < 180:
		r, g, b = 0, cc, x
	case h < 240:
		r, g, b = 0, x, cc
	case h < 300:
		r, g, b = x, 0, cc
	default:
		r, g, b = cc, 0, x
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: uint8(c.A / 100 * 255),
	}
}

// Point is a coordinate in the surface's current local frame.
type Point struct {
	X, Y float64
}

// Surface is an abstract drawing target with a transform stack. Coordinates
// passed to the primitives are interpreted in the current local frame.
type Surface interface {
	// Push saves the current transform; Pop restores the last saved one.
	Push()
	Pop()
	Translate(dx, dy float64)
	// Rotate turns the local frame by rad radians.
	Rotate(rad float64)

	FillCircle(x, y, r float64, c Color)
	StrokeCircle(x, y, r, width float64, c Color)
	Line(x1, y1, x2, y2, width float64, c Color)
	// StrokePoly outlines the closed path through pts.
	StrokePoly(pts []Point, width float64, c Color)
}
