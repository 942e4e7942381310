package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/proximity-art/internal/canvas"
)

// xform is a rotation-plus-translation frame. No scaling, so circles stay
// circles and stroke widths stay in pixels.
type xform struct {
	tx, ty float64
	ang    float64
}

func (t xform) apply(x, y float64) (float64, float64) {
	sin, cos := math.Sincos(t.ang)
	return t.tx + cos*x - sin*y, t.ty + sin*x + cos*y
}

// surface implements canvas.Surface on an ebiten image using the vector
// primitives the renderer provides.
type surface struct {
	dst   *ebiten.Image
	cur   xform
	stack []xform
}

func newSurface(dst *ebiten.Image) *surface {
	return &surface{dst: dst}
}

func (s *surface) Push() {
	s.stack = append(s.stack, s.cur)
}

func (s *surface) Pop() {
	if n := len(s.stack); n > 0 {
		s.cur = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *surface) Translate(dx, dy float64) {
	sin, cos := math.Sincos(s.cur.ang)
	s.cur.tx += cos*dx - sin*dy
	s.cur.ty += sin*dx + cos*dy
}

func (s *surface) Rotate(rad float64) {
	s.cur.ang += rad
}

func (s *surface) FillCircle(x, y, r float64, c canvas.Color) {
	px, py := s.cur.apply(x, y)
	vector.DrawFilledCircle(s.dst, float32(px), float32(py), float32(r), c.RGBA(), true)
}

func (s *surface) StrokeCircle(x, y, r, width float64, c canvas.Color) {
	px, py := s.cur.apply(x, y)
	vector.StrokeCircle(s.dst, float32(px), float32(py), float32(r), float32(width), c.RGBA(), true)
}

func (s *surface) Line(x1, y1, x2, y2, width float64, c canvas.Color) {
	ax, ay := s.cur.apply(x1, y1)
	bx, by := s.cur.apply(x2, y2)
	vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(width), c.RGBA(), true)
}

func (s *surface) StrokePoly(pts []canvas.Point, width float64, c canvas.Color) {
	if len(pts) < 2 {
		return
	}
	col := c.RGBA()
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		ax, ay := s.cur.apply(a.X, a.Y)
		bx, by := s.cur.apply(b.X, b.Y)
		vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(width), col, true)
	}
}
