// Package art holds the procedurally generated elements, the pattern
// generators that spawn them, and the collection that ages and prunes them
// every frame.
package art

import (
	"math"

	"github.com/iburimskiy/proximity-art/internal/canvas"
	"github.com/iburimskiy/proximity-art/internal/config"
)

// Element is one visual in the scene. Update advances it by exactly one
// tick; an expired element is removed the same frame its life reaches 0.
type Element interface {
	Update()
	Draw(s canvas.Surface)
	Expired() bool
}

// Shape selects how a Mark draws itself.
type Shape int

const (
	ShapeDot Shape = iota
	ShapeRay
	ShapeWaveMark
	ShapePolyOutline
)

// Mark is a static element: it fades in place and never moves.
type Mark struct {
	X, Y  float64
	Angle float64 // ray orientation, radians
	Sides int     // polygon outline vertex count
	Color canvas.Color
	Shape Shape
	Size  float64

	Life    float64
	MaxLife float64
}

func (m *Mark) Update() {
	m.Life -= config.LifeDecay
}

func (m *Mark) Expired() bool {
	return m.Life <= 0
}

func (m *Mark) Draw(s canvas.Surface) {
	s.Push()
	defer s.Pop()
	s.Translate(m.X, m.Y)

	c := m.Color.WithAlpha(100 * m.Life / m.MaxLife)
	switch m.Shape {
	case ShapeDot:
		s.FillCircle(0, 0, m.Size, c)
	case ShapeRay:
		s.Rotate(m.Angle)
		s.Line(-m.Size/2, 0, m.Size/2, 0, 2, c)
	case ShapeWaveMark:
		s.StrokeCircle(0, 0, m.Size, 1.5, c)
		s.FillCircle(0, 0, m.Size/3, c)
	case ShapePolyOutline:
		s.StrokePoly(regularPolygon(m.Sides, m.Size), 2, c)
	}
}

// regularPolygon returns the vertices of an n-gon of the given radius
// around the origin, first vertex pointing up.
func regularPolygon(n int, radius float64) []canvas.Point {
	if n < 3 {
		n = 3
	}
	pts := make([]canvas.Point, n)
	for i := range pts {
		a := -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
		pts[i] = canvas.Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts
}

// Particle is the kinematic element variant: it falls under gravity, slows
// by friction and draws oriented along its travel direction.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  canvas.Color
	Size   float64

	Life    float64
	MaxLife float64
}

func (p *Particle) Update() {
	p.Life -= config.LifeDecay
	p.X += p.VX
	p.Y += p.VY
	p.VY += config.Gravity
	p.VX *= config.Friction
	p.VY *= config.Friction
}

func (p *Particle) Expired() bool {
	return p.Life <= 0
}

func (p *Particle) Draw(s canvas.Surface) {
	s.Push()
	defer s.Pop()
	s.Translate(p.X, p.Y)
	s.Rotate(math.Atan2(p.VY, p.VX))

	c := p.Color.WithAlpha(100 * p.Life / p.MaxLife)
	s.Line(-p.Size, 0, p.Size, 0, p.Size/2+1, c)
	s.FillCircle(p.Size, 0, p.Size/2, c)
}
