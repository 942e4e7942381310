package art

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/proximity-art/internal/palette"
)

// Kind selects one of the pattern generators.
type Kind int

const (
	KindSpiral Kind = iota
	KindBurst
	KindWave
	KindParticleBurst
	KindPolygon

	KindCount // number of generators, for uniform selection
)

func (k Kind) String() string {
	switch k {
	case KindSpiral:
		return "spiral"
	case KindBurst:
		return "burst"
	case KindWave:
		return "wave"
	case KindParticleBurst:
		return "particle-burst"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// Generate produces one themed batch of elements for the given kind. Each
// generator picks its own focal point inside the w by h canvas; element i
// takes palette entry i mod 5. An out-of-range kind yields no batch.
func Generate(rng *rand.Rand, kind Kind, pal palette.Palette, w, h float64) []Element {
	switch kind {
	case KindSpiral:
		return spiral(rng, pal, w, h)
	case KindBurst:
		return burst(rng, pal, w, h)
	case KindWave:
		return wave(rng, pal, w, h)
	case KindParticleBurst:
		return particleBurst(rng, pal, w, h)
	case KindPolygon:
		return polygon(rng, pal, w, h)
	}
	return nil
}

// spiral lays 20-100 dots along three full turns, radius growing linearly
// out to a random maximum.
func spiral(rng *rand.Rand, pal palette.Palette, w, h float64) []Element {
	cx, cy := rng.Float64()*w, rng.Float64()*h
	n := 20 + rng.Intn(81)
	maxR := 50 + rng.Float64()*100

	els := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		a := t * 3 * 2 * math.Pi
		r := t * maxR
		els = append(els, &Mark{
			X:       cx + r*math.Cos(a),
			Y:       cy + r*math.Sin(a),
			Color:   pal.At(i),
			Shape:   ShapeDot,
			Size:    3 + t*5,
			Life:    255,
			MaxLife: 255,
		})
	}
	return els
}

// burst spreads 8-24 rays evenly around a focal point, ten marks per ray
// spaced linearly out to a random length.
func burst(rng *rand.Rand, pal palette.Palette, w, h float64) []Element {
	cx, cy := rng.Float64()*w, rng.Float64()*h
	rays := 8 + rng.Intn(17)
	length := 50 + rng.Float64()*150

	els := make([]Element, 0, rays*10)
	for ray := 0; ray < rays; ray++ {
		a := float64(ray) * 2 * math.Pi / float64(rays)
		for j := 1; j <= 10; j++ {
			d := length * float64(j) / 10
			els = append(els, &Mark{
				X:       cx + d*math.Cos(a),
				Y:       cy + d*math.Sin(a),
				Angle:   a,
				Color:   pal.At(len(els)),
				Shape:   ShapeRay,
				Size:    4 + d/10,
				Life:    255,
				MaxLife: 255,
			})
		}
	}
	return els
}

// wave places a marker every 5 horizontal units across the full width on a
// sine curve with random amplitude, frequency and baseline.
func wave(rng *rand.Rand, pal palette.Palette, w, h float64) []Element {
	baseline := rng.Float64() * h
	amp := 50 + rng.Float64()*100
	freq := 0.01 + rng.Float64()*0.04

	els := make([]Element, 0, int(w/5)+1)
	for x := 0.0; x < w; x += 5 {
		els = append(els, &Mark{
			X:       x,
			Y:       baseline + amp*math.Sin(x*freq),
			Color:   pal.At(len(els)),
			Shape:   ShapeWaveMark,
			Size:    4,
			Life:    255,
			MaxLife: 255,
		})
	}
	return els
}

// particleBurst throws 30-80 particles from a jittered focal point with
// uniform angles and speeds in [1,5).
func particleBurst(rng *rand.Rand, pal palette.Palette, w, h float64) []Element {
	cx, cy := rng.Float64()*w, rng.Float64()*h
	n := 30 + rng.Intn(51)

	els := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		a := rng.Float64() * 2 * math.Pi
		speed := 1 + rng.Float64()*4
		ml := 150 + rng.Float64()*105
		els = append(els, &Particle{
			X:       cx + rng.Float64()*40 - 20,
			Y:       cy + rng.Float64()*40 - 20,
			VX:      speed * math.Cos(a),
			VY:      speed * math.Sin(a),
			Color:   pal.At(i),
			Size:    2 + rng.Float64()*4,
			Life:    ml,
			MaxLife: ml,
		})
	}
	return els
}

// polygon rings 3-8 small n-gon outlines around a circle of random radius,
// one at each vertex of the figure.
func polygon(rng *rand.Rand, pal palette.Palette, w, h float64) []Element {
	cx, cy := rng.Float64()*w, rng.Float64()*h
	sides := 3 + rng.Intn(6)
	radius := 30 + rng.Float64()*70

	els := make([]Element, 0, sides)
	for i := 0; i < sides; i++ {
		a := float64(i) * 2 * math.Pi / float64(sides)
		els = append(els, &Mark{
			X:       cx + radius*math.Cos(a),
			Y:       cy + radius*math.Sin(a),
			Sides:   sides,
			Color:   pal.At(i),
			Shape:   ShapePolyOutline,
			Size:    10 + rng.Float64()*10,
			Life:    255,
			MaxLife: 255,
		})
	}
	return els
}
