// Package palette produces the 5-color set used to tint a generation batch.
package palette

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/proximity-art/internal/canvas"
	"github.com/iburimskiy/proximity-art/internal/config"
)

// Palette is an ordered set of exactly 5 colors, 60 degrees of hue apart.
// It is regenerated wholesale, never mutated in place.
type Palette [config.PaletteSize]canvas.Color

// Generate picks a random base hue and derives the 5 entries from it.
// Saturation and brightness are randomized per entry.
func Generate(rng *rand.Rand) Palette {
	base := rng.Float64() * 360
	var p Palette
	for i := range p {
		p[i] = canvas.Color{
			H: math.Mod(base+float64(i)*config.PaletteHueStep, 360),
			S: 60 + rng.Float64()*40,
			B: 70 + rng.Float64()*30,
			A: 100,
		}
	}
	return p
}

// At returns the color for element index i, cycling through the entries.
func (p Palette) At(i int) canvas.Color {
	return p[i%len(p)]
}
