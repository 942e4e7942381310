package canvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name    string
		in      Color
		r, g, b uint8
		a       uint8
	}{
		{"pure red", Color{H: 0, S: 100, B: 100, A: 100}, 255, 0, 0, 255},
		{"pure green", Color{H: 120, S: 100, B: 100, A: 100}, 0, 255, 0, 255},
		{"pure blue", Color{H: 240, S: 100, B: 100, A: 100}, 0, 0, 255, 255},
		{"white", Color{H: 0, S: 0, B: 100, A: 100}, 255, 255, 255, 255},
		{"black", Color{H: 180, S: 100, B: 0, A: 100}, 0, 0, 0, 255},
		{"transparent", Color{H: 0, S: 100, B: 100, A: 0}, 255, 0, 0, 0},
		{"hue wraps", Color{H: 360, S: 100, B: 100, A: 100}, 255, 0, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.RGBA()
			require.Equal(t, tt.r, got.R)
			require.Equal(t, tt.g, got.G)
			require.Equal(t, tt.b, got.B)
			require.Equal(t, tt.a, got.A)
		})
	}
}

func TestWithAlphaClamps(t *testing.T) {
	c := Color{H: 10, S: 50, B: 50, A: 100}
	require.Equal(t, 0.0, c.WithAlpha(-5).A)
	require.Equal(t, 100.0, c.WithAlpha(250).A)
	require.Equal(t, 42.0, c.WithAlpha(42).A)
	// receiver untouched
	require.Equal(t, 100.0, c.A)
}
