package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Serial link to the sensor node
	BaudRate = 9600

	// Element lifecycle
	LifeDecay = 2.0  // life units removed per tick
	Gravity   = 0.15 // added to particle vy per tick
	Friction  = 0.98 // velocity scale per tick, applied after gravity

	// Palette
	PaletteSize        = 5
	PaletteHueStep     = 60.0
	PaletteRegenChance = 0.3 // after each generation batch

	// Sensor node timing
	PollPeriod     = 200 * time.Millisecond
	DebouncePeriod = 50 * time.Millisecond

	// Proximity gate
	TriggerDistanceCm = 15.0
)
