package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime plays a short sine cue when a generation batch spawns, its pitch
// following the palette's base hue. A nil Chime is silent, so audio setup
// failure degrades to a mute installation.
type Chime struct {
	sr beep.SampleRate
}

func NewChime() (*Chime, error) {
	sr := chimeSampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &Chime{sr: sr}, nil
}

// Play maps hue [0,360) to a pitch between 220 and 880 Hz and plays it for
// 150ms. Playback is mixed by the speaker, so overlapping cues are fine.
func (c *Chime) Play(hue float64) {
	if c == nil {
		return
	}
	freq := 220 + int(hue/360*660)
	tone, err := generators.SinTone(c.sr, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sr.N(150*time.Millisecond), tone))
}
