package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/reddy-catch/vmath"
)

// SweepGenerator glides a sine from one frequency to another over a fixed span
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	span     int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sine sweep; frequencies hold at the end value past span
func NewSweepGenerator(sr beep.SampleRate, fromHz, toHz float64, span time.Duration) *SweepGenerator {
	n := sr.N(span)
	if n < 1 {
		n = 1
	}
	return &SweepGenerator{sr: sr, from: fromHz, to: toHz, span: n}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1)
		freq := vmath.Lerp(g.from, g.to, progress)

		// Linear fade out keeps the tail click-free
		sample := 0.25 * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low harmonic-rich buzz with exponential decay
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		attack := math.Min(t/0.02, 1.0)
		sample *= attack * math.Exp(-t*4) * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
