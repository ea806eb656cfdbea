package main

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	popLength      = 300 * time.Millisecond
	popMinInterval = 50 * time.Millisecond
	thumpFrequency = 70.0
)

// PopPlayer plays a short crackle for every burst through the system speaker.
type PopPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
	lastPlay    time.Time
}

// NewPopPlayer creates a pop player; call Initialize before Play.
func NewPopPlayer(seed int64) *PopPlayer {
	return &PopPlayer{
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *PopPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play mixes one pop in. Pops closer together than popMinInterval are dropped.
func (p *PopPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	now := time.Now()
	if now.Sub(p.lastPlay) < popMinInterval {
		return
	}
	p.lastPlay = now

	streamer, err := newPopStreamer(sampleRate, p.rng.Int63())
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback.
func (p *PopPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// newPopStreamer builds one pop: decaying noise over a decaying low sine.
func newPopStreamer(sr beep.SampleRate, seed int64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, thumpFrequency)
	if err != nil {
		return nil, err
	}
	thump := &DecayEnvelope{sr: sr, rate: 9, gain: 0.4, streamer: tone}
	crackle := &DecayEnvelope{sr: sr, rate: 14, gain: 0.6, streamer: NewNoiseGenerator(seed)}
	return beep.Take(sr.N(popLength), beep.Mix(crackle, thump)), nil
}

// NoiseGenerator generates white noise
type NoiseGenerator struct {
	rng *rand.Rand
}

// NewNoiseGenerator creates a seeded white noise generator
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// DecayEnvelope scales a streamer by gain * exp(-rate * t)
type DecayEnvelope struct {
	sr       beep.SampleRate
	rate     float64
	gain     float64
	pos      int
	streamer beep.Streamer
}

func (e *DecayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.pos) / float64(e.sr)
		env := e.gain * math.Exp(-e.rate*t)
		samples[i][0] *= env
		samples[i][1] *= env
		e.pos++
	}
	return n, ok
}

func (e *DecayEnvelope) Err() error {
	return e.streamer.Err()
}
