// Package sound plays a short synthesized click whenever balls hit a wall.
package sound

import (
	"fmt"
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/ball-animation/internal/config"
)

// Player is safe to use with sound disabled; every method is then a no-op.
type Player struct {
	enabled bool
	tone    []float64
	voices  atomic.Int32
	max     int32
}

// New initializes the speaker unless muted. A failed init is logged and
// leaves the player silent.
func New(muted bool) *Player {
	rate := beep.SampleRate(config.SampleRate)
	p := &Player{
		tone: synthTone(rate, config.ToneFreq, config.ToneLength),
		max:  config.MaxVoices,
	}
	if muted {
		return p
	}
	if err := initSpeaker(rate); err != nil {
		log.Printf("Audio initialization failed, continuing without sound: %v", err)
		return p
	}
	p.enabled = true
	return p
}

func initSpeaker(rate beep.SampleRate) error {
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", rate, err)
	}
	return nil
}

func (p *Player) Enabled() bool { return p.enabled }

// Bounce plays one click for a tick with n wall reflections. Clicks beyond
// the voice limit are dropped.
func (p *Player) Bounce(n int) {
	if !p.enabled || n <= 0 {
		return
	}
	if !p.acquire() {
		return
	}
	speaker.Play(beep.Seq(&toneStreamer{buf: p.tone}, beep.Callback(p.release)))
}

func (p *Player) acquire() bool {
	for {
		cur := p.voices.Load()
		if cur >= p.max {
			return false
		}
		if p.voices.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

func (p *Player) release() { p.voices.Add(-1) }

func (p *Player) Close() {
	if !p.enabled {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Close()
	p.enabled = false
}

// synthTone renders a sine at freq with a linear attack and an exponential decay.
func synthTone(rate beep.SampleRate, freq float64, d time.Duration) []float64 {
	n := rate.N(d)
	buf := make([]float64, n)
	attack := rate.N(2 * time.Millisecond)
	for i := range buf {
		t := float64(i) / float64(rate)
		vol := math.Exp(-6 * float64(i) / float64(n))
		if i < attack {
			vol *= float64(i) / float64(attack)
		}
		buf[i] = 0.4 * vol * math.Sin(2*math.Pi*freq*t)
	}
	return buf
}

// toneStreamer plays a shared mono buffer once on both channels.
type toneStreamer struct {
	buf []float64
	pos int
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		v := s.buf[s.pos]
		samples[n][0], samples[n][1] = v, v
		n++
		s.pos++
	}
	return n, true
}

func (s *toneStreamer) Err() error { return nil }
