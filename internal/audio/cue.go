// Package audio provides the snap feedback cue.
// Everything here is best-effort: a missing or broken audio device degrades
// silently and never blocks play.
package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Cue plays a short feedback sound on a successful snap.
// The zero state (failed init) is a usable no-op.
type Cue struct {
	buf         *beep.Buffer
	initialized bool
}

// NewCue initializes the speaker and prepares the cue sound.
// cuePath optionally names a WAV file; empty uses the built-in click.
// Any failure returns a silent cue alongside the error so the caller can
// log it and keep playing.
func NewCue(cuePath string) (*Cue, error) {
	c := &Cue{}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return c, fmt.Errorf("audio: speaker init failed: %w", err)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})

	if cuePath != "" {
		streamer, format, err := decodeWAV(cuePath)
		if err != nil {
			return c, err
		}
		defer streamer.Close()
		if format.SampleRate == sampleRate {
			buf.Append(streamer)
		} else {
			buf.Append(beep.Resample(3, format.SampleRate, sampleRate, streamer))
		}
	} else {
		buf.Append(beep.Take(sampleRate.N(time.Millisecond*90), newClickGenerator(sampleRate)))
	}

	c.buf = buf
	c.initialized = true
	return c, nil
}

// decodeWAV opens and decodes a WAV cue file.
func decodeWAV(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("audio: cannot open cue %s: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: cannot decode cue %s: %w", path, err)
	}
	return streamer, format, nil
}

// Play starts the cue asynchronously. Safe to call on a failed or nil cue;
// playback failures are swallowed.
func (c *Cue) Play() {
	if c == nil || !c.initialized || c.buf == nil {
		return
	}
	speaker.Play(c.buf.Streamer(0, c.buf.Len()))
}

// Close silences the speaker. The underlying device stays open; beep does
// not expose a close for it.
func (c *Cue) Close() {
	if c == nil || !c.initialized {
		return
	}
	speaker.Clear()
	c.initialized = false
}

// clickGenerator synthesizes the built-in snap click: a short decaying
// sine blip.
type clickGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newClickGenerator(sr beep.SampleRate) *clickGenerator {
	return &clickGenerator{sr: sr}
}

func (g *clickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 880Hz blip with a fast exponential decay
		envelope := math.Exp(-t * 45)
		sample := 0.4 * envelope * math.Sin(2*math.Pi*880*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *clickGenerator) Err() error {
	return nil
}
