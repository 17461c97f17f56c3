// Package sound synthesizes the short cues played on moves and at the end
// of a game. Output is 16-bit signed little-endian stereo PCM, the format
// ebiten's audio context consumes.
package sound

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	// SampleRate used by the window frontend audio context.
	SampleRate = 44100

	bytesPerFrame = 4 // two channels, two bytes each
	envelope      = 5 * time.Millisecond
	volume        = 0.3
)

type Cue int

const (
	CueNone Cue = iota
	CueMove
	CueEnd
)

func (that Cue) String() string {
	switch that {
	case CueMove:
		return "move"
	case CueEnd:
		return "end"
	default:
		return "none"
	}
}

// Tone - renders a sine wave of the given frequency and length.
// Attack and release ramps keep the speaker from clicking.
func Tone(freq float64, duration time.Duration, sampleRate int, vol float64) []byte {
	frames := int(duration.Seconds() * float64(sampleRate))
	if frames <= 0 {
		return nil
	}

	ramp := int(envelope.Seconds() * float64(sampleRate))
	if ramp*2 > frames {
		ramp = frames / 2
	}

	out := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		gain := vol
		switch {
		case ramp > 0 && i < ramp:
			gain *= float64(i) / float64(ramp)
		case ramp > 0 && i >= frames-ramp:
			gain *= float64(frames-1-i) / float64(ramp)
		}

		sample := int16(math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * gain * math.MaxInt16)

		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(sample))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(sample))
	}

	return out
}

// Synthesize - PCM for a cue: a single blip for a move, a rising
// C-E-G arpeggio when the game ends.
func Synthesize(cue Cue, sampleRate int) []byte {
	switch cue {
	case CueMove:
		return Tone(880, 80*time.Millisecond, sampleRate, volume)
	case CueEnd:
		var out []byte
		for _, freq := range []float64{523.25, 659.25, 783.99} {
			out = append(out, Tone(freq, 180*time.Millisecond, sampleRate, volume)...)
		}
		return out
	default:
		return nil
	}
}
