package audio

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = ChannelCount * 4 // float32 per channel
)

// SoundKind identifies a sound effect.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundBite
	SoundLose
	SoundWin
)

type note struct {
	freq  float64 // start frequency in Hz
	slide float64 // frequency change over the note, in Hz
	onset float64 // seconds from the start of the effect
	dur   float64
	gain  float64
}

var effects = map[SoundKind][]note{
	SoundEat: {
		{freq: 520, slide: 640, dur: 0.08, gain: 0.45},
	},
	SoundBite: {
		{freq: 180, slide: -90, dur: 0.12, gain: 0.5},
	},
	SoundLose: {
		{freq: 330, slide: -10, onset: 0.00, dur: 0.30, gain: 0.35},
		{freq: 262, slide: -8, onset: 0.14, dur: 0.30, gain: 0.35},
		{freq: 220, slide: -6, onset: 0.28, dur: 0.40, gain: 0.35},
	},
	SoundWin: {
		{freq: 523, onset: 0.00, dur: 0.15, gain: 0.3},
		{freq: 659, onset: 0.10, dur: 0.15, gain: 0.3},
		{freq: 784, onset: 0.20, dur: 0.30, gain: 0.3},
	},
}

// Generate renders kind as interleaved stereo float32 little-endian samples.
// Unknown kinds render to nil.
func Generate(kind SoundKind) []byte {
	notes, ok := effects[kind]
	if !ok {
		return nil
	}

	var length float64
	for _, n := range notes {
		length = math.Max(length, n.onset+n.dur)
	}
	mix := make([]float64, int(length*SampleRate))
	for _, n := range notes {
		start := int(n.onset * SampleRate)
		count := int(n.dur * SampleRate)
		for i := 0; i < count && start+i < len(mix); i++ {
			p := float64(i) / float64(count)
			t := float64(i) / SampleRate
			freq := n.freq + n.slide*p
			mix[start+i] += math.Sin(2*math.Pi*freq*t) * envelope(p) * n.gain
		}
	}

	buf := make([]byte, len(mix)*frameBytes)
	for i, s := range mix {
		bits := math.Float32bits(float32(saturate(s)))
		for ch := 0; ch < ChannelCount; ch++ {
			binary.LittleEndian.PutUint32(buf[i*frameBytes+ch*4:], bits)
		}
	}
	return buf
}

// envelope is a short linear attack followed by an exponential tail.
func envelope(p float64) float64 {
	const attack = 0.02
	if p < attack {
		return p / attack
	}
	return math.Exp(-4 * (p - attack))
}

// saturate soft-clips into [-1, 1].
func saturate(x float64) float64 {
	return math.Tanh(x)
}
