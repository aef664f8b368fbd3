package sound

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	// BytesPerFrame is one float32 LE sample for each stereo channel.
	BytesPerFrame = 8
)

// ChordSeconds is how long each chord of the loop rings.
const ChordSeconds = 4.0

// fadeSeconds is the attack and release around every chord.
const fadeSeconds = 0.6

// Windless slopes: a slow I-vi-IV-V pad in A major.
var progression = [4][4]float64{
	{220.00, 277.18, 329.63, 440.00},
	{185.00, 220.00, 277.18, 369.99},
	{146.83, 220.00, 293.66, 369.99},
	{164.81, 246.94, 329.63, 415.30},
}

// LoopSeconds is the length of one pass through the progression.
const LoopSeconds = ChordSeconds * float64(len(progression))

// Loop is an endless procedural ambient track rendered as float32 LE stereo.
// It never returns io.EOF; looping is built in.
type Loop struct {
	t    float64
	gain float64
}

func NewLoop(gain float64) *Loop {
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}
	return &Loop{gain: gain}
}

func (l *Loop) Read(p []byte) (int, error) {
	frames := len(p) / BytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	for i := 0; i < frames; i++ {
		left, right := l.sample()
		putStereoF32LR(p, i, left, right)
		l.t += 1.0 / SampleRate
		if l.t >= LoopSeconds {
			l.t -= LoopSeconds
		}
	}
	return frames * BytesPerFrame, nil
}

// sample renders the pad at the current time. Every chord fades to silence
// at its edges so the wrap at LoopSeconds is click-free.
func (l *Loop) sample() (float64, float64) {
	idx := int(l.t/ChordSeconds) % len(progression)
	local := math.Mod(l.t, ChordSeconds)
	env := math.Min(1, local/fadeSeconds) * math.Min(1, (ChordSeconds-local)/fadeSeconds)
	env *= env

	chord := progression[idx]
	var left, right float64
	for k, f := range chord {
		// Slight detune per voice, panned alternately.
		v := math.Sin(2*math.Pi*f*l.t) + 0.3*math.Sin(2*math.Pi*f*1.003*l.t)
		if k%2 == 0 {
			left += v * 0.6
			right += v * 0.4
		} else {
			left += v * 0.4
			right += v * 0.6
		}
	}
	n := float64(len(chord))
	left = softSat(left / n * env * l.gain)
	right = softSat(right / n * env * l.gain)
	return left, right
}

func softSat(x float64) float64 { return math.Tanh(x) }

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(float32(left)))
	binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(float32(right)))
}
