package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-pong/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer with an attack ramp and a release tail
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with a linear gain.
// math.Log2(0) is -Inf, so zero volume is expressed as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateWallSound generates a short soft blip for wall bounces
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.WallSoundFreq, constant.WallSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constant.WallSoundDuration, constant.WallSoundAttack, constant.WallSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundWall]*cfg.MasterVolume)
}

// CreatePaddleSound generates a bright square blip for paddle hits
func CreatePaddleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.PaddleSoundFreq, constant.PaddleSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.PaddleSoundDuration, constant.PaddleSoundAttack, constant.PaddleSoundRelease, rate)

	// Square waves are loud; pull them down to sit with the other cues
	return newVolume(shaped, 0.5*cfg.EffectVolumes[SoundPaddle]*cfg.MasterVolume)
}

// CreateResetSound generates a falling two-note chime for a ball leaving the arena
func CreateResetSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constant.ResetSoundNote1Freq, constant.ResetSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constant.ResetSoundNote1Duration, constant.ResetSoundAttack, constant.ResetSoundNote1Release, rate)

	n2 := NewOscillator(constant.ResetSoundNote2Freq, constant.ResetSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constant.ResetSoundNote2Duration, constant.ResetSoundAttack, constant.ResetSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	return newVolume(sequence, cfg.EffectVolumes[SoundReset]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundPaddle:
		return CreatePaddleSound(cfg)
	case SoundReset:
		return CreateResetSound(cfg)
	default:
		return nil
	}
}
