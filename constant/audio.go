package constant

import "time"

// Sound effect envelopes
const (
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 30 * time.Millisecond
	WallSoundFreq     = 440.0

	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 45 * time.Millisecond
	PaddleSoundFreq     = 880.0

	ResetSoundNote1Duration = 90 * time.Millisecond
	ResetSoundNote2Duration = 160 * time.Millisecond
	ResetSoundAttack        = 5 * time.Millisecond
	ResetSoundNote1Release  = 60 * time.Millisecond
	ResetSoundNote2Release  = 140 * time.Millisecond
	ResetSoundNote1Freq     = 659.25 // E5
	ResetSoundNote2Freq     = 329.63 // E4
)

// Audio device
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5
	SpeakerBuffer       = 100 * time.Millisecond
)
