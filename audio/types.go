package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundWall   SoundType = iota // Top/bottom wall bounce
	SoundPaddle                  // Paddle hit
	SoundReset                   // Ball left the arena
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundWall:   "wall",
	SoundPaddle: "paddle",
	SoundReset:  "reset",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
