package audio

import (
	"time"

	"github.com/lixenwraith/lifeterm/life"
)

// SoundType represents different sound cues
type SoundType int

const (
	SoundToggle SoundType = iota // Cell flipped
	SoundStep                    // Generation advanced
	SoundSave                    // Snapshot taken
	SoundLoad                    // Snapshot restored
	SoundReset                   // Grid cleared
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundToggle: "toggle",
	SoundStep:   "step",
	SoundSave:   "save",
	SoundLoad:   "load",
	SoundReset:  "reset",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// SoundFor maps an engine outcome to its cue
func SoundFor(o life.Outcome) (SoundType, bool) {
	switch o {
	case life.OutcomeToggled:
		return SoundToggle, true
	case life.OutcomeSaved:
		return SoundSave, true
	case life.OutcomeLoaded:
		return SoundLoad, true
	case life.OutcomeReset:
		return SoundReset, true
	}
	return 0, false
}

// Timing
const (
	speakerBuffer = 100 * time.Millisecond

	toggleDuration = 60 * time.Millisecond
	toggleAttack   = 5 * time.Millisecond
	toggleRelease  = 40 * time.Millisecond

	stepDuration = 40 * time.Millisecond
	stepAttack   = 2 * time.Millisecond
	stepRelease  = 30 * time.Millisecond

	chimeNoteDuration = 90 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 50 * time.Millisecond

	resetDuration = 150 * time.Millisecond
	resetAttack   = 5 * time.Millisecond
	resetRelease  = 80 * time.Millisecond
)

// Frequencies in Hz
const (
	toggleFrequencyHz = 880.0
	stepFrequencyHz   = 440.0
	chimeLowHz        = 659.25 // E5
	chimeHighHz       = 987.77 // B5
	resetFrequencyHz  = 110.0
)

// Relative mix levels per cue
var cueLevels = [soundTypeCount]float64{
	SoundToggle: 0.5,
	SoundStep:   0.25,
	SoundSave:   0.5,
	SoundLoad:   0.5,
	SoundReset:  0.4,
}
