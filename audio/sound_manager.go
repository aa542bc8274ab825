package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/lifeterm/life"
)

const (
	sampleRate = beep.SampleRate(48000)

	// DefaultVolume is the master level applied when none is configured
	DefaultVolume = 0.8
)

// SoundManager plays short cues through a persistent mixer
// All methods are safe to call before Initialize or after Cleanup; they become no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a new sound manager with a master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues
// beep has no speaker close that allows re-init, so the device stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Play queues one cue on the mixer
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s < 0 || s >= soundTypeCount {
		return
	}

	streamer := GetSoundEffect(s, sm.volume, sampleRate)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played[s]++
}

// Cue plays the sound mapped to an engine outcome, if any
func (sm *SoundManager) Cue(o life.Outcome) {
	if s, ok := SoundFor(o); ok {
		sm.Play(s)
	}
}

// Stepped plays the generation tick
func (sm *SoundManager) Stepped() {
	sm.Play(SoundStep)
}

// Played returns how many times a cue was queued
func (sm *SoundManager) Played(s SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return sm.played[s]
}
