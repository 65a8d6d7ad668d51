package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/bubble-slicer/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays game feedback sounds through a single speaker mixer
// All operations are safe before Initialize and after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool

	// Sample rate of generated effects
	rate beep.SampleRate
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, 1.0),
		rate:   sampleRate,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close for a shared device, clearing the mixer silences it
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences or restores output without dropping queued sounds
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = muted
		speaker.Unlock()
	} else {
		sm.master.Silent = muted
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlaySlice plays the slice chirp pitched by combo
func (sm *SoundManager) PlaySlice(combo int) {
	sm.play(CreateSliceSound(sm.rate, combo))
}

// PlayPoison plays the poison sting
func (sm *SoundManager) PlayPoison() {
	sm.play(CreatePoisonSound(sm.rate))
}

// PlayLifeLost plays the escaped bubble thud
func (sm *SoundManager) PlayLifeLost() {
	sm.play(CreateLifeLostSound(sm.rate))
}

// PlayLevelUp plays the level up arpeggio
func (sm *SoundManager) PlayLevelUp() {
	sm.play(CreateLevelUpSound(sm.rate))
}

// PlayGameOver plays the descending arpeggio
func (sm *SoundManager) PlayGameOver() {
	sm.play(CreateGameOverSound(sm.rate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
