package constants

import "time"

// Audio Engine Setup
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Slice Sound
const (
	SliceSoundDuration  = 70 * time.Millisecond
	SliceSoundBaseFreq  = 660.0
	SliceSoundComboStep = 1.06 // pitch ratio per combo step
	SliceSoundMaxCombo  = 12   // pitch stops rising past this combo
)

// Poison Sound
const (
	PoisonSoundDuration = 400 * time.Millisecond
	PoisonSoundFreq     = 110.0
)

// Life Lost Sound
const (
	LifeLostSoundDuration = 150 * time.Millisecond
	LifeLostSoundFreq     = 120.0
)

// Level Up Sound
const (
	LevelUpNoteDuration = 90 * time.Millisecond
)

// LevelUpNotes is the arpeggio played on level up
var LevelUpNotes = []float64{523.25, 659.25, 783.99, 1046.50}
