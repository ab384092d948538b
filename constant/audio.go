package constant

import "time"

// Audio Engine
const (
	// AudioSampleRate is the mixer sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioResampleQuality is passed to beep's resampler for pitch shifts
	AudioResampleQuality = 4

	// AudioMasterGain scales every synthesized sample
	AudioMasterGain = 0.25

	// AudioMaxVoices caps simultaneously sounding cues, extra cues are dropped
	AudioMaxVoices = 12

	// AudioVolumeStep is the gain change per volume key press
	AudioVolumeStep = 0.1
)

// Sound Durations
const (
	FanfareNoteDuration = 160 * time.Millisecond
	OuchDuration        = 120 * time.Millisecond
	StepDuration        = 30 * time.Millisecond
	JumpDuration        = 150 * time.Millisecond
	BlipDuration        = 60 * time.Millisecond
	RescueNoteDuration  = 110 * time.Millisecond
	WastedDuration      = 700 * time.Millisecond
	OverNoteDuration    = 300 * time.Millisecond
	BoomDuration        = 900 * time.Millisecond
	AntDuration         = 200 * time.Millisecond
)

// Envelope
const (
	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 40 * time.Millisecond
)
