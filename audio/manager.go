package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
)

// Options configures a Manager
type Options struct {
	Volume float64 // Linear master gain in [0,1]
	Muted  bool
}

// Manager plays game sound cues through the speaker
// Cues are synthesized on demand and mixed; with no speaker every call is a no-op
type Manager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool

	played  uint64
	dropped uint64
}

// NewManager creates a manager, Initialize must succeed before sound is heard
func NewManager(opts Options) *Manager {
	return &Manager{
		rate:   beep.SampleRate(constant.AudioSampleRate),
		mixer:  &beep.Mixer{},
		volume: clampVolume(opts.Volume),
		muted:  opts.Muted,
	}
}

// Initialize opens the speaker and starts the mixer
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything, the speaker stays open for a later Initialize
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.mixer = &beep.Mixer{}
	m.initialized = false
}

// Play starts a cue, dropping it when muted or too many cues are already sounding
func (m *Manager) Play(cue core.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	s := m.streamer(cue)
	if s == nil {
		return
	}

	speaker.Lock()
	full := m.mixer.Len() >= constant.AudioMaxVoices
	if !full {
		m.mixer.Add(s)
	}
	speaker.Unlock()

	if full {
		m.dropped++
		return
	}
	m.played++
}

// StopAll cuts every sounding cue
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
}

// streamer builds the pitched, scaled streamer for a cue
func (m *Manager) streamer(cue core.Cue) beep.Streamer {
	return Render(cue, m.rate, m.volume)
}

// Render synthesizes a cue at rate with master gain applied, nil for unknown sounds
// Pitch shifts by octaves through resampling, so a raised cue is also shorter
func Render(cue core.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	s := Synthesize(cue.Sound, rate)
	if s == nil {
		return nil
	}
	if cue.Pitch != 0 {
		s = beep.ResampleRatio(constant.AudioResampleQuality, math.Pow(2, cue.Pitch), s)
	}
	return newVolume(s, cue.Volume*master*constant.AudioMasterGain)
}

// ToggleMute flips mute and returns true when sound is now on
// Sounding cues are cut when muting
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	m.muted = !m.muted
	muted, running := m.muted, m.initialized
	m.mu.Unlock()

	if muted && running {
		m.StopAll()
	}
	return !muted
}

// Muted reports the mute state
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Volume returns the master gain
func (m *Manager) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SetVolume sets the master gain, clamped to [0,1]
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampVolume(v)
}

// Stats returns the played and dropped cue counts
func (m *Manager) Stats() (played, dropped uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.played, m.dropped
}

func clampVolume(v float64) float64 {
	return max(0, min(v, 1))
}
