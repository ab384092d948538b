package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ant-attack/constant"
)

// Controls is the per-frame key state read by the session
type Controls interface {
	KeyDown(a Action) bool
	KeyPressed(a Action) bool
	KeyReleased(a Action) bool
}

// State derives held/pressed/released edges from terminal key events
// Terminals report no key release, so a key counts as held until its events stop
// for the hold window; the first event gets a longer window to bridge the
// auto-repeat delay
type State struct {
	keymap *Keymap

	firstWindow  time.Duration
	repeatWindow time.Duration

	lastSeen  [ActionCount]time.Time
	repeating [ActionCount]bool
	events    [ActionCount]bool // Seen since the last frame

	down     [ActionCount]bool
	prevDown [ActionCount]bool
}

// NewState creates a key state over km, nil selects the default keymap
func NewState(km *Keymap) *State {
	if km == nil {
		km = DefaultKeymap()
	}
	return &State{
		keymap:       km,
		firstWindow:  constant.InputRepeatDelay,
		repeatWindow: constant.InputHoldWindow,
	}
}

// SetWindows overrides the hold windows
func (s *State) SetWindows(first, repeat time.Duration) {
	s.firstWindow = first
	s.repeatWindow = repeat
}

// HandleEvent records a key event and returns the action it maps to
func (s *State) HandleEvent(ev *tcell.EventKey, now time.Time) Action {
	a := s.keymap.Resolve(ev)
	s.Press(a, now)
	return a
}

// Press records an event for a, used by HandleEvent and tests
func (s *State) Press(a Action, now time.Time) {
	if a == ActionNone || a >= ActionCount {
		return
	}
	if s.down[a] || s.events[a] {
		s.repeating[a] = true
	}
	s.lastSeen[a] = now
	s.events[a] = true
}

// Update latches the key state for the frame at now
func (s *State) Update(now time.Time) {
	s.prevDown = s.down
	for a := range s.down {
		if s.events[a] {
			s.down[a] = true
			s.events[a] = false
			continue
		}
		window := s.firstWindow
		if s.repeating[a] {
			window = s.repeatWindow
		}
		s.down[a] = s.down[a] && now.Sub(s.lastSeen[a]) < window
		if !s.down[a] {
			s.repeating[a] = false
		}
	}
}

// KeyDown reports whether a is held this frame
func (s *State) KeyDown(a Action) bool {
	return a < ActionCount && s.down[a]
}

// KeyPressed reports whether a went down this frame
func (s *State) KeyPressed(a Action) bool {
	return a < ActionCount && s.down[a] && !s.prevDown[a]
}

// KeyReleased reports whether a went up this frame
func (s *State) KeyReleased(a Action) bool {
	return a < ActionCount && !s.down[a] && s.prevDown[a]
}
