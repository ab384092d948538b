package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundFanfare SoundType = iota // Round won
	SoundOuch                     // Human hurt
	SoundStep                     // Footstep
	SoundJump                     // Climb start
	SoundBlip                     // Menu confirm
	SoundRescue                   // Hostage freed
	SoundWasted                   // Death
	SoundOver                     // Game over jingle
	SoundBoom                     // Bomb explosion
	SoundAnt                      // Ant stomped
	SoundTypeCount
)

var soundNames = [...]string{
	SoundFanfare: "fanfare",
	SoundOuch:    "ouch",
	SoundStep:    "step",
	SoundJump:    "jump",
	SoundBlip:    "blip",
	SoundRescue:  "rescue",
	SoundWasted:  "wasted",
	SoundOver:    "over",
	SoundBoom:    "boom",
	SoundAnt:     "ant",
}

func (s SoundType) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// Cue is a fire-and-forget request to play a sound
// Pitch is a shift in octaves, Volume is linear gain where 1 is unchanged
type Cue struct {
	Sound  SoundType
	Pitch  float64
	Volume float64
}

// CueOf returns a cue playing s unmodified
func CueOf(s SoundType) Cue {
	return Cue{Sound: s, Volume: 1}
}
