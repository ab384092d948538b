package core

// AnimationState is the current step of an entity's movement/animation state machine
type AnimationState uint8

const (
	AnimIdle AnimationState = iota // Decision point
	AnimWalk
	AnimFall
	AnimClimb
	AnimLay // Frozen, never resolves back to idle on its own
	AnimDash
	AnimBite
	AnimExplode
)

var animationNames = [...]string{
	AnimIdle:    "idle",
	AnimWalk:    "walk",
	AnimFall:    "fall",
	AnimClimb:   "climb",
	AnimLay:     "lay",
	AnimDash:    "dash",
	AnimBite:    "bite",
	AnimExplode: "explode",
}

func (s AnimationState) String() string {
	if int(s) >= len(animationNames) {
		return "unknown"
	}
	return animationNames[s]
}

// Frozen reports whether the state carries no animation progress
func (s AnimationState) Frozen() bool {
	return s == AnimIdle || s == AnimLay
}
