package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputHoldWindow is how long a key counts as held after its last press event
	// Terminals report no key release, auto-repeat keeps the key alive
	InputHoldWindow = 120 * time.Millisecond

	// InputRepeatDelay bridges the gap between a key's first event and its auto-repeat
	InputRepeatDelay = 300 * time.Millisecond

	// MaxFrameDelta caps the simulated time of one frame after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// InputEventBuffer is the capacity of the input polling channel
	InputEventBuffer = 256
)

// World Geometry
const (
	// WorldDepth is the number of stacked height layers, one bit per layer in a column byte
	WorldDepth = 8

	// TileEpsilon is the distance under which an entity counts as resting on its tile slot
	TileEpsilon = 0.01
)
