package constant

// Movement speeds in tiles per second
const (
	DefaultSpeed = 1.0
	HumanSpeed   = 5.0
	AntSpeed     = 4.0
	BombSpeed    = 7.0
	CursorSpeed  = 5.0

	// ExplosionSpeed slows the explosion animation to one second
	ExplosionSpeed = 1.0
)

// Humans
const (
	HumanHitpoints = 20

	// HumanStepSoundPeriod is the number of walk ticks between footstep cues
	HumanStepSoundPeriod = 20

	// HumanStepSoundPhase is the tick within the period the footstep plays on
	HumanStepSoundPhase = 2

	// HumanWalkFrameTicks is the number of ticks each walk-cycle frame is shown
	HumanWalkFrameTicks = 10

	// HostageReach is the distance at which a rescued hostage stops following
	HostageReach = 1.001

	// GirlPitch shifts human cues up for the girl character, in octaves
	GirlPitch = 0.5
)

// Alert pulses
const (
	StepAlertRadius      = 25.0
	ExplosionAlertRadius = 50.0
)

// Ants
const (
	// AntDetourChance is the 1-in-N chance an ant near its target wanders randomly
	AntDetourChance = 5

	// AntDetourDistance is the distance to target under which detours may happen
	AntDetourDistance = 5.0

	AntBiteDamage = 1

	// AntKillVolume and AntKillPitch shape the quiet, low death cue
	AntKillVolume = 0.4
	AntKillPitch  = -1.0

	// AntStompParalysis is applied when the player stands on an ant, in ticks
	AntStompParalysis = 350
)

// Bombs
const (
	// BombBlastRadius is the reach of the explosion's paralysis
	BombBlastRadius = 10.0

	// BombKillRadius kills ants outright
	BombKillRadius = 2.5

	// BombHurtRadius hurts humans by (BombHurtRadius - floor(distance))
	BombHurtRadius = 4.0

	BombParalysis = 700

	// BombBaseDistance and BombChargeDistance give the fly distance 4 + force*8
	BombBaseDistance   = 4
	BombChargeDistance = 8

	// BombMaxCharge is the throw force cap, reached after one second of holding
	BombMaxCharge = 1.0
)

// Rounds
const (
	// RoundSeedBase is added to the round index to seed the ant spawn sequence
	RoundSeedBase = 123

	// StartingAmmo is the number of bombs per round
	StartingAmmo = 20

	// RoundTime is the time bonus counter at round start
	RoundTime = 1000.0

	// RoundTimeRate is how fast the time bonus drains per second
	RoundTimeRate = 5.0

	// ScoreHitpointDivisor normalizes combined hitpoints in the score formula
	ScoreHitpointDivisor = 20.0
)
