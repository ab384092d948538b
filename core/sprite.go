package core

// SpriteID indexes the tileset; the renderer maps it to a glyph
type SpriteID int

// Tileset layout, one row of sixteen per character sheet
const (
	SpriteBlock  SpriteID = 0
	SpriteCursor SpriteID = 2
	SpriteBad    SpriteID = 3 // Fallback for unhandled animation states

	SpriteBoy  SpriteID = 16
	SpriteGirl SpriteID = 32
	SpriteAnt  SpriteID = 48
	SpriteBomb SpriteID = 56
	SpriteBoom SpriteID = 57 // First of four explosion frames
)

// Offsets within a human sheet
const (
	HumanFacingAway = 5  // Added when facing -X or +Y
	HumanClimbStart = 3  // Crouch before climbing
	HumanClimbUp    = 2  // Mid climb
	HumanFall       = 4  // Falling
	HumanLay        = 10 // Lay base, plus facing direction
)

// AntStride is the offset to the mid-step ant frame
const AntStride = 4

// BoomFrames is the number of explosion frames
const BoomFrames = 4
