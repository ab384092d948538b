package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ant-attack/core"
)

// Glyph is a sprite as two terminal cells
type Glyph struct {
	Runes [2]rune
	Color tcell.Color
}

// Body poses within a human sheet, indexed by frame offset
var humanPoses = [5]rune{
	'|',  // Stand
	'/',  // Step
	'\\', // Step, other foot
	'v',  // Crouch before climbing
	'^',  // Fall, arms up
}

// Heads by facing, toward the viewer and away
const (
	headToward = 'o'
	headAway   = 'O'
)

// Laying humans by direction
var layPoses = [6][2]rune{
	core.PositiveX: {'o', '_'},
	core.NegativeX: {'_', 'o'},
	core.PositiveY: {'o', '_'},
	core.NegativeY: {'_', 'o'},
	core.PositiveZ: {'o', '_'},
	core.NegativeZ: {'_', 'o'},
}

// Ant heads by direction, two gait frames
var antHeads = [4]rune{
	core.PositiveX: '>',
	core.NegativeX: '<',
	core.PositiveY: 'v',
	core.NegativeY: '^',
}

var antBodies = [2]rune{'ж', 'Ж'}

var boomFrames = [core.BoomFrames][2]rune{
	{'*', '*'},
	{'#', '#'},
	{'%', '%'},
	{'.', '.'},
}

// GlyphFor maps a sprite ID to its cells
func GlyphFor(id core.SpriteID) Glyph {
	switch {
	case id == core.SpriteCursor:
		return Glyph{Runes: [2]rune{'[', ']'}, Color: RgbCursor}
	case id >= core.SpriteBoy && id < core.SpriteAnt:
		return humanGlyph(id)
	case id >= core.SpriteAnt && id < core.SpriteAnt+2*core.AntStride:
		off := int(id - core.SpriteAnt)
		return Glyph{
			Runes: [2]rune{antBodies[off/core.AntStride], antHeads[off%core.AntStride]},
			Color: RgbAnt,
		}
	case id == core.SpriteBomb:
		return Glyph{Runes: [2]rune{'(', ')'}, Color: RgbBomb}
	case id >= core.SpriteBoom && id < core.SpriteBoom+core.BoomFrames:
		return Glyph{Runes: boomFrames[id-core.SpriteBoom], Color: RgbBoom}
	default:
		return Glyph{Runes: [2]rune{'?', '?'}, Color: RgbBadTile}
	}
}

func humanGlyph(id core.SpriteID) Glyph {
	color := RgbBoy
	off := int(id - core.SpriteBoy)
	if id >= core.SpriteGirl {
		color = RgbGirl
		off = int(id - core.SpriteGirl)
	}

	if off >= core.HumanLay {
		return Glyph{Runes: layPoses[(off-core.HumanLay)%len(layPoses)], Color: color}
	}

	head := headToward
	if off >= core.HumanFacingAway {
		head = headAway
		off -= core.HumanFacingAway
	}
	return Glyph{Runes: [2]rune{head, humanPoses[off]}, Color: color}
}
