package entity

import (
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
)

// walkCycle is the sprite offset sequence of a walking human
var walkCycle = [...]core.SpriteID{1, 0, 2, 0}

// Human is the player or a hostage
type Human struct {
	body engine.Body

	Boy       bool
	Hitpoints int

	hostage  bool
	rescued  bool
	animStep int // Ticks spent in the current non-idle animation
}

// NewHuman creates a human with full hitpoints
func NewHuman(boy bool) *Human {
	h := &Human{
		body:      engine.NewBody(),
		Boy:       boy,
		Hitpoints: constant.HumanHitpoints,
	}
	h.body.MovementSpeed = constant.HumanSpeed
	return h
}

func (h *Human) Body() *engine.Body {
	return &h.body
}

// Alive reports whether the human has hitpoints left
func (h *Human) Alive() bool {
	return h.Hitpoints > 0
}

// TiedUp reports whether the human is alive and laying on the ground
func (h *Human) TiedUp() bool {
	return h.Alive() && h.body.State == core.AnimLay
}

// Hostage reports whether the human was spawned as a hostage
func (h *Human) Hostage() bool {
	return h.hostage
}

// Rescued reports whether the hostage was freed by the player
func (h *Human) Rescued() bool {
	return h.rescued
}

// SetHostage marks the human as a tied-up hostage
func (h *Human) SetHostage() {
	h.hostage = true
	h.body.State = core.AnimLay
}

// Rescue frees the hostage, who then follows the player
func (h *Human) Rescue() {
	h.rescued = true
	h.body.State = core.AnimIdle
}

// Hurt subtracts hitpoints, floored at zero, and plays the matching cue
func (h *Human) Hurt(amount int) {
	h.Hitpoints -= amount
	if h.Hitpoints > 0 {
		h.play(core.SoundOuch)
		return
	}
	h.Hitpoints = 0
	h.play(core.SoundWasted)
}

// StepIn moves one tile, climbing when the target is blocked but the tile above it is clear
// Requires solid footing unless on the ground, and fails silently otherwise
func (h *Human) StepIn(dir core.Direction) {
	w := h.body.World()
	if w == nil || !h.body.Spawned() {
		return
	}

	target := core.TileOf(h.body.Position.Add(dir.Vec()))
	tile := h.body.Tile()
	if !w.InBounds(target) || (tile.Z != 0 && !w.IsSolid(tile.Below())) {
		return
	}

	switch {
	case !w.IsSolid(target):
		h.body.StepIn(dir)
	case !w.IsSolid(target.Above()):
		h.body.State = core.AnimClimb
		h.animStep = 0
		h.body.StepIn(dir)
	default:
		return
	}
	h.alertAnts()
}

// alertAnts pulses from the new tile, only while on the ground
func (h *Human) alertAnts() {
	tile := h.body.Tile()
	if tile.Z == 0 {
		h.body.World().AlertAnts(tile.Vec2(), constant.StepAlertRadius)
	}
}

func (h *Human) Update(dt float32) {
	w := h.body.World()
	if w == nil || !h.body.Spawned() {
		return
	}

	if (h.hostage && !h.rescued) || !h.Alive() {
		h.body.State = core.AnimLay
	}

	if h.body.State.Frozen() {
		h.animStep = 0
	} else {
		h.animStep++
	}

	switch {
	case h.body.State == core.AnimWalk && h.animStep%constant.HumanStepSoundPeriod == constant.HumanStepSoundPhase:
		w.Sound().Play(core.CueOf(core.SoundStep))
	case h.body.State == core.AnimClimb && h.animStep == 1:
		h.play(core.SoundJump)
	}

	h.body.Update(dt)

	// Nothing underneath, drop a layer
	tile := h.body.Tile()
	if h.body.Spawned() && h.body.State == core.AnimIdle && tile.Z > 0 && !w.IsSolid(tile.Below()) {
		h.body.State = core.AnimFall
		h.body.StepIn(core.NegativeZ)
	}
}

// Decide makes a rescued hostage trail the player
func (h *Human) Decide() {
	if !h.hostage || !h.rescued {
		return
	}
	player := h.body.World().Player()
	if player == nil || h.playerInReach(player) {
		return
	}
	h.StepIn(h.body.FollowEntity(player))
}

func (h *Human) playerInReach(player engine.Entity) bool {
	p := player.Body().Position
	d := core.Flat(p).Sub(core.Flat(h.body.Position)).Len()
	dz := p.Z() - h.body.Position.Z()
	if dz < 0 {
		dz = -dz
	}
	return d <= constant.HostageReach && dz <= constant.HostageReach
}

// play fires a cue shifted up for girls
func (h *Human) play(s core.SoundType) {
	cue := core.CueOf(s)
	if !h.Boy {
		cue.Pitch = constant.GirlPitch
	}
	h.body.World().Sound().Play(cue)
}

// Sprite selects the tile for the current animation frame
func (h *Human) Sprite() core.SpriteID {
	id := core.SpriteGirl
	if h.Boy {
		id = core.SpriteBoy
	}

	if h.body.State != core.AnimLay && (h.body.Direction == core.NegativeX || h.body.Direction == core.PositiveY) {
		id += core.HumanFacingAway
	}

	switch h.body.State {
	case core.AnimIdle:
		return id
	case core.AnimWalk:
		return id + walkCycle[(h.animStep/constant.HumanWalkFrameTicks)%len(walkCycle)]
	case core.AnimClimb:
		if h.body.Progress < 0.25 {
			return id + core.HumanClimbStart
		}
		return id + core.HumanClimbUp
	case core.AnimFall:
		return id + core.HumanFall
	case core.AnimLay:
		return id + core.HumanLay + core.SpriteID(h.body.Direction)
	default:
		return core.SpriteBad
	}
}

func (h *Human) Draw(c engine.Canvas) {
	c.PutSprite(h.body.Position, h.Sprite())
}
