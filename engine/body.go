package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
)

const (
	// climbLift is the share of a climb spent crouching before moving
	climbLift = 0.25
	// dashBurst is the share of a dash spent moving, the rest is animation only
	dashBurst = 0.5
	// climbRate covers the sqrt(2) diagonal in the remaining three quarters of a climb
	climbRate = float32(math.Sqrt2 * 4.0 / 3.0)
)

var up = mgl32.Vec3{0, 0, 1}

// Body is the movement and animation core shared by all entity variants
// Position is the interpolated draw position, the tile slot is the committed one
type Body struct {
	Position      mgl32.Vec3
	Direction     core.Direction
	MovementSpeed float32 // Tiles per second
	Solid         bool    // Blocks movement and counts for World.IsSolid
	State         core.AnimationState
	Progress      float32 // Animation progress in [0,1)

	world   *World
	owner   Entity
	slot    int
	spawned bool
	noSlot  bool // Tracks a tile without ever entering the slot index
}

// NewBody returns a body with the default speed, solid
func NewBody() Body {
	return Body{
		MovementSpeed: constant.DefaultSpeed,
		Solid:         true,
	}
}

// NewMarkerBody returns a non-solid body that never claims tile slots
// Markers overlap anything and are invisible to occupancy checks
func NewMarkerBody() Body {
	b := NewBody()
	b.Solid = false
	b.noSlot = true
	return b
}

// World returns the world the body was last spawned into
func (b *Body) World() *World {
	return b.world
}

// Spawned reports whether the body is currently registered in a world
func (b *Body) Spawned() bool {
	return b.spawned
}

// Tile returns the committed tile slot
func (b *Body) Tile() core.Tile {
	if b.world == nil {
		return core.TileOf(b.Position)
	}
	return b.world.voxels.TileAt(b.slot)
}

// TileInFront returns the tile one step ahead of the continuous position
func (b *Body) TileInFront() core.Tile {
	return core.TileOf(b.Position.Add(b.Direction.Vec()))
}

// DecisionFrame reports whether the body is idle, the only time decisions run
func (b *Body) DecisionFrame() bool {
	return b.State == core.AnimIdle
}

// StepIn starts a move and commits the destination slot immediately
// Idle becomes Walk; callers may override the state before or after. Climb moves
// forward and up, Fall moves down, everything else moves along Direction.
// The destination is only claimed when free; the body moves regardless.
func (b *Body) StepIn(dir core.Direction) {
	if !b.spawned {
		return
	}
	if b.State == core.AnimIdle {
		b.State = core.AnimWalk
	}
	if dir.IsCardinal() {
		b.Direction = dir
	}

	w := b.world
	if !b.noSlot {
		w.slots.Vacate(b.slot, b.owner)
	}

	var target mgl32.Vec3
	switch b.State {
	case core.AnimClimb:
		target = b.Position.Add(b.Direction.Vec()).Add(up)
	case core.AnimFall:
		target = b.Position.Sub(up)
	default:
		target = b.Position.Add(b.Direction.Vec())
	}

	b.slot = w.voxels.TileIndex(core.TileOf(target))
	if !b.noSlot {
		w.slots.Place(b.owner, b.slot)
	}
}

// Update interpolates the position toward the tile slot and advances the animation
// When the body resolves to idle it re-claims its slot if empty and runs the owner's Decide
// Marker bodies skip every slot claim
func (b *Body) Update(dt float32) {
	if !b.spawned {
		return
	}

	delta := b.Tile().Vec().Sub(b.Position)
	if delta.Len() > constant.TileEpsilon {
		heading := delta.Normalize()
		switch b.State {
		case core.AnimIdle, core.AnimLay:
		case core.AnimWalk, core.AnimFall:
			b.Position = b.Position.Add(heading.Mul(dt * b.MovementSpeed))
			b.Progress += dt * b.MovementSpeed
		case core.AnimClimb:
			if b.Progress >= climbLift {
				b.Position = b.Position.Add(heading.Mul(climbRate * b.MovementSpeed / 2 * dt))
			}
			b.Progress += dt * b.MovementSpeed / 2
		case core.AnimDash:
			if b.Progress < dashBurst {
				b.Position = b.Position.Add(heading.Mul(dt * b.MovementSpeed * 2))
			}
			b.Progress += dt * b.MovementSpeed
		default:
			b.Progress += dt * b.MovementSpeed
		}
	} else if !b.State.Frozen() {
		b.Progress += dt * b.MovementSpeed
	}

	if b.Progress >= 1 {
		b.State = core.AnimIdle
		b.Position = b.Tile().Vec()
		b.Progress = 0
	}

	if b.State == core.AnimIdle {
		if !b.noSlot {
			b.world.slots.Place(b.owner, b.slot)
		}
		b.owner.Decide()
	}
}

// EntitiesInReach returns the occupants of the four horizontal neighbours of the tile slot
// Order is +X, -X, +Y, -Y
func (b *Body) EntitiesInReach() []Entity {
	if !b.spawned {
		return nil
	}
	tile := b.Tile()
	var inReach []Entity
	for _, d := range core.Cardinals {
		if e := b.world.OccupantAt(tile.Step(d)); e != nil {
			inReach = append(inReach, e)
		}
	}
	return inReach
}

// FollowDirection picks the horizontal step from Position that ends closest to p
// Ties keep the earlier direction in enumeration order
func (b *Body) FollowDirection(p mgl32.Vec2) core.Direction {
	best := core.PositiveX
	minDist := float32(math.MaxFloat32)
	for _, d := range core.Cardinals {
		delta := p.Sub(core.Flat(b.Position.Add(d.Vec())))
		if dist := delta.Dot(delta); dist < minDist {
			minDist = dist
			best = d
		}
	}
	return best
}

// FollowEntity heads toward the midpoint of the target's position and tile slot
// The midpoint smooths the target's own animation jitter
func (b *Body) FollowEntity(e Entity) core.Direction {
	tb := e.Body()
	mid := tb.Position.Add(tb.Tile().Vec()).Mul(0.5)
	return b.FollowDirection(core.Flat(mid))
}
