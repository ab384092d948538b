package entity

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
)

// Ant chases the last alert pulse it heard and bites adjacent humans
type Ant struct {
	body engine.Body

	paralyzed int         // Ticks left, zero when free
	target    *mgl32.Vec2 // Last alert origin, nil until alerted
	rng       *rand.Rand
}

// NewAnt creates an ant drawing its choices from a private sequence seeded with seed
func NewAnt(seed int64) *Ant {
	a := &Ant{
		body: engine.NewBody(),
		rng:  rand.New(rand.NewSource(seed)),
	}
	a.body.MovementSpeed = constant.AntSpeed
	return a
}

func (a *Ant) Body() *engine.Body {
	return &a.body
}

// Paralyzed reports whether the ant is frozen in place
func (a *Ant) Paralyzed() bool {
	return a.paralyzed != 0
}

// Paralysis returns the remaining paralysis ticks
func (a *Ant) Paralysis() int {
	return a.paralyzed
}

// Paralyze freezes the ant for n ticks unless it is already frozen for longer
func (a *Ant) Paralyze(n int) {
	if a.paralyzed >= 0 && n > a.paralyzed {
		a.paralyzed = n
	}
}

// Target returns the last alert origin
func (a *Ant) Target() (mgl32.Vec2, bool) {
	if a.target == nil {
		return mgl32.Vec2{}, false
	}
	return *a.target, true
}

// Alert replaces the chase target
func (a *Ant) Alert(p mgl32.Vec2) {
	a.target = &p
}

// Kill plays a low, quiet death cue and removes the ant
func (a *Ant) Kill() {
	w := a.body.World()
	if w == nil {
		return
	}
	w.Sound().Play(core.Cue{
		Sound:  core.SoundWasted,
		Pitch:  constant.AntKillPitch,
		Volume: constant.AntKillVolume,
	})
	w.Despawn(a)
}

// Bite turns toward the victim and hurts it
func (a *Ant) Bite(victim *Human) {
	a.body.State = core.AnimBite
	a.body.Direction = a.body.FollowEntity(victim)
	victim.Hurt(constant.AntBiteDamage)
}

func (a *Ant) Update(dt float32) {
	if a.paralyzed > 0 {
		a.paralyzed--
	}
	a.body.Update(dt)
}

// Decide bites a random adjacent human, then dashes one tile toward the target
// Near the target, or when the way is blocked, a random direction is tried instead
func (a *Ant) Decide() {
	if a.Paralyzed() {
		return
	}
	w := a.body.World()

	var victims []*Human
	for _, e := range a.body.EntitiesInReach() {
		if h, ok := e.(*Human); ok && h.Alive() {
			victims = append(victims, h)
		}
	}
	if victim, err := core.Pick(a.rng, victims); err == nil {
		a.Bite(victim)
	}

	if a.target == nil {
		return
	}

	dir := a.body.FollowDirection(*a.target)
	if (a.distanceToTarget() < constant.AntDetourDistance && a.rng.Intn(constant.AntDetourChance) == 0) ||
		w.IsSolid(a.ahead(dir)) {
		dir = core.Cardinals[a.rng.Intn(len(core.Cardinals))]
	}

	if !w.IsSolid(a.ahead(dir)) {
		a.body.StepIn(dir)
		a.body.State = core.AnimDash
	}
}

func (a *Ant) ahead(dir core.Direction) core.Tile {
	return core.TileOf(a.body.Position.Add(dir.Vec()))
}

func (a *Ant) distanceToTarget() float32 {
	return a.target.Sub(core.Flat(a.body.Position)).Len()
}

// Sprite picks the facing frame, legs apart for the first half of a step
func (a *Ant) Sprite() core.SpriteID {
	id := core.SpriteAnt + core.SpriteID(a.body.Direction)
	if a.body.Progress <= 0.5 {
		id += core.AntStride
	}
	return id
}

func (a *Ant) Draw(c engine.Canvas) {
	c.PutSprite(a.body.Position, a.Sprite())
}
