package entity

import (
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
)

// Bomb flies forward a fixed number of tiles, then explodes
type Bomb struct {
	body engine.Body

	flyDistance int
	exploded    bool
}

// NewBomb creates a bomb that flies flyDistance tiles before exploding
func NewBomb(flyDistance int) *Bomb {
	b := &Bomb{
		body:        engine.NewBody(),
		flyDistance: flyDistance,
	}
	b.body.MovementSpeed = constant.BombSpeed
	b.body.Solid = false
	return b
}

func (b *Bomb) Body() *engine.Body {
	return &b.body
}

// FlyDistance returns the remaining tiles of flight
func (b *Bomb) FlyDistance() int {
	return b.flyDistance
}

// Exploded reports whether the bomb already went off
func (b *Bomb) Exploded() bool {
	return b.exploded
}

func (b *Bomb) Update(dt float32) {
	b.body.Update(dt)
}

// Decide falls when unsupported, otherwise flies on, detonates or clears up
// Hitting a solid tile cuts the flight short
func (b *Bomb) Decide() {
	w := b.body.World()
	tile := b.body.Tile()

	if tile.Z > 0 && !w.IsSolid(tile.Below()) {
		b.body.State = core.AnimFall
		b.body.StepIn(core.NegativeZ)
		return
	}

	if w.IsSolid(b.body.TileInFront()) {
		b.flyDistance = 0
	}

	switch {
	case b.flyDistance > 0:
		b.flyDistance--
		b.body.StepIn(b.body.Direction)
	case !b.exploded:
		b.Explode()
	default:
		w.Despawn(b)
	}
}

// Explode alerts nearby ants, paralyzes or kills ants and hurts humans in range
// Only the first call has any effect
func (b *Bomb) Explode() {
	w := b.body.World()
	if b.exploded || w == nil {
		return
	}

	b.body.State = core.AnimExplode
	b.exploded = true
	b.body.MovementSpeed = constant.ExplosionSpeed
	w.Sound().Play(core.CueOf(core.SoundBoom))

	origin := b.body.Position
	w.AlertAnts(core.Flat(origin), constant.ExplosionAlertRadius)

	goodShot := false
	for _, e := range w.Entities() {
		dist := e.Body().Position.Sub(origin).Len()
		if dist >= constant.BombBlastRadius {
			continue
		}

		switch v := e.(type) {
		case *Ant:
			v.Paralyze(constant.BombParalysis)
			if dist < constant.BombKillRadius {
				goodShot = true
				v.Kill()
			}
		case *Human:
			if dist < constant.BombHurtRadius {
				v.Hurt(constant.BombHurtRadius - int(dist))
			}
		}
	}

	if goodShot {
		w.Notifier().Notify(engine.Message{
			Text:     "GOOD SHOT!",
			Duration: constant.GoodShotMessageDuration,
			Style:    engine.MessageAlert,
		})
	}
}

// Sprite shows the bomb in flight and the explosion frames after
func (b *Bomb) Sprite() core.SpriteID {
	if b.body.State != core.AnimExplode {
		return core.SpriteBomb
	}
	frame := int(b.body.Progress * core.BoomFrames)
	frame = min(max(frame, 0), core.BoomFrames-1)
	return core.SpriteBoom + core.SpriteID(frame)
}

func (b *Bomb) Draw(c engine.Canvas) {
	c.PutSprite(b.body.Position, b.Sprite())
}
