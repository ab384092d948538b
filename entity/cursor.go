package entity

import (
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
)

// Cursor is the free-look camera marker, it never blocks or holds a tile slot
type Cursor struct {
	body engine.Body
}

func NewCursor() *Cursor {
	c := &Cursor{body: engine.NewMarkerBody()}
	c.body.MovementSpeed = constant.CursorSpeed
	return c
}

func (c *Cursor) Body() *engine.Body {
	return &c.body
}

// Move steps the cursor in any of the six directions, staying inside the grid
func (c *Cursor) Move(dir core.Direction) {
	w := c.body.World()
	if w == nil || !c.body.DecisionFrame() {
		return
	}
	next := c.body.Tile().Step(dir)
	if !w.InBounds(next) {
		return
	}
	if !dir.IsCardinal() {
		// Layers are changed instantly
		w.Despawn(c)
		w.Spawn(c, next)
		return
	}
	c.body.StepIn(dir)
}

func (c *Cursor) Update(dt float32) {
	c.body.Update(dt)
}

func (c *Cursor) Decide() {}

func (c *Cursor) Draw(cv engine.Canvas) {
	cv.PutSprite(c.body.Position, core.SpriteCursor)
}
