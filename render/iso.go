package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
)

// Project maps a world position to isometric cell coordinates relative to the origin
// A tile covers two columns; its top face sits on row r and its front face on r+1
func Project(p mgl32.Vec3) (col, row int) {
	col = int(math.Round(float64(constant.IsoColScale * (p.X() - p.Y()))))
	row = int(math.Round(float64(constant.IsoRowScale*(p.X()+p.Y()) - constant.IsoLayerRows*p.Z())))
	return col, row
}

// Camera places the world on screen so the focus lands at the view center
type Camera struct {
	OffsetX, OffsetY int
}

// NewCamera centers focus in a view of w by h cells
func NewCamera(focus mgl32.Vec3, w, h int) Camera {
	col, row := Project(focus)
	return Camera{
		OffsetX: w/2 - col - 1,
		OffsetY: h/2 - row + constant.ViewCenterRowOffset,
	}
}

// ToScreen projects a world position to screen cells
func (c Camera) ToScreen(p mgl32.Vec3) (x, y int) {
	col, row := Project(p)
	return col + c.OffsetX, row + c.OffsetY
}

// worldView draws voxels and entities through a camera, clipped to a viewport height
type worldView struct {
	surface Surface
	camera  Camera
	theme   Theme
	width   int
	height  int
}

// PutSprite draws an entity sprite on the front-face row of its position
func (v *worldView) PutSprite(pos mgl32.Vec3, id core.SpriteID) {
	x, y := v.camera.ToScreen(pos)
	y++
	if y < 0 || y >= v.height {
		return
	}
	g := GlyphFor(id)
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(g.Color)
	put(v.surface, x, y, g.Runes[0], style)
	put(v.surface, x+1, y, g.Runes[1], style)
}

// drawBlock draws a solid voxel: lit top face over a darker front face
func (v *worldView) drawBlock(t core.Tile) {
	x, y := v.camera.ToScreen(t.Vec())
	if x < -1 || x >= v.width || y < -1 || y >= v.height {
		return
	}
	color := v.theme.Block
	if v.theme.Shading {
		color = Shade(color, t.Z)
	}
	top := tcell.StyleDefault.Background(color).Foreground(color)
	side := tcell.StyleDefault.Background(Side(color)).Foreground(color)

	if y >= 0 {
		put(v.surface, x, y, ' ', top)
		put(v.surface, x+1, y, ' ', top)
	}
	if y+1 < v.height {
		put(v.surface, x, y+1, '▄', side)
		put(v.surface, x+1, y+1, '▄', side)
	}
}

// drawFloor marks empty ground tiles so the map extent stays readable
func (v *worldView) drawFloor(t core.Tile) {
	x, y := v.camera.ToScreen(t.Vec())
	y++
	if y < 0 || y >= v.height {
		return
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbGround)
	put(v.surface, x, y, '·', style)
}

// draw traverses the world back to front: layers bottom up, each layer by ascending x+y
// Slot occupants are drawn right after their tile so nearer blocks cover them
func (v *worldView) draw(w *engine.World) {
	g := w.Voxels()
	for z := range g.SizeZ() {
		for s := 0; s <= g.SizeX+g.SizeY-2; s++ {
			for x := max(0, s-g.SizeY+1); x <= min(s, g.SizeX-1); x++ {
				t := core.Tile{X: x, Y: s - x, Z: z}
				solid, _ := g.Solid(t.X, t.Y, t.Z)
				switch {
				case solid && Visible(g, t):
					v.drawBlock(t)
				case !solid && z == 0:
					v.drawFloor(t)
				}
				if e := w.Slots().At(g.TileIndex(t)); e != nil {
					e.Draw(v)
				}
			}
		}
	}

	// Entities sharing a tile without holding its slot go on top
	for _, e := range w.Entities() {
		if w.OccupantAt(e.Body().Tile()) != e {
			e.Draw(v)
		}
	}
}

// Visible reports whether any face of the block at t can be seen
// Blocks on the far edges are always drawn
func Visible(g *engine.VoxelGrid, t core.Tile) bool {
	if t.X == g.SizeX-1 || t.Y == g.SizeY-1 || t.Z == g.SizeZ()-1 {
		return true
	}
	solid := func(x, y, z int) bool {
		s, _ := g.Solid(x, y, z)
		return s
	}
	if solid(t.X+1, t.Y+1, t.Z+1) {
		return false
	}
	return !(solid(t.X+1, t.Y, t.Z) && solid(t.X, t.Y+1, t.Z) && solid(t.X, t.Y, t.Z+1))
}
