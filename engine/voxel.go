package engine

import (
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
)

// VoxelGrid is the solid/empty bitmap of the level
// One byte per (x,y) column, bit z set when layer z is solid
type VoxelGrid struct {
	SizeX, SizeY int
	columns      []byte
}

// NewVoxelGrid creates an empty grid of the given ground dimensions
func NewVoxelGrid(sizeX, sizeY int) *VoxelGrid {
	if sizeX < 0 {
		sizeX = 0
	}
	if sizeY < 0 {
		sizeY = 0
	}
	return &VoxelGrid{
		SizeX:   sizeX,
		SizeY:   sizeY,
		columns: make([]byte, sizeX*sizeY),
	}
}

// SizeZ returns the fixed number of height layers
func (g *VoxelGrid) SizeZ() int {
	return constant.WorldDepth
}

// Volume returns the number of tiles in the grid
func (g *VoxelGrid) Volume() int {
	return g.SizeX * g.SizeY * constant.WorldDepth
}

// InBounds reports whether the coordinate lies inside the grid
func (g *VoxelGrid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.SizeX && y >= 0 && y < g.SizeY && z >= 0 && z < constant.WorldDepth
}

// Solid returns the voxel bit, RangeError outside the grid
func (g *VoxelGrid) Solid(x, y, z int) (bool, error) {
	if !g.InBounds(x, y, z) {
		return false, &core.RangeError{X: x, Y: y, Z: z}
	}
	return g.columns[x+g.SizeX*y]>>uint(z)&1 == 1, nil
}

// SetSolid writes the voxel bit, RangeError outside the grid
func (g *VoxelGrid) SetSolid(x, y, z int, solid bool) error {
	if !g.InBounds(x, y, z) {
		return &core.RangeError{X: x, Y: y, Z: z}
	}
	bit := byte(1) << uint(z)
	if solid {
		g.columns[x+g.SizeX*y] |= bit
	} else {
		g.columns[x+g.SizeX*y] &^= bit
	}
	return nil
}

// Column returns the layer mask of a column
func (g *VoxelGrid) Column(x, y int) (byte, error) {
	if !g.InBounds(x, y, 0) {
		return 0, &core.RangeError{X: x, Y: y}
	}
	return g.columns[x+g.SizeX*y], nil
}

// SetColumn replaces the layer mask of a column
func (g *VoxelGrid) SetColumn(x, y int, mask byte) error {
	if !g.InBounds(x, y, 0) {
		return &core.RangeError{X: x, Y: y}
	}
	g.columns[x+g.SizeX*y] = mask
	return nil
}

// TileIndex flattens a coordinate into a slot index
// Each axis is clamped into range, so lookups past the edge land on the edge slot
func (g *VoxelGrid) TileIndex(t core.Tile) int {
	x := clamp(t.X, g.SizeX)
	y := clamp(t.Y, g.SizeY)
	z := clamp(t.Z, constant.WorldDepth)
	return x + g.SizeX*(y+g.SizeY*z)
}

// TileAt is the inverse of TileIndex for in-range indices
func (g *VoxelGrid) TileAt(idx int) core.Tile {
	if g.SizeX == 0 || g.SizeY == 0 {
		return core.Tile{}
	}
	return core.Tile{
		X: idx % g.SizeX,
		Y: (idx / g.SizeX) % g.SizeY,
		Z: idx / g.SizeX / g.SizeY,
	}
}

func clamp(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}
