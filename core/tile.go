package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tile is an integral world coordinate
type Tile struct {
	X, Y, Z int
}

// Add returns the component-wise sum
func (t Tile) Add(o Tile) Tile {
	return Tile{t.X + o.X, t.Y + o.Y, t.Z + o.Z}
}

// Step returns the neighbouring tile in direction d
func (t Tile) Step(d Direction) Tile {
	return t.Add(d.Offset())
}

// Below returns the tile directly underneath
func (t Tile) Below() Tile {
	return Tile{t.X, t.Y, t.Z - 1}
}

// Above returns the tile directly on top
func (t Tile) Above() Tile {
	return Tile{t.X, t.Y, t.Z + 1}
}

// Vec converts the tile to a float position
func (t Tile) Vec() mgl32.Vec3 {
	return mgl32.Vec3{float32(t.X), float32(t.Y), float32(t.Z)}
}

// Vec2 returns the horizontal projection of the tile
func (t Tile) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{float32(t.X), float32(t.Y)}
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t.X, t.Y, t.Z)
}

// TileOf rounds a continuous position to the nearest tile, ties to even
func TileOf(v mgl32.Vec3) Tile {
	return Tile{
		X: int(math.RoundToEven(float64(v[0]))),
		Y: int(math.RoundToEven(float64(v[1]))),
		Z: int(math.RoundToEven(float64(v[2]))),
	}
}

// Flat drops the Z component
func Flat(v mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v[0], v[1]}
}
