package core

import "github.com/go-gl/mathgl/mgl32"

// Area represents a rectangular region on the ground plane
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether the point lies inside the area, right and bottom edges excluded
func (a Area) Contains(p mgl32.Vec2) bool {
	return p[0] >= float32(a.X) && p[0] < float32(a.X+a.Width) &&
		p[1] >= float32(a.Y) && p[1] < float32(a.Y+a.Height)
}

// Inset shrinks the area by n tiles on each side
func (a Area) Inset(n int) Area {
	return Area{X: a.X + n, Y: a.Y + n, Width: a.Width - 2*n, Height: a.Height - 2*n}
}
