package core

import "github.com/go-gl/mathgl/mgl32"

// Direction is one of the six axis-aligned unit directions an entity can face or move in
type Direction uint8

const (
	PositiveX Direction = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// Cardinals lists the four horizontal directions in enumeration order
// Reach and follow queries depend on this order for tie-breaking
var Cardinals = [4]Direction{PositiveX, NegativeX, PositiveY, NegativeY}

var directionVectors = [...]mgl32.Vec3{
	PositiveX: {1, 0, 0},
	NegativeX: {-1, 0, 0},
	PositiveY: {0, 1, 0},
	NegativeY: {0, -1, 0},
	PositiveZ: {0, 0, 1},
	NegativeZ: {0, 0, -1},
}

var directionNames = [...]string{
	PositiveX: "+X",
	NegativeX: "-X",
	PositiveY: "+Y",
	NegativeY: "-Y",
	PositiveZ: "+Z",
	NegativeZ: "-Z",
}

// Vec returns the unit vector for the direction, zero vector if invalid
func (d Direction) Vec() mgl32.Vec3 {
	if int(d) >= len(directionVectors) {
		return mgl32.Vec3{}
	}
	return directionVectors[d]
}

// Offset returns the integer tile offset for the direction
func (d Direction) Offset() Tile {
	v := d.Vec()
	return Tile{X: int(v[0]), Y: int(v[1]), Z: int(v[2])}
}

// IsCardinal reports whether the direction lies in the horizontal plane
func (d Direction) IsCardinal() bool {
	return d <= NegativeY
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}
