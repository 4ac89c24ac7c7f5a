package voxel

import "github.com/go-gl/mathgl/mgl32"

type FaceType int32

const (
	XN FaceType = iota
	XP
	YN
	YP
	ZN
	ZP
)

func (f FaceType) String() string {
	switch f {
	case XN:
		return "-x"
	case XP:
		return "+x"
	case YN:
		return "-y"
	case YP:
		return "+y"
	case ZN:
		return "-z"
	case ZP:
		return "+z"
	}
	return "unknown"
}

// Face describes one side of a unit voxel cube. Corners are ordered so that the
// triangles (0,1,2) and (2,1,3) wind counter-clockwise seen from outside.
type Face struct {
	Direction Int3
	Corners   [4]Int3
	UVs       [4]mgl32.Vec2
}

// Faces is indexed by FaceType.
var Faces = [6]Face{
	XN: {
		Direction: Int3{-1, 0, 0},
		Corners:   [4]Int3{{0, 1, 0}, {0, 0, 0}, {0, 1, 1}, {0, 0, 1}},
		UVs:       [4]mgl32.Vec2{{0, 1}, {0, 0}, {1, 1}, {1, 0}},
	},
	XP: {
		Direction: Int3{1, 0, 0},
		Corners:   [4]Int3{{1, 1, 1}, {1, 0, 1}, {1, 1, 0}, {1, 0, 0}},
		UVs:       [4]mgl32.Vec2{{0, 1}, {0, 0}, {1, 1}, {1, 0}},
	},
	YN: {
		Direction: Int3{0, -1, 0},
		Corners:   [4]Int3{{1, 0, 1}, {0, 0, 1}, {1, 0, 0}, {0, 0, 0}},
		UVs:       [4]mgl32.Vec2{{1, 0}, {0, 0}, {1, 1}, {0, 1}},
	},
	YP: {
		Direction: Int3{0, 1, 0},
		Corners:   [4]Int3{{0, 1, 1}, {1, 1, 1}, {0, 1, 0}, {1, 1, 0}},
		UVs:       [4]mgl32.Vec2{{1, 1}, {0, 1}, {1, 0}, {0, 0}},
	},
	ZN: {
		Direction: Int3{0, 0, -1},
		Corners:   [4]Int3{{1, 0, 0}, {0, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		UVs:       [4]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	ZP: {
		Direction: Int3{0, 0, 1},
		Corners:   [4]Int3{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}},
		UVs:       [4]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
}
