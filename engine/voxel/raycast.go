package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RayHit is the result of a voxel raycast. Previous is the last empty voxel the ray passed
// before Voxel, which is where a new voxel would be placed against the hit face.
type RayHit struct {
	Hit      bool
	Distance float64
	Side     FaceType
	Point    mgl32.Vec3
	Voxel    Int3
	Previous Int3
}

// Raycast walks the voxel grid from rayStart towards rayEnd and stops at the first voxel
// for which stopRay returns true. The starting voxel itself is tested first.
func Raycast(rayStart, rayEnd mgl32.Vec3, stopRay func(voxelPos Int3) bool) RayHit {
	// adapted from: https://github.com/fenomas/fast-voxel-raycast/blob/master/index.js
	pos := Int3{
		X: int32(math.Floor(float64(rayStart.X()))),
		Y: int32(math.Floor(float64(rayStart.Y()))),
		Z: int32(math.Floor(float64(rayStart.Z()))),
	}
	ray := rayEnd.Sub(rayStart)
	maxDistance := float64(ray.Len())
	if maxDistance == 0 {
		if stopRay(pos) {
			return RayHit{Hit: true, Point: rayStart, Voxel: pos, Previous: pos}
		}
		return RayHit{}
	}
	dir := ray.Normalize()

	var axes [3]struct {
		step  int32
		delta float64
		next  float64
	}
	start := [3]float64{float64(rayStart.X()), float64(rayStart.Y()), float64(rayStart.Z())}
	cell := [3]int32{pos.X, pos.Y, pos.Z}
	for i := 0; i < 3; i++ {
		d := float64(dir[i])
		axis := &axes[i]
		axis.step = -1
		dist := start[i] - float64(cell[i])
		if d > 0 {
			axis.step = 1
			dist = float64(cell[i]+1) - start[i]
		}
		axis.delta = math.Inf(1)
		axis.next = math.Inf(1)
		if d != 0 {
			axis.delta = math.Abs(1 / d)
			axis.next = axis.delta * dist
		}
	}

	t := 0.0
	stepped := -1
	for t <= maxDistance {
		current := Int3{cell[0], cell[1], cell[2]}
		if stopRay(current) {
			hit := RayHit{
				Hit:      true,
				Distance: t,
				Point:    rayStart.Add(dir.Mul(float32(t))),
				Voxel:    current,
				Previous: current,
			}
			if stepped >= 0 {
				back := [3]int32{}
				back[stepped] = -axes[stepped].step
				hit.Previous = current.Add(Int3{back[0], back[1], back[2]})
				hit.Side = sideFacing(stepped, axes[stepped].step)
			}
			return hit
		}

		stepped = 0
		if axes[1].next < axes[stepped].next {
			stepped = 1
		}
		if axes[2].next < axes[stepped].next {
			stepped = 2
		}
		cell[stepped] += axes[stepped].step
		t = axes[stepped].next
		axes[stepped].next += axes[stepped].delta
	}
	return RayHit{}
}

// sideFacing is the face of the entered voxel that the ray crossed when stepping along axis.
func sideFacing(axis int, step int32) FaceType {
	negative := [3]FaceType{XN, YN, ZN}
	positive := [3]FaceType{XP, YP, ZP}
	if step > 0 {
		return negative[axis]
	}
	return positive[axis]
}

// Raycast returns the first solid voxel of the map along the segment.
func (m *Map) Raycast(rayStart, rayEnd mgl32.Vec3) RayHit {
	return Raycast(rayStart, rayEnd, m.IsSolidVoxelAt)
}
