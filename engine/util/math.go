package util

import (
	"math"
)

// FloorDiv divides rounding towards negative infinity, so FloorDiv(-1, 32) == -1.
// b must be > 0.
func FloorDiv(a, b int32) int32 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// EuclideanMod returns a mod b in [0, b). b must be > 0.
func EuclideanMod(a, b int32) int32 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func ClampInt32(value, min, max int32) int32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func Mix(a, b, factor float32) float32 {
	return a*(1-factor) + factor*b
}

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Hash3 is a stable, platform independent hash of a seeded integer triple.
func Hash3(seed int64, x, y, z int32) uint64 {
	ux := uint64(uint32(x))
	uy := uint64(uint32(y))
	uz := uint64(uint32(z))
	v := uint64(seed) ^ (ux * 0x9e3779b97f4a7c15) ^ (uy * 0xc2b2ae3d27d4eb4f) ^ (uz * 0xbf58476d1ce4e5b9)
	return mix64(v)
}
