package voxel

// Box is an axis aligned block of voxels, both corners inclusive.
type Box struct {
	Min, Max Int3
}

// NewBox orders the corners, so any two opposite corners describe the same box.
func NewBox(a, b Int3) Box {
	return Box{
		Min: Int3{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)},
		Max: Int3{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)},
	}
}

func (b Box) Size() Int3 {
	return b.Max.Sub(b.Min).Add(Int3{1, 1, 1})
}

func (b Box) Volume() int {
	size := b.Size()
	return int(size.X) * int(size.Y) * int(size.Z)
}

func (b Box) Contains(pos Int3) bool {
	return pos.X >= b.Min.X && pos.X <= b.Max.X &&
		pos.Y >= b.Min.Y && pos.Y <= b.Max.Y &&
		pos.Z >= b.Min.Z && pos.Z <= b.Max.Z
}

// ForEach visits every position of the box y-major, matching chunk storage order.
// A box with Min above Max on any axis is empty.
func (b Box) ForEach(visit func(pos Int3)) {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return
	}
	// the loops stop on Max instead of past it, so Max may be math.MaxInt32
	for y := b.Min.Y; ; y++ {
		for z := b.Min.Z; ; z++ {
			for x := b.Min.X; ; x++ {
				visit(Int3{x, y, z})
				if x == b.Max.X {
					break
				}
			}
			if z == b.Max.Z {
				break
			}
		}
		if y == b.Max.Y {
			break
		}
	}
}

// FillBox writes voxelID into every position of the box, creating chunks as needed
// unless voxelID is EMPTY. It returns the number of voxels that changed.
func (m *Map) FillBox(box Box, voxelID uint8) int {
	changed := 0
	box.ForEach(func(pos Int3) {
		if m.GetVoxel(pos) == voxelID {
			return
		}
		m.SetVoxel(pos, voxelID, voxelID != EMPTY)
		changed++
	})
	return changed
}
