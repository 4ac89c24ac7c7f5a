package voxel

// boundaryFaces returns the faces of the chunk that the local position touches.
// A voxel in a chunk corner touches three faces, an inner voxel none.
func boundaryFaces(local Int3, cellSize int32) []FaceType {
	var faces []FaceType
	last := cellSize - 1
	if local.X == 0 {
		faces = append(faces, XN)
	}
	if local.X == last {
		faces = append(faces, XP)
	}
	if local.Y == 0 {
		faces = append(faces, YN)
	}
	if local.Y == last {
		faces = append(faces, YP)
	}
	if local.Z == 0 {
		faces = append(faces, ZN)
	}
	if local.Z == last {
		faces = append(faces, ZP)
	}
	return faces
}

func (c *Chunk) contains(local Int3) bool {
	return local.X >= 0 && local.X < c.cellSize &&
		local.Y >= 0 && local.Y < c.cellSize &&
		local.Z >= 0 && local.Z < c.cellSize
}
