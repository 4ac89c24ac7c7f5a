package voxel

// EMPTY is the voxel id of air. Empty voxels are never meshed.
const EMPTY uint8 = 0

// MaxCellSize bounds the chunk edge length. A chunk holds MaxCellSize³ voxels,
// which keeps storage offsets within int32.
const MaxCellSize int32 = 256
