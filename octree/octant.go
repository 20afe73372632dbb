package octree

import "github.com/golang/geo/r3"

// ChildIndex returns the octant of q relative to a node centered at center. Bit 0 is set for
// x >= center, bit 1 for y < center and bit 2 for z >= center. The y axis is intentionally the
// opposite sense of the other two; both Build and Test go through here so they always agree.
func ChildIndex(q, center r3.Vector) int {
	idx := 0
	if q.X >= center.X {
		idx |= 1
	}
	if q.Y < center.Y {
		idx |= 2
	}
	if q.Z >= center.Z {
		idx |= 4
	}
	return idx
}

// ChildCenter returns the center of the given octant of a node at center with the given
// half-extent. It is the inverse of ChildIndex.
func ChildCenter(center, halfExtent r3.Vector, octant int) r3.Vector {
	q := halfExtent.Mul(0.5)
	off := r3.Vector{X: -q.X, Y: q.Y, Z: -q.Z}
	if octant&1 != 0 {
		off.X = q.X
	}
	if octant&2 != 0 {
		off.Y = -q.Y
	}
	if octant&4 != 0 {
		off.Z = q.Z
	}
	return center.Add(off)
}
