package octree

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

const centerEpsilon = 1e-9

// Build partitions every registered probe into the tree. It may only succeed once per octree; a
// failed Build leaves the octree unbuilt and the registry open for more probes.
//
// The root is always centered on the coordinate origin and sized by the registry's
// LargestFittingBoundingBox, regardless of where the probe groups themselves were centered.
func (o *ProbeOctree) Build() error {
	if o.state == built {
		return errors.Wrap(ErrInvalidState, "octree has already been built")
	}
	half, err := o.probes.LargestFittingBoundingBox()
	if err != nil {
		return errors.Wrap(err, "cannot build octree")
	}

	n := o.probes.Size()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	root := o.split(r3.Vector{}, half, 0, indices)

	// max |p| per axis always encloses every probe, but an off-center probe set wastes most of
	// the root region and makes the upper levels of the tree mostly empty.
	if c := o.probes.MetaData().Center(); c.Norm() > centerEpsilon {
		o.logger.Warnw("probe set is not centered on the origin, octree root is oversized",
			"probe_center", c, "half_extent", half)
	}

	o.probes.Freeze()
	o.root = root
	o.state = built
	o.logger.Debugw("built probe octree",
		"probes", n, "half_extent", half, "max_depth", o.maxDepth, "max_leaf_probes", o.maxLeafProbes)
	return nil
}

// split creates the subtree for a region holding the given probes. indices must be in increasing
// order; every bucket keeps that order.
func (o *ProbeOctree) split(center, half r3.Vector, depth int, indices []int) *Node {
	if len(indices) <= o.maxLeafProbes || depth >= o.maxDepth {
		return newLeafNode(center, half, depth, indices)
	}

	var buckets [8][]int
	for _, idx := range indices {
		octant := ChildIndex(o.probes.At(idx), center)
		buckets[octant] = append(buckets[octant], idx)
	}

	childHalf := half.Mul(0.5)
	children := &[8]*Node{}
	for octant := range children {
		children[octant] = o.split(ChildCenter(center, half, octant), childHalf, depth+1, buckets[octant])
	}
	return newInternalNode(center, half, depth, children)
}
