package octree

import (
	"github.com/golang/geo/r3"
)

// Test returns the leaf whose region position falls into. The descent is purely geometric, so
// positions outside the root region still land on some, possibly empty, leaf.
func (o *ProbeOctree) Test(position r3.Vector) (*Node, error) {
	if o.state != built {
		return nil, ErrNotBuilt
	}
	node := o.root
	for !node.IsLeaf() {
		node = node.children[ChildIndex(position, node.Position)]
	}
	return node, nil
}
