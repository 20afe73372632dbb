package octree

import (
	"github.com/golang/geo/r3"
)

// Node is an axis aligned region of the octree. Internal nodes own exactly eight children indexed
// by octant; leaves own the sorted indices of the probes that fell inside them.
type Node struct {
	// Position is the center of the region.
	Position r3.Vector
	// BoundingBox is the half-extent of the region on each axis.
	BoundingBox r3.Vector

	nodeType NodeType
	depth    int
	children *[8]*Node
	indices  []int
}

func newLeafNode(center, halfExtent r3.Vector, depth int, indices []int) *Node {
	return &Node{
		Position:    center,
		BoundingBox: halfExtent,
		nodeType:    LeafNode,
		depth:       depth,
		indices:     indices,
	}
}

func newInternalNode(center, halfExtent r3.Vector, depth int, children *[8]*Node) *Node {
	return &Node{
		Position:    center,
		BoundingBox: halfExtent,
		nodeType:    InternalNode,
		depth:       depth,
		children:    children,
	}
}

// Type returns whether the node is internal or a leaf.
func (n *Node) Type() NodeType {
	return n.nodeType
}

// IsLeaf reports whether the node holds probe indices rather than children.
func (n *Node) IsLeaf() bool {
	return n.nodeType == LeafNode
}

// Depth returns the distance from the root, which is at depth 0.
func (n *Node) Depth() int {
	return n.depth
}

// Indices returns the probe indices held by a leaf in increasing order. Internal nodes return nil.
// The slice is shared with the tree and must not be modified.
func (n *Node) Indices() []int {
	return n.indices
}

// Child returns the child for the given octant, or nil for leaves and out of range octants.
func (n *Node) Child(octant int) *Node {
	if n.children == nil || octant < 0 || octant >= 8 {
		return nil
	}
	return n.children[octant]
}

// Contains checks whether p lies inside the closed region of the node.
func (n *Node) Contains(p r3.Vector) bool {
	d := p.Sub(n.Position).Abs()
	return d.X <= n.BoundingBox.X && d.Y <= n.BoundingBox.Y && d.Z <= n.BoundingBox.Z
}
