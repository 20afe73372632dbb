package octree

// Iterate calls fn on every leaf, depth first in octant order. If fn returns false, iteration stops
// after fn returns. Iterate does nothing before Build.
func (o *ProbeOctree) Iterate(fn func(leaf *Node) bool) {
	if o.state != built {
		return
	}
	walk(o.root, func(n *Node) bool {
		if !n.IsLeaf() {
			return true
		}
		return fn(n)
	})
}

// walk visits n and its descendants in pre-order, returning false once fn has.
func walk(n *Node, fn func(n *Node) bool) bool {
	if !fn(n) {
		return false
	}
	if n.children == nil {
		return true
	}
	for _, child := range n.children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}
