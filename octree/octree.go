// Package octree implements an adaptive octree over a set of light probes so that the probes
// relevant to shading a world position can be found by walking from the root to a single leaf.
package octree

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go.viam.com/lightprobe/probe"
)

// Each node in the octree is either an internal node which links to exactly eight children, or a
// leaf which holds the indices of the probes inside its region.
const (
	InternalNode = NodeType(iota)
	LeafNode
)

// Defaults for the tunables. Neither is load bearing; they only bound how finely the probe set
// gets split.
const (
	DefaultMaxDepth      = 8
	DefaultMaxLeafProbes = 8
)

// NodeType represents the possible types of nodes in an octree.
type NodeType uint8

func (n NodeType) String() string {
	switch n {
	case InternalNode:
		return "InternalNode"
	case LeafNode:
		return "LeafNode"
	}
	return ""
}

var (
	// ErrNotBuilt is returned when the octree is queried before Build has succeeded.
	ErrNotBuilt = errors.New("octree not built")

	// ErrInvalidParameter is probe.ErrInvalidParameter.
	ErrInvalidParameter = probe.ErrInvalidParameter
	// ErrEmptyProbeSet is probe.ErrEmptyProbeSet.
	ErrEmptyProbeSet = probe.ErrEmptyProbeSet
	// ErrInvalidState is probe.ErrInvalidState.
	ErrInvalidState = probe.ErrInvalidState
)

type state uint8

const (
	unbuilt = state(iota)
	built
)

// ProbeOctree is a one-shot spatial index over a probe registry. Probes are registered, Build is
// called once, and from then on the tree is read only and may be queried from any goroutine.
type ProbeOctree struct {
	logger        golog.Logger
	probes        *probe.Registry
	maxDepth      int
	maxLeafProbes int

	state state
	root  *Node
}

// New returns an unbuilt octree over the given registry. Probes may still be added to the
// registry until Build is called. A nil logger discards all output.
func New(probes *probe.Registry, logger golog.Logger) (*ProbeOctree, error) {
	if probes == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "probe registry is nil")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ProbeOctree{
		logger:        logger,
		probes:        probes,
		maxDepth:      DefaultMaxDepth,
		maxLeafProbes: DefaultMaxLeafProbes,
	}, nil
}

// Probes returns the registry the octree indexes.
func (o *ProbeOctree) Probes() *probe.Registry {
	return o.probes
}

// RegisterProbeGroup adds a grid of probes to the underlying registry. It fails with
// ErrInvalidState once the octree has been built.
func (o *ProbeOctree) RegisterProbeGroup(extent r3.Vector, density float64, origin r3.Vector) error {
	if o.state == built {
		return errors.Wrap(ErrInvalidState, "cannot register probes after the octree has been built")
	}
	return o.probes.RegisterProbeGroup(extent, density, origin)
}

// MaxDepth returns the depth at which nodes stop splitting.
func (o *ProbeOctree) MaxDepth() int {
	return o.maxDepth
}

// MaxLeafProbes returns the probe count at or below which a node is not split.
func (o *ProbeOctree) MaxLeafProbes() int {
	return o.maxLeafProbes
}

// SetMaxDepth sets the depth bound. It can only be changed before Build.
func (o *ProbeOctree) SetMaxDepth(depth int) error {
	if o.state == built {
		return errors.Wrap(ErrInvalidState, "cannot change max depth after the octree has been built")
	}
	if depth < 0 {
		return errors.Wrapf(ErrInvalidParameter, "max depth (%d) must not be negative", depth)
	}
	o.maxDepth = depth
	return nil
}

// SetMaxLeafProbes sets the leaf capacity. It can only be changed before Build.
func (o *ProbeOctree) SetMaxLeafProbes(n int) error {
	if o.state == built {
		return errors.Wrap(ErrInvalidState, "cannot change max leaf probes after the octree has been built")
	}
	if n < 1 {
		return errors.Wrapf(ErrInvalidParameter, "max leaf probes (%d) must be at least 1", n)
	}
	o.maxLeafProbes = n
	return nil
}

// Built reports whether Build has succeeded.
func (o *ProbeOctree) Built() bool {
	return o.state == built
}

// Root returns the root node, or nil before Build.
func (o *ProbeOctree) Root() *Node {
	return o.root
}
