// Package probe holds the set of light probe positions that an octree is built over.
//
// Probes are only ever added as regular grids, and the set is frozen once an index
// has been built from it.
package probe

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter is returned when a grid is requested with a non-positive density or a
	// negative extent.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrEmptyProbeSet is returned when an operation needs at least one registered probe.
	ErrEmptyProbeSet = errors.New("empty probe set")
	// ErrInvalidState is returned when the registry or an index built over it is used out of order.
	ErrInvalidState = errors.New("invalid state")
)

// Registry is the flat, insertion-ordered sequence of probe positions. The index of a probe in
// the registry is its identity everywhere else.
type Registry struct {
	positions []r3.Vector
	meta      MetaData
	frozen    bool
}

// NewRegistry returns an empty registry that accepts probe groups.
func NewRegistry() *Registry {
	return &Registry{meta: NewMetaData()}
}

// Size returns the number of registered probes.
func (r *Registry) Size() int {
	return len(r.positions)
}

// At returns the position of the probe with the given index.
func (r *Registry) At(idx int) r3.Vector {
	return r.positions[idx]
}

// Positions returns a copy of all probe positions in registration order.
func (r *Registry) Positions() []r3.Vector {
	out := make([]r3.Vector, len(r.positions))
	copy(out, r.positions)
	return out
}

// MetaData returns the bounds of everything registered so far.
func (r *Registry) MetaData() MetaData {
	return r.meta
}

// Frozen reports whether the registry still accepts probe groups.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Freeze stops the registry from accepting any further probe groups.
func (r *Registry) Freeze() {
	r.frozen = true
}

// RegisterProbeGroup appends a regular grid of probes spanning extent, spaced density apart on
// every axis and centered on origin. On error the registry is left untouched.
func (r *Registry) RegisterProbeGroup(extent r3.Vector, density float64, origin r3.Vector) error {
	if r.frozen {
		return errors.Wrap(ErrInvalidState, "cannot register probes after the index has been built")
	}
	if !(density > 0) || math.IsInf(density, 1) {
		return errors.Wrapf(ErrInvalidParameter, "probe density (%.4f) must be positive", density)
	}
	for _, axis := range []struct {
		name string
		v    float64
	}{{"x", extent.X}, {"y", extent.Y}, {"z", extent.Z}} {
		if !(axis.v >= 0) || math.IsInf(axis.v, 1) {
			return errors.Wrapf(ErrInvalidParameter, "probe extent %s (%.4f) must be non-negative", axis.name, axis.v)
		}
	}

	total := 1.0
	for _, axis := range []float64{extent.X, extent.Y, extent.Z} {
		total *= axisCount(axis, density)
	}
	if total > MaxGroupProbes {
		return errors.Wrapf(ErrInvalidParameter,
			"probe group of %.0f probes exceeds the limit of %d", total, MaxGroupProbes)
	}

	group := gridPositions(extent, density, origin)
	r.positions = append(r.positions, group...)
	for _, p := range group {
		r.meta.Merge(p)
	}
	return nil
}
