package probe

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// LargestFittingBoundingBox returns, per axis, the largest absolute coordinate of any registered
// probe. The result is a half-extent for a box centered on the coordinate origin; probes from
// groups registered far from the origin are not accounted for on the far side.
func (r *Registry) LargestFittingBoundingBox() (r3.Vector, error) {
	if len(r.positions) == 0 {
		return r3.Vector{}, errors.Wrap(ErrEmptyProbeSet, "cannot estimate bounding box")
	}
	var half r3.Vector
	for _, p := range r.positions {
		a := p.Abs()
		half.X = math.Max(half.X, a.X)
		half.Y = math.Max(half.Y, a.Y)
		half.Z = math.Max(half.Z, a.Z)
	}
	return half, nil
}
