package probe

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
)

// Tolerance used when deciding how many whole steps fit in an extent, so that 2/0.1 still
// produces the closing sample at +extent/2.
const stepEpsilon = 1e-9

// MaxGroupProbes caps the number of probes a single grid may generate.
const MaxGroupProbes = math.MaxInt32

// axisCount returns how many samples axisSamples produces for the extent, as a float so that
// oversized grids can be rejected before anything is allocated.
func axisCount(extent, density float64) float64 {
	return math.Floor(extent/density+stepEpsilon) + 1
}

// axisSamples returns the coordinates from -extent/2 to +extent/2, inclusive, spaced by density.
// The upper end is only reached when extent is a whole multiple of density.
func axisSamples(extent, density float64) []float64 {
	n := int(axisCount(extent, density))
	lo := -extent / 2
	if n == 1 {
		return []float64{lo}
	}
	samples := make([]float64, n)
	floats.Span(samples, lo, lo+float64(n-1)*density)
	return samples
}

// gridPositions returns the cross product of the per axis samples translated by origin, x
// varying fastest.
func gridPositions(extent r3.Vector, density float64, origin r3.Vector) []r3.Vector {
	xs := axisSamples(extent.X, density)
	ys := axisSamples(extent.Y, density)
	zs := axisSamples(extent.Z, density)

	out := make([]r3.Vector, 0, len(xs)*len(ys)*len(zs))
	for _, z := range zs {
		for _, y := range ys {
			for _, x := range xs {
				out = append(out, r3.Vector{X: x, Y: y, Z: z}.Add(origin))
			}
		}
	}
	return out
}
