package probe

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestRegisterProbeGroupCount(t *testing.T) {
	reg := NewRegistry()
	err := reg.RegisterProbeGroup(r3.Vector{X: 2, Y: 2, Z: 2}, 1, r3.Vector{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, reg.Size(), test.ShouldEqual, 27)

	allowed := map[float64]bool{-1: true, 0: true, 1: true}
	seen := map[r3.Vector]bool{}
	for _, p := range reg.Positions() {
		test.That(t, allowed[p.X], test.ShouldBeTrue)
		test.That(t, allowed[p.Y], test.ShouldBeTrue)
		test.That(t, allowed[p.Z], test.ShouldBeTrue)
		seen[p] = true
	}
	test.That(t, len(seen), test.ShouldEqual, 27)
}

func TestRegisterProbeGroupContainmentAndSpacing(t *testing.T) {
	cases := []struct {
		extent  r3.Vector
		density float64
		origin  r3.Vector
		count   int
	}{
		{r3.Vector{X: 2, Y: 2, Z: 2}, 1, r3.Vector{}, 27},
		{r3.Vector{X: 4, Y: 2, Z: 0}, 0.5, r3.Vector{X: 3, Y: -2, Z: 7}, 9 * 5 * 1},
		{r3.Vector{X: 2, Y: 2, Z: 2}, 0.1, r3.Vector{X: -1.5, Y: 0.25, Z: 10}, 21 * 21 * 21},
		{r3.Vector{X: 0, Y: 0, Z: 0}, 3, r3.Vector{X: 1, Y: 1, Z: 1}, 1},
		{r3.Vector{X: 6, Y: 10, Z: 2}, 1, r3.Vector{}, 7 * 11 * 3},
	}

	for _, c := range cases {
		reg := NewRegistry()
		test.That(t, reg.RegisterProbeGroup(c.extent, c.density, c.origin), test.ShouldBeNil)
		test.That(t, reg.Size(), test.ShouldEqual, c.count)

		for _, p := range reg.Positions() {
			rel := p.Sub(c.origin)
			test.That(t, math.Abs(rel.X), test.ShouldBeLessThanOrEqualTo, c.extent.X/2+1e-9)
			test.That(t, math.Abs(rel.Y), test.ShouldBeLessThanOrEqualTo, c.extent.Y/2+1e-9)
			test.That(t, math.Abs(rel.Z), test.ShouldBeLessThanOrEqualTo, c.extent.Z/2+1e-9)

			test.That(t, math.Abs(math.Remainder(rel.X, c.density)), test.ShouldBeLessThan, 1e-4)
			test.That(t, math.Abs(math.Remainder(rel.Y, c.density)), test.ShouldBeLessThan, 1e-4)
			test.That(t, math.Abs(math.Remainder(rel.Z, c.density)), test.ShouldBeLessThan, 1e-4)
		}
	}
}

func TestRegisterProbeGroupAccumulates(t *testing.T) {
	reg := NewRegistry()
	test.That(t, reg.RegisterProbeGroup(r3.Vector{X: 2, Y: 2, Z: 2}, 1, r3.Vector{}), test.ShouldBeNil)
	test.That(t, reg.RegisterProbeGroup(r3.Vector{X: 2, Y: 2, Z: 2}, 1, r3.Vector{}), test.ShouldBeNil)
	test.That(t, reg.Size(), test.ShouldEqual, 54)
	// no de-duplication, so the second group repeats the first in the same order
	test.That(t, reg.At(0), test.ShouldResemble, reg.At(27))
	test.That(t, reg.At(0), test.ShouldResemble, r3.Vector{X: -1, Y: -1, Z: -1})
	test.That(t, reg.At(1), test.ShouldResemble, r3.Vector{X: 0, Y: -1, Z: -1})
}

func TestRegisterProbeGroupInvalid(t *testing.T) {
	reg := NewRegistry()
	test.That(t, reg.RegisterProbeGroup(r3.Vector{X: 1, Y: 1, Z: 1}, 1, r3.Vector{}), test.ShouldBeNil)

	for _, density := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := reg.RegisterProbeGroup(r3.Vector{X: 1, Y: 1, Z: 1}, density, r3.Vector{})
		test.That(t, errors.Is(err, ErrInvalidParameter), test.ShouldBeTrue)
	}
	for _, extent := range []r3.Vector{
		{X: -1, Y: 1, Z: 1},
		{X: 1, Y: -0.5, Z: 1},
		{X: 1, Y: 1, Z: math.NaN()},
	} {
		err := reg.RegisterProbeGroup(extent, 1, r3.Vector{})
		test.That(t, errors.Is(err, ErrInvalidParameter), test.ShouldBeTrue)
	}
	test.That(t, reg.Size(), test.ShouldEqual, 8)
}

func TestRegisterProbeGroupTooLarge(t *testing.T) {
	reg := NewRegistry()
	for _, c := range []struct {
		extent  r3.Vector
		density float64
	}{
		{r3.Vector{X: 1e19}, 1},
		{r3.Vector{X: 3e6, Y: 3e6, Z: 3e6}, 1},
		{r3.Vector{X: 1, Y: 1, Z: 1}, 1e-7},
		{r3.Vector{X: math.MaxFloat64}, math.SmallestNonzeroFloat64},
	} {
		err := reg.RegisterProbeGroup(c.extent, c.density, r3.Vector{})
		test.That(t, errors.Is(err, ErrInvalidParameter), test.ShouldBeTrue)
		test.That(t, err.Error(), test.ShouldContainSubstring, "exceeds the limit")
	}
	test.That(t, reg.Size(), test.ShouldEqual, 0)

	// a long single axis below the cap is still accepted
	test.That(t, reg.RegisterProbeGroup(r3.Vector{X: 1e5}, 1, r3.Vector{}), test.ShouldBeNil)
	test.That(t, reg.Size(), test.ShouldEqual, 100001)
}

func TestRegisterProbeGroupFrozen(t *testing.T) {
	reg := NewRegistry()
	test.That(t, reg.RegisterProbeGroup(r3.Vector{X: 2, Y: 2, Z: 2}, 1, r3.Vector{}), test.ShouldBeNil)
	reg.Freeze()
	test.That(t, reg.Frozen(), test.ShouldBeTrue)

	err := reg.RegisterProbeGroup(r3.Vector{X: 2, Y: 2, Z: 2}, 1, r3.Vector{})
	test.That(t, errors.Is(err, ErrInvalidState), test.ShouldBeTrue)
	test.That(t, reg.Size(), test.ShouldEqual, 27)
}

func TestPositionsIsACopy(t *testing.T) {
	reg := NewRegistry()
	test.That(t, reg.RegisterProbeGroup(r3.Vector{X: 2, Y: 0, Z: 0}, 1, r3.Vector{}), test.ShouldBeNil)
	ps := reg.Positions()
	ps[0] = r3.Vector{X: 100}
	test.That(t, reg.At(0), test.ShouldResemble, r3.Vector{X: -1})
}

func TestMetaData(t *testing.T) {
	reg := NewRegistry()
	test.That(t, reg.RegisterProbeGroup(r3.Vector{X: 2, Y: 4, Z: 6}, 1, r3.Vector{X: 10}), test.ShouldBeNil)
	meta := reg.MetaData()
	test.That(t, meta.MinX, test.ShouldEqual, 9)
	test.That(t, meta.MaxX, test.ShouldEqual, 11)
	test.That(t, meta.MinY, test.ShouldEqual, -2)
	test.That(t, meta.MaxY, test.ShouldEqual, 2)
	test.That(t, meta.MinZ, test.ShouldEqual, -3)
	test.That(t, meta.MaxZ, test.ShouldEqual, 3)
	test.That(t, meta.Center(), test.ShouldResemble, r3.Vector{X: 10, Y: 0, Z: 0})
}
