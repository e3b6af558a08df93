/*
Copyright (C) 2018-2026 the mwrt authors.
This file is part of mwrt.

mwrt is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

mwrt is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with mwrt.  If not, see <http://www.gnu.org/licenses/>.
*/

package mwrt

import "fmt"

// Method identifies a composite quadrature rule for integrating a
// Profile along its altitude axis.
type Method int

const (
	// Trapezoid is the composite trapezoidal rule.
	Trapezoid Method = iota
	// Simpson is the composite Simpson's 1/3 rule.
	Simpson
	// Boole is the composite Boole's rule.
	Boole
)

// String renders the method name as used in configuration files.
func (m Method) String() string {
	switch m {
	case Trapezoid:
		return "trapezoid"
	case Simpson:
		return "simpson"
	case Boole:
		return "boole"
	default:
		return "unknown"
	}
}

// ParseMethod resolves a method name ("trapezoid", "simpson", "boole")
// to a Method value.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "trapezoid", "trapz":
		return Trapezoid, nil
	case "simpson":
		return Simpson, nil
	case "boole":
		return Boole, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// WithLimits integrates Profile a over altitude indices [lower, upper]
// using grid for per-layer thickness and method for the quadrature rule.
// The altitude axis is reduced: a rank-1 Profile yields a scalar Slice;
// a rank-3 Profile yields a Field2D Slice.
func WithLimits(a Profile, lower, upper int, grid AltitudeGrid, method Method) (Slice, error) {
	if a.Rank() != 1 && a.Rank() != 3 {
		return Slice{}, ErrInvalidRank
	}
	idx := func(k int) (Slice, error) { return a.At(k) }
	switch method {
	case Trapezoid:
		return quadTrapezoid(idx, lower, upper, grid)
	case Simpson:
		return quadSimpson(idx, lower, upper, grid)
	case Boole:
		return quadBoole(idx, lower, upper, grid)
	default:
		return Slice{}, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}

// Full integrates a over its entire altitude axis, [0, N-1].
func Full(a Profile, grid AltitudeGrid, method Method) (Slice, error) {
	return WithLimits(a, 0, a.Len()-1, grid, method)
}

// quadTrapezoid implements the composite trapezoidal rule: the interior
// sum a_k*dh_k plus half-weighted endpoints.
func quadTrapezoid(a func(int) (Slice, error), lower, upper int, grid AltitudeGrid) (Slice, error) {
	aLower, err := a(lower)
	if err != nil {
		return Slice{}, err
	}
	aUpper, err := a(upper)
	if err != nil {
		return Slice{}, err
	}
	acc := aLower.Scale(grid.ThicknessAt(lower) / 2).Add(aUpper.Scale(grid.ThicknessAt(upper) / 2))
	for k := lower + 1; k < upper; k++ {
		ak, err := a(k)
		if err != nil {
			return Slice{}, err
		}
		acc = acc.Add(ak.Scale(grid.ThicknessAt(k)))
	}
	return acc, nil
}

// quadSimpson implements composite Simpson's 1/3 rule with endpoint
// weight 1, weight 4 on the first interior point of every pair, weight 2
// on the second, each scaled by the local thickness and summed, then
// divided by 3.
func quadSimpson(a func(int) (Slice, error), lower, upper int, grid AltitudeGrid) (Slice, error) {
	aLower, err := a(lower)
	if err != nil {
		return Slice{}, err
	}
	aUpper, err := a(upper)
	if err != nil {
		return Slice{}, err
	}
	acc := aLower.Scale(grid.ThicknessAt(lower)).Add(aUpper.Scale(grid.ThicknessAt(upper)))
	for k := lower + 1; k < upper; k++ {
		ak, err := a(k)
		if err != nil {
			return Slice{}, err
		}
		weight := float32(2)
		if (k-lower)%2 == 1 {
			weight = 4
		}
		acc = acc.Add(ak.Scale(weight * grid.ThicknessAt(k)))
	}
	return acc.Scale(1. / 3.), nil
}

// quadBoole implements composite Boole's rule: endpoint weight 14, the
// two odd-offset interior points per 4-point block weight 64, the
// offset-2 point weight 24, the offset-4 (block boundary) point weight
// 28, each scaled by local thickness and summed, then divided by 45.
func quadBoole(a func(int) (Slice, error), lower, upper int, grid AltitudeGrid) (Slice, error) {
	aLower, err := a(lower)
	if err != nil {
		return Slice{}, err
	}
	aUpper, err := a(upper)
	if err != nil {
		return Slice{}, err
	}
	acc := aLower.Scale(14 * grid.ThicknessAt(lower)).Add(aUpper.Scale(14 * grid.ThicknessAt(upper)))
	for k := lower + 1; k < upper; k++ {
		ak, err := a(k)
		if err != nil {
			return Slice{}, err
		}
		var weight float32
		switch (k - lower) % 4 {
		case 1, 3:
			weight = 64
		case 2:
			weight = 24
		case 0:
			weight = 28
		}
		acc = acc.Add(ak.Scale(weight * grid.ThicknessAt(k)))
	}
	return acc.Scale(1. / 45.), nil
}

// Callable integrates a caller-supplied function of altitude index over
// [lower, upper] using the same trapezoidal-weighting scheme as
// quadTrapezoid. This is the vehicle for nested integrals such as the
// Schwarzschild quadrature, where f(k) itself may invoke WithLimits to
// evaluate a variable-upper-limit optical-depth integral.
func Callable(f func(k int) (Slice, error), lower, upper int, grid AltitudeGrid) (Slice, error) {
	return quadTrapezoid(f, lower, upper, grid)
}
