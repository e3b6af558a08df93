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

import (
	"fmt"
	"math"
)

const closeToZero = 1e-7

// AltitudeGrid describes the vertical grid a Profile is sampled on:
// either a uniform step dh, or explicit strictly-increasing altitudes
// from which per-layer thicknesses are derived. Exactly one
// representation is active.
type AltitudeGrid struct {
	n         int
	uniform   float32
	isUniform bool
	thickness []float32 // length n, used when !isUniform
	altitudes []float32 // length n, cumulative altitude of each layer
}

// NewUniformGrid builds a grid of n layers with constant step dh (km).
func NewUniformGrid(dh float32, n int) (AltitudeGrid, error) {
	if math.Abs(float64(dh)) < closeToZero {
		return AltitudeGrid{}, fmt.Errorf("%w: dh is approximately zero", ErrInvalidStep)
	}
	alt := make([]float32, n)
	for i := range alt {
		alt[i] = dh * float32(i+1)
	}
	return AltitudeGrid{n: n, uniform: dh, isUniform: true, altitudes: alt}, nil
}

// NewExplicitGrid builds a grid from a strictly increasing altitude
// sequence (km), deriving per-layer thicknesses dh[k] = alt[k]-alt[k-1]
// with dh[0] = alt[0].
func NewExplicitGrid(altitudes []float32) (AltitudeGrid, error) {
	if len(altitudes) == 0 {
		return AltitudeGrid{}, fmt.Errorf("%w: altitudes is empty", ErrInvalidStep)
	}
	if math.Abs(float64(altitudes[0])) < closeToZero {
		return AltitudeGrid{}, fmt.Errorf("%w: altitudes[0] is approximately zero", ErrInvalidStep)
	}
	thickness := make([]float32, len(altitudes))
	prev := float32(0)
	for i, a := range altitudes {
		if a-prev < closeToZero {
			return AltitudeGrid{}, fmt.Errorf("%w: altitudes must be strictly increasing, altitudes[%d]=%v is not greater than %v", ErrInvalidStep, i, a, prev)
		}
		thickness[i] = a - prev
		prev = a
	}
	alt := make([]float32, len(altitudes))
	copy(alt, altitudes)
	return AltitudeGrid{n: len(altitudes), thickness: thickness, altitudes: alt}, nil
}

// Len returns the number of altitude layers (N).
func (g AltitudeGrid) Len() int { return g.n }

// LastIndex returns N-1, the index of the top layer.
func (g AltitudeGrid) LastIndex() int { return g.n - 1 }

// ThicknessAt returns dh_k, the per-layer thickness at index k. It is
// the same value at every index for a uniform grid.
func (g AltitudeGrid) ThicknessAt(k int) float32 {
	if g.isUniform {
		return g.uniform
	}
	return g.thickness[k]
}

// Altitudes returns the cumulative altitude of each layer, km.
func (g AltitudeGrid) Altitudes() []float32 {
	out := make([]float32, len(g.altitudes))
	copy(out, g.altitudes)
	return out
}
