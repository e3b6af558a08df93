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

// Package mwrt implements a microwave radiative-transfer engine for
// Earth's atmosphere: frequency-dependent specific absorption, column
// optical depth, downward and upward atmospheric brightness temperature,
// smooth-water-surface Fresnel reflectivity, and the top-of-atmosphere
// brightness temperature seen by a satellite above a reflecting surface.
package mwrt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field2D is a horizontal slice of a rank-3 field: shape (A, B).
type Field2D [][]float32

// Field3D is a rank-3 field with the altitude axis last: shape (A, B, N).
type Field3D [][][]float32

// Profile is a vertical profile or 3D field of a single physical
// quantity. It is always one of two concrete shapes: a rank-1 altitude
// vector, or a rank-3 field whose last axis is altitude. Exactly one of
// the two internal slices is non-nil for any valid Profile.
type Profile struct {
	vec   []float32 // rank 1
	field Field3D   // rank 3, shape (A, B, N)
}

// NewProfile1 builds a rank-1 Profile from float64 samples, converting to
// float32 as the kernel's tensor element type.
func NewProfile1(v []float64) Profile {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return Profile{vec: out}
}

// NewProfile1F32 builds a rank-1 Profile from an existing float32 slice.
func NewProfile1F32(v []float32) Profile {
	return Profile{vec: v}
}

// NewProfile3 builds a rank-3 Profile from a nested float64 field of
// shape (A, B, N).
func NewProfile3(v [][][]float64) Profile {
	field := make(Field3D, len(v))
	for i, plane := range v {
		field[i] = make([][]float32, len(plane))
		for j, col := range plane {
			row := make([]float32, len(col))
			for k, x := range col {
				row[k] = float32(x)
			}
			field[i][j] = row
		}
	}
	return Profile{field: field}
}

// NewProfile3F32 builds a rank-3 Profile from an existing Field3D.
func NewProfile3F32(v Field3D) Profile {
	return Profile{field: v}
}

// Rank reports 1 or 3.
func (p Profile) Rank() int {
	if p.vec != nil {
		return 1
	}
	return 3
}

// Len returns the altitude-axis length.
func (p Profile) Len() int {
	if p.vec != nil {
		return len(p.vec)
	}
	if len(p.field) == 0 || len(p.field[0]) == 0 {
		return 0
	}
	return len(p.field[0][0])
}

// horizontalShape returns (A, B) for a rank-3 Profile.
func (p Profile) horizontalShape() (int, int) {
	a := len(p.field)
	b := 0
	if a > 0 {
		b = len(p.field[0])
	}
	return a, b
}

// sameShape reports whether p and o have matching rank and shape.
func (p Profile) sameShape(o Profile) bool {
	if p.Rank() != o.Rank() {
		return false
	}
	if p.Len() != o.Len() {
		return false
	}
	if p.Rank() == 3 {
		a1, b1 := p.horizontalShape()
		a2, b2 := o.horizontalShape()
		if a1 != a2 || b1 != b2 {
			return false
		}
	}
	return true
}

// At slices the Profile at altitude index k, yielding a Slice: a scalar
// for rank 1, a Field2D for rank 3.
func (p Profile) At(k int) (Slice, error) {
	switch p.Rank() {
	case 1:
		if k < 0 || k >= len(p.vec) {
			return Slice{}, fmt.Errorf("mwrt: altitude index %d out of range [0,%d)", k, len(p.vec))
		}
		return NewScalarSlice(p.vec[k]), nil
	case 3:
		a, b := p.horizontalShape()
		if k < 0 || (a > 0 && b > 0 && k >= len(p.field[0][0])) {
			return Slice{}, fmt.Errorf("mwrt: altitude index %d out of range", k)
		}
		out := make(Field2D, a)
		for i := 0; i < a; i++ {
			out[i] = make([]float32, b)
			for j := 0; j < b; j++ {
				out[i][j] = p.field[i][j][k]
			}
		}
		return NewFieldSlice(out), nil
	default:
		return Slice{}, ErrInvalidRank
	}
}

// mapElem applies f to every element, preserving shape.
func (p Profile) mapElem(f func(float32) float32) Profile {
	switch p.Rank() {
	case 1:
		out := make([]float32, len(p.vec))
		for i, v := range p.vec {
			out[i] = f(v)
		}
		return Profile{vec: out}
	default:
		a, b := p.horizontalShape()
		out := make(Field3D, a)
		for i := 0; i < a; i++ {
			out[i] = make([][]float32, b)
			for j := 0; j < b; j++ {
				n := len(p.field[i][j])
				row := make([]float32, n)
				for k := 0; k < n; k++ {
					row[k] = f(p.field[i][j][k])
				}
				out[i][j] = row
			}
		}
		return Profile{field: out}
	}
}

// Scale multiplies every element of p by c.
func (p Profile) Scale(c float32) Profile {
	return p.mapElem(func(v float32) float32 { return v * c })
}

// AddScalar adds c to every element of p.
func (p Profile) AddScalar(c float32) Profile {
	return p.mapElem(func(v float32) float32 { return v + c })
}

// Add returns the elementwise sum of p and o, which must share shape.
func (p Profile) Add(o Profile) (Profile, error) {
	return Map2(p, o, func(a, b float32) float32 { return a + b })
}

// ZerosLike returns a Profile of the same shape as p with every element
// set to zero.
func ZerosLike(p Profile) Profile {
	return p.mapElem(func(float32) float32 { return 0 })
}

// Map2 applies f elementwise across two same-shaped profiles.
func Map2(a, b Profile, f func(x, y float32) float32) (Profile, error) {
	if !a.sameShape(b) {
		return Profile{}, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, shapeOf(a), shapeOf(b))
	}
	switch a.Rank() {
	case 1:
		out := make([]float32, len(a.vec))
		for i := range out {
			out[i] = f(a.vec[i], b.vec[i])
		}
		return Profile{vec: out}, nil
	case 3:
		ha, hb := a.horizontalShape()
		out := make(Field3D, ha)
		for i := 0; i < ha; i++ {
			out[i] = make([][]float32, hb)
			for j := 0; j < hb; j++ {
				n := len(a.field[i][j])
				row := make([]float32, n)
				for k := 0; k < n; k++ {
					row[k] = f(a.field[i][j][k], b.field[i][j][k])
				}
				out[i][j] = row
			}
		}
		return Profile{field: out}, nil
	default:
		return Profile{}, ErrInvalidRank
	}
}

// Map3 applies f elementwise across three same-shaped profiles.
func Map3(a, b, c Profile, f func(x, y, z float32) float32) (Profile, error) {
	if !a.sameShape(b) || !a.sameShape(c) {
		return Profile{}, fmt.Errorf("%w: %v, %v, %v", ErrShapeMismatch, shapeOf(a), shapeOf(b), shapeOf(c))
	}
	switch a.Rank() {
	case 1:
		out := make([]float32, len(a.vec))
		for i := range out {
			out[i] = f(a.vec[i], b.vec[i], c.vec[i])
		}
		return Profile{vec: out}, nil
	case 3:
		ha, hb := a.horizontalShape()
		out := make(Field3D, ha)
		for i := 0; i < ha; i++ {
			out[i] = make([][]float32, hb)
			for j := 0; j < hb; j++ {
				n := len(a.field[i][j])
				row := make([]float32, n)
				for k := 0; k < n; k++ {
					row[k] = f(a.field[i][j][k], b.field[i][j][k], c.field[i][j][k])
				}
				out[i][j] = row
			}
		}
		return Profile{field: out}, nil
	default:
		return Profile{}, ErrInvalidRank
	}
}

// shapeOf formats a shape descriptor for error messages.
func shapeOf(p Profile) string {
	if p.Rank() == 1 {
		return fmt.Sprintf("rank1(%d)", p.Len())
	}
	a, b := p.horizontalShape()
	return fmt.Sprintf("rank3(%d,%d,%d)", a, b, p.Len())
}

// sumFloat32 sums a slice of float32 values using gonum's float64
// accumulator. The quadrature rules do not call it; they accumulate
// their weighted sums in float32 Slice arithmetic.
func sumFloat32(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	f64 := make([]float64, len(v))
	for i, x := range v {
		f64[i] = float64(x)
	}
	return float32(floats.Sum(f64))
}

// Slice is the result of indexing a Profile at one altitude, or the
// result of reducing one along the altitude axis: a scalar for a rank-1
// Profile, a Field2D for a rank-3 Profile.
type Slice struct {
	rank  int
	s     float32
	field Field2D
}

// NewScalarSlice wraps a rank-1 (scalar) slice value.
func NewScalarSlice(v float32) Slice { return Slice{rank: 1, s: v} }

// NewFieldSlice wraps a rank-3 (Field2D) slice value.
func NewFieldSlice(f Field2D) Slice { return Slice{rank: 3, field: f} }

// Rank reports 1 or 3.
func (s Slice) Rank() int { return s.rank }

// Scalar returns the rank-1 value. It panics if s is rank 3; callers
// should check Rank first.
func (s Slice) Scalar() float32 {
	if s.rank != 1 {
		panic("mwrt: Scalar called on a rank-3 Slice")
	}
	return s.s
}

// Field returns the rank-3 value. It panics if s is rank 1.
func (s Slice) Field() Field2D {
	if s.rank != 3 {
		panic("mwrt: Field called on a rank-1 Slice")
	}
	return s.field
}

// elementwise combines s and o with f, broadcasting a scalar operand
// against a Field2D one (e.g. a scalar surface temperature against a
// rank-3 atmosphere's horizontal field), matching numpy's broadcasting
// of a 0-d value against a 2D array in the reference implementation.
func (s Slice) elementwise(o Slice, f func(a, b float32) float32) Slice {
	switch {
	case s.rank == 1 && o.rank == 1:
		return NewScalarSlice(f(s.s, o.s))
	case s.rank == 3 && o.rank == 3:
		out := make(Field2D, len(s.field))
		for i := range s.field {
			out[i] = make([]float32, len(s.field[i]))
			for j := range s.field[i] {
				out[i][j] = f(s.field[i][j], o.field[i][j])
			}
		}
		return NewFieldSlice(out)
	case s.rank == 3 && o.rank == 1:
		out := make(Field2D, len(s.field))
		for i := range s.field {
			out[i] = make([]float32, len(s.field[i]))
			for j := range s.field[i] {
				out[i][j] = f(s.field[i][j], o.s)
			}
		}
		return NewFieldSlice(out)
	default: // s.rank == 1 && o.rank == 3
		out := make(Field2D, len(o.field))
		for i := range o.field {
			out[i] = make([]float32, len(o.field[i]))
			for j := range o.field[i] {
				out[i][j] = f(s.s, o.field[i][j])
			}
		}
		return NewFieldSlice(out)
	}
}

func (s Slice) mapElem(f func(float32) float32) Slice {
	if s.rank == 1 {
		return NewScalarSlice(f(s.s))
	}
	out := make(Field2D, len(s.field))
	for i := range s.field {
		out[i] = make([]float32, len(s.field[i]))
		for j := range s.field[i] {
			out[i][j] = f(s.field[i][j])
		}
	}
	return NewFieldSlice(out)
}

// Add returns the elementwise sum of s and o.
func (s Slice) Add(o Slice) Slice { return s.elementwise(o, func(a, b float32) float32 { return a + b }) }

// Mul returns the elementwise product of s and o.
func (s Slice) Mul(o Slice) Slice { return s.elementwise(o, func(a, b float32) float32 { return a * b }) }

// Divide returns the elementwise quotient s/o. A zero divisor yields
// zero rather than the Inf/NaN numpy would produce in the reference
// implementation: a deliberate divergence, since every caller in this
// engine (the weighting functions in package weightfunc) uses a zero
// divisor to mean "no signal to weight" and wants a finite zero result
// rather than having to special-case Inf/NaN downstream.
func (s Slice) Divide(o Slice) Slice {
	return s.elementwise(o, func(a, b float32) float32 {
		if b == 0 {
			return 0
		}
		return a / b
	})
}

// Scale multiplies every element of s by c.
func (s Slice) Scale(c float32) Slice { return s.mapElem(func(v float32) float32 { return v * c }) }

// AddConst adds c to every element of s.
func (s Slice) AddConst(c float32) Slice { return s.mapElem(func(v float32) float32 { return v + c }) }

// Exp returns exp(s), elementwise.
func (s Slice) Exp() Slice {
	return s.mapElem(func(v float32) float32 { return float32(math.Exp(float64(v))) })
}
