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
	"math"
	"testing"
)

func polynomialProfile(n int, dh float64, f func(x float64) float64) ([]float64, float64) {
	vals := make([]float64, n)
	for k := 0; k < n; k++ {
		vals[k] = f(float64(k) * dh)
	}
	return vals, float64(n-1) * dh
}

func TestTrapezoidExactForAffine(t *testing.T) {
	const dh = 0.25
	const n = 7
	const slope, intercept = 3.0, -1.5
	vals, L := polynomialProfile(n, dh, func(x float64) float64 { return slope*x + intercept })
	grid, err := NewUniformGrid(dh, n)
	if err != nil {
		t.Fatal(err)
	}
	profile := NewProfile1(vals)
	got, err := Full(profile, grid, Trapezoid)
	if err != nil {
		t.Fatal(err)
	}
	want := slope*L*L/2 + intercept*L
	if math.Abs(float64(got.Scalar())-want) > 1e-4 {
		t.Errorf("trapezoid integral of affine function = %v, want %v", got.Scalar(), want)
	}
}

func TestSimpsonExactForCubic(t *testing.T) {
	const dh = 0.1
	const n = 9 // 8 intervals, even
	vals, L := polynomialProfile(n, dh, func(x float64) float64 { return x*x*x - 2*x + 1 })
	grid, err := NewUniformGrid(dh, n)
	if err != nil {
		t.Fatal(err)
	}
	profile := NewProfile1(vals)
	got, err := Full(profile, grid, Simpson)
	if err != nil {
		t.Fatal(err)
	}
	want := L*L*L*L/4 - L*L + L
	if math.Abs(float64(got.Scalar())-want) > 1e-4 {
		t.Errorf("simpson integral of cubic = %v, want %v", got.Scalar(), want)
	}
}

func TestBooleExactForQuintic(t *testing.T) {
	const dh = 0.1
	const n = 9 // 8 intervals, divisible by 4
	vals, L := polynomialProfile(n, dh, func(x float64) float64 { return x*x*x*x*x })
	grid, err := NewUniformGrid(dh, n)
	if err != nil {
		t.Fatal(err)
	}
	profile := NewProfile1(vals)
	got, err := Full(profile, grid, Boole)
	if err != nil {
		t.Fatal(err)
	}
	want := L * L * L * L * L * L / 6
	if math.Abs(float64(got.Scalar())-want) > 1e-3 {
		t.Errorf("boole integral of quintic = %v, want %v", got.Scalar(), want)
	}
}

func TestQuadratureMethodsAgreeWithinTolerance(t *testing.T) {
	const dh = 0.05
	const n = 9
	vals, _ := polynomialProfile(n, dh, func(x float64) float64 { return math.Sin(x) })
	grid, err := NewUniformGrid(dh, n)
	if err != nil {
		t.Fatal(err)
	}
	profile := NewProfile1(vals)
	trap, err := Full(profile, grid, Trapezoid)
	if err != nil {
		t.Fatal(err)
	}
	simp, err := Full(profile, grid, Simpson)
	if err != nil {
		t.Fatal(err)
	}
	if diff := math.Abs(float64(trap.Scalar() - simp.Scalar())); diff > 1e-3 {
		t.Errorf("trapezoid vs simpson difference = %v, want < 1e-3", diff)
	}
}

func TestParseMethodRoundTrip(t *testing.T) {
	for _, m := range []Method{Trapezoid, Simpson, Boole} {
		parsed, err := ParseMethod(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != m {
			t.Errorf("ParseMethod(%q) = %v, want %v", m.String(), parsed, m)
		}
	}
}

func TestParseMethodUnknown(t *testing.T) {
	if _, err := ParseMethod("quadratic"); err == nil {
		t.Error("ParseMethod(\"quadratic\") should error")
	}
}
