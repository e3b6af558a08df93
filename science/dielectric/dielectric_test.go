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

package dielectric

import (
	"math"
	"testing"
)

func TestRNadirSeedScenario(t *testing.T) {
	got := RNadir(10, 15, 0)
	want := 0.63
	if math.Abs(got-want) > 0.05 {
		t.Errorf("RNadir(10,15,0) = %v, want approximately %v", got, want)
	}
}

func TestNadirConsistency(t *testing.T) {
	const f, T, Sw = 10.0, 15.0, 0.0
	nadir := RNadir(f, T, Sw)
	h := RHorizontal(f, 0, T, Sw)
	v := RVertical(f, 0, T, Sw)
	if math.Abs(h-nadir) > 1e-6 {
		t.Errorf("RHorizontal(theta=0) = %v, want RNadir %v", h, nadir)
	}
	if math.Abs(v-nadir) > 1e-6 {
		t.Errorf("RVertical(theta=0) = %v, want RNadir %v", v, nadir)
	}
}

func TestReflectanceBounded(t *testing.T) {
	for _, f := range []float64{1, 10, 37, 89} {
		for _, theta := range []float64{0, 0.3, 0.6, 1.0} {
			for _, r := range []float64{RHorizontal(f, theta, 15, 35), RVertical(f, theta, 15, 35)} {
				if r < 0 || r > 1 {
					t.Errorf("reflectance out of [0,1] at f=%v theta=%v: %v", f, theta, r)
				}
			}
		}
	}
}

func TestEpsilonSalinityIncreasesLossTerm(t *testing.T) {
	fresh := Epsilon(10, 15, 0)
	salty := Epsilon(10, 15, 35)
	if imag(salty) >= imag(fresh) {
		t.Errorf("adding salinity should increase the (negative) imaginary permittivity magnitude: fresh=%v salty=%v", fresh, salty)
	}
}

func TestWeightKWPositive(t *testing.T) {
	if v := WeightKW(10, -2); v <= 0 {
		t.Errorf("WeightKW(10,-2) = %v, want > 0", v)
	}
}
