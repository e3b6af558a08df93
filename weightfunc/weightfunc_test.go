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

package weightfunc

import (
	"math"
	"testing"

	"github.com/spatialmodel/mwrt"
	"github.com/spatialmodel/mwrt/science/dielectric"
)

func testAtmosphere(t *testing.T) *mwrt.Atmosphere {
	t.Helper()
	T := mwrt.NewProfile1([]float64{15, 10, 5, 0, -5})
	P := mwrt.NewProfile1([]float64{1013, 900, 800, 700, 600})
	Rho := mwrt.NewProfile1([]float64{7.5, 5, 3, 1, 0.5})
	grid, err := mwrt.NewUniformGrid(1, 5)
	if err != nil {
		t.Fatal(err)
	}
	atm, err := mwrt.NewAtmosphere(T, P, Rho, nil, grid, mwrt.Trapezoid)
	if err != nil {
		t.Fatal(err)
	}
	return atm
}

func TestKRhoMatchesOpacityOverIntegratedHumidity(t *testing.T) {
	atm := testAtmosphere(t)
	const f = 22.235
	got, err := KRho(atm, f)
	if err != nil {
		t.Fatal(err)
	}
	tauWV, err := atm.Opacity.WaterVapor(f)
	if err != nil {
		t.Fatal(err)
	}
	rhoColumn, err := mwrt.Full(atm.Rho, atm.Grid, mwrt.Trapezoid)
	if err != nil {
		t.Fatal(err)
	}
	want := tauWV.Scalar() / (rhoColumn.Scalar() / 10)
	if got.Scalar() != want {
		t.Errorf("KRho = %v, want %v", got.Scalar(), want)
	}
}

func TestStaelinIsDistinctFromKRho(t *testing.T) {
	atm := testAtmosphere(t)
	const f = 37.0
	krho, err := KRho(atm, f)
	if err != nil {
		t.Fatal(err)
	}
	staelin, err := Staelin(atm, f)
	if err != nil {
		t.Fatal(err)
	}
	// KRho is a column scalar; Staelin is a per-level profile, so they
	// cannot represent the same quantity except by coincidence.
	first, err := staelin.At(0)
	if err != nil {
		t.Fatal(err)
	}
	wv, err := atm.Attenuation.WaterVapor(f)
	if err != nil {
		t.Fatal(err)
	}
	w0, _ := wv.At(0)
	rho0, _ := atm.Rho.At(0)
	want := w0.Scalar() / rho0.Scalar()
	if first.Scalar() != want {
		t.Errorf("Staelin[0] = %v, want attenuation.water_vapor(f)/rho = %v", first.Scalar(), want)
	}
	if krho.Rank() != 1 {
		t.Errorf("KRho rank = %d, want 1 (column scalar) for a rank-1 atmosphere", krho.Rank())
	}
}

func TestKWMatchesDielectricEvaluatedAtEffectiveCloudTemp(t *testing.T) {
	atm := testAtmosphere(t)
	got := KW(atm, 10)
	if got <= 0 {
		t.Errorf("KW(atm,10) = %v, want > 0", got)
	}
	if want := dielectric.WeightKW(10, atm.EffectiveCloudTemp); got != want {
		t.Errorf("KW(atm,10) = %v, want dielectric.WeightKW(10, %v) = %v", got, atm.EffectiveCloudTemp, want)
	}
}

func TestAvgDownwardAndUpwardTFinite(t *testing.T) {
	atm := testAtmosphere(t)
	const f = 22.235
	down, err := AvgDownwardT(atm, f)
	if err != nil {
		t.Fatal(err)
	}
	up, err := AvgUpwardT(atm, f)
	if err != nil {
		t.Fatal(err)
	}
	if d := float64(down.Scalar()); d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		t.Errorf("AvgDownwardT = %v, want finite and >= 0", down.Scalar())
	}
	if u := float64(up.Scalar()); u < 0 || math.IsNaN(u) || math.IsInf(u, 0) {
		t.Errorf("AvgUpwardT = %v, want finite and >= 0", up.Scalar())
	}
}
