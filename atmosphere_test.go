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
	"errors"
	"testing"
)

func testAtmosphere(t *testing.T) *Atmosphere {
	t.Helper()
	T := NewProfile1([]float64{15, 10, 5, 0, -5})
	P := NewProfile1([]float64{1013, 900, 800, 700, 600})
	Rho := NewProfile1([]float64{7.5, 5, 3, 1, 0.5})
	grid, err := NewUniformGrid(1, 5)
	if err != nil {
		t.Fatal(err)
	}
	atm, err := NewAtmosphere(T, P, Rho, nil, grid, Trapezoid)
	if err != nil {
		t.Fatal(err)
	}
	return atm
}

func TestNewAtmosphereShapeMismatch(t *testing.T) {
	T := NewProfile1([]float64{1, 2, 3})
	P := NewProfile1([]float64{1, 2})
	Rho := NewProfile1([]float64{1, 2, 3})
	grid, _ := NewUniformGrid(1, 3)
	if _, err := NewAtmosphere(T, P, Rho, nil, grid, Trapezoid); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("NewAtmosphere with mismatched pressure length: err = %v, want ErrShapeMismatch", err)
	}
}

func TestNewAtmosphereGridLengthMismatch(t *testing.T) {
	T := NewProfile1([]float64{1, 2, 3})
	P := NewProfile1([]float64{1, 2, 3})
	Rho := NewProfile1([]float64{1, 2, 3})
	grid, _ := NewUniformGrid(1, 5)
	if _, err := NewAtmosphere(T, P, Rho, nil, grid, Trapezoid); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("NewAtmosphere with mismatched grid length: err = %v, want ErrShapeMismatch", err)
	}
}

func TestAttenuationLiquidWaterMissingField(t *testing.T) {
	atm := testAtmosphere(t)
	if _, err := atm.Attenuation.LiquidWater(10); !errors.Is(err, ErrMissingField) {
		t.Errorf("LiquidWater on a cloud-free atmosphere: err = %v, want ErrMissingField", err)
	}
}

func TestAttenuationSummaryIsLinearCombination(t *testing.T) {
	atm := testAtmosphere(t)
	const f = 22.235
	ox, err := atm.Attenuation.Oxygen(f)
	if err != nil {
		t.Fatal(err)
	}
	wv, err := atm.Attenuation.WaterVapor(f)
	if err != nil {
		t.Fatal(err)
	}
	summary, err := atm.Attenuation.Summary(f)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ox.Add(wv)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < atm.Grid.Len(); k++ {
		got, _ := summary.At(k)
		w, _ := want.At(k)
		if got.Scalar() != w.Scalar() {
			t.Errorf("summary[%d] = %v, want oxygen+waterVapor = %v", k, got.Scalar(), w.Scalar())
		}
	}
}

func TestMemoizationCachesPerFrequencyAndOp(t *testing.T) {
	atm := testAtmosphere(t)
	if _, err := atm.Attenuation.Oxygen(22.235); err != nil {
		t.Fatal(err)
	}
	if len(atm.cache) != 1 {
		t.Fatalf("cache size after one call = %d, want 1", len(atm.cache))
	}
	v1 := atm.cache[cacheKey{22.235, opAttnOxygen}]

	if _, err := atm.Attenuation.Oxygen(22.235); err != nil {
		t.Fatal(err)
	}
	if len(atm.cache) != 1 {
		t.Fatalf("cache size after repeat call = %d, want 1 (no new entry)", len(atm.cache))
	}
	v2 := atm.cache[cacheKey{22.235, opAttnOxygen}]
	p1, p2 := v1.(Profile), v2.(Profile)
	for k := 0; k < atm.Grid.Len(); k++ {
		s1, _ := p1.At(k)
		s2, _ := p2.At(k)
		if s1.Scalar() != s2.Scalar() {
			t.Errorf("memoized value changed between calls at index %d: %v vs %v", k, s1.Scalar(), s2.Scalar())
		}
	}

	if _, err := atm.Attenuation.Oxygen(37); err != nil {
		t.Fatal(err)
	}
	if len(atm.cache) != 2 {
		t.Errorf("cache size after a second frequency = %d, want 2", len(atm.cache))
	}
}

func TestOpacityTrapezoidVsSimpsonClose(t *testing.T) {
	atmTrap, err := NewStandardAtmosphere(DefaultStandardAtmosphereParams(), Trapezoid)
	if err != nil {
		t.Fatal(err)
	}
	atmSimp, err := NewStandardAtmosphere(DefaultStandardAtmosphereParams(), Simpson)
	if err != nil {
		t.Fatal(err)
	}
	tauTrap, err := atmTrap.Opacity.Summary(22.235)
	if err != nil {
		t.Fatal(err)
	}
	tauSimp, err := atmSimp.Opacity.Summary(22.235)
	if err != nil {
		t.Fatal(err)
	}
	diff := tauTrap.Scalar() - tauSimp.Scalar()
	if diff < 0 {
		diff = -diff
	}
	if diff >= 1e-3 {
		t.Errorf("trapezoid vs simpson opacity difference = %v, want < 1e-3 Np", diff)
	}
}

func TestDownwardAndUpwardBrightnessTemperaturePositive(t *testing.T) {
	atm := testAtmosphere(t)
	down, err := atm.Downward.BrightnessTemperature(22.235)
	if err != nil {
		t.Fatal(err)
	}
	up, err := atm.Upward.BrightnessTemperature(22.235)
	if err != nil {
		t.Fatal(err)
	}
	if down.Scalar() <= 0 {
		t.Errorf("downward brightness temperature = %v, want > 0", down.Scalar())
	}
	if up.Scalar() <= 0 {
		t.Errorf("upward brightness temperature = %v, want > 0", up.Scalar())
	}
}

func TestBrightnessTemperaturesMatchesSequentialResults(t *testing.T) {
	atm := testAtmosphere(t)
	freqs := []float64{10, 22.235, 37, 89}
	got, err := atm.Downward.BrightnessTemperatures(freqs, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range freqs {
		want, err := atm.Downward.BrightnessTemperature(f)
		if err != nil {
			t.Fatal(err)
		}
		if got[i].Scalar() != want.Scalar() {
			t.Errorf("BrightnessTemperatures[%d] (f=%v) = %v, want %v", i, f, got[i].Scalar(), want.Scalar())
		}
	}
}
