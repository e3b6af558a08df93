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

// LapseRates holds the three lapse-rate coefficients (K/km) of the
// standard-atmosphere temperature profile: beta1 below 11 km, beta2
// between 20 and 32 km, beta3 between 32 and 47 km.
type LapseRates struct {
	Beta1, Beta2, Beta3 float64
}

// StandardAtmosphereParams holds the parameters of the synthetic
// standard-atmosphere constructor.
type StandardAtmosphereParams struct {
	T0   float64 // surface temperature, degrees Celsius
	P0   float64 // surface pressure, hPa
	Rho0 float64 // surface absolute humidity, g/m^3
	H    float64 // domain height, km
	DH   float64 // altitude step, km
	Beta LapseRates
	HP   float64 // pressure scale height, km
	HRho float64 // absolute-humidity scale height, km
}

// DefaultStandardAtmosphereParams returns the commonly-used mid-latitude
// standard-atmosphere parameters used throughout the engine's test
// scenarios.
func DefaultStandardAtmosphereParams() StandardAtmosphereParams {
	return StandardAtmosphereParams{
		T0: 15, P0: 1013, Rho0: 7.5,
		H: 10, DH: 10. / 500,
		Beta: LapseRates{Beta1: 6.5, Beta2: 1, Beta3: 2.8},
		HP:   7.7, HRho: 2.1,
	}
}

// temperatureAt evaluates the piecewise standard-atmosphere temperature
// profile (degrees Celsius) at altitude h (km).
func temperatureAt(h float64, p StandardAtmosphereParams) float64 {
	t11 := p.T0 - p.Beta.Beta1*11
	switch {
	case h <= 11:
		return p.T0 - p.Beta.Beta1*h
	case h <= 20:
		return t11
	case h <= 32:
		return t11 + (p.Beta.Beta2*h - 20)
	case h <= 47:
		t32 := t11 + (p.Beta.Beta2*32 - 20)
		return t32 + p.Beta.Beta3*(h-32)
	default:
		t32 := t11 + (p.Beta.Beta2*32 - 20)
		return t32 + p.Beta.Beta3*(47-32)
	}
}

// NewStandardAtmosphere builds a rank-1 Atmosphere from the classical
// mid-latitude standard-atmosphere parameterization: a piecewise-linear
// temperature profile, exponential pressure and absolute-humidity decay,
// and a cloud-free (all-zero) liquid-water field. Precondition: H must
// be much larger than DH (H > 99*DH).
func NewStandardAtmosphere(p StandardAtmosphereParams, method Method) (*Atmosphere, error) {
	if p.H <= 99*p.DH {
		return nil, fmt.Errorf("mwrt: standard atmosphere requires H > 99*DH, got H=%v DH=%v", p.H, p.DH)
	}
	n := int(math.Round(p.H / p.DH))
	temperature := make([]float64, n)
	pressure := make([]float64, n)
	rho := make([]float64, n)
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		h := p.DH * float64(i+1)
		temperature[i] = temperatureAt(h, p)
		pressure[i] = p.P0 * math.Exp(-h/p.HP)
		rho[i] = p.Rho0 * math.Exp(-h/p.HRho)
		w[i] = 0
	}
	grid, err := NewUniformGrid(float32(p.DH), n)
	if err != nil {
		return nil, err
	}
	T := NewProfile1(temperature)
	P := NewProfile1(pressure)
	Rho := NewProfile1(rho)
	W := NewProfile1(w)
	return NewAtmosphere(T, P, Rho, &W, grid, method)
}
