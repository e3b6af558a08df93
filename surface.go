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

	"github.com/spatialmodel/mwrt/science/dielectric"
)

// Polarization identifies the surface polarization a Surface reflects
// at. Nadir observations ignore it.
type Polarization int

const (
	PolarizationUnspecified Polarization = iota
	PolarizationHorizontal
	PolarizationVertical
)

// Surface is a reflecting lower boundary for the radiative-transfer
// pipeline: something that can report a frequency-dependent
// reflectivity and, by complementarity at thermodynamic equilibrium, an
// emissivity.
type Surface interface {
	// Reflectivity returns the power reflection coefficient at
	// frequency f (GHz), scalar or Field2D matching the surface's shape.
	Reflectivity(f float64) (Slice, error)
	// Emissivity returns 1-Reflectivity(f).
	Emissivity(f float64) (Slice, error)
	// SurfaceTemperature returns the thermodynamic surface temperature,
	// degrees Celsius.
	SurfaceTemperature() Slice
}

// SmoothWaterSurface models the microwave emission of a smooth (i.e.
// non-rough) water surface: reflectivity and emissivity from the
// salinity-aware Fresnel/dielectric block.
type SmoothWaterSurface struct {
	Temperature   Slice // degrees Celsius
	Salinity      Slice // per mille
	Theta         float64
	Polarization  Polarization
}

// NewSmoothWaterSurface builds a scalar smooth water surface.
func NewSmoothWaterSurface(temperature, salinity float32, theta float64, pol Polarization) SmoothWaterSurface {
	return SmoothWaterSurface{
		Temperature:  NewScalarSlice(temperature),
		Salinity:     NewScalarSlice(salinity),
		Theta:        theta,
		Polarization: pol,
	}
}

const zenithCloseToZero = 1e-7

func (s SmoothWaterSurface) reflectivityElem(f float64, T, Sw float32) float32 {
	switch {
	case math.Abs(s.Theta) < zenithCloseToZero:
		return float32(dielectric.RNadir(f, float64(T), float64(Sw)))
	case s.Polarization == PolarizationHorizontal:
		return float32(dielectric.RHorizontal(f, s.Theta, float64(T), float64(Sw)))
	default:
		return float32(dielectric.RVertical(f, s.Theta, float64(T), float64(Sw)))
	}
}

// Reflectivity computes the smooth water surface's power reflection
// coefficient at frequency f (GHz): the nadir Fresnel reflectance at
// theta==0, otherwise the horizontal- or vertical-polarization
// reflectance per Polarization (vertical is the default when
// unspecified, matching the reference implementation).
func (s SmoothWaterSurface) Reflectivity(f float64) (Slice, error) {
	return s.Temperature.elementwise(s.Salinity, func(T, Sw float32) float32 {
		return s.reflectivityElem(f, T, Sw)
	}), nil
}

// Emissivity returns 1-Reflectivity(f), the surface's emissivity under
// the thermodynamic-equilibrium assumption (Kirchhoff's law).
func (s SmoothWaterSurface) Emissivity(f float64) (Slice, error) {
	r, err := s.Reflectivity(f)
	if err != nil {
		return Slice{}, err
	}
	return r.mapElem(func(v float32) float32 { return 1 - v }), nil
}

// SurfaceTemperature returns the surface's thermodynamic temperature,
// degrees Celsius.
func (s SmoothWaterSurface) SurfaceTemperature() Slice { return s.Temperature }
