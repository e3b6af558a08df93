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

// Package weightfunc implements the auxiliary weighting-function
// diagnostics used to characterize a frequency channel's sensing depth:
// the water-vapor and liquid-water mass weighting functions, and the
// average downward/upward brightness temperatures they weight.
package weightfunc

import (
	"github.com/spatialmodel/mwrt"
	"github.com/spatialmodel/mwrt/science/dielectric"
)

// KRho returns the water-vapor mass weighting function
// k_rho(f) = opacity.water_vapor(f) / (integral(rho dh) / 10), a column
// quantity: a scalar for a rank-1 atmosphere, a Field2D Slice for a
// rank-3 one. A zero column water-vapor mass divides to zero rather than
// Inf/NaN, per mwrt.Slice.Divide's convention (see AvgDownwardT).
func KRho(sa *mwrt.Atmosphere, f float64) (mwrt.Slice, error) {
	tauWV, err := sa.Opacity.WaterVapor(f)
	if err != nil {
		return mwrt.Slice{}, err
	}
	rhoColumn, err := mwrt.Full(sa.Rho, sa.Grid, mwrt.Trapezoid)
	if err != nil {
		return mwrt.Slice{}, err
	}
	return tauWV.Divide(rhoColumn.Divide(mwrt.NewScalarSlice(10))), nil
}

// KW returns the liquid-water mass weighting function, evaluated at the
// atmosphere's effective cloud temperature. Unlike KRho this is a single
// scalar coefficient (Np per unit optical mass), not an altitude
// profile: the reference implementation's column-wide weight-function
// evaluation (ar.py's kw), not the profile-wide variant found
// (unreachably) in the GPU exploratory code.
func KW(sa *mwrt.Atmosphere, f float64) float64 {
	return dielectric.WeightKW(f, sa.EffectiveCloudTemp)
}

// Staelin returns the Staelin water-vapor weighting function,
// attenuation.water_vapor(f)/rho, elementwise over the atmosphere's
// altitude profile. Unlike KRho, which reduces to a column quantity via
// the water-vapor opacity and the integrated humidity column, Staelin
// stays a per-level profile of the same rank as the atmosphere.
func Staelin(sa *mwrt.Atmosphere, f float64) (mwrt.Profile, error) {
	wv, err := sa.Attenuation.WaterVapor(f)
	if err != nil {
		return mwrt.Profile{}, err
	}
	return mwrt.Map2(wv, sa.Rho, func(g, rho float32) float32 {
		if rho == 0 {
			return 0
		}
		return g / rho
	})
}

// AvgDownwardT returns the optical-depth-weighted average downward
// brightness temperature seen along the column: the downward brightness
// temperature divided by one minus the transmittance, which is undefined
// (returned as zero) for an opacity of zero.
func AvgDownwardT(sa *mwrt.Atmosphere, f float64) (mwrt.Slice, error) {
	return avgT(sa, f, sa.Downward.BrightnessTemperature)
}

// AvgUpwardT returns the optical-depth-weighted average upward
// brightness temperature seen along the column.
func AvgUpwardT(sa *mwrt.Atmosphere, f float64) (mwrt.Slice, error) {
	return avgT(sa, f, sa.Upward.BrightnessTemperature)
}

func avgT(sa *mwrt.Atmosphere, f float64, tb func(float64) (mwrt.Slice, error)) (mwrt.Slice, error) {
	tau, err := sa.Opacity.Summary(f)
	if err != nil {
		return mwrt.Slice{}, err
	}
	t, err := tb(f)
	if err != nil {
		return mwrt.Slice{}, err
	}
	transmittance := tau.Scale(-1).Exp()
	denom := transmittance.Scale(-1).AddConst(1)
	return t.Divide(denom), nil
}
