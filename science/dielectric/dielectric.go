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

// Package dielectric implements the salinity-aware Debye permittivity
// model for seawater and the Fresnel reflection coefficients built on
// top of it.
package dielectric

import (
	"math"
	"math/cmplx"
)

// c is the speed of light, m/s.
const c = 299792458

// DebyeParams holds the three parameters of the single-relaxation Debye
// model: optical permittivity, static permittivity, and relaxation
// wavelength (cm).
type DebyeParams struct {
	EpsInf  float64
	EpsS    float64
	LambdaS float64
}

// Debye returns the Debye permittivity parameters for water at
// temperature T (degrees Celsius) and salinity Sw (per mille).
func Debye(T, Sw float64) DebyeParams {
	epsInf := 5.5
	epsS := 88.2 - 0.40885*T + 0.00081*T*T - 17.2*Sw/60
	lambdaS := 1.8735116 - 0.027296*T + 0.000136*T*T + 1.662*math.Exp(-0.0634*T) - 0.206*Sw/60
	return DebyeParams{EpsInf: epsInf, EpsS: epsS, LambdaS: lambdaS}
}

// Epsilon returns the complex permittivity of water at frequency f
// (GHz), temperature T (degrees Celsius), and salinity Sw (per mille).
func Epsilon(f, T, Sw float64) complex128 {
	lambda := c / (f * 1e9) * 100 // cm
	d := Debye(T, Sw)
	y := d.LambdaS / lambda
	eps1 := d.EpsInf + (d.EpsS-d.EpsInf)/(1+y*y)
	eps2 := y * (d.EpsS - d.EpsInf) / (1 + y*y)
	sigma := 1e-5 * (2.63*T + 77.5) * Sw
	eps2 += 60 * sigma * lambda
	return complex(eps1, -eps2)
}

// MHorizontal returns the Fresnel amplitude reflection coefficient for
// horizontal polarization at grazing angle psi (radians, pi/2-theta).
func MHorizontal(f, psi, T, Sw float64) complex128 {
	eps := Epsilon(f, T, Sw)
	cos1 := cmplx.Sqrt(eps - complex(math.Cos(psi)*math.Cos(psi), 0))
	sinPsi := complex(math.Sin(psi), 0)
	return (sinPsi - cos1) / (sinPsi + cos1)
}

// MVertical returns the Fresnel amplitude reflection coefficient for
// vertical polarization at grazing angle psi (radians, pi/2-theta).
func MVertical(f, psi, T, Sw float64) complex128 {
	eps := Epsilon(f, T, Sw)
	cos1 := cmplx.Sqrt(eps - complex(math.Cos(psi)*math.Cos(psi), 0))
	sinPsi := complex(math.Sin(psi), 0)
	return (eps*sinPsi - cos1) / (eps*sinPsi + cos1)
}

// RHorizontal returns the horizontal-polarization power reflectance at
// zenith angle theta (radians).
func RHorizontal(f, theta, T, Sw float64) float64 {
	m := MHorizontal(f, math.Pi/2-theta, T, Sw)
	a := cmplx.Abs(m)
	return a * a
}

// RVertical returns the vertical-polarization power reflectance at
// zenith angle theta (radians).
func RVertical(f, theta, T, Sw float64) float64 {
	m := MVertical(f, math.Pi/2-theta, T, Sw)
	a := cmplx.Abs(m)
	return a * a
}

// RNadir returns the nadir (theta=0) power reflectance, independent of
// polarization.
func RNadir(f, T, Sw float64) float64 {
	eps := Epsilon(f, T, Sw)
	sq := cmplx.Sqrt(eps)
	a := cmplx.Abs((sq - 1) / (sq + 1))
	return a * a
}

// WeightKW returns the liquid-water absorption weight k_w(f,T_cloud),
// evaluated at zero salinity, used both to scale the Rayleigh
// liquid-water absorption coefficient and as the k_w sensitivity weight
// function.
func WeightKW(f, TCloud float64) float64 {
	lambda := c / (f * 1e9) * 100 // cm
	d := Debye(TCloud, 0)
	y := d.LambdaS / lambda
	return 3 * 0.6 * math.Pi / lambda * (d.EpsS - d.EpsInf) * y /
		((d.EpsS+2)*(d.EpsS+2) + (d.EpsInf+2)*(d.EpsInf+2)*y*y)
}
