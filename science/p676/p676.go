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

// Package p676 implements the oxygen and water-vapor specific-absorption
// formulas of ITU-R Recommendation P.676-3, plus the near-ground opacity
// closed forms built on top of them.
package p676

import "math"

// dB2Np converts decibels to nepers.
const dB2Np = 0.23255814

// GammaOxygen returns the oxygen specific absorption gamma(f,T,P) in
// dB/km, for frequency f in GHz, thermodynamic temperature T in degrees
// Celsius, and pressure P in hPa.
//
// The branches are f<=57, the closed interval 63<=f<=350, and the open
// interval 57<f<63, so that f==57 and f==63 each resolve to exactly
// one branch (the two agree at the boundary to within floating-point
// precision, since the 57<f<63 blend is itself built from GammaOxygen(57,
// ...) and GammaOxygen(63, ...)).
func GammaOxygen(f, T, P float64) float64 {
	rp := P / 1013
	rt := 288 / (273 + T)
	switch {
	case f <= 57:
		return (7.27*rt/(f*f+0.351*rp*rp*rt*rt) +
			7.5/((f-57)*(f-57)+2.44*rp*rp*math.Pow(rt, 5))) *
			f * f * rp * rp * rt * rt / 1000
	case f >= 63 && f <= 350:
		return (2e-4*math.Pow(rt, 1.5)*(1-1.2e-5*math.Pow(f, 1.5)) +
			4/((f-63)*(f-63)+1.5*rp*rp*math.Pow(rt, 5)) +
			0.28*rt*rt/((f-118.75)*(f-118.75)+2.84*rp*rp*rt*rt)) *
			f * f * rp * rp * rt * rt / 1000
	case f > 57 && f < 63:
		g57 := GammaOxygen(57, T, P)
		g63 := GammaOxygen(63, T, P)
		return (f-60)*(f-63)/18*g57 -
			1.66*rp*rp*math.Pow(rt, 8.5)*(f-57)*(f-63) +
			(f-57)*(f-60)/18*g63
	default:
		return 0
	}
}

// GammaWaterVapor returns the water-vapor specific absorption
// gamma(f,T,P,rho) in dB/km, for f in GHz, T in degrees Celsius, P in
// hPa, and absolute humidity rho in g/m^3. Outside its documented
// window (f>350 GHz) it returns 0, per the model's DomainOutOfRange
// convention.
func GammaWaterVapor(f, T, P, rho float64) float64 {
	if f > 350 {
		return 0
	}
	rp := P / 1013
	rt := 288 / (273 + T)
	return (3.27e-2*rt +
		1.67e-3*rho*math.Pow(rt, 7)/rp +
		7.7e-4*math.Sqrt(f) +
		3.79/((f-22.235)*(f-22.235)+9.81*rp*rp*rt) +
		11.73*rt/((f-183.31)*(f-183.31)+11.85*rp*rp*rt) +
		4.01*rt/((f-325.153)*(f-325.153)+10.44*rp*rp*rt)) *
		f * f * rho * rp * rt / 1e4
}

// H1 returns the characteristic absorption height for oxygen, km, for
// frequency f in GHz.
func H1(f float64) float64 {
	const base = 6.
	if f > 70 && f < 350 {
		return base + 40/((f-118.7)*(f-118.7)+1)
	}
	return base
}

// H2 returns the characteristic absorption height for water vapor, km,
// for frequency f in GHz. rain selects the rain-aware base height
// (2.1 km instead of 1.6 km), a feature present in the reference
// implementation but not exercised by the core absorption path, which
// always models a clear, non-raining atmosphere.
func H2(f float64, rain bool) float64 {
	hw := 1.6
	if rain {
		hw = 2.1
	}
	return hw * (1 + 3/((f-22.2)*(f-22.2)+5) + 5/((f-183.3)*(f-183.3)+6) + 2.5/((f-325.4)*(f-325.4)+4))
}

// OpacityOxygenNearGround returns the near-ground oxygen opacity, in
// nepers, at zenith angle theta (radians), for near-surface temperature
// T (degrees Celsius) and pressure P (hPa).
func OpacityOxygenNearGround(f, T, P, theta float64) float64 {
	return GammaOxygen(f, T, P) * H1(f) / math.Cos(theta) * dB2Np
}

// OpacityWaterVaporNearGround returns the near-ground water-vapor
// opacity, in nepers, at zenith angle theta (radians), for near-surface
// temperature T (degrees Celsius), pressure P (hPa), and absolute
// humidity rho (g/m^3). rain is forwarded to H2.
func OpacityWaterVaporNearGround(f, T, P, rho, theta float64, rain bool) float64 {
	return GammaWaterVapor(f, T, P, rho) * H2(f, rain) / math.Cos(theta) * dB2Np
}
