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

// Satellite is the stateless top-of-atmosphere observation equation,
// coupling an Atmosphere and a Surface it borrows but does not own.
type Satellite struct{}

// BrightnessTemperature returns the top-of-atmosphere brightness
// temperature seen by a satellite looking down at atm through srf, at
// frequency f (GHz):
//
//	T_B_TOA = T_s*kappa*e + T_B_up + r*T_B_down*e
//
// where e=exp(-tau), tau is the column opacity, r is the surface
// reflectivity, and kappa=1-r is its emissivity.
func (Satellite) BrightnessTemperature(f float64, atm *Atmosphere, srf Surface) (Slice, error) {
	tau, err := atm.Opacity.Summary(f)
	if err != nil {
		return Slice{}, err
	}
	e := tau.Scale(-1).Exp()
	tbDown, err := atm.Downward.BrightnessTemperature(f)
	if err != nil {
		return Slice{}, err
	}
	tbUp, err := atm.Upward.BrightnessTemperature(f)
	if err != nil {
		return Slice{}, err
	}
	r, err := srf.Reflectivity(f)
	if err != nil {
		return Slice{}, err
	}
	kappa := r.mapElem(func(v float32) float32 { return 1 - v })
	tS := srf.SurfaceTemperature().AddConst(celsiusToKelvin)

	term1 := tS.Mul(kappa).Mul(e)
	term2 := tbUp
	term3 := r.Mul(tbDown).Mul(e)
	return term1.Add(term2).Add(term3), nil
}

// BrightnessTemperatures evaluates BrightnessTemperature at each of
// freqs, fanning the work out across workers goroutines and returning
// results in input order.
func (sat Satellite) BrightnessTemperatures(freqs []float64, atm *Atmosphere, srf Surface, workers int) ([]Slice, error) {
	return Parallel(freqs, func(f float64) (Slice, error) {
		return sat.BrightnessTemperature(f, atm, srf)
	}, workers)
}
