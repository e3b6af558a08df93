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
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/mwrt/science/dielectric"
	"github.com/spatialmodel/mwrt/science/p676"
)

// opID identifies which operation a memoized result belongs to, keeping
// the cache key a compile-time tag rather than a reflected method name.
type opID uint8

const (
	opAttnOxygen opID = iota
	opAttnWaterVapor
	opAttnLiquid
	opAttnSummary
	opOpacityOxygen
	opOpacityWaterVapor
	opOpacityLiquid
	opOpacitySummary
	opDownwardTB
	opUpwardTB
)

// cacheKey indexes the Atmosphere's memoization store by frequency and
// operation identity.
type cacheKey struct {
	freq float64
	op   opID
}

// Atmosphere holds the vertical (or 3D) temperature, pressure, absolute
// humidity, and optional liquid-water fields for a column or domain of
// Earth's atmosphere, together with its altitude grid and a per-instance
// memoization store. Atmosphere owns all of its array data; once any
// operation has been called, mutating the fields backing T/P/Rho/W/the
// altitude grid is undefined — construct a fresh Atmosphere instead.
type Atmosphere struct {
	T, P, Rho Profile
	W         *Profile

	EffectiveCloudTemp float64 // degrees Celsius, default -2
	Method             Method
	Grid               AltitudeGrid

	cacheMu sync.Mutex
	cache   map[cacheKey]any

	Attenuation *AttenuationView
	Opacity     *OpacityView
	Downward    *DownwardView
	Upward      *UpwardView
}

// NewAtmosphere constructs an Atmosphere from temperature (degrees
// Celsius), pressure (hPa), and absolute humidity (g/m^3) profiles
// sharing a common shape, together with an altitude grid. w is the
// optional liquid-water field (kg/m^3); pass nil if the column is
// cloud-free. method selects the integration rule used by Opacity,
// Downward, and Upward; the zero value is Trapezoid.
func NewAtmosphere(T, P, Rho Profile, w *Profile, grid AltitudeGrid, method Method) (*Atmosphere, error) {
	if !T.sameShape(P) || !T.sameShape(Rho) {
		return nil, fmt.Errorf("%w: temperature %v, pressure %v, humidity %v", ErrShapeMismatch, shapeOf(T), shapeOf(P), shapeOf(Rho))
	}
	if w != nil && !T.sameShape(*w) {
		return nil, fmt.Errorf("%w: temperature %v, liquid water %v", ErrShapeMismatch, shapeOf(T), shapeOf(*w))
	}
	if T.Len() != grid.Len() {
		logrus.WithFields(logrus.Fields{
			"profileLength": T.Len(),
			"gridLength":    grid.Len(),
		}).Warn("mwrt: profile altitude-axis length does not match the altitude grid")
		return nil, fmt.Errorf("%w: profile length %d, grid length %d", ErrShapeMismatch, T.Len(), grid.Len())
	}
	atm := &Atmosphere{
		T: T, P: P, Rho: Rho, W: w,
		EffectiveCloudTemp: -2,
		Method:             method,
		Grid:               grid,
		cache:              make(map[cacheKey]any),
	}
	atm.Attenuation = &AttenuationView{atm: atm}
	atm.Opacity = &OpacityView{atm: atm}
	atm.Downward = &DownwardView{atm: atm}
	atm.Upward = &UpwardView{atm: atm}
	return atm, nil
}

// memo fetches (or computes and stores) the cached result for key. The
// memoization store is never populated on error paths, and it is never
// evicted for the lifetime of the Atmosphere. The lock is held only
// around the map access, not around compute: compute may itself recurse
// into memo for a different key (e.g. Summary computing Oxygen and
// WaterVapor), and the DownwardView/UpwardView/Satellite
// BrightnessTemperatures batch helpers call into a shared Atmosphere from multiple goroutines, so two
// callers racing on the same uncached key may both run compute and the
// second write simply overwrites the first with an equal value.
func memo[T any](atm *Atmosphere, key cacheKey, compute func() (T, error)) (T, error) {
	atm.cacheMu.Lock()
	v, ok := atm.cache[key]
	atm.cacheMu.Unlock()
	if ok {
		return v.(T), nil
	}
	val, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	atm.cacheMu.Lock()
	atm.cache[key] = val
	atm.cacheMu.Unlock()
	return val, nil
}

// AttenuationView computes specific-absorption profiles (dB/km),
// memoized per frequency. It borrows its owning Atmosphere explicitly
// rather than smuggling a back-reference through a decorator, per the
// engine's cross-cutting memoization design.
type AttenuationView struct{ atm *Atmosphere }

// Oxygen returns the oxygen specific-absorption profile gamma_ox(f), in
// dB/km, over the atmosphere's full rank (1 or 3).
func (v *AttenuationView) Oxygen(f float64) (Profile, error) {
	return memo[Profile](v.atm, cacheKey{f, opAttnOxygen}, func() (Profile, error) {
		return Map2(v.atm.T, v.atm.P, func(t, p float32) float32 {
			return float32(p676.GammaOxygen(f, float64(t), float64(p)))
		})
	})
}

// WaterVapor returns the water-vapor specific-absorption profile
// gamma_wv(f), in dB/km.
func (v *AttenuationView) WaterVapor(f float64) (Profile, error) {
	return memo[Profile](v.atm, cacheKey{f, opAttnWaterVapor}, func() (Profile, error) {
		return Map3(v.atm.T, v.atm.P, v.atm.Rho, func(t, p, rho float32) float32 {
			return float32(p676.GammaWaterVapor(f, float64(t), float64(p), float64(rho)))
		})
	})
}

// LiquidWater returns the Rayleigh liquid-water specific-absorption
// profile, in dB/km. It returns ErrMissingField if the atmosphere has no
// liquid-water field.
func (v *AttenuationView) LiquidWater(f float64) (Profile, error) {
	return memo[Profile](v.atm, cacheKey{f, opAttnLiquid}, func() (Profile, error) {
		if v.atm.W == nil {
			return Profile{}, fmt.Errorf("%w: attenuation.liquid_water", ErrMissingField)
		}
		kw := dielectric.WeightKW(f, v.atm.EffectiveCloudTemp)
		return v.atm.W.Scale(float32(kw * Np2DB)), nil
	})
}

// Summary returns the sum of oxygen, water-vapor, and liquid-water
// specific absorption, in dB/km. For an atmosphere without a
// liquid-water field it is the sum of oxygen and water vapor alone.
func (v *AttenuationView) Summary(f float64) (Profile, error) {
	return memo[Profile](v.atm, cacheKey{f, opAttnSummary}, func() (Profile, error) {
		ox, err := v.Oxygen(f)
		if err != nil {
			return Profile{}, err
		}
		wv, err := v.WaterVapor(f)
		if err != nil {
			return Profile{}, err
		}
		sum, err := ox.Add(wv)
		if err != nil {
			return Profile{}, err
		}
		if v.atm.W == nil {
			return sum, nil
		}
		lw, err := v.LiquidWater(f)
		if err != nil {
			return Profile{}, err
		}
		return sum.Add(lw)
	})
}

// OpacityView computes column optical depths (nepers) by integrating
// the corresponding AttenuationView profile over altitude.
type OpacityView struct{ atm *Atmosphere }

func (v *OpacityView) integrate(key cacheKey, attn func(float64) (Profile, error), f float64) (Slice, error) {
	return memo[Slice](v.atm, key, func() (Slice, error) {
		profile, err := attn(f)
		if err != nil {
			return Slice{}, err
		}
		s, err := Full(profile, v.atm.Grid, v.atm.Method)
		if err != nil {
			return Slice{}, err
		}
		return s.Scale(DB2Np), nil
	})
}

// Oxygen returns the column oxygen opacity, nepers.
func (v *OpacityView) Oxygen(f float64) (Slice, error) {
	return v.integrate(cacheKey{f, opOpacityOxygen}, v.atm.Attenuation.Oxygen, f)
}

// WaterVapor returns the column water-vapor opacity, nepers.
func (v *OpacityView) WaterVapor(f float64) (Slice, error) {
	return v.integrate(cacheKey{f, opOpacityWaterVapor}, v.atm.Attenuation.WaterVapor, f)
}

// LiquidWater returns the column liquid-water opacity, nepers.
func (v *OpacityView) LiquidWater(f float64) (Slice, error) {
	return v.integrate(cacheKey{f, opOpacityLiquid}, v.atm.Attenuation.LiquidWater, f)
}

// Summary returns the total column opacity, nepers.
func (v *OpacityView) Summary(f float64) (Slice, error) {
	return v.integrate(cacheKey{f, opOpacitySummary}, v.atm.Attenuation.Summary, f)
}

// DownwardView computes downwelling atmospheric brightness temperature.
type DownwardView struct{ atm *Atmosphere }

// BrightnessTemperature returns the downward brightness temperature at
// frequency f, in Kelvin: the Schwarzschild integral
// integral T(h)*g(h)*exp(-integral_0^h g dh') dh, where g = DB2Np *
// gamma_summary(f).
func (v *DownwardView) BrightnessTemperature(f float64) (Slice, error) {
	atm := v.atm
	return memo[Slice](atm, cacheKey{f, opDownwardTB}, func() (Slice, error) {
		summary, err := atm.Attenuation.Summary(f)
		if err != nil {
			return Slice{}, err
		}
		g := summary.Scale(DB2Np)
		tK := atm.T.AddScalar(celsiusToKelvin)
		n := atm.Grid.LastIndex()
		integrand := func(h int) (Slice, error) {
			tAtH, err := tK.At(h)
			if err != nil {
				return Slice{}, err
			}
			gAtH, err := g.At(h)
			if err != nil {
				return Slice{}, err
			}
			tau, err := WithLimits(g, 0, h, atm.Grid, atm.Method)
			if err != nil {
				return Slice{}, err
			}
			atten := tau.Scale(-1).Exp()
			return tAtH.Mul(gAtH).Mul(atten), nil
		}
		return Callable(integrand, 0, n, atm.Grid)
	})
}

// BrightnessTemperatures evaluates BrightnessTemperature at each of
// freqs, fanning the work out across workers goroutines and returning
// results in input order.
func (v *DownwardView) BrightnessTemperatures(freqs []float64, workers int) ([]Slice, error) {
	return Parallel(freqs, v.BrightnessTemperature, workers)
}

// UpwardView computes upwelling atmospheric brightness temperature
// (excluding any underlying surface).
type UpwardView struct{ atm *Atmosphere }

// BrightnessTemperature returns the upward brightness temperature at
// frequency f, in Kelvin: the Schwarzschild integral
// integral T(h)*g(h)*exp(-integral_h^N g dh') dh.
func (v *UpwardView) BrightnessTemperature(f float64) (Slice, error) {
	atm := v.atm
	return memo[Slice](atm, cacheKey{f, opUpwardTB}, func() (Slice, error) {
		summary, err := atm.Attenuation.Summary(f)
		if err != nil {
			return Slice{}, err
		}
		g := summary.Scale(DB2Np)
		n := atm.Grid.LastIndex()
		tK := atm.T.AddScalar(celsiusToKelvin)
		integrand := func(h int) (Slice, error) {
			tAtH, err := tK.At(h)
			if err != nil {
				return Slice{}, err
			}
			gAtH, err := g.At(h)
			if err != nil {
				return Slice{}, err
			}
			tau, err := WithLimits(g, h, n, atm.Grid, atm.Method)
			if err != nil {
				return Slice{}, err
			}
			atten := tau.Scale(-1).Exp()
			return tAtH.Mul(gAtH).Mul(atten), nil
		}
		return Callable(integrand, 0, n, atm.Grid)
	})
}

// BrightnessTemperatures evaluates BrightnessTemperature at each of
// freqs, fanning the work out across workers goroutines and returning
// results in input order.
func (v *UpwardView) BrightnessTemperatures(freqs []float64, workers int) ([]Slice, error) {
	return Parallel(freqs, v.BrightnessTemperature, workers)
}
