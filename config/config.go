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

// Package config loads a TOML configuration document describing a
// standard-atmosphere run: the synthetic profile parameters, the
// quadrature method, and the frequencies to evaluate.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/spatialmodel/mwrt"
)

// Config is the on-disk description of a standard-atmosphere run.
type Config struct {
	Atmosphere AtmosphereConfig
	Surface    SurfaceConfig
	Method     string
	Frequencies []float64
	Workers     int
}

// AtmosphereConfig mirrors mwrt.StandardAtmosphereParams for TOML
// decoding.
type AtmosphereConfig struct {
	T0, P0, Rho0 float64
	H, DH        float64
	Beta1, Beta2, Beta3 float64
	HP, HRho     float64
}

// SurfaceConfig describes a smooth water surface boundary.
type SurfaceConfig struct {
	Temperature  float64
	Salinity     float64
	Theta        float64
	Polarization string
}

// Load reads and decodes a Config from the TOML document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mwrt: reading config %s: %w", path, err)
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("mwrt: decoding config %s: %w", path, err)
	}
	return &cfg, nil
}

// StandardAtmosphereParams converts the decoded atmosphere block into
// mwrt.StandardAtmosphereParams.
func (c *Config) StandardAtmosphereParams() mwrt.StandardAtmosphereParams {
	a := c.Atmosphere
	return mwrt.StandardAtmosphereParams{
		T0: a.T0, P0: a.P0, Rho0: a.Rho0,
		H: a.H, DH: a.DH,
		Beta: mwrt.LapseRates{Beta1: a.Beta1, Beta2: a.Beta2, Beta3: a.Beta3},
		HP:   a.HP, HRho: a.HRho,
	}
}

// ParsedPolarization maps the configured polarization name to an
// mwrt.Polarization, defaulting to PolarizationVertical for an
// unrecognized or empty value.
func (s SurfaceConfig) ParsedPolarization() mwrt.Polarization {
	switch s.Polarization {
	case "horizontal", "H", "h":
		return mwrt.PolarizationHorizontal
	case "vertical", "V", "v":
		return mwrt.PolarizationVertical
	default:
		return mwrt.PolarizationVertical
	}
}

// BuildSurface builds the mwrt.SmoothWaterSurface described by the
// config's Surface block.
func (c *Config) BuildSurface() mwrt.SmoothWaterSurface {
	s := c.Surface
	return mwrt.NewSmoothWaterSurface(float32(s.Temperature), float32(s.Salinity), s.Theta, s.ParsedPolarization())
}

// QuadratureMethod parses the configured method name, defaulting to
// mwrt.Trapezoid when unset.
func (c *Config) QuadratureMethod() (mwrt.Method, error) {
	if c.Method == "" {
		return mwrt.Trapezoid, nil
	}
	return mwrt.ParseMethod(c.Method)
}
