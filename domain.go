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

import "github.com/ctessum/geom"

// Domain3D is an external collaborator supplying a rank-3 atmospheric
// column field to the engine: the horizontal footprint a cell's
// (T, P, Rho, W) profile applies to, alongside the shared altitude grid.
// Callers assemble the Profile values themselves (from a model's own
// grid format) and pass them to NewAtmosphere; Domain3D exists so a grid
// implementation can be handed to code that only needs to know how many
// cells there are and, optionally, their geographic footprint.
type Domain3D interface {
	// Shape returns the horizontal cell counts (A, B) of the domain.
	Shape() (int, int)
	// Grid returns the shared altitude grid all cells integrate over.
	Grid() AltitudeGrid
}

// Footprinted is implemented by a Domain3D that can also report the
// geographic footprint of one of its cells, for callers that need to
// relate a radiative-transfer result back to a map location.
type Footprinted interface {
	// Footprint returns the polygon footprint of cell (i, j).
	Footprint(i, j int) geom.Polygonal
}

// CloudGenerator is an external collaborator that synthesizes a
// liquid-water field for an otherwise cloud-free atmosphere, e.g. from a
// stochastic cloud-fraction model or a satellite-derived cloud mask.
// NewAtmosphere accepts a nil liquid-water field directly; CloudGenerator
// is the seam for callers that want to inject one without constructing
// it by hand.
type CloudGenerator interface {
	// LiquidWater returns a liquid-water profile (kg/m^3) matching the
	// shape of the given temperature profile.
	LiquidWater(shapeLike Profile) (Profile, error)
}

// PlanckSource is an external collaborator supplying a brightness source
// term other than the local thermodynamic temperature, e.g. a
// solar-reflected or cosmic-background contribution added downstream of
// Satellite.BrightnessTemperature. The engine does not call this
// interface itself; it is exposed so callers composing additional source
// terms on top of a Satellite observation can depend on a stable type
// rather than a bare function signature.
type PlanckSource interface {
	// Brightness returns the source's brightness temperature
	// contribution at frequency f (GHz), in Kelvin.
	Brightness(f float64) (Slice, error)
}
