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

import "errors"

// Sentinel errors identifying the error kinds in the engine's error
// handling design. Callers should compare with errors.Is rather than
// matching on message text.
var (
	// ErrInvalidRank is returned when a kernel or quadrature operation
	// receives a Profile of rank other than 1 or 3.
	ErrInvalidRank = errors.New("mwrt: invalid rank, only rank 1 and rank 3 profiles are supported")

	// ErrShapeMismatch is returned at Atmosphere construction when T, P,
	// rho (and w, if set) don't share a shape, or when explicit altitudes
	// don't match the profile's altitude-axis length.
	ErrShapeMismatch = errors.New("mwrt: shape mismatch")

	// ErrInvalidStep is returned at altitude-grid construction when dh is
	// approximately zero, altitudes is empty, altitudes[0] is
	// approximately zero, or altitudes is not strictly increasing.
	ErrInvalidStep = errors.New("mwrt: invalid altitude step")

	// ErrUnknownMethod is returned when an integration method is not one
	// of trapezoid, simpson, or boole.
	ErrUnknownMethod = errors.New("mwrt: unknown integration method")

	// ErrMissingField is returned when liquid-water attenuation is
	// requested on an Atmosphere with no liquid-water field.
	ErrMissingField = errors.New("mwrt: liquid water field is not set")
)
