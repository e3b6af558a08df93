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

// SpeedOfLight is c, m/s.
const SpeedOfLight = 299792458.

// DB2Np converts decibels to nepers.
const DB2Np = 0.23255814

// Np2DB converts nepers to decibels.
const Np2DB = 1. / DB2Np

// celsiusToKelvin is the additive shift from degrees Celsius to Kelvin.
const celsiusToKelvin = 273.15
