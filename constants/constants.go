/*
 * constants.go, part of qrotor.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package constants contains physical constants, bond geometries and the rotational
//constants derived from them for the common rotor groups. Energies are in meV
//unless stated otherwise.
package constants

import (
	"math"
	"strings"
)

// CODATA 2018
const (
	Hbar       = 1.054571817e-34  //J s
	AMU        = 1.66053906660e-27 //kg
	Angstrom   = 1e-10             //m
	EV         = 1.602176634e-19   //J
	MeVToCM1   = 8.065543937       //1 meV in cm⁻¹
	CM1ToMeV   = 1 / MeVToCM1
	Deg2Rad    = math.Pi / 180
	Rad2Deg    = 180 / math.Pi
	MassH      = 1.00784  //amu
	MassD      = 2.014102 //amu
	DistanceCH = 1.09     //Angstrom
	DistanceNH = 1.01     //Angstrom
	AngleCH3   = 109.5    //degrees, between a C-H bond and the rotation axis
	AngleNH3   = 107.8    //degrees, between a N-H bond and the rotation axis
)

// Inertia returns the moment of inertia, in amu*Å², of n atoms of mass mass (amu)
// bonded at distance (Å) to a center, with an angle (degrees) between the bond
// and the rotation axis.
func Inertia(n int, mass, distance, angle float64) float64 {
	r := distance * math.Sin(angle*Deg2Rad)
	return float64(n) * mass * r * r
}

// B returns the rotational constant ħ²/2I, in meV, for a moment of inertia
// given in amu*Å².
func B(inertia float64) float64 {
	I := inertia * AMU * Angstrom * Angstrom
	return 1000 * Hbar * Hbar / (2 * I) / EV
}

// Rotational constants of common groups, in meV.
var (
	BCH3 = B(Inertia(3, MassH, DistanceCH, AngleCH3))
	BCD3 = B(Inertia(3, MassD, DistanceCH, AngleCH3))
	BNH3 = B(Inertia(3, MassH, DistanceNH, AngleNH3))
	BND3 = B(Inertia(3, MassD, DistanceNH, AngleNH3))
)

// GroupB returns the rotational constant for a group name such as "CH3"
// or "nd3", and false if the group is not known.
func GroupB(group string) (float64, bool) {
	switch strings.ToUpper(strings.TrimSpace(group)) {
	case "CH3":
		return BCH3, true
	case "CD3":
		return BCD3, true
	case "NH3":
		return BNH3, true
	case "ND3":
		return BND3, true
	}
	return 0, false
}
