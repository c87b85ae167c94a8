/*
 * potential.go, part of qrotor.
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

package qrotor

import (
	"github.com/rmera/qrotor/potential"
	"gonum.org/v1/gonum/floats"
)

// ResolvePotential fills the potential values of S from its potential name and
// constants. If S has no potential name, the values already in S are used, and only
// checked. If S.CorrectPotentialOffset is true, the potential is shifted so its
// minimum is zero, and the shift is stored in S.CorrectedPotentialOffset. For user
// values, the shift is added to the one already recorded, so resolving a corrected
// system again keeps the total offset from the values first given.
// It returns S.
func ResolvePotential(S *System) (*System, error) {
	if err := S.Check(false); err != nil {
		return S, errDecorate(err, "ResolvePotential")
	}
	V := S.PotentialValues
	//user values may have been shifted by an earlier call
	previous := S.CorrectedPotentialOffset
	if S.PotentialName != "" {
		var err error
		V, err = potential.Solve(S.PotentialName, S.PotentialConstants, S.Grid)
		if err != nil {
			return S, asConfigError(err, "ResolvePotential")
		}
		previous = 0
	} else if len(V) == 0 {
		return S, newConfigError("ResolvePotential", "no potential name and no potential values given")
	}
	//never modify the caller's slice
	V = copyFloats(V)
	S.CorrectedPotentialOffset = previous
	if S.CorrectPotentialOffset && len(V) > 0 {
		offset := floats.Min(V)
		floats.AddConst(-offset, V)
		S.CorrectedPotentialOffset += offset
	}
	S.PotentialValues = V
	if err := S.Check(true); err != nil {
		return S, errDecorate(err, "ResolvePotential")
	}
	return S, nil
}
