/*
 * laplacian.go, part of qrotor.
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

package sparse

import (
	"fmt"
	"math"
)

// SpacingTolerance is the largest relative deviation from the first grid step
// that is still accepted as an evenly spaced grid.
const SpacingTolerance = 1e-6

// Spacing returns the step of an evenly spaced, strictly increasing grid.
// It returns an error if the grid has less than 3 points, or is not
// strictly increasing or evenly spaced.
func Spacing(grid []float64) (float64, error) {
	if len(grid) < 3 {
		return 0, Error{fmt.Sprintf("a periodic grid needs at least 3 points, got %d", len(grid)), []string{"Spacing"}, true}
	}
	dx := grid[1] - grid[0]
	if !(dx > 0) || math.IsInf(dx, 0) {
		return 0, Error{fmt.Sprintf("grid must be strictly increasing, first step is %g", dx), []string{"Spacing"}, true}
	}
	for i := 2; i < len(grid); i++ {
		step := grid[i] - grid[i-1]
		if math.Abs(step-dx) > SpacingTolerance*dx {
			return 0, Error{fmt.Sprintf("grid is not evenly spaced: step %d is %g, first step is %g", i-1, step, dx), []string{"Spacing"}, true}
		}
	}
	return dx, nil
}

// PeriodicLaplacian returns the second derivative operator for grid, with periodic
// boundary conditions: -2 in the diagonal, 1 in the first sub and super diagonals
// and in the [0,n-1] and [n-1,0] corners, all divided by dx². The corners close the
// coordinate onto itself, so the first and last points are neighbours.
func PeriodicLaplacian(grid []float64) (*Matrix, error) {
	dx, err := Spacing(grid)
	if err != nil {
		return nil, errDecorate(err, "PeriodicLaplacian")
	}
	n := len(grid)
	f := 1 / (dx * dx)
	t := make([]triplet, 0, 3*n)
	for i := 0; i < n; i++ {
		t = append(t, triplet{i, i, -2 * f})
		if i > 0 {
			t = append(t, triplet{i, i - 1, f})
		}
		if i < n-1 {
			t = append(t, triplet{i, i + 1, f})
		}
	}
	t = append(t, triplet{0, n - 1, f}, triplet{n - 1, 0, f})
	return fromTriplets(n, t), nil
}
