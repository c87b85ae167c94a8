/*
 * cyclic.go, part of qrotor.
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

// Cyclic is a symmetric periodic tridiagonal matrix: D holds the diagonal,
// E[i] the (i,i+1) and (i+1,i) elements and Corner the (0,n-1) and (n-1,0) ones.
// Every rotor Hamiltonian built from PeriodicLaplacian has this shape.
type Cyclic struct {
	D      []float64
	E      []float64
	Corner float64
}

// Cyclic returns the periodic tridiagonal representation of M, and true,
// if M is symmetric (within tol) and has no stored elements outside the
// three central diagonals and the two corners. Otherwise it returns nil and false.
// Matrices smaller than 3x3 are never reported as cyclic.
func (M *Matrix) Cyclic(tol float64) (*Cyclic, bool) {
	n := M.n
	if n < 3 || !M.IsSymmetric(tol) {
		return nil, false
	}
	C := &Cyclic{D: make([]float64, n), E: make([]float64, n-1)}
	ok := true
	M.DoNonZero(func(i, j int, v float64) {
		switch {
		case i == j:
			C.D[i] = v
		case j == i+1:
			C.E[i] = v
		case j == i-1:
			//taken from the upper diagonal
		case i == 0 && j == n-1:
			C.Corner = v
		case i == n-1 && j == 0:
		default:
			ok = false
		}
	})
	if !ok {
		return nil, false
	}
	return C, true
}
