/*
 * eigen.go, part of qrotor.
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

//Package eigen obtains a few eigenpairs of symmetric sparse matrices, those with
//eigenvalues closest to a given shift. Two solvers are provided: ShiftInvert, an
//iterative solver that works on (H - sigma*I)^-1 and only needs linear solves, and
//Dense, which diagonalizes the whole matrix with gonum and is meant for small systems
//and for checking.
package eigen

import (
	"fmt"
	"math"
	"sort"

	"github.com/rmera/qrotor/sparse"
	"gonum.org/v1/gonum/mat"
)

// Solver is the interface for anything that can obtain the k eigenpairs of the
// symmetric matrix H with eigenvalues closest to sigma.
type Solver interface {
	//SymNear returns the k eigenvalues of H closest to sigma, in ascending order
	//and, if vectors is true, the corresponding eigenvectors. A solver that can't
	//converge all k pairs returns the ones it did converge, and a Result that
	//tells so, not an error.
	SymNear(H *sparse.Matrix, k int, sigma float64, vectors bool) (*Result, error)

	//Name identifies the solver in logs and saved results.
	Name() string
}

// Result contains the eigenpairs found by a Solver.
type Result struct {
	Values     []float64  //ascending
	Vectors    *mat.Dense //n x len(Values). Column j goes with Values[j]. Nil if not requested.
	Requested  int
	Iterations int
	Sigma      float64 //the shift actually used
}

// Converged returns the number of eigenpairs obtained.
func (R *Result) Converged() int {
	return len(R.Values)
}

// Degraded returns true if less eigenpairs than requested were obtained.
func (R *Result) Degraded() bool {
	return len(R.Values) < R.Requested
}

func (R *Result) String() string {
	return fmt.Sprintf("%d/%d eigenvalues, sigma=%g, %d iterations: %v", len(R.Values), R.Requested, R.Sigma, R.Iterations, R.Values)
}

// check verifies that a problem is well posed.
func check(H *sparse.Matrix, k int, caller string) error {
	if H == nil {
		return Error{"nil matrix", []string{caller}, true}
	}
	n, _ := H.Dims()
	if k <= 0 || k >= n {
		return Error{fmt.Sprintf("requested %d eigenpairs from a %dx%d matrix, need 0 < k < %d", k, n, n, n), []string{caller}, true}
	}
	if !H.IsSymmetric(symTol * math.Max(1, H.NormInf())) {
		return Error{"matrix is not symmetric", []string{caller}, true}
	}
	return nil
}

const symTol = 1e-12

// pair is an eigenvalue and the index of its vector.
type pair struct {
	val float64
	idx int
}

// nearest selects the (at most) k elements of vals closest to sigma
// and returns them in ascending order of value.
func nearest(vals []float64, k int, sigma float64) []pair {
	p := make([]pair, len(vals))
	for i, v := range vals {
		p[i] = pair{v, i}
	}
	sort.SliceStable(p, func(i, j int) bool {
		return math.Abs(p[i].val-sigma) < math.Abs(p[j].val-sigma)
	})
	if k < len(p) {
		p = p[:k]
	}
	sort.SliceStable(p, func(i, j int) bool { return p[i].val < p[j].val })
	return p
}

// fixSign flips vector v so its largest component (in absolute value) is positive.
// Eigenvectors are defined only up to their sign; this makes results reproducible.
func fixSign(v []float64) {
	var imax int
	for i := range v {
		if math.Abs(v[i]) > math.Abs(v[imax]) {
			imax = i
		}
	}
	if v[imax] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
}
