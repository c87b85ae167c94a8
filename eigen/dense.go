/*
 * dense.go, part of qrotor.
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

package eigen

import (
	"github.com/rmera/qrotor/sparse"
	"gonum.org/v1/gonum/mat"
)

// Dense diagonalizes the whole matrix with LAPACK (through gonum) and keeps the
// k eigenpairs closest to the shift. It needs O(n²) memory and O(n³) time, so it
// is only reasonable for small grids, but it never fails to converge.
type Dense struct{}

// Name returns "dense".
func (D Dense) Name() string { return "dense" }

// SymNear returns the k eigenvalues of H closest to sigma, in ascending order, and,
// if vectors is true, the corresponding eigenvectors.
func (D Dense) SymNear(H *sparse.Matrix, k int, sigma float64, vectors bool) (*Result, error) {
	if err := check(H, k, "SymNear"); err != nil {
		return nil, err
	}
	n, _ := H.Dims()
	var es mat.EigenSym
	if !es.Factorize(H.SymDense(), vectors) {
		return nil, Error{"symmetric eigendecomposition failed", []string{"SymNear"}, true}
	}
	sel := nearest(es.Values(nil), k, sigma)
	ret := &Result{Requested: k, Iterations: 1, Sigma: sigma}
	for _, v := range sel {
		ret.Values = append(ret.Values, v.val)
	}
	if vectors {
		var Q mat.Dense
		es.VectorsTo(&Q)
		ret.Vectors = mat.NewDense(n, len(sel), nil)
		col := make([]float64, n)
		for c, v := range sel {
			mat.Col(col, v.idx, &Q)
			fixSign(col)
			ret.Vectors.SetCol(c, col)
		}
	}
	return ret, nil
}
