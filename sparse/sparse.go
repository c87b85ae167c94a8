/*
 * sparse.go, part of qrotor.
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

//Package sparse implements the small set of square sparse matrix operations needed
//to build and apply rotor Hamiltonians. Matrices are stored in compressed sparse row
//(CSR) format and are immutable once built: every operation returns a new matrix.
package sparse

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a square sparse matrix in compressed sparse row format.
type Matrix struct {
	n      int
	rowptr []int //len n+1
	col    []int
	val    []float64
}

// triplet is a single (i,j,v) entry used while building a matrix.
type triplet struct {
	i, j int
	v    float64
}

// NewTriplets builds an n×n matrix from the coordinates and values given.
// Repeated coordinates are summed, and entries that end up being exactly
// zero are not stored. It panics if the slices differ in length or if
// an index is out of range, as that can only be a programming error.
func NewTriplets(n int, rows, cols []int, vals []float64) *Matrix {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		panic("qrotor/sparse: NewTriplets: rows, cols and vals must have the same length")
	}
	if n <= 0 {
		panic("qrotor/sparse: NewTriplets: non-positive dimension")
	}
	t := make([]triplet, 0, len(vals))
	for k, v := range vals {
		i, j := rows[k], cols[k]
		if i < 0 || i >= n || j < 0 || j >= n {
			panic(fmt.Sprintf("qrotor/sparse: NewTriplets: index (%d,%d) out of range for dimension %d", i, j, n))
		}
		t = append(t, triplet{i, j, v})
	}
	return fromTriplets(n, t)
}

func fromTriplets(n int, t []triplet) *Matrix {
	sort.Slice(t, func(a, b int) bool {
		if t[a].i != t[b].i {
			return t[a].i < t[b].i
		}
		return t[a].j < t[b].j
	})
	M := &Matrix{n: n, rowptr: make([]int, n+1)}
	M.col = make([]int, 0, len(t))
	M.val = make([]float64, 0, len(t))
	for k := 0; k < len(t); {
		i, j, v := t[k].i, t[k].j, t[k].v
		k++
		for k < len(t) && t[k].i == i && t[k].j == j {
			v += t[k].v
			k++
		}
		if v == 0 {
			continue
		}
		M.col = append(M.col, j)
		M.val = append(M.val, v)
		M.rowptr[i+1]++
	}
	for i := 0; i < n; i++ {
		M.rowptr[i+1] += M.rowptr[i]
	}
	return M
}

// Diag returns a diagonal matrix with d on the diagonal.
func Diag(d []float64) *Matrix {
	t := make([]triplet, 0, len(d))
	for i, v := range d {
		t = append(t, triplet{i, i, v})
	}
	return fromTriplets(len(d), t)
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	d := make([]float64, n)
	for i := range d {
		d[i] = 1
	}
	return Diag(d)
}

// Dims returns the dimensions of the matrix, which is always square.
func (M *Matrix) Dims() (int, int) {
	return M.n, M.n
}

// NNZ returns the number of stored entries.
func (M *Matrix) NNZ() int {
	return len(M.val)
}

// At returns the element in position i,j.
func (M *Matrix) At(i, j int) float64 {
	if i < 0 || i >= M.n || j < 0 || j >= M.n {
		panic(fmt.Sprintf("qrotor/sparse: At: index (%d,%d) out of range", i, j))
	}
	row := M.col[M.rowptr[i]:M.rowptr[i+1]]
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return M.val[M.rowptr[i]+k]
	}
	return 0
}

// T returns the transpose of the matrix as a gonum mat.Matrix, so
// a *Matrix can be used wherever gonum expects a matrix.
func (M *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: M}
}

// DoNonZero calls fn for each stored element, row by row.
func (M *Matrix) DoNonZero(fn func(i, j int, v float64)) {
	for i := 0; i < M.n; i++ {
		for k := M.rowptr[i]; k < M.rowptr[i+1]; k++ {
			fn(i, M.col[k], M.val[k])
		}
	}
}

func (M *Matrix) triplets() []triplet {
	t := make([]triplet, 0, len(M.val))
	M.DoNonZero(func(i, j int, v float64) { t = append(t, triplet{i, j, v}) })
	return t
}

// Scale returns alpha*M.
func (M *Matrix) Scale(alpha float64) *Matrix {
	ret := &Matrix{n: M.n}
	ret.rowptr = append([]int(nil), M.rowptr...)
	ret.col = append([]int(nil), M.col...)
	ret.val = make([]float64, len(M.val))
	for k, v := range M.val {
		ret.val[k] = alpha * v
	}
	return ret
}

// AddScaled returns A + alpha*B. It panics if the dimensions differ.
func AddScaled(A *Matrix, alpha float64, B *Matrix) *Matrix {
	if A.n != B.n {
		panic(fmt.Sprintf("qrotor/sparse: AddScaled: dimension mismatch %d vs %d", A.n, B.n))
	}
	t := A.triplets()
	B.DoNonZero(func(i, j int, v float64) { t = append(t, triplet{i, j, alpha * v}) })
	return fromTriplets(A.n, t)
}

// Add returns A+B.
func Add(A, B *Matrix) *Matrix {
	return AddScaled(A, 1, B)
}

// Shift returns M - sigma*I.
func (M *Matrix) Shift(sigma float64) *Matrix {
	if sigma == 0 {
		return M.Scale(1)
	}
	return AddScaled(M, -sigma, Identity(M.n))
}

// MulVecTo puts M*x in dst. dst and x must have length n and must not overlap.
func (M *Matrix) MulVecTo(dst, x []float64) {
	if len(dst) != M.n || len(x) != M.n {
		panic("qrotor/sparse: MulVecTo: wrong vector length")
	}
	for i := 0; i < M.n; i++ {
		var s float64
		for k := M.rowptr[i]; k < M.rowptr[i+1]; k++ {
			s += M.val[k] * x[M.col[k]]
		}
		dst[i] = s
	}
}

// Diagonal returns a copy of the main diagonal.
func (M *Matrix) Diagonal() []float64 {
	d := make([]float64, M.n)
	for i := range d {
		d[i] = M.At(i, i)
	}
	return d
}

// NormInf returns the maximum absolute row sum of the matrix.
func (M *Matrix) NormInf() float64 {
	var max float64
	for i := 0; i < M.n; i++ {
		var s float64
		for k := M.rowptr[i]; k < M.rowptr[i+1]; k++ {
			s += math.Abs(M.val[k])
		}
		if s > max {
			max = s
		}
	}
	return max
}

// IsSymmetric returns true if |M[i,j]-M[j,i]| <= tol for all stored elements.
func (M *Matrix) IsSymmetric(tol float64) bool {
	sym := true
	M.DoNonZero(func(i, j int, v float64) {
		if sym && math.Abs(v-M.At(j, i)) > tol {
			sym = false
		}
	})
	return sym
}

// Dense returns a dense copy of the matrix.
func (M *Matrix) Dense() *mat.Dense {
	D := mat.NewDense(M.n, M.n, nil)
	M.DoNonZero(D.Set)
	return D
}

// SymDense returns a dense symmetric copy of the matrix, built from the
// upper triangle. The matrix is assumed to be symmetric.
func (M *Matrix) SymDense() *mat.SymDense {
	S := mat.NewSymDense(M.n, nil)
	M.DoNonZero(func(i, j int, v float64) {
		if j >= i {
			S.SetSym(i, j, v)
		}
	})
	return S
}

// String returns the stored elements, one per line.
func (M *Matrix) String() string {
	ret := fmt.Sprintf("sparse %dx%d, %d stored\n", M.n, M.n, len(M.val))
	M.DoNonZero(func(i, j int, v float64) {
		ret += fmt.Sprintf("(%d,%d) %g\n", i, j, v)
	})
	return ret
}
