/*
 * shiftinvert.go, part of qrotor.
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
	"fmt"
	"math"
	"math/rand"

	"github.com/rmera/qrotor/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ShiftInvert obtains eigenpairs by block subspace iteration on (H - sigma*I)⁻¹,
// with a Rayleigh-Ritz projection of H at each step. The eigenvalues closest to
// sigma are the largest (in absolute value) of the inverted operator, so they
// converge first, and, since a whole block of vectors is iterated, degenerate
// pairs (the doublets of a rotor) are obtained together.
type ShiftInvert struct {
	//MaxIter is the largest number of iterations allowed.
	MaxIter int
	//Tol is the largest residual ||Hx - λx|| accepted for a converged pair,
	//relative to the infinity norm of H.
	Tol float64
	//Extra is the number of vectors iterated beyond the ones requested.
	//If 0, max(k, 8) are used.
	Extra int
	//Seed for the starting block. The same seed gives the same results.
	Seed int64
}

// NewShiftInvert returns a ShiftInvert solver with the default settings.
func NewShiftInvert() *ShiftInvert {
	return &ShiftInvert{MaxIter: 10000, Tol: 1e-10, Seed: 1}
}

// Name returns "shift-invert".
func (S *ShiftInvert) Name() string { return "shift-invert" }

// nudge is the first displacement tried for a shift that turns out to be an
// eigenvalue, relative to the norm of the matrix.
const nudge = 1e-8

// maxNudges is the number of displaced shifts tried before giving up.
const maxNudges = 6

func (S *ShiftInvert) blockSize(n, k int) int {
	extra := S.Extra
	if extra <= 0 {
		extra = k
		if extra < 8 {
			extra = 8
		}
	}
	p := k + extra
	if p > n {
		p = n
	}
	return p
}

// factorize returns a solver for H - s*I, where s is sigma or, if H - sigma*I is
// singular, a value slightly below sigma. It also returns the s used.
func (S *ShiftInvert) factorize(H *sparse.Matrix, sigma float64, rng *rand.Rand) (linSolver, float64, error) {
	n, _ := H.Dims()
	normH := H.NormInf()
	delta := nudge * math.Max(normH, 1)
	s := sigma
	for try := 0; try <= maxNudges; try++ {
		ls, err := newLinSolver(H, s)
		if err == nil && usable(ls, normH+math.Abs(s), rng, n) {
			return ls, s, nil
		}
		s = sigma - delta
		delta *= 10
	}
	return nil, sigma, Error{fmt.Sprintf("can't factorize the matrix shifted by %g or nearby values", sigma), []string{"factorize"}, true}
}

// SymNear returns the k eigenvalues of the symmetric matrix H closest to sigma, in
// ascending order, and the eigenvectors, if requested. If not all k eigenpairs
// converge within S.MaxIter iterations, the ones that did are returned, and
// the Result is marked as degraded.
func (S *ShiftInvert) SymNear(H *sparse.Matrix, k int, sigma float64, vectors bool) (*Result, error) {
	if err := check(H, k, "SymNear"); err != nil {
		return nil, err
	}
	n, _ := H.Dims()
	rng := rand.New(rand.NewSource(S.Seed))
	ls, shift, err := S.factorize(H, sigma, rng)
	if err != nil {
		return nil, errDecorate(err, "SymNear")
	}
	maxiter := S.MaxIter
	if maxiter <= 0 {
		maxiter = 1
	}
	tol := S.Tol * math.Max(H.NormInf(), math.SmallestNonzeroFloat64)
	p := S.blockSize(n, k)
	X := newBlock(n, p)
	Y := newBlock(n, p)
	HY := newBlock(n, p)
	HX := newBlock(n, p)
	for _, v := range X {
		for i := range v {
			v[i] = rng.Float64() - 0.5
		}
	}
	orthonormalize(X, rng)
	T := mat.NewSymDense(p, nil)
	var es mat.EigenSym
	var Q mat.Dense
	var ritz []float64
	res := make([]float64, p)
	var sel []pair
	var conv []bool
	it := 0
	for it < maxiter {
		it++
		for j := range X {
			if err := ls.solve(Y[j], X[j]); err != nil {
				return nil, errDecorate(err, "SymNear")
			}
		}
		orthonormalize(Y, rng)
		for j := range Y {
			H.MulVecTo(HY[j], Y[j])
		}
		for a := 0; a < p; a++ {
			for b := a; b < p; b++ {
				T.SetSym(a, b, 0.5*(floats.Dot(Y[a], HY[b])+floats.Dot(Y[b], HY[a])))
			}
		}
		if !es.Factorize(T, true) {
			return nil, Error{"Rayleigh-Ritz diagonalization failed", []string{"SymNear"}, true}
		}
		ritz = es.Values(ritz)
		Q.Reset()
		es.VectorsTo(&Q)
		//Ritz vectors, and H times them, are the new block.
		for j := 0; j < p; j++ {
			x, hx := X[j], HX[j]
			for i := range x {
				x[i] = 0
				hx[i] = 0
			}
			for a := 0; a < p; a++ {
				q := Q.At(a, j)
				floats.AddScaled(x, q, Y[a])
				floats.AddScaled(hx, q, HY[a])
			}
			floats.AddScaled(hx, -ritz[j], x)
			res[j] = floats.Norm(hx, 2)
		}
		sel = nearest(ritz, k, shift)
		conv = conv[:0]
		nconv := 0
		for _, v := range sel {
			c := res[v.idx] <= tol
			conv = append(conv, c)
			if c {
				nconv++
			}
		}
		if nconv == k {
			break
		}
	}
	ret := &Result{Requested: k, Iterations: it, Sigma: shift}
	idx := make([]int, 0, k)
	for i, v := range sel {
		if conv[i] {
			ret.Values = append(ret.Values, v.val)
			idx = append(idx, v.idx)
		}
	}
	if vectors && len(idx) > 0 {
		ret.Vectors = mat.NewDense(n, len(idx), nil)
		for c, j := range idx {
			v := append([]float64(nil), X[j]...)
			floats.Scale(1/floats.Norm(v, 2), v)
			fixSign(v)
			ret.Vectors.SetCol(c, v)
		}
	}
	return ret, nil
}

func newBlock(n, p int) [][]float64 {
	b := make([][]float64, p)
	for i := range b {
		b[i] = make([]float64, n)
	}
	return b
}

// orthonormalize applies Gram-Schmidt, twice, to the columns in cols.
// A column that becomes (numerically) linearly dependent on the previous
// ones is replaced by a random vector.
func orthonormalize(cols [][]float64, rng *rand.Rand) {
	for j := 0; j < len(cols); j++ {
		v := cols[j]
		for attempt := 0; ; attempt++ {
			orig := floats.Norm(v, 2)
			for pass := 0; pass < 2; pass++ {
				for i := 0; i < j; i++ {
					floats.AddScaled(v, -floats.Dot(cols[i], v), cols[i])
				}
			}
			nrm := floats.Norm(v, 2)
			if nrm > 1e-10*orig && nrm > 0 && !math.IsInf(nrm, 0) && !math.IsNaN(nrm) {
				floats.Scale(1/nrm, v)
				break
			}
			if attempt > 10 {
				panic("qrotor/eigen: orthonormalize: can't build an orthonormal block")
			}
			for i := range v {
				v[i] = rng.Float64() - 0.5
			}
		}
	}
}
