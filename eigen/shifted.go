/*
 * shifted.go, part of qrotor.
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
	"math"
	"math/rand"

	"github.com/rmera/qrotor/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// maxGrowth is the largest ||x||*||A||/||b|| accepted when solving A x = b
// with a shifted matrix. Larger values mean that the shift is, for our purposes,
// an eigenvalue of the matrix.
const maxGrowth = 1e12

// linSolver solves (H - sigma*I) x = b for a fixed, already factorized, shift.
type linSolver interface {
	solve(dst, b []float64) error
}

// newLinSolver factorizes H - sigma*I. Periodic tridiagonal matrices (all rotor
// Hamiltonians) are solved in O(n) with a tridiagonal solve and a
// Sherman-Morrison correction for the corners. Anything else goes through a
// dense LU factorization.
func newLinSolver(H *sparse.Matrix, sigma float64) (linSolver, error) {
	if C, ok := H.Cyclic(symTol * math.Max(1, H.NormInf())); ok {
		s, err := newCyclicSolver(C, sigma)
		if err != nil {
			return nil, errDecorate(err, "newLinSolver")
		}
		return s, nil
	}
	return newLUSolver(H, sigma), nil
}

// cyclicSolver solves a periodic tridiagonal system. The matrix is written as
// A = T + u*vᵀ, where T is tridiagonal and u,v only have elements in the first
// and last positions, so A⁻¹b = y - (v·y)/(1+v·z) z with T y = b and T z = u.
type cyclicSolver struct {
	t      *mat.Tridiag
	z      []float64
	y      []float64
	gamma  float64
	corner float64
	denom  float64
}

func newCyclicSolver(C *sparse.Cyclic, sigma float64) (*cyclicSolver, error) {
	n := len(C.D)
	d := make([]float64, n)
	for i, v := range C.D {
		d[i] = v - sigma
	}
	gamma := -d[0]
	if gamma == 0 {
		gamma = -1
	}
	d[0] -= gamma
	d[n-1] -= C.Corner * C.Corner / gamma
	dl := append([]float64(nil), C.E...)
	du := append([]float64(nil), C.E...)
	s := &cyclicSolver{
		t:      mat.NewTridiag(n, dl, d, du),
		z:      make([]float64, n),
		y:      make([]float64, n),
		gamma:  gamma,
		corner: C.Corner,
	}
	u := make([]float64, n)
	u[0] = gamma
	u[n-1] = C.Corner
	if err := s.t.SolveVecTo(mat.NewVecDense(n, s.z), false, mat.NewVecDense(n, u)); err != nil {
		return nil, Error{"singular shifted matrix: " + err.Error(), []string{"newCyclicSolver"}, false}
	}
	s.denom = 1 + s.z[0] + C.Corner*s.z[n-1]/gamma
	if s.denom == 0 || math.IsNaN(s.denom) || math.IsInf(s.denom, 0) {
		return nil, Error{"singular shifted matrix", []string{"newCyclicSolver"}, false}
	}
	return s, nil
}

func (s *cyclicSolver) solve(dst, b []float64) error {
	n := len(b)
	if err := s.t.SolveVecTo(mat.NewVecDense(n, s.y), false, mat.NewVecDense(n, b)); err != nil {
		return Error{"singular shifted matrix: " + err.Error(), []string{"solve"}, false}
	}
	f := (s.y[0] + s.corner*s.y[n-1]/s.gamma) / s.denom
	floats.AddScaledTo(dst, s.y, -f, s.z)
	return nil
}

// luSolver is the general case, for Hamiltonians that don't come from a
// periodic 3-point Laplacian.
type luSolver struct {
	lu mat.LU
}

func newLUSolver(H *sparse.Matrix, sigma float64) *luSolver {
	s := new(luSolver)
	s.lu.Factorize(H.Shift(sigma).Dense())
	return s
}

func (s *luSolver) solve(dst, b []float64) error {
	n := len(b)
	if err := s.lu.SolveVecTo(mat.NewVecDense(n, dst), false, mat.NewVecDense(n, b)); err != nil {
		return Error{"singular shifted matrix: " + err.Error(), []string{"solve"}, false}
	}
	return nil
}

// usable probes a factorized shifted matrix with a solve. It returns false if the
// solution is not finite or grows so much that the shift is effectively an eigenvalue.
func usable(s linSolver, normA float64, rng *rand.Rand, n int) bool {
	b := make([]float64, n)
	for i := range b {
		b[i] = 1 + rng.Float64()
	}
	x := make([]float64, n)
	if err := s.solve(x, b); err != nil {
		return false
	}
	if floats.HasNaN(x) {
		return false
	}
	nx := floats.Norm(x, math.Inf(1))
	if math.IsInf(nx, 0) {
		return false
	}
	return nx*math.Max(normA, 1e-300)/floats.Norm(b, math.Inf(1)) < maxGrowth
}
