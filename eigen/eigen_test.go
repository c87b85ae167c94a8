/*
 * eigen_test.go, part of qrotor.
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
	"testing"

	"github.com/rmera/qrotor/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func grid(n int) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return g
}

// rotor returns -B*L + diag(V).
func rotor(Te *testing.T, B float64, V []float64) *sparse.Matrix {
	L, err := sparse.PeriodicLaplacian(grid(len(V)))
	if err != nil {
		Te.Fatal(err)
	}
	return sparse.Add(L.Scale(-B), sparse.Diag(V))
}

func TestFreeRotor(Te *testing.T) {
	n := 360
	H := rotor(Te, 1, make([]float64, n))
	r, err := NewShiftInvert().SymNear(H, 4, 0, true)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Free rotor:", r)
	if r.Degraded() {
		Te.Fatalf("Free rotor did not converge: %s", r)
	}
	if !floats.EqualApprox(r.Values, []float64{0, 1, 1, 4}, 1e-3) {
		Te.Errorf("Expected ~[0 1 1 4], got %v", r.Values)
	}
	//H - 0*I is singular for a free rotor, the shift can only move down.
	if r.Sigma > 0 {
		Te.Errorf("Shift moved up to %g", r.Sigma)
	}
	rows, cols := r.Vectors.Dims()
	if rows != n || cols != 4 {
		Te.Errorf("Wrong eigenvector dimensions %dx%d", rows, cols)
	}
	//The ground state is constant.
	g := mat.Col(nil, 0, r.Vectors)
	for _, v := range g {
		if math.Abs(v-1/math.Sqrt(float64(n))) > 1e-6 {
			Te.Errorf("Ground state is not constant: %v", v)
			break
		}
	}
}

func TestAgainstDense(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{12, 60, 150} {
		V := make([]float64, n)
		for i := range V {
			x := 2 * math.Pi * float64(i) / float64(n)
			V[i] = 3*(1-math.Cos(3*x)) + 0.2*rng.Float64()
		}
		H := rotor(Te, 0.65, V)
		for _, k := range []int{1, 3, 6} {
			d, err := Dense{}.SymNear(H, k, 0, true)
			if err != nil {
				Te.Fatal(err)
			}
			s, err := NewShiftInvert().SymNear(H, k, 0, true)
			if err != nil {
				Te.Fatal(err)
			}
			if s.Degraded() {
				Te.Fatalf("n=%d k=%d degraded: %s", n, k, s)
			}
			if !floats.EqualApprox(d.Values, s.Values, 1e-8) {
				Te.Errorf("n=%d k=%d: dense %v, shift-invert %v", n, k, d.Values, s.Values)
			}
			for j := 0; j < k; j++ {
				dv := mat.Col(nil, j, d.Vectors)
				sv := mat.Col(nil, j, s.Vectors)
				//only non degenerate levels have unique vectors
				if math.Abs(floats.Dot(dv, sv)) < 1-1e-6 && isolated(d.Values, j) {
					Te.Errorf("n=%d k=%d: eigenvector %d differs, overlap %g", n, k, j, floats.Dot(dv, sv))
				}
			}
		}
	}
}

func isolated(vals []float64, j int) bool {
	for i, v := range vals {
		if i != j && math.Abs(v-vals[j]) < 1e-4 {
			return false
		}
	}
	return true
}

func TestNonCyclic(Te *testing.T) {
	n := 20
	H := rotor(Te, 1, make([]float64, n))
	//a second-neighbour coupling takes the matrix out of the cyclic shape
	H = sparse.Add(H, sparse.NewTriplets(n, []int{0, 2}, []int{2, 0}, []float64{0.3, 0.3}))
	if _, ok := H.Cyclic(1e-12); ok {
		Te.Fatal("Test matrix should not be cyclic")
	}
	d, err := Dense{}.SymNear(H, 5, 0, false)
	if err != nil {
		Te.Fatal(err)
	}
	s, err := NewShiftInvert().SymNear(H, 5, 0, false)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.EqualApprox(d.Values, s.Values, 1e-8) {
		Te.Errorf("dense %v, shift-invert %v", d.Values, s.Values)
	}
	if s.Vectors != nil {
		Te.Errorf("Vectors returned but not requested")
	}
}

func TestSigma(Te *testing.T) {
	n := 100
	H := rotor(Te, 1, make([]float64, n))
	s, err := NewShiftInvert().SymNear(H, 2, 8.5, false)
	if err != nil {
		Te.Fatal(err)
	}
	//closest to 8.5 are the m=3 doublet, ~9
	if len(s.Values) != 2 || math.Abs(s.Values[0]-s.Values[1]) > 1e-6 || math.Abs(s.Values[0]-9) > 0.1 {
		Te.Errorf("Expected the m=3 doublet, got %v", s.Values)
	}
}

func TestDegraded(Te *testing.T) {
	n := 200
	H := rotor(Te, 1, make([]float64, n))
	S := NewShiftInvert()
	S.MaxIter = 1
	S.Tol = 1e-15
	r, err := S.SymNear(H, 6, 0, true)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Capped:", r)
	if !r.Degraded() || r.Converged() >= 6 {
		Te.Errorf("Expected a degraded result, got %s", r)
	}
	if r.Iterations != 1 {
		Te.Errorf("Expected 1 iteration, got %d", r.Iterations)
	}
	if r.Vectors != nil {
		if _, c := r.Vectors.Dims(); c != r.Converged() {
			Te.Errorf("%d vectors for %d values", c, r.Converged())
		}
	}
}

func TestBadProblems(Te *testing.T) {
	H := rotor(Te, 1, make([]float64, 10))
	for _, k := range []int{0, -1, 10, 11} {
		if _, err := NewShiftInvert().SymNear(H, k, 0, false); err == nil {
			Te.Errorf("k=%d accepted", k)
		}
	}
	asym := sparse.NewTriplets(4, []int{0, 1, 2, 3, 0}, []int{0, 1, 2, 3, 1}, []float64{1, 2, 3, 4, 1})
	_, err := Dense{}.SymNear(asym, 2, 0, false)
	if err == nil {
		Te.Errorf("Non-symmetric matrix accepted")
	} else if e, ok := err.(Error); !ok || !e.Critical() {
		Te.Errorf("Unexpected error %v", err)
	}
}

func TestReproducible(Te *testing.T) {
	n := 90
	V := make([]float64, n)
	for i := range V {
		V[i] = 2 * math.Sin(3*2*math.Pi*float64(i)/float64(n))
	}
	H := rotor(Te, 0.7, V)
	a, err := NewShiftInvert().SymNear(H, 5, 0, true)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := NewShiftInvert().SymNear(H, 5, 0, true)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(a.Values, b.Values) || !mat.Equal(a.Vectors, b.Vectors) {
		Te.Errorf("Two identical solves differ: %v vs %v", a.Values, b.Values)
	}
}
